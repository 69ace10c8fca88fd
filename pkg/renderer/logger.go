package renderer

import (
	"github.com/labstack/gommon/log"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
)

// NewDefaultLogger creates a logger that writes timestamped lines to stdout
func NewDefaultLogger() core.Logger {
	logger := log.New("raytracer")
	logger.SetHeader("${time_rfc3339} ${prefix}")
	logger.SetLevel(log.INFO)
	return logger
}
