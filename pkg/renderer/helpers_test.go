package renderer

import (
	"fmt"
	"sync"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
)

// recordingLogger captures log lines instead of printing them
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// unitSphereScene returns a grey Lambertian unit sphere at the origin seen
// head-on from z=3 through a square 90 degree pinhole camera
func unitSphereScene() (*geometry.World, *geometry.Camera) {
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	camera := geometry.NewCamera(geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 1.0,
	})
	return world, camera
}

// testConfig returns a tiny deterministic render configuration
func testConfig() RenderConfig {
	return RenderConfig{
		Width:           11,
		Height:          11,
		SamplesPerPixel: 1,
		TimeSamples:     1,
		MaxDepth:        1,
		TileSize:        4,
		NumWorkers:      2,
		Seed:            42,
	}
}
