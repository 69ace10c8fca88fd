package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/df07/go-motionblur-raytracer/pkg/scene"
)

// Limits applied to render requests
const (
	maxWidth       = 1920
	maxSamples     = 1000
	maxTimeSamples = 64
	maxDepth       = 100
	consoleHistory = 200
)

// Server handles web requests for the motion blur raytracer
type Server struct {
	port int
	echo *echo.Echo

	console     chan ConsoleMessage // Filled by render loggers, drained on read
	consoleMu   sync.Mutex
	recent      []ConsoleMessage
	renderCount int
}

// SceneResponse describes a scene and its recommended render settings
type SceneResponse struct {
	scene.SceneInfo
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	SamplesPerPixel int     `json:"samplesPerPixel"`
	TimeSamples     int     `json:"timeSamples"`
	MaxDepth        int     `json:"maxDepth"`
	Time0           float64 `json:"time0"`
	Time1           float64 `json:"time1"`
	Objects         int     `json:"objects"`
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} ${method} ${uri} ${status} ${latency_human}\n",
	}))

	s := &Server{
		port:    port,
		echo:    e,
		console: make(chan ConsoleMessage, consoleHistory),
	}

	e.Static("/", "static")
	api := e.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/scenes", s.handleScenes)
	api.GET("/render", s.handleRender)
	api.GET("/inspect", s.handleInspect)
	api.GET("/console", s.handleConsole)

	return s
}

// Handler exposes the router for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.echo.Logger.Infof("Starting web server on http://localhost%s", addr)
	return s.echo.Start(addr)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists every built-in scene with its default render settings
func (s *Server) handleScenes(c echo.Context) error {
	var response []SceneResponse
	for _, info := range scene.ListScenes() {
		sceneObj, err := scene.Create(info.ID, 1)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		response = append(response, SceneResponse{
			SceneInfo:       info,
			Width:           sceneObj.RenderConfig.Width,
			Height:          sceneObj.RenderConfig.Height,
			SamplesPerPixel: sceneObj.RenderConfig.SamplesPerPixel,
			TimeSamples:     sceneObj.RenderConfig.TimeSamples,
			MaxDepth:        sceneObj.RenderConfig.MaxDepth,
			Time0:           sceneObj.Time0,
			Time1:           sceneObj.Time1,
			Objects:         sceneObj.GetPrimitiveCount(),
		})
	}
	return c.JSON(http.StatusOK, response)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query
func parseFloatParam(values url.Values, key string, defaultValue float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseSeedParam parses a render seed; 0 means unseeded
func parseSeedParam(values url.Values) (int64, error) {
	value := values.Get("seed")
	if value == "" {
		return 0, nil
	}
	seed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed: %s", value)
	}
	return seed, nil
}
