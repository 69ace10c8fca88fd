package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/labstack/echo/v4"

	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
	"github.com/df07/go-motionblur-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene       string // Scene name (e.g., "random")
	Width       int    // Image width; height follows the scene aspect ratio
	Samples     int    // Samples per pixel per time sample
	TimeSamples int    // Scene poses across the shutter
	MaxDepth    int    // Maximum ray bounce depth
	Seed        int64  // 0 = unseeded
}

// handleRender renders a scene to completion and responds with a PNG
func (s *Server) handleRender(c echo.Context) error {
	req, err := s.parseRenderRequest(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sceneObj, err := scene.Create(req.Scene, req.Seed)
	if err != nil {
		if errors.Is(err, scene.ErrUnknownScene) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	sceneObj.Resize(req.Width)
	config := renderer.MergeRenderConfig(sceneObj.RenderConfig, renderer.RenderConfig{
		SamplesPerPixel: req.Samples,
		TimeSamples:     req.TimeSamples,
		MaxDepth:        req.MaxDepth,
		Seed:            req.Seed,
	})

	renderID, logger := s.newRenderLogger()
	raytracer, err := renderer.NewRaytracer(sceneObj.World, sceneObj.Camera(), config, logger)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Use request context to stop between time samples if the client leaves
	buffer, stats, err := raytracer.Render(c.Request().Context(), sceneObj.Time0, sceneObj.Time1)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "render cancelled")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	img, err := renderer.ToImage(buffer, config.Width, config.Height)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	data, err := encodePNG(img)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
	}

	header := c.Response().Header()
	header.Set("X-Render-Id", renderID)
	header.Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	header.Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	header.Set("X-Render-Mean-Luminance", strconv.FormatFloat(stats.MeanLuminance, 'f', 4, 64))
	return c.Blob(http.StatusOK, "image/png", data)
}

// parseRenderRequest parses and validates render parameters from the query string.
// Zero values fall back to the scene's recommended settings.
func (s *Server) parseRenderRequest(c echo.Context) (*RenderRequest, error) {
	values := c.QueryParams()
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 1, maxWidth); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(values, "spp", 0, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.TimeSamples, err = parseIntParam(values, "timeSamples", 0, 1, maxTimeSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", 0, 1, maxDepth); err != nil {
		return nil, err
	}
	if req.Seed, err = parseSeedParam(values); err != nil {
		return nil, err
	}
	return req, nil
}

// encodePNG encodes an image as PNG bytes
func encodePNG(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := gg.NewContextForRGBA(img).EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
