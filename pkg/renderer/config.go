package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// ErrInvalidConfig is returned for render settings that cannot produce an image
var ErrInvalidConfig = errors.New("invalid render config")

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Camera rays per pixel per time sample
	TimeSamples     int   // Discrete scene poses across the shutter interval
	MaxDepth        int   // Maximum ray bounce depth
	TileSize        int   // Edge length of a square work tile (0 = default)
	NumWorkers      int   // Number of parallel workers (0 = one per logical CPU)
	Seed            int64 // Base random seed (0 = seed from the clock)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		TimeSamples:     5,
		MaxDepth:        50,
		TileSize:        32,
		NumWorkers:      0,
	}
}

// Validate checks that every field can produce an image
func (c RenderConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"samples per pixel", c.SamplesPerPixel},
		{"time samples", c.TimeSamples},
		{"max depth", c.MaxDepth},
	}
	for _, field := range positive {
		if field.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, field.name, field.value)
		}
	}
	if c.TileSize < 0 {
		return fmt.Errorf("%w: tile size must not be negative, got %d", ErrInvalidConfig, c.TileSize)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// MergeRenderConfig returns base with every non-zero field of override applied
func MergeRenderConfig(base, override RenderConfig) RenderConfig {
	result := base
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel > 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.TimeSamples > 0 {
		result.TimeSamples = override.TimeSamples
	}
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.TileSize > 0 {
		result.TileSize = override.TileSize
	}
	if override.NumWorkers > 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// DetectWorkers returns the number of logical CPUs available for rendering
func DetectWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
