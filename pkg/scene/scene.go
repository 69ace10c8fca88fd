package scene

import (
	"math"

	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.World
	CameraConfig geometry.CameraConfig
	RenderConfig renderer.RenderConfig // Recommended settings for this scene
	Time0        float64               // Shutter open
	Time1        float64               // Shutter close
}

// Camera builds the scene camera with an aspect ratio matching the render size
func (s *Scene) Camera() *geometry.Camera {
	config := s.CameraConfig
	if s.RenderConfig.Width > 0 && s.RenderConfig.Height > 0 {
		config.AspectRatio = float64(s.RenderConfig.Width) / float64(s.RenderConfig.Height)
	}
	return geometry.NewCamera(config)
}

// Resize sets the render width and derives the height from the camera aspect ratio
func (s *Scene) Resize(width int) {
	if width <= 0 {
		return
	}
	s.RenderConfig.Width = width
	s.RenderConfig.Height = heightFor(width, s.CameraConfig.AspectRatio)
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.World.Objects)
}

// renderConfigFor returns the default render settings sized for aspectRatio
func renderConfigFor(width int, aspectRatio float64) renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.Width = width
	config.Height = heightFor(width, aspectRatio)
	return config
}

func heightFor(width int, aspectRatio float64) int {
	return max(int(math.Round(float64(width)/aspectRatio)), 1)
}
