package renderer

import (
	"image"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/integrator"
)

// TileRenderer traces camera rays for the pixels of one tile.
// It holds no mutable state and is shared by every worker.
type TileRenderer struct {
	world      geometry.Hittable
	camera     *geometry.Camera
	integrator integrator.Integrator
	width      int
	height     int
	config     RenderConfig
}

// NewTileRenderer creates a new tile renderer with the given world and integrator
func NewTileRenderer(world geometry.Hittable, camera *geometry.Camera, integratorInst integrator.Integrator, config RenderConfig) *TileRenderer {
	return &TileRenderer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		width:      config.Width,
		height:     config.Height,
		config:     config,
	}
}

// RenderTileBounds adds SamplesPerPixel samples to every pixel inside bounds.
// pixelStats is the row-major image accumulator; only pixels inside bounds
// are written. Returns the number of samples taken.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats []PixelStats, sampler core.Sampler) int {
	samples := 0
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j*tr.width+i]
			for s := 0; s < tr.config.SamplesPerPixel; s++ {
				ps.AddSample(tr.samplePixel(i, j, sampler))
				samples++
			}
		}
	}
	return samples
}

// samplePixel traces one jittered camera ray through pixel (i, j).
// Row 0 is the top of the image; the camera's t axis runs from the bottom.
func (tr *TileRenderer) samplePixel(i, j int, sampler core.Sampler) core.Vec3 {
	s := (float64(i) + sampler.Get1D()) / span(tr.width)
	t := 1.0 - (float64(j)+sampler.Get1D())/span(tr.height)

	ray := tr.camera.GetRay(s, t, sampler)
	return tr.integrator.RayColor(ray, tr.world, tr.config.MaxDepth, sampler)
}

// span is the divisor mapping pixel indices onto [0, 1]
func span(dimension int) float64 {
	return float64(max(dimension-1, 1))
}
