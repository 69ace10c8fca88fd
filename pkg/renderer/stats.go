package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Camera rays per pixel per time sample
	TimeSamples     int           // Number of scene poses
	NumTiles        int           // Tiles per time sample
	NumWorkers      int           // Parallel workers used
	Elapsed         time.Duration // Wall-clock render time
	MeanLuminance   float64       // Mean linear luminance over all pixels
	LuminanceStdDev float64       // Standard deviation of pixel luminance
}

// PixelStats accumulates radiance samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB sum over every sample
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Black
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// luminanceStats returns the mean and standard deviation of average pixel luminance
func luminanceStats(pixels []PixelStats) (mean, stdDev float64) {
	if len(pixels) == 0 {
		return 0, 0
	}
	luminance := make([]float64, len(pixels))
	for i := range pixels {
		luminance[i] = pixels[i].GetColor().Luminance()
	}
	if len(luminance) == 1 {
		return luminance[0], 0
	}
	return stat.MeanStdDev(luminance, nil)
}
