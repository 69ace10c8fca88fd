package renderer

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
)

func TestPixelStats_AddSample(t *testing.T) {
	var ps PixelStats
	if got := ps.GetColor(); got != core.Black {
		t.Errorf("Empty pixel should be black, got %v", got)
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))

	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}
	if got := ps.GetColor(); !got.Equals(core.NewVec3(0.5, 0.5, 0)) {
		t.Errorf("Expected mean (0.5,0.5,0), got %v", got)
	}
}

func TestLuminanceStats(t *testing.T) {
	pixels := make([]PixelStats, 4)
	for i := range pixels {
		pixels[i].AddSample(core.White.Multiply(float64(i)))
	}

	mean, stdDev := luminanceStats(pixels)
	// Luminance of grey g is g, so the values are 0,1,2,3
	if !scalar.EqualWithinAbs(mean, 1.5, 1e-9) {
		t.Errorf("Expected mean 1.5, got %f", mean)
	}
	// Sample standard deviation of 0..3
	if !scalar.EqualWithinAbs(stdDev, 1.2909944487358056, 1e-9) {
		t.Errorf("Expected std dev 1.291, got %f", stdDev)
	}

	mean, stdDev = luminanceStats(pixels[:1])
	if mean != 0 || stdDev != 0 {
		t.Errorf("Single black pixel should give 0,0, got %f,%f", mean, stdDev)
	}
}
