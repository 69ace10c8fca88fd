package integrator

import (
	"math/rand"
	"testing"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
)

// createTestWorld creates a simple world with a diffuse sphere
func createTestWorld() *geometry.World {
	lambertian := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	return geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian))
}

// absorber never scatters
type absorber struct{}

func (absorber) Scatter(core.Ray, *material.HitRecord, core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

func TestPathTracingDepthTermination(t *testing.T) {
	world := createTestWorld()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	integrator := NewPathTracingIntegrator()

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), // at the sphere
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),  // at the sky
	}

	for _, ray := range rays {
		for _, depth := range []int{0, -1} {
			if c := integrator.RayColor(ray, world, depth, sampler); c != core.Black {
				t.Errorf("Expected black for depth %d, got %v", depth, c)
			}
		}
	}

	if c := integrator.RayColor(rays[0], world, 3, sampler); c == core.Black {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestPathTracingBackground(t *testing.T) {
	integrator := NewPathTracingIntegrator()
	empty := geometry.NewWorld()
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
		{"horizon other side", core.NewVec3(0, 0, -3), core.NewVec3(0.75, 0.85, 1.0)},
		{"non-unit up", core.NewVec3(0, 7, 0), core.NewVec3(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			got := integrator.RayColor(ray, empty, 5, sampler)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracingAbsorption(t *testing.T) {
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, -2), 1, absorber{}))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if c := NewPathTracingIntegrator().RayColor(ray, world, 10, core.NewSeededSampler(1)); c != core.Black {
		t.Errorf("Absorbed ray should be black, got %v", c)
	}
}

func TestPathTracingMirrorReflectsSky(t *testing.T) {
	// A perfect mirror facing the ray sends it straight back along +z,
	// which sees the horizon color attenuated by the albedo
	albedo := core.NewVec3(0.8, 0.6, 0.2)
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewMetal(albedo, 0)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := NewPathTracingIntegrator().RayColor(ray, world, 10, core.NewSeededSampler(1))
	expected := albedo.MultiplyVec(core.NewVec3(0.75, 0.85, 1.0))
	if !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	// With a single bounce allowed the reflected ray has no budget left
	if got := NewPathTracingIntegrator().RayColor(ray, world, 1, core.NewSeededSampler(1)); got != core.Black {
		t.Errorf("Expected black at depth 1, got %v", got)
	}
}

func TestPathTracingDiffuseIsBounded(t *testing.T) {
	world := createTestWorld()
	integrator := NewPathTracingIntegrator()
	sampler := core.NewSeededSampler(42)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for i := 0; i < 200; i++ {
		c := integrator.RayColor(ray, world, 50, sampler)
		// Albedo below one and a sky no brighter than white bound every channel
		if c.X < 0 || c.X > 0.7 || c.Y < 0 || c.Y > 0.3 || c.Z < 0 || c.Z > 0.3 {
			t.Fatalf("Sample %d out of range: %v", i, c)
		}
	}
}
