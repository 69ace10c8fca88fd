package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    normal,
		FrontFace: true,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}
		if scatter.Scattered.Direction.NearZero() {
			t.Fatalf("Scattered direction is degenerate on iteration %d", i)
		}
		// normal + unit vector never points below the tangent plane
		if scatter.Scattered.Direction.Dot(normal) < 0 {
			t.Fatalf("Scattered ray %d points into the surface: %v", i, scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	// Unit-sphere rejection draws (2s-1) per axis; 0.5, 0.5, 0.25 maps to (0, 0, -0.5),
	// which normalizes to exactly opposite the normal
	sampler := &sequenceSampler{values: []float64{0.5, 0.5, 0.25}}

	normal := core.NewVec3(0, 0, 1)
	hit := &HitRecord{Point: core.NewVec3(1, 2, 3), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(1, 2, 4), core.NewVec3(0, 0, -1))

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.Scattered.Direction != normal {
		t.Errorf("Expected fallback to the normal %v, got %v", normal, scatter.Scattered.Direction)
	}
}
