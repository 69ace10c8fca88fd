package integrator

import (
	"math"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
)

// ShadowEpsilon is the minimum hit distance; it keeps scattered rays from
// re-hitting the surface they leave due to floating-point error
const ShadowEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a sky
// gradient as the only light source
type PathTracingIntegrator struct {
	TopColor    core.Vec3 // Sky color straight up
	BottomColor core.Vec3 // Sky color straight down
}

// NewPathTracingIntegrator creates an integrator with a white to sky-blue background
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.White,
	}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Black
	}

	var rec material.HitRecord
	if !world.Hit(ray, ShadowEpsilon, math.Inf(1), &rec) {
		return pt.BackgroundGradient(ray)
	}

	scatter, didScatter := rec.Material.Scatter(ray, &rec, sampler)
	if !didScatter {
		return core.Black // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(pt.RayColor(scatter.Scattered, world, depth-1, sampler))
}

// BackgroundGradient returns a vertical gradient color based on ray direction
func (pt *PathTracingIntegrator) BackgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return core.Lerp(pt.BottomColor, pt.TopColor, t)
}
