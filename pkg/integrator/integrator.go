package integrator

import (
	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray, following at most
	// depth bounces
	RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3
}
