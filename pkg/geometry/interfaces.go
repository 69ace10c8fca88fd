package geometry

import (
	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
)

// Hittable is anything a ray can be tested against.
// Hit writes into rec only when it reports an intersection in [tMin, tMax].
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool
}

// Animatable objects have a time-dependent pose
type Animatable interface {
	// Update poses the object at the given time
	Update(time float64)
}

// Object is a scene member: hittable and animatable
type Object interface {
	Hittable
	Animatable
}
