package geometry

import (
	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
)

// World is an aggregate of scene objects. It is itself an Object.
type World struct {
	Objects []Object
}

// NewWorld creates a world containing the given objects
func NewWorld(objects ...Object) *World {
	return &World{Objects: objects}
}

// Add appends objects to the world
func (w *World) Add(objects ...Object) {
	w.Objects = append(w.Objects, objects...)
}

// Hit finds the closest intersection across all objects
func (w *World) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	var candidate material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range w.Objects {
		if object.Hit(ray, tMin, closestSoFar, &candidate) {
			hitAnything = true
			closestSoFar = candidate.T
			*rec = candidate
		}
	}

	return hitAnything
}

// Update poses every object at the given time.
// Must not run concurrently with Hit.
func (w *World) Update(time float64) {
	for _, object := range w.Objects {
		object.Update(time)
	}
}
