package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
)

// ErrDegenerateShutter is returned when a motion interval has zero length
var ErrDegenerateShutter = errors.New("degenerate motion interval")

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0
// to Center1 at Time1. Update must be called before hit testing; it writes the
// interpolated center into the embedded sphere.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	sphere           Sphere
}

// NewMovingSphere creates a moving sphere posed at time0
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) (*MovingSphere, error) {
	if time1 == time0 {
		return nil, fmt.Errorf("moving sphere over [%g, %g]: %w", time0, time1, ErrDegenerateShutter)
	}

	return &MovingSphere{
		Center0: center0,
		Center1: center1,
		Time0:   time0,
		Time1:   time1,
		sphere: Sphere{
			Center:   center0,
			Radius:   radius,
			Material: mat,
		},
	}, nil
}

// CenterAt returns the interpolated center. Times outside [Time0, Time1]
// extrapolate along the same line.
func (m *MovingSphere) CenterAt(time float64) core.Vec3 {
	f := (time - m.Time0) / (m.Time1 - m.Time0)
	return m.Center0.Add(m.Center1.Subtract(m.Center0).Multiply(f))
}

// Center returns the currently posed center
func (m *MovingSphere) Center() core.Vec3 {
	return m.sphere.Center
}

// Update poses the sphere at the given time
func (m *MovingSphere) Update(time float64) {
	m.sphere.Center = m.CenterAt(time)
}

// Hit tests the ray against the sphere at its current pose
func (m *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	return m.sphere.Hit(ray, tMin, tMax, rec)
}
