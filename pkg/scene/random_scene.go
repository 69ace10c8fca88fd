package scene

import (
	"fmt"
	"time"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
)

// RandomSceneConfig controls how the sphere field is populated.
// A small sphere is diffuse when the draw is below DiffuseProbability,
// metal below DiffuseProbability+MetalProbability and glass otherwise.
type RandomSceneConfig struct {
	DiffuseProbability float64
	MetalProbability   float64
	MotionBlur         bool  // Diffuse spheres bounce upward over [0, 1]
	GridExtent         int   // Spheres are placed on [-GridExtent, GridExtent) in x and z
	Seed               int64 // 0 = seed from the clock
}

// DefaultRandomSceneConfig returns the motion blurred 60/20/20 sphere field
func DefaultRandomSceneConfig() RandomSceneConfig {
	return RandomSceneConfig{
		DiffuseProbability: 0.6,
		MetalProbability:   0.2,
		MotionBlur:         true,
		GridExtent:         11,
	}
}

// ClassicRandomSceneConfig returns the static 80/15/5 sphere field
func ClassicRandomSceneConfig() RandomSceneConfig {
	return RandomSceneConfig{
		DiffuseProbability: 0.8,
		MetalProbability:   0.15,
		MotionBlur:         false,
		GridExtent:         11,
	}
}

// Validate checks that the probabilities describe a distribution
func (c RandomSceneConfig) Validate() error {
	if c.DiffuseProbability < 0 || c.MetalProbability < 0 || c.DiffuseProbability+c.MetalProbability > 1 {
		return fmt.Errorf("material probabilities %g/%g must be non-negative and sum to at most 1",
			c.DiffuseProbability, c.MetalProbability)
	}
	if c.GridExtent < 0 {
		return fmt.Errorf("grid extent must not be negative, got %d", c.GridExtent)
	}
	return nil
}

// NewRandomScene creates a large ground sphere covered by a grid of small
// random spheres around three large feature spheres
func NewRandomScene(config RandomSceneConfig) (*Scene, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sampler := core.NewSeededSampler(seed)

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	// Small spheres stay clear of the metal feature sphere
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -config.GridExtent; a < config.GridExtent; a++ {
		for b := -config.GridExtent; b < config.GridExtent; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < config.DiffuseProbability:
				albedo := core.RandomColor(sampler).MultiplyVec(core.RandomColor(sampler))
				mat := material.NewLambertian(albedo)
				if !config.MotionBlur {
					world.Add(geometry.NewSphere(center, 0.2, mat))
					continue
				}
				center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				sphere, err := geometry.NewMovingSphere(center, center1, 0.0, 1.0, 0.2, mat)
				if err != nil {
					return nil, err
				}
				world.Add(sphere)
			case chooseMat < config.DiffuseProbability+config.MetalProbability:
				albedo := core.RandomColorRange(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	cameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	renderConfig := renderConfigFor(400, cameraConfig.AspectRatio)
	name := "random"
	time1 := 0.5
	if !config.MotionBlur {
		renderConfig.TimeSamples = 1
		name = "classic"
		time1 = 0
	}

	return &Scene{
		Name:         name,
		World:        world,
		CameraConfig: cameraConfig,
		RenderConfig: renderConfig,
		Time0:        0,
		Time1:        time1,
	}, nil
}
