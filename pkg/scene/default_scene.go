package scene

import (
	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres on a large ground sphere: a hollow
// glass ball on the left, a diffuse ball in the center and a mirror on the right
func NewDefaultScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        30.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.1,
		// Auto-focus on the center sphere
	}

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter),
		// Negative inner radius flips the normals to make a glass shell
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, materialLeft),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight),
	)

	renderConfig := renderConfigFor(400, cameraConfig.AspectRatio)
	renderConfig.TimeSamples = 1 // Nothing moves

	return &Scene{
		Name:         "default",
		World:        world,
		CameraConfig: cameraConfig,
		RenderConfig: renderConfig,
	}
}

// NewSimpleScene creates a single grey unit sphere at the origin seen from z=3
func NewSimpleScene() *Scene {
	cameraConfig := geometry.DefaultCameraConfig()
	cameraConfig.VFov = 90.0
	cameraConfig.AspectRatio = 1.0

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	renderConfig := renderConfigFor(200, cameraConfig.AspectRatio)
	renderConfig.SamplesPerPixel = 50
	renderConfig.TimeSamples = 1

	return &Scene{
		Name:         "simple",
		World:        world,
		CameraConfig: cameraConfig,
		RenderConfig: renderConfig,
	}
}
