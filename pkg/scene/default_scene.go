package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates three spheres (metal, matte, hollow glass) with a
// small matte sphere in front, standing on a huge ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.FocusDistance = 0.4

	s := &Scene{
		CameraConfig: applyCameraOverrides(defaultCameraConfig, cameraOverrides),
		Background:   renderer.DefaultBackground(),
	}

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialMetal := material.NewMetal(core.NewVec3(0.1, 0.2, 0.5), 0.1)
	materialGlass := material.NewDielectric(1.4)

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialMetal),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialBlue),
		// Negative radius inside the outer sphere makes a hollow glass shell
		geometry.NewSphere(core.NewVec3(1, 0, -1), -0.4, materialGlass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialGlass),
		geometry.NewSphere(core.NewVec3(0.4, -0.3, -0.8), 0.1, materialBlue),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
	)

	return s
}
