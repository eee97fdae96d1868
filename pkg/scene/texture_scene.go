package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// DefaultTexturePath is the image wrapped around the textures scene spheres
const DefaultTexturePath = "assets/earthmap.jpg"

// textureTint is blended over the image by textureTintBlend, and used
// alone when the image cannot be loaded
var textureTint = core.NewVec3(0.0, 1.0, 1.0)

const textureTintBlend = 0.1

// NewTextureScene creates two large image-textured spheres touching at the
// origin. A missing image is logged and the spheres render cyan instead.
func NewTextureScene(texturePath string, logger core.Logger, cameraOverrides ...renderer.CameraConfig) *Scene {
	if texturePath == "" {
		texturePath = DefaultTexturePath
	}

	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.VFov = 20
	defaultCameraConfig.LookFrom = core.NewVec3(13, 2, 3)
	defaultCameraConfig.LookAt = core.NewVec3(0, 0, 0)
	defaultCameraConfig.FocusDistance = 2.0

	s := &Scene{
		CameraConfig: applyCameraOverrides(defaultCameraConfig, cameraOverrides),
		Background:   renderer.DefaultBackground(),
	}

	// One texture shared by both spheres; texels are never copied per shape
	texture := loaders.NewImageTexture(texturePath, textureTint, textureTintBlend, logger)
	textured := material.NewTexturedLambertian(texture)

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, textured),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, textured),
	)

	return s
}
