package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes       []geometry.Shape // Objects in the scene
	CameraConfig renderer.CameraConfig
	Background   renderer.Background // Gradient seen by escaping rays
	BVH          *geometry.BVH       // Acceleration structure, built by Preprocess
}

// NewGroundQuad creates a large quad to stand in for an infinite ground plane.
// The quad is horizontal, centered at center, with its normal pointing up (0,1,0).
func NewGroundQuad(center core.Vec3, size float64, material material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, material)
}

// Preprocess validates the camera and builds the BVH. random chooses the BVH
// split axes; pass a seeded generator for reproducible trees.
func (s *Scene) Preprocess(random *rand.Rand) error {
	if err := s.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("invalid camera: %w", err)
	}

	s.BVH = geometry.NewBVH(s.Shapes, random)
	return nil
}

// World returns the shape the renderer traces against: the BVH once built,
// otherwise a linear list over the shapes
func (s *Scene) World() geometry.Shape {
	if s.BVH != nil {
		return s.BVH
	}
	return geometry.NewHittableList(s.Shapes...)
}

// applyCameraOverrides merges the first override, if any, into the scene's default camera
func applyCameraOverrides(defaults renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(cameraOverrides) > 0 {
		return renderer.MergeCameraConfig(defaults, cameraOverrides[0])
	}
	return defaults
}
