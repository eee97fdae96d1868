package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// pyramidSeed fixes the split axes of the pyramid mesh's BVH
const pyramidSeed = 7

// newPyramid returns a square pyramid mesh standing on base at y = base.Y
func newPyramid(base core.Vec3, halfWidth, height float64, mat material.Material) *geometry.TriangleMesh {
	vertices := []core.Vec3{
		base.Add(core.NewVec3(-halfWidth, 0, -halfWidth)),
		base.Add(core.NewVec3(halfWidth, 0, -halfWidth)),
		base.Add(core.NewVec3(halfWidth, 0, halfWidth)),
		base.Add(core.NewVec3(-halfWidth, 0, halfWidth)),
		base.Add(core.NewVec3(0, height, 0)),
	}
	faces := []int{
		1, 0, 4, 2, 1, 4, 3, 2, 4, 0, 3, 4, // sides
		0, 1, 2, 0, 2, 3, // base
	}

	mesh, err := geometry.NewTriangleMesh(vertices, faces, mat, rand.New(rand.NewSource(pyramidSeed)))
	if err != nil {
		panic(err) // indices above are fixed
	}
	return mesh
}

// NewQuadsScene creates a showcase of the planar primitives: a ring of
// textured quads, a disc showing its UV mapping, a glass triangle and two
// boxes placed with rotate and translate wrappers and a pyramid mesh, on a checkered ground
func NewQuadsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.AspectRatio = 1.0
	defaultCameraConfig.VFov = 80
	defaultCameraConfig.LookFrom = core.NewVec3(0, 0, 9)
	defaultCameraConfig.LookAt = core.NewVec3(0, 0, 0)
	defaultCameraConfig.FocusDistance = 9

	s := &Scene{
		CameraConfig: applyCameraOverrides(defaultCameraConfig, cameraOverrides),
		Background:   renderer.DefaultBackground(),
	}

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backChecker := material.NewTexturedLambertian(
		material.NewCheckerTexture(4, core.NewVec3(0.2, 1.0, 0.2), core.NewVec3(0.9, 0.9, 0.9)))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperSunset := material.NewTexturedLambertian(
		material.NewGradientTexture(1, 64, core.NewVec3(1.0, 0.5, 0.0), core.NewVec3(0.9, 0.2, 0.4)))
	groundChecker := material.NewTexturedLambertian(
		material.NewSpatialCheckerTexture(1.0, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	discUV := material.NewTexturedLambertian(material.NewUVDebugTexture(64, 64))
	glass := material.NewDielectric(1.5)
	brushedMetal := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.2)

	s.Shapes = append(s.Shapes,
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backChecker),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperSunset),
		NewGroundQuad(core.NewVec3(0, -3, 2), 12, groundChecker),
		geometry.NewDisc(core.NewVec3(0, 0, 0.5), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 0.8, discUV),
		geometry.NewTriangleFromVertices(
			core.NewVec3(-1.8, -1.5, 2), core.NewVec3(-0.4, -1.5, 2.5), core.NewVec3(-1.1, 0.2, 2.2), glass),
	)

	// Boxes are built at the origin, then turned and moved into place
	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(0.8, 1.6, 0.8), brushedMetal)
	s.Shapes = append(s.Shapes,
		geometry.NewTranslate(geometry.NewRotate(tallBox, core.AxisY, 15), core.NewVec3(1.0, -3, 2.5)))

	smallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(0.7, 0.7, 0.7), leftRed)
	s.Shapes = append(s.Shapes,
		geometry.NewTranslate(geometry.NewRotate(smallBox, core.AxisY, -18), core.NewVec3(-0.4, -3, 3.2)))

	s.Shapes = append(s.Shapes, newPyramid(core.NewVec3(2.0, -3, 4.0), 0.5, 1.0, brushedMetal))

	return s
}
