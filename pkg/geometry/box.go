package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewBox returns the six quad faces of the axis-aligned box with opposite
// corners a and b. Every face normal points out of the box.
// Wrap the result in NewRotate/NewTranslate to place it arbitrarily.
func NewBox(a, b core.Vec3, mat material.Material) *HittableList {
	minCorner := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	maxCorner := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(maxCorner.X-minCorner.X, 0, 0)
	dy := core.NewVec3(0, maxCorner.Y-minCorner.Y, 0)
	dz := core.NewVec3(0, 0, maxCorner.Z-minCorner.Z)

	return NewHittableList(
		NewQuad(core.NewVec3(minCorner.X, minCorner.Y, maxCorner.Z), dx, dy, mat),          // front (+Z)
		NewQuad(core.NewVec3(maxCorner.X, minCorner.Y, maxCorner.Z), dz.Negate(), dy, mat), // right (+X)
		NewQuad(core.NewVec3(maxCorner.X, minCorner.Y, minCorner.Z), dx.Negate(), dy, mat), // back (-Z)
		NewQuad(core.NewVec3(minCorner.X, minCorner.Y, minCorner.Z), dz, dy, mat),          // left (-X)
		NewQuad(core.NewVec3(minCorner.X, maxCorner.Y, maxCorner.Z), dx, dz.Negate(), mat), // top (+Y)
		NewQuad(core.NewVec3(minCorner.X, minCorner.Y, minCorner.Z), dx, dz, mat),          // bottom (-Y)
	)
}
