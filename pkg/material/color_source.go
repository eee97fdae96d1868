package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates two color sources on a grid in UV space.
// Scale is the number of checks per unit of u and v.
type CheckerTexture struct {
	Scale float64
	Even  ColorSource
	Odd   ColorSource
}

// NewCheckerTexture creates a UV checkerboard from two colors
func NewCheckerTexture(scale float64, even, odd core.Vec3) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

// Evaluate picks Even or Odd from the parity of the UV cell
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	i := int(math.Floor(uv.X * c.Scale))
	j := int(math.Floor(uv.Y * c.Scale))
	if (i+j)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}

// SpatialCheckerTexture alternates two color sources on a 3D grid in world space.
// Scale is the edge length of one check.
type SpatialCheckerTexture struct {
	Scale float64
	Even  ColorSource
	Odd   ColorSource
}

// NewSpatialCheckerTexture creates a world-space checkerboard from two colors.
// A scale that is not positive falls back to checks of edge length 1.
func NewSpatialCheckerTexture(scale float64, even, odd core.Vec3) *SpatialCheckerTexture {
	if !(scale > 0) {
		scale = 1
	}
	return &SpatialCheckerTexture{Scale: scale, Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

// Evaluate picks Even or Odd from the parity of the 3D cell containing point
func (c *SpatialCheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if !(c.Scale > 0) {
		return c.Even.Evaluate(uv, point)
	}
	inv := 1.0 / c.Scale
	x := int(math.Floor(point.X * inv))
	y := int(math.Floor(point.Y * inv))
	z := int(math.Floor(point.Z * inv))
	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
