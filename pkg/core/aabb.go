package core

import (
	"fmt"
	"math"
)

// minAxisThickness is the smallest extent Pad leaves along any axis
const minAxisThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing; it is the identity for Union and is never hit
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABBFromPoints creates the AABB spanning two opposite corners in any order
func NewAABBFromPoints(a, b Vec3) AABB {
	return AABB{
		X: NewInterval(a.X, b.X),
		Y: NewInterval(a.Y, b.Y),
		Z: NewInterval(a.Z, b.Z),
	}
}

// Axis returns the interval for the given axis
func (aabb AABB) Axis(a Axis) Interval {
	switch a {
	case AxisX:
		return aabb.X
	case AxisY:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Pad widens every axis thinner than minAxisThickness so flat primitives
// still have a volume the slab test can hit
func (aabb AABB) Pad() AABB {
	pad := func(i Interval) Interval {
		if i.Size() < minAxisThickness {
			return i.Expand(minAxisThickness)
		}
		return i
	}
	return AABB{X: pad(aabb.X), Y: pad(aabb.Y), Z: pad(aabb.Z)}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: aabb.X.Union(other.X),
		Y: aabb.Y.Union(other.Y),
		Z: aabb.Z.Union(other.Z),
	}
}

// Translate returns the box moved by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Shift(offset.X),
		Y: aabb.Y.Shift(offset.Y),
		Z: aabb.Z.Shift(offset.Z),
	}
}

// Corners returns the eight corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		x, y, z := aabb.X.Min, aabb.Y.Min, aabb.Z.Min
		if i&1 != 0 {
			x = aabb.X.Max
		}
		if i&2 != 0 {
			y = aabb.Y.Max
		}
		if i&4 != 0 {
			z = aabb.Z.Max
		}
		corners[i] = NewVec3(x, y, z)
	}
	return corners
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)*0.5,
		(aabb.Y.Min+aabb.Y.Max)*0.5,
		(aabb.Z.Min+aabb.Z.Max)*0.5,
	)
}

// IsEmpty reports whether any axis is empty
func (aabb AABB) IsEmpty() bool {
	return aabb.X.IsEmpty() || aabb.Y.IsEmpty() || aabb.Z.IsEmpty()
}

// Hit tests if a ray intersects with this AABB within rayT using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	if aabb.IsEmpty() {
		return false
	}

	for axis := AxisX; axis <= AxisZ; axis++ {
		slab := aabb.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Parallel to this slab: the axis does not narrow rayT
		if math.Abs(direction) < 1e-8 {
			if origin < slab.Min || origin > slab.Max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}
		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// String formats the box as its three axis ranges
func (aabb AABB) String() string {
	return fmt.Sprintf("AABB(x:[%g, %g] y:[%g, %g] z:[%g, %g])",
		aabb.X.Min, aabb.X.Max, aabb.Y.Min, aabb.Y.Max, aabb.Z.Min, aabb.Z.Max)
}
