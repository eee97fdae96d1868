package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Shapes are immutable after construction and safe for concurrent queries.
type Shape interface {
	// Hit returns the nearest intersection with t inside rayT
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
	// BoundingBox returns the box computed at construction
	BoundingBox() core.AABB
}

// emptyShape is the sentinel held by the leaf of a BVH built from no shapes
type emptyShape struct{}

func (emptyShape) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return nil, false
}

func (emptyShape) BoundingBox() core.AABB {
	return core.EmptyAABB
}
