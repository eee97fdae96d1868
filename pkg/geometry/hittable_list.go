package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is an unordered collection of shapes tested by linear scan.
// The BVH is the fast path; the list is the reference it must agree with.
type HittableList struct {
	Shapes []Shape
	bbox   core.AABB
}

// NewHittableList creates a list holding the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, shape := range shapes {
		list.Add(shape)
	}
	return list
}

// Add appends a shape and grows the aggregate bounding box
func (l *HittableList) Add(shape Shape) {
	if len(l.Shapes) == 0 {
		l.bbox = core.EmptyAABB
	}
	l.Shapes = append(l.Shapes, shape)
	l.bbox = l.bbox.Union(shape.BoundingBox())
}

// Len returns the number of shapes
func (l *HittableList) Len() int {
	return len(l.Shapes)
}

// Hit finds the closest intersection with any shape in the list
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, core.Interval{Min: rayT.Min, Max: closestSoFar}); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all member boxes
func (l *HittableList) BoundingBox() core.AABB {
	if len(l.Shapes) == 0 {
		return core.EmptyAABB
	}
	return l.bbox
}
