package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a wrapped shape by a fixed offset
type Translate struct {
	Object Shape
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears moved by offset
func NewTranslate(object Shape, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit moves the ray into object space, delegates, and moves the hit back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	objectRay := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction)

	hit, ok := t.Object.Hit(objectRay, rayT)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the translated bounding box
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// Rotate turns a wrapped shape about a principal axis through the origin
type Rotate struct {
	Object  Shape
	Axis    core.Axis
	Radians float64
	bbox    core.AABB
}

// NewRotate wraps object so it appears rotated by degrees about axis
func NewRotate(object Shape, axis core.Axis, degrees float64) *Rotate {
	radians := degrees * math.Pi / 180.0

	bbox := core.EmptyAABB
	inner := object.BoundingBox()
	if !inner.IsEmpty() {
		for _, corner := range inner.Corners() {
			rotated := corner.Rotate(axis, radians)
			bbox = bbox.Union(core.NewAABBFromPoints(rotated, rotated))
		}
	}

	return &Rotate{
		Object:  object,
		Axis:    axis,
		Radians: radians,
		bbox:    bbox,
	}
}

// Hit rotates the ray into object space, delegates, and rotates the hit back
func (r *Rotate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	objectRay := core.NewRay(
		ray.Origin.Rotate(r.Axis, -r.Radians),
		ray.Direction.Rotate(r.Axis, -r.Radians),
	)

	hit, ok := r.Object.Hit(objectRay, rayT)
	if !ok {
		return nil, false
	}

	// Rotation preserves dot products, so FrontFace stays valid
	hit.Point = hit.Point.Rotate(r.Axis, r.Radians)
	hit.Normal = hit.Normal.Rotate(r.Axis, r.Radians)
	return hit, true
}

// BoundingBox returns the box around the rotated corners of the wrapped box
func (r *Rotate) BoundingBox() core.AABB {
	return r.bbox
}
