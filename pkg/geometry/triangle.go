package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents the triangle with vertices Q, Q+U and Q+V
type Triangle struct {
	planar
	Material material.Material
	bbox     core.AABB
}

// NewTriangle creates a triangle from a corner and two edge vectors
func NewTriangle(corner, u, v core.Vec3, mat material.Material) *Triangle {
	bbox := core.NewAABBFromPoints(corner, corner.Add(u)).
		Union(core.NewAABBFromPoints(corner, corner.Add(v)))

	return &Triangle{
		planar:   newPlanar(corner, u, v),
		Material: mat,
		bbox:     bbox.Pad(),
	}
}

// NewTriangleFromVertices creates a triangle from three vertices; the front
// face is the one the vertices wind counter-clockwise around
func NewTriangleFromVertices(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	return NewTriangle(v0, v1.Subtract(v0), v2.Subtract(v0), mat)
}

// Hit tests if a ray intersects with the triangle
func (t *Triangle) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	ph, ok := t.hitPlane(ray, rayT)
	if !ok {
		return nil, false
	}

	// Barycentric inside test; edges count as inside so meshes are watertight
	if ph.Alpha < 0 || ph.Beta < 0 || ph.Alpha+ph.Beta > 1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        ph.T,
		Point:    ph.Point,
		UV:       core.NewVec2(ph.Alpha, ph.Beta),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.Normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle(Q: %v, u: %v, v: %v)", t.Q, t.U, t.V)
}
