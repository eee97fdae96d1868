package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	planar
	Material material.Material
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	// Both diagonals are needed to bound a skewed parallelogram
	diagonal1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diagonal2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		planar:   newPlanar(corner, u, v),
		Material: mat,
		bbox:     diagonal1.Union(diagonal2).Pad(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	ph, ok := q.hitPlane(ray, rayT)
	if !ok {
		return nil, false
	}

	unit := core.Interval{Min: 0, Max: 1}
	if !unit.Contains(ph.Alpha) || !unit.Contains(ph.Beta) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        ph.T,
		Point:    ph.Point,
		UV:       core.NewVec2(ph.Alpha, ph.Beta),
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the padded bounding box of the quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

func (q *Quad) String() string {
	return fmt.Sprintf("Quad(Q: %v, u: %v, v: %v)", q.Q, q.U, q.V)
}
