package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Disc represents a circular disc in 3D space.
// U and V are normalized, so the radius is measured in world units.
type Disc struct {
	planar
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewDisc creates a disc centered at center in the plane spanned by u and v
func NewDisc(center, u, v core.Vec3, radius float64, mat material.Material) *Disc {
	u = u.Normalize()
	v = v.Normalize()

	rightExtent := u.Multiply(radius)
	upExtent := v.Multiply(radius)

	bbox := core.NewAABBFromPoints(
		center.Add(rightExtent).Add(upExtent),
		center.Subtract(rightExtent).Subtract(upExtent),
	).Union(core.NewAABBFromPoints(
		center.Add(rightExtent).Subtract(upExtent),
		center.Subtract(rightExtent).Add(upExtent),
	))

	return &Disc{
		planar:   newPlanar(center, u, v),
		Radius:   radius,
		Material: mat,
		bbox:     bbox.Pad(),
	}
}

// Hit implements the Shape interface
func (d *Disc) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if d.Radius <= 0 {
		return nil, false
	}

	ph, ok := d.hitPlane(ray, rayT)
	if !ok {
		return nil, false
	}

	if ph.Alpha*ph.Alpha+ph.Beta*ph.Beta > d.Radius*d.Radius {
		return nil, false
	}

	// Map [-r, r] on each axis to [0, 1]:
	//	(r 0) -> (1.0 0.5)   (0 r) -> (0.5 1.0)   (0 0) -> (0.5 0.5)
	hitRecord := &material.HitRecord{
		T:     ph.T,
		Point: ph.Point,
		UV: core.NewVec2(
			(ph.Alpha+d.Radius)/(2*d.Radius),
			(ph.Beta+d.Radius)/(2*d.Radius),
		),
		Material: d.Material,
	}
	hitRecord.SetFaceNormal(ray, d.Normal)

	return hitRecord, true
}

// BoundingBox implements the Shape interface
func (d *Disc) BoundingBox() core.AABB {
	return d.bbox
}

func (d *Disc) String() string {
	return fmt.Sprintf("Disc(center: %v, radius: %g)", d.Q, d.Radius)
}
