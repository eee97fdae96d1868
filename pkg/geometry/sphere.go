package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape.
// A negative radius keeps the same surface but flips the normals inward,
// which is how hollow glass is modelled.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	r := math.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromPoints(center.Subtract(extent), center.Add(extent)),
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	// A zero-radius sphere has no surface to take a normal from
	if s.Radius == 0 {
		return nil, false
	}

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2hb·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(s.Center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = sphereUV(outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere(center: %v, radius: %g)", s.Center, s.Radius)
}

// sphereUV maps a point p on the unit sphere to texture coordinates.
// u is the angle around Y from X=-1, v is the angle from Y=-1 to Y=+1:
//
//	(1 0 0) -> (0.50 0.50)    (-1  0  0) -> (0.00 0.50)
//	(0 1 0) -> (0.50 1.00)    ( 0 -1  0) -> (0.50 0.00)
//	(0 0 1) -> (0.25 0.50)    ( 0  0 -1) -> (0.75 0.50)
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
