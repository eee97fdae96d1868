package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// planar holds the plane shared by discs, quads and triangles: a corner Q
// and two edge vectors U and V spanning the plane
type planar struct {
	Q      core.Vec3 // Origin of the plane's (alpha, beta) frame
	U      core.Vec3 // First edge vector
	V      core.Vec3 // Second edge vector
	Normal core.Vec3 // Unit normal (U × V normalized)
	D      float64   // Plane equation constant: normal · p = D
	W      core.Vec3 // Cached n / (n·n) for planar coordinates
}

// planeHit is a ray/plane intersection expressed in the plane's frame
type planeHit struct {
	T     float64
	Point core.Vec3
	Alpha float64
	Beta  float64
}

func newPlanar(q, u, v core.Vec3) planar {
	n := u.Cross(v)
	normal := n.Normalize()
	return planar{
		Q:      q,
		U:      u,
		V:      v,
		Normal: normal,
		D:      normal.Dot(q),
		W:      n.Divide(n.Dot(n)),
	}
}

// hitPlane intersects the ray with the plane and returns the hit point's
// coordinates along U and V. Rays parallel to the plane never hit.
func (p *planar) hitPlane(ray core.Ray, rayT core.Interval) (planeHit, bool) {
	denominator := p.Normal.Dot(ray.Direction)
	if math.Abs(denominator) < 1e-8 {
		return planeHit{}, false
	}

	t := (p.D - p.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Surrounds(t) {
		return planeHit{}, false
	}

	point := ray.At(t)
	planarHitVector := point.Subtract(p.Q)

	return planeHit{
		T:     t,
		Point: point,
		Alpha: p.W.Dot(planarHitVector.Cross(p.V)),
		Beta:  p.W.Dot(p.U.Cross(planarHitVector)),
	}, true
}
