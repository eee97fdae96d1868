package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// shadowAcneEpsilon keeps secondary rays from re-hitting the surface they leave
const shadowAcneEpsilon = 0.001

// Integrator computes the color carried back along a camera ray
type Integrator interface {
	RayColor(ray core.Ray, world geometry.Shape, depth int, random *rand.Rand) core.Vec3
}

// Background is a vertical gradient seen by rays that escape the scene
type Background struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// DefaultBackground returns the blue-sky gradient
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the gradient color for a ray direction
func (b Background) Color(direction core.Vec3) core.Vec3 {
	unitDirection := direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Lerp(b.Top, t)
}

// PathTracer is the recursive integrator: every hit scatters once and the
// attenuated color of the scattered ray is returned, until depth runs out
type PathTracer struct {
	Background Background
}

// NewPathTracer creates a path tracer lit by the given background
func NewPathTracer(background Background) *PathTracer {
	return &PathTracer{Background: background}
}

// RayColor returns the color for a given ray with material support
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.Shape, depth int, random *rand.Rand) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.Interval{Min: shadowAcneEpsilon, Max: math.Inf(1)})
	if !isHit {
		return pt.Background.Color(ray.Direction)
	}

	// Shapes built without a material absorb everything
	if hit.Material == nil {
		return core.Vec3{}
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(pt.RayColor(scatter.Scattered, world, depth-1, random))
}
