package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering.
// Offsetting the normal by a random unit vector gives a cosine-weighted
// distribution, so the albedo is the whole attenuation.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))

	// The random vector almost exactly cancelled the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
