package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Absorber is a material that absorbs every ray; surfaces using it render black
type Absorber struct{}

// NewAbsorber creates a new absorbing material
func NewAbsorber() *Absorber {
	return &Absorber{}
}

// Scatter never scatters
func (a *Absorber) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}
