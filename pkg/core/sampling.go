package core

import (
	"math"
	"math/rand"
)

// RandomVec3 returns a vector with each component uniform in [min, max)
func RandomVec3(random *rand.Rand, min, max float64) Vec3 {
	span := max - min
	return NewVec3(
		min+span*random.Float64(),
		min+span*random.Float64(),
		min+span*random.Float64(),
	)
}

// RandomInUnitSphere generates a random point inside a unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := RandomVec3(random, -1, 1)
		// Accept if inside unit sphere
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3(random, -1, 1)
		lengthSq := p.LengthSquared()
		// Reject points too close to the center to normalize safely
		if lengthSq > 1e-160 && lengthSq <= 1.0 {
			return p.Divide(math.Sqrt(lengthSq))
		}
	}
}

// RandomInUnitDisk generates a random point in a unit disk in the XY plane (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		// Accept if inside unit disk
		if p.Dot(p) <= 1.0 {
			return p
		}
	}
}
