package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_NormalIncidenceMirror(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.6, 0.2)
	metal := NewMetal(albedo, 0.0)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Metal should scatter at normal incidence")
	}

	expected := core.NewVec3(0, 0, 1)
	if !scatter.Scattered.Direction.Equals(expected) {
		t.Errorf("Expected exact reversal %v, got %v", expected, scatter.Scattered.Direction)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
	if !scatter.Scattered.Origin.Equals(hit.Point) {
		t.Errorf("Scattered ray should start at hit point, got %v", scatter.Scattered.Origin)
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	random := rand.New(rand.NewSource(42))

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := &HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()
	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}
}

func TestMetal_FullFuzzAbsorbsSomeRays(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	random := rand.New(rand.NewSource(42))

	// Grazing incidence makes perturbations below the surface likely
	rayIn := core.NewRay(core.NewVec3(-1, 0.1, 0), core.NewVec3(1, -0.1, 0))
	hit := &HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}

	absorbed, scattered := 0, 0
	for i := 0; i < 1000; i++ {
		scatter, ok := metal.Scatter(rayIn, hit, random)
		if !ok {
			absorbed++
			continue
		}
		scattered++
		if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered direction %v points into the surface", scatter.Scattered.Direction)
		}
	}

	if absorbed == 0 {
		t.Error("Expected some rays to be absorbed with fuzz=1")
	}
	if scattered == 0 {
		t.Error("Expected some rays to scatter with fuzz=1")
	}
}
