package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		axis     Axis
		angle    float64
		expected Vec3
	}{
		{"No rotation", NewVec3(1, 0, 0), AxisY, 0, NewVec3(1, 0, 0)},
		{"90 degree rotation around Z axis", NewVec3(1, 0, 0), AxisZ, math.Pi / 2, NewVec3(0, 1, 0)},
		{"90 degree rotation around Y axis", NewVec3(1, 0, 0), AxisY, math.Pi / 2, NewVec3(0, 0, -1)},
		{"90 degree rotation around X axis", NewVec3(0, 1, 0), AxisX, math.Pi / 2, NewVec3(0, 0, 1)},
		{"180 degree rotation around Y axis", NewVec3(1, 0, 0), AxisY, math.Pi, NewVec3(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Rotate(tt.axis, tt.angle)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_RotateInverse(t *testing.T) {
	v := NewVec3(0.3, -1.2, 2.5)
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		back := v.Rotate(axis, 0.7).Rotate(axis, -0.7)
		if back.Subtract(v).Length() > 1e-12 {
			t.Errorf("axis %v: rotate then inverse gave %v, want %v", axis, back, v)
		}
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).NearZero() {
		t.Error("Expected vector with a 1e-3 component not to be near zero")
	}
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	if got := Reflect(v, n); !got.Equals(NewVec3(1, 1, 0)) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	uv := NewVec3(0, 0, -1)
	n := NewVec3(0, 0, 1)
	got := Refract(uv, n, 1.0/1.5)
	if got.Subtract(uv).Length() > 1e-12 {
		t.Errorf("Normal incidence should pass straight through, got %v", got)
	}
}

func TestRandomSampling_Bounds(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		if p := RandomInUnitSphere(random); p.LengthSquared() > 1.0 {
			t.Fatalf("RandomInUnitSphere returned %v outside the unit sphere", p)
		}
		if u := RandomUnitVector(random); math.Abs(u.Length()-1.0) > 1e-9 {
			t.Fatalf("RandomUnitVector returned %v with length %f", u, u.Length())
		}
		if d := RandomInUnitDisk(random); d.Z != 0 || d.LengthSquared() > 1.0 {
			t.Fatalf("RandomInUnitDisk returned %v outside the unit disk", d)
		}
	}
}

func TestVec3_Clamp(t *testing.T) {
	got := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if !got.Equals(NewVec3(0, 0.5, 1)) {
		t.Errorf("Expected (0, 0.5, 1), got %v", got)
	}
}
