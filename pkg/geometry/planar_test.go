package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), nil)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectHit bool
		uv        core.Vec2
	}{
		{"center", core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), true, core.NewVec2(0.5, 0.5)},
		{"corner", core.NewVec3(-1, -1, 2), core.NewVec3(0, 0, -1), true, core.NewVec2(0, 0)},
		{"outside bounds", core.NewVec3(2, 0, 2), core.NewVec3(0, 0, -1), false, core.Vec2{}},
		{"parallel", core.NewVec3(0, 0, 2), core.NewVec3(1, 0, 0), false, core.Vec2{}},
		{"behind origin", core.NewVec3(0, 0, 2), core.NewVec3(0, 0, 1), false, core.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := quad.Hit(core.NewRay(tt.origin, tt.direction), unboundedT)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-2) > 1e-9 {
				t.Errorf("Expected t=2, got %f", hit.T)
			}
			if math.Abs(hit.UV.X-tt.uv.X) > 1e-9 || math.Abs(hit.UV.Y-tt.uv.Y) > 1e-9 {
				t.Errorf("Expected UV %v, got %v", tt.uv, hit.UV)
			}
			if !hit.FrontFace || !hit.Normal.Equals(core.NewVec3(0, 0, 1)) {
				t.Errorf("Expected front face with normal (0,0,1), got front=%v normal=%v", hit.FrontFace, hit.Normal)
			}
		})
	}
}

func TestQuad_BoundingBoxIsPadded(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), nil)

	bbox := quad.BoundingBox()
	if bbox.Z.Size() <= 0 {
		t.Errorf("Expected flat axis to be padded, got %v", bbox)
	}
	if !bbox.Hit(core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1)), unboundedT) {
		t.Error("Expected ray through the quad to hit its bounding box")
	}
}

func TestQuad_SkewedBoundingBox(t *testing.T) {
	// Parallelogram whose corner+u+v is not the extreme in every axis
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(2, 1, 0), core.NewVec3(-1, 2, 0), nil)

	bbox := quad.BoundingBox()
	if bbox.X.Min > -1 || bbox.X.Max < 2 || bbox.Y.Min > 0 || bbox.Y.Max < 3 {
		t.Errorf("Expected box to cover all four corners, got %v", bbox)
	}
}

func TestDisc_Hit(t *testing.T) {
	disc := NewDisc(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 1.0, nil)

	tests := []struct {
		name      string
		x, y      float64
		expectHit bool
		uv        core.Vec2
	}{
		{"center", 0, 0, true, core.NewVec2(0.5, 0.5)},
		{"right of center", 0.5, 0, true, core.NewVec2(0.75, 0.5)},
		{"top edge", 0, 1, true, core.NewVec2(0.5, 1.0)},
		{"inside bbox outside circle", 0.8, 0.8, false, core.Vec2{}},
		{"outside", 2, 0, false, core.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(tt.x, tt.y, 1), core.NewVec3(0, 0, -1))
			hit, isHit := disc.Hit(ray, unboundedT)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.UV.X-tt.uv.X) > 1e-9 || math.Abs(hit.UV.Y-tt.uv.Y) > 1e-9 {
				t.Errorf("Expected UV %v, got %v", tt.uv, hit.UV)
			}
		})
	}
}

func TestDisc_NormalizesEdgeVectors(t *testing.T) {
	// Long edge vectors must not scale the radius
	disc := NewDisc(core.NewVec3(0, 0, 0), core.NewVec3(5, 0, 0), core.NewVec3(0, 5, 0), 1.0, nil)

	if _, isHit := disc.Hit(core.NewRay(core.NewVec3(1.5, 0, 1), core.NewVec3(0, 0, -1)), unboundedT); isHit {
		t.Error("Expected miss outside the unit radius")
	}
	if _, isHit := disc.Hit(core.NewRay(core.NewVec3(0.9, 0, 1), core.NewVec3(0, 0, -1)), unboundedT); !isHit {
		t.Error("Expected hit inside the unit radius")
	}
}

func TestDisc_ZeroRadiusNeverHits(t *testing.T) {
	disc := NewDisc(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 0, nil)

	hit, isHit := disc.Hit(core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)), unboundedT)
	if isHit || hit != nil {
		t.Errorf("Expected zero-radius disc to miss, got %+v", hit)
	}
}

func TestTriangle_Hit(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), nil)

	tests := []struct {
		name      string
		x, y      float64
		expectHit bool
	}{
		{"inside", 0.25, 0.25, true},
		{"on hypotenuse", 0.5, 0.5, true},
		{"on u edge", 0.5, 0, true},
		{"on vertex", 0, 0, true},
		{"beyond hypotenuse", 0.75, 0.75, false},
		{"negative side", -0.1, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(tt.x, tt.y, 1), core.NewVec3(0, 0, -1))
			hit, isHit := triangle.Hit(ray, unboundedT)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if isHit && (math.Abs(hit.UV.X-tt.x) > 1e-9 || math.Abs(hit.UV.Y-tt.y) > 1e-9) {
				t.Errorf("Expected barycentric UV (%f, %f), got %v", tt.x, tt.y, hit.UV)
			}
		})
	}
}

func TestNewTriangleFromVertices(t *testing.T) {
	triangle := NewTriangleFromVertices(
		core.NewVec3(0, 0, -1), core.NewVec3(1, 0, -1), core.NewVec3(0, 1, -1), nil)

	hit, isHit := triangle.Hit(core.NewRay(core.NewVec3(0.2, 0.2, 0), core.NewVec3(0, 0, -1)), unboundedT)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if !hit.FrontFace {
		t.Error("Expected counter-clockwise vertices to face the viewer")
	}
	if math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("Expected t=1, got %f", hit.T)
	}
}
