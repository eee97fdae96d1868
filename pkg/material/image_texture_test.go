package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TestImageTextureEvaluate tests basic texture sampling
func TestImageTextureEvaluate(t *testing.T) {
	// Create a 2x2 checkerboard pattern
	// Layout:
	//   white black
	//   black white
	pixels := []core.Vec3{
		core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), // Row 0 (top in image coords)
		core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), // Row 1 (bottom in image coords)
	}
	texture := NewImageTexture(2, 2, pixels)

	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)

	tests := []struct {
		uv       core.Vec2
		expected core.Vec3
	}{
		{core.NewVec2(0.1, 0.1), black}, // bottom-left maps to image (0, 1)
		{core.NewVec2(0.9, 0.1), white}, // bottom-right maps to image (1, 1)
		{core.NewVec2(0.1, 0.9), white}, // top-left maps to image (0, 0)
		{core.NewVec2(0.9, 0.9), black}, // top-right maps to image (1, 0)
	}

	for _, tt := range tests {
		result := texture.Evaluate(tt.uv, core.Vec3{})
		if !result.Equals(tt.expected) {
			t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, result)
		}
	}
}

// TestImageTextureWrapping tests UV wrapping behavior
func TestImageTextureWrapping(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	texture := NewImageTexture(1, 1, []core.Vec3{red})

	testCases := []core.Vec2{
		core.NewVec2(0.5, 0.5),   // Normal case
		core.NewVec2(1.5, 0.5),   // U wraps
		core.NewVec2(0.5, 1.5),   // V wraps
		core.NewVec2(-0.5, -0.5), // Negative wrap
		core.NewVec2(2.3, 3.7),   // Large values
	}

	for _, uv := range testCases {
		result := texture.Evaluate(uv, core.Vec3{})
		if !result.Equals(red) {
			t.Errorf("UV%v: expected %v, got %v", uv, red, result)
		}
	}
}

func TestImageTextureFallbackAndBlend(t *testing.T) {
	cyan := core.NewVec3(0, 1, 1)
	fallback := NewFallbackTexture(cyan)
	if got := fallback.Evaluate(core.NewVec2(0.3, 0.3), core.NewVec3(1, 2, 3)); !got.Equals(cyan) {
		t.Errorf("Expected fallback tint %v, got %v", cyan, got)
	}

	red := core.NewVec3(1, 0, 0)
	blended := NewImageTexture(1, 1, []core.Vec3{red}).WithTint(core.NewVec3(0, 0, 1), 0.5)
	got := blended.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{})
	if got.Subtract(core.NewVec3(0.5, 0, 0.5)).Length() > 1e-12 {
		t.Errorf("Expected half blend, got %v", got)
	}
}

func TestCheckerTextures(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)

	uvChecker := NewCheckerTexture(10, even, odd)
	if got := uvChecker.Evaluate(core.NewVec2(0.05, 0.05), core.Vec3{}); !got.Equals(even) {
		t.Errorf("UV (0.05, 0.05) should be even, got %v", got)
	}
	if got := uvChecker.Evaluate(core.NewVec2(0.15, 0.05), core.Vec3{}); !got.Equals(odd) {
		t.Errorf("UV (0.15, 0.05) should be odd, got %v", got)
	}

	spatial := NewSpatialCheckerTexture(1, even, odd)
	tests := []struct {
		point    core.Vec3
		expected core.Vec3
	}{
		{core.NewVec3(0.5, 0.5, 0.5), even},
		{core.NewVec3(1.5, 0.5, 0.5), odd},
		{core.NewVec3(-0.5, 0.5, 0.5), odd},
		{core.NewVec3(-0.5, -0.5, 0.5), even},
		{core.NewVec3(1.5, 1.5, 1.5), odd},
	}
	for _, tt := range tests {
		if got := spatial.Evaluate(core.Vec2{}, tt.point); !got.Equals(tt.expected) {
			t.Errorf("Point %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestSpatialCheckerTexture_NonPositiveScale(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)

	for _, scale := range []float64{0, -2, math.NaN()} {
		checker := NewSpatialCheckerTexture(scale, even, odd)
		if checker.Scale != 1 {
			t.Errorf("Scale %v: expected fallback scale 1, got %v", scale, checker.Scale)
		}
		if got := checker.Evaluate(core.Vec2{}, core.NewVec3(1.5, 0.5, 0.5)); !got.Equals(odd) {
			t.Errorf("Scale %v: expected unit checks, got %v", scale, got)
		}
	}

	// A literal with zero scale must still return a defined color
	literal := &SpatialCheckerTexture{Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
	if got := literal.Evaluate(core.Vec2{}, core.NewVec3(0.5, 0.5, 0.5)); got.HasNaN() || !got.Equals(even) {
		t.Errorf("Expected even color for zero-scale literal, got %v", got)
	}
}

func TestUVDebugTexture_MatchesUV(t *testing.T) {
	texture := NewUVDebugTexture(64, 64)

	tests := []core.Vec2{
		core.NewVec2(0.1, 0.1),
		core.NewVec2(0.9, 0.2),
		core.NewVec2(0.5, 0.95),
	}
	for _, uv := range tests {
		got := texture.Evaluate(uv, core.Vec3{})
		// Nearest-texel lookup is within two texels of the exact value
		if math.Abs(got.X-uv.X) > 2.0/63 || math.Abs(got.Y-uv.Y) > 2.0/63 || got.Z != 0 {
			t.Errorf("Evaluate(%v) = %v, expected about (%f, %f, 0)", uv, got, uv.X, uv.Y)
		}
	}
}

func TestGradientTexture(t *testing.T) {
	top := core.NewVec3(1, 0, 0)
	bottom := core.NewVec3(0, 0, 1)
	texture := NewGradientTexture(2, 3, top, bottom)

	if got := texture.Evaluate(core.NewVec2(0.5, 0.99), core.Vec3{}); !got.Equals(top) {
		t.Errorf("Expected top color near V=1, got %v", got)
	}
	if got := texture.Evaluate(core.NewVec2(0.5, 0.01), core.Vec3{}); !got.Equals(bottom) {
		t.Errorf("Expected bottom color near V=0, got %v", got)
	}
	if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); got.Subtract(core.NewVec3(0.5, 0, 0.5)).Length() > 1e-12 {
		t.Errorf("Expected midpoint blend, got %v", got)
	}

	single := NewGradientTexture(1, 1, top, bottom)
	if got := single.Evaluate(core.NewVec2(0.3, 0.3), core.Vec3{}); !got.Equals(top) {
		t.Errorf("Expected a one-texel gradient to be the top color, got %v", got)
	}
}
