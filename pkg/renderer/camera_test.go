package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDefaultCameraConfig(t *testing.T) {
	config := DefaultCameraConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	camera := NewCamera(config)
	if camera.Width() != 400 || camera.Height() != 225 {
		t.Errorf("Expected 400x225 image, got %dx%d", camera.Width(), camera.Height())
	}
}

func TestCameraHeightAtLeastOne(t *testing.T) {
	camera := NewCamera(MergeCameraConfig(DefaultCameraConfig(), CameraConfig{Width: 2, AspectRatio: 10}))
	if camera.Height() != 1 {
		t.Errorf("Expected height clamped to 1, got %d", camera.Height())
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{
		Width:    64,
		LookFrom: core.NewVec3(1, 2, 3),
	})

	if merged.Width != 64 {
		t.Errorf("Expected overridden width 64, got %d", merged.Width)
	}
	if !merged.LookFrom.Equals(core.NewVec3(1, 2, 3)) {
		t.Errorf("Expected overridden LookFrom, got %v", merged.LookFrom)
	}
	if merged.SamplesPerPixel != base.SamplesPerPixel || merged.VFov != base.VFov ||
		!merged.LookAt.Equals(base.LookAt) || merged.FocusDistance != base.FocusDistance {
		t.Errorf("Expected unset fields to keep base values, got %+v", merged)
	}
}

func TestCameraConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *CameraConfig)
	}{
		{"zero width", func(c *CameraConfig) { c.Width = 0 }},
		{"negative aspect", func(c *CameraConfig) { c.AspectRatio = -1 }},
		{"no samples", func(c *CameraConfig) { c.SamplesPerPixel = 0 }},
		{"negative depth", func(c *CameraConfig) { c.MaxDepth = -1 }},
		{"fov too wide", func(c *CameraConfig) { c.VFov = 180 }},
		{"negative defocus", func(c *CameraConfig) { c.DefocusAngle = -2 }},
		{"zero focus distance", func(c *CameraConfig) { c.FocusDistance = 0 }},
		{"look at self", func(c *CameraConfig) { c.LookAt = c.LookFrom }},
		{"up along view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			tt.modify(&config)
			if err := config.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestCameraGetRay_CenterPixel(t *testing.T) {
	config := MergeCameraConfig(DefaultCameraConfig(), CameraConfig{Width: 101, AspectRatio: 1})
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(50, 50, random)
		if !ray.Origin.Equals(config.LookFrom) {
			t.Fatalf("Pinhole camera ray should start at LookFrom, got %v", ray.Origin)
		}
		direction := ray.Direction.Normalize()
		if math.Abs(direction.X) > 0.02 || math.Abs(direction.Y) > 0.02 || direction.Z > -0.99 {
			t.Fatalf("Center pixel ray should point down -Z, got %v", direction)
		}
	}
}

func TestCameraGetCenterRay(t *testing.T) {
	config := MergeCameraConfig(DefaultCameraConfig(), CameraConfig{Width: 101, AspectRatio: 1, DefocusAngle: 10})
	camera := NewCamera(config)

	ray := camera.GetCenterRay(50, 50)
	if !ray.Origin.Equals(config.LookFrom) {
		t.Errorf("Center ray should ignore defocus and start at LookFrom, got %v", ray.Origin)
	}
	if ray.Direction.Normalize().Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Center ray of the middle pixel should point down -Z, got %v", ray.Direction)
	}
}

func TestCameraGetRay_TopLeftPixel(t *testing.T) {
	camera := NewCamera(MergeCameraConfig(DefaultCameraConfig(), CameraConfig{Width: 32, AspectRatio: 1}))
	random := rand.New(rand.NewSource(42))

	ray := camera.GetRay(0, 0, random)
	if ray.Direction.X >= 0 || ray.Direction.Y <= 0 {
		t.Errorf("Top-left pixel ray should point up and left, got %v", ray.Direction)
	}

	ray = camera.GetRay(31, 31, random)
	if ray.Direction.X <= 0 || ray.Direction.Y >= 0 {
		t.Errorf("Bottom-right pixel ray should point down and right, got %v", ray.Direction)
	}
}

func TestCameraGetRay_Defocus(t *testing.T) {
	config := MergeCameraConfig(DefaultCameraConfig(), CameraConfig{Width: 101, AspectRatio: 1, DefocusAngle: 10})
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	radius := config.FocusDistance * math.Tan(5*math.Pi/180)
	distinctOrigins := 0
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(50, 50, random)
		offset := ray.Origin.Subtract(config.LookFrom)
		if offset.Length() > radius+1e-9 {
			t.Fatalf("Origin %v is outside the defocus disk of radius %f", ray.Origin, radius)
		}
		if math.Abs(offset.Z) > 1e-9 {
			t.Fatalf("Defocus disk should lie in the camera plane, got offset %v", offset)
		}
		if !offset.NearZero() {
			distinctOrigins++
		}

		// Every ray still passes near the pixel on the focus plane
		atFocus := ray.At(1)
		if math.Abs(atFocus.Z+config.FocusDistance) > 1e-9 || math.Abs(atFocus.X) > 0.2 || math.Abs(atFocus.Y) > 0.2 {
			t.Fatalf("Ray should cross the focus plane at the center pixel, got %v", atFocus)
		}
	}
	if distinctOrigins == 0 {
		t.Error("Expected defocus sampling to move the ray origin")
	}
}
