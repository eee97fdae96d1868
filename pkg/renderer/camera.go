package renderer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera.
// Zero-valued fields are treated as unset by MergeCameraConfig.
type CameraConfig struct {
	AspectRatio     float64   // Width / height
	Width           int       // Image width in pixels
	SamplesPerPixel int       // Number of rays per pixel
	MaxDepth        int       // Maximum ray bounce depth
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Up direction
	DefocusAngle    float64   // Cone angle in degrees through each pixel for depth of field (0 = pinhole)
	FocusDistance   float64   // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns the documented camera defaults
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied on top
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if !override.LookFrom.Equals(core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if !override.LookAt.Equals(core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if !override.Up.Equals(core.Vec3{}) {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

// Validate reports the first configuration value a camera cannot be built from
func (c CameraConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("camera width must be positive, got %d", c.Width)
	case c.AspectRatio <= 0 || math.IsInf(c.AspectRatio, 0) || math.IsNaN(c.AspectRatio):
		return fmt.Errorf("camera aspect ratio must be positive, got %g", c.AspectRatio)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	case c.VFov <= 0 || c.VFov >= 180:
		return fmt.Errorf("vertical field of view must be in (0, 180) degrees, got %g", c.VFov)
	case c.DefocusAngle < 0:
		return fmt.Errorf("defocus angle must not be negative, got %g", c.DefocusAngle)
	case c.FocusDistance <= 0:
		return fmt.Errorf("focus distance must be positive, got %g", c.FocusDistance)
	case c.LookFrom.Subtract(c.LookAt).NearZero():
		return errors.New("camera LookFrom and LookAt must differ")
	case c.Up.Cross(c.LookFrom.Subtract(c.LookAt)).NearZero():
		return errors.New("camera Up must not be parallel to the view direction")
	}
	return nil
}

// Camera generates rays for rendering. It is immutable after construction.
type Camera struct {
	config       CameraConfig
	imageHeight  int
	center       core.Vec3
	pixel00      core.Vec3 // Center of the top-left pixel
	pixelDeltaU  core.Vec3 // Offset to the pixel on the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	u, v, w      core.Vec3 // Camera frame basis vectors
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	imageHeight := max(1, int(float64(config.Width)/config.AspectRatio))

	// Viewport lives on the focus plane so defocus blur is centered on it
	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(imageHeight)

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight) // Down the image

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := config.LookFrom.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		imageHeight:  imageHeight,
		center:       config.LookFrom,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// GetRay returns a ray through a random point inside pixel (i, j), where
// (0, 0) is the top-left pixel. With a positive DefocusAngle the origin is
// sampled from the defocus disk.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offsetX := random.Float64() - 0.5
	offsetY := random.Float64() - 0.5

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(random)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// GetCenterRay returns the ray from the lens center through the center of
// pixel (i, j), with no jitter or defocus
func (c *Camera) GetCenterRay(i, j int) core.Ray {
	pixelCenter := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	return core.NewRay(c.center, pixelCenter.Subtract(c.center))
}

func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels, derived from width and aspect ratio
func (c *Camera) Height() int {
	return c.imageHeight
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
