package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// sphereFieldSeed fixes the layout of the sphere field across runs
const sphereFieldSeed = 1

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, cubed
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereFieldScene creates a field of small random spheres around three
// large ones (glass, matte, mirror) on a checkered ground sphere. It is the
// scene that benefits most from the BVH.
func NewSphereFieldScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.VFov = 20
	defaultCameraConfig.LookFrom = core.NewVec3(13, 2, 3)
	defaultCameraConfig.LookAt = core.NewVec3(0, 0, 0)
	defaultCameraConfig.DefocusAngle = 0.6
	defaultCameraConfig.FocusDistance = 10

	s := &Scene{
		CameraConfig: applyCameraOverrides(defaultCameraConfig, cameraOverrides),
		Background:   renderer.DefaultBackground(),
	}

	random := rand.New(rand.NewSource(sphereFieldSeed))

	ground := material.NewTexturedLambertian(
		material.NewSpatialCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	glass := material.NewDielectric(1.5)
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			// Hue follows the position around the origin, chroma is random
			hue := math.Mod(math.Atan2(center.Z, center.X)*180/math.Pi+360, 360)
			color := oklchToRGB(0.7, 0.05+0.2*random.Float64(), hue)

			var mat material.Material
			switch chooseMat := random.Float64(); {
			case chooseMat < 0.8:
				mat = material.NewLambertian(color.MultiplyVec(color))
			case chooseMat < 0.95:
				mat = material.NewMetal(color.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5)), 0.5*random.Float64())
			default:
				mat = glass
			}
			s.Shapes = append(s.Shapes, geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}
