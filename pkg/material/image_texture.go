package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a 2D image.
// A texture without texels (e.g. the image failed to load) yields Tint everywhere.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
	Tint   core.Vec3   // Fallback color, also blended over texels by Blend
	Blend  float64     // 0 = pure image, 1 = pure tint
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
		Tint:   core.NewVec3(1, 1, 1),
	}
}

// NewFallbackTexture creates an image texture with no texels that always returns tint
func NewFallbackTexture(tint core.Vec3) *ImageTexture {
	return &ImageTexture{Tint: tint}
}

// WithTint returns a copy of the texture blended toward tint by blend in [0, 1]
func (t *ImageTexture) WithTint(tint core.Vec3, blend float64) *ImageTexture {
	out := *t
	out.Tint = tint
	out.Blend = math.Max(0, math.Min(1, blend))
	return &out
}

// HasImage reports whether texel data is present
func (t *ImageTexture) HasImage() bool {
	return t.Width > 0 && t.Height > 0 && len(t.Pixels) >= t.Width*t.Height
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if !t.HasImage() {
		return t.Tint
	}

	// Wrap UV coordinates to [0, 1)
	u := uv.X - math.Floor(uv.X)
	v := uv.Y - math.Floor(uv.Y)

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	// Clamp to image bounds
	x = max(0, min(x, t.Width-1))
	y = max(0, min(y, t.Height-1))

	texel := t.Pixels[y*t.Width+x]
	if t.Blend == 0 {
		return texel
	}
	return texel.Lerp(t.Tint, t.Blend)
}
