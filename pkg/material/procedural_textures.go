package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewUVDebugTexture creates a texture that shows its own UV coordinates:
// U maps to red, V to green. Useful for checking a primitive's UV mapping.
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		// Row 0 is the top of the image, where V = 1
		v := 1.0 - fraction(y, height)
		for x := 0; x < width; x++ {
			pixels[y*width+x] = core.NewVec3(fraction(x, width), v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from top (V = 1) to bottom (V = 0)
func NewGradientTexture(width, height int, top, bottom core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		color := top.Lerp(bottom, fraction(y, height))
		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// fraction maps texel index i of n onto [0, 1]
func fraction(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
