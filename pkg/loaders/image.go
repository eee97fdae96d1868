package loaders

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first
	Format string     // Name reported by the decoder, e.g. "png"
}

// LoadImage loads an image in any registered format and converts it to a Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Format is detected from the file header, not the extension
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("image %s has no pixels", filename)
	}
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
		Format: format,
	}, nil
}

// NewImageTexture loads filename as a texture blended toward tint by blend
// in [0, 1]. If the file cannot be read the failure is logged and the
// returned texture is the flat tint, so a missing asset never stops a render.
func NewImageTexture(filename string, tint core.Vec3, blend float64, logger core.Logger) *material.ImageTexture {
	if logger == nil {
		logger = core.NopLogger{}
	}

	data, err := LoadImage(filename)
	if err != nil {
		logger.Printf("texture: %v; using fallback color %v\n", err, tint)
		return material.NewFallbackTexture(tint)
	}

	logger.Printf("texture: loaded %s (%s, %dx%d)\n", filename, data.Format, data.Width, data.Height)
	return material.NewImageTexture(data.Width, data.Height, data.Pixels).WithTint(tint, blend)
}
