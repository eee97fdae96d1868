package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-pathtracer/pkg/core"
)

// intensity is the channel range mapped onto 0..255 after gamma correction
var intensity = core.Interval{Min: 0.0, Max: 0.999}

// PixelBuffer is a row-major image of linear RGB colors, each channel in [0, 1]
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Pixels[y*Width + x], y = 0 is the top row
}

// NewPixelBuffer creates a black buffer of the given size
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (x, y)
func (pb *PixelBuffer) At(x, y int) core.Vec3 {
	return pb.Pixels[y*pb.Width+x]
}

// Set stores the color of pixel (x, y) clamped to [0, 1].
// Concurrent calls are safe as long as they write different pixels.
func (pb *PixelBuffer) Set(x, y int, color core.Vec3) {
	pb.Pixels[y*pb.Width+x] = color.Clamp(0, 1)
}

// toByte gamma-corrects (gamma 2) a linear channel and scales it to 0..255
func toByte(linear core.Vec3) (uint8, uint8, uint8) {
	c := linear.GammaCorrect(2.0)
	return uint8(256 * intensity.Clamp(c.X)),
		uint8(256 * intensity.Clamp(c.Y)),
		uint8(256 * intensity.Clamp(c.Z))
}

// ToImage converts the linear buffer into an 8-bit sRGB-ish image
func ToImage(buffer *PixelBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buffer.Width, buffer.Height))
	for y := 0; y < buffer.Height; y++ {
		for x := 0; x < buffer.Width; x++ {
			r, g, b := toByte(buffer.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePNG encodes the buffer as PNG
func WritePNG(w io.Writer, buffer *PixelBuffer) error {
	if err := png.Encode(w, ToImage(buffer)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// WritePPM encodes the buffer as plain-text PPM (P3), one pixel per line
func WritePPM(w io.Writer, buffer *PixelBuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", buffer.Width, buffer.Height); err != nil {
		return fmt.Errorf("failed to write ppm header: %w", err)
	}

	for y := 0; y < buffer.Height; y++ {
		for x := 0; x < buffer.Width; x++ {
			r, g, b := toByte(buffer.At(x, y))
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("failed to write ppm pixel: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush ppm: %w", err)
	}
	return nil
}
