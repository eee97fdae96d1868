package renderer

import (
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	AverageSamples  float64       // Average samples per pixel
	SamplesPerPixel int           // Samples requested per pixel
	TilesRendered   int           // Tiles completed before the render returned
	Duration        time.Duration // Wall time spent rendering

	// Luminance standard error per pixel, a convergence measure.
	// Infinite when fewer than two samples were taken.
	MeanStandardError float64
	MaxStandardError  float64
	standardErrorSum  float64
}

// addPixel records the sampling error of one finished pixel
func (rs *RenderStats) addPixel(ps *PixelStats) {
	se := ps.StandardError()
	rs.standardErrorSum += se
	rs.MaxStandardError = math.Max(rs.MaxStandardError, se)
}

// merge folds the stats of one tile into the running totals
func (rs *RenderStats) merge(tile RenderStats) {
	rs.TotalPixels += tile.TotalPixels
	rs.TotalSamples += tile.TotalSamples
	rs.TilesRendered += tile.TilesRendered
	rs.standardErrorSum += tile.standardErrorSum
	rs.MaxStandardError = math.Max(rs.MaxStandardError, tile.MaxStandardError)
}

// finalize calculates derived statistics after all tiles are merged
func (rs *RenderStats) finalize() {
	if rs.TotalPixels > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
		rs.MeanStandardError = rs.standardErrorSum / float64(rs.TotalPixels)
	}
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator for variance
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// StandardError returns the standard error of the mean luminance,
// a measure of how far this pixel still is from converging
func (ps *PixelStats) StandardError() float64 {
	if ps.SampleCount < 2 {
		return math.Inf(1)
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	variance := math.Max(0, ps.LuminanceSqAccum/n-mean*mean)
	return math.Sqrt(variance / n)
}

// CalculateAverageLuminance returns the mean luminance over all pixels of the buffer
func CalculateAverageLuminance(buffer *PixelBuffer) float64 {
	if len(buffer.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, pixel := range buffer.Pixels {
		total += pixel.Luminance()
	}
	return total / float64(len(buffer.Pixels))
}
