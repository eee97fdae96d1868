package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Red 0.2126 + green 0.7152 + blue 0.0722 + black 0 = 1.0, averaged over 4
	buffer := NewPixelBuffer(2, 2)
	buffer.Set(0, 0, core.NewVec3(1, 0, 0))
	buffer.Set(1, 0, core.NewVec3(0, 1, 0))
	buffer.Set(0, 1, core.NewVec3(0, 0, 1))
	buffer.Set(1, 1, core.NewVec3(0, 0, 0))

	avgLum := CalculateAverageLuminance(buffer)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	buffer := NewPixelBuffer(1, 1)
	buffer.Set(0, 0, core.NewVec3(1, 1, 1))

	avgLum := CalculateAverageLuminance(buffer)
	if math.Abs(avgLum-1.0) > 0.0001 {
		t.Errorf("Expected average luminosity 1.0, got %f", avgLum)
	}
}

func TestPixelStats(t *testing.T) {
	var ps PixelStats

	if got := ps.GetColor(); !got.Equals(core.Vec3{}) {
		t.Errorf("Expected black for no samples, got %v", got)
	}
	if !math.IsInf(ps.StandardError(), 1) {
		t.Errorf("Expected infinite error before two samples, got %f", ps.StandardError())
	}

	ps.AddSample(core.NewVec3(1, 1, 1))
	ps.AddSample(core.NewVec3(0, 0, 0))

	if got := ps.GetColor(); got.Subtract(core.NewVec3(0.5, 0.5, 0.5)).Length() > 1e-12 {
		t.Errorf("Expected average (0.5,0.5,0.5), got %v", got)
	}
	// Luminance samples 1 and 0: variance 0.25, standard error sqrt(0.25/2)
	if math.Abs(ps.StandardError()-math.Sqrt(0.125)) > 1e-9 {
		t.Errorf("Expected standard error %f, got %f", math.Sqrt(0.125), ps.StandardError())
	}
}

func TestRenderStats_MergeStandardError(t *testing.T) {
	var first, second RenderStats
	for _, luminance := range [][2]float64{{1, 0}, {0.5, 0.5}} {
		var ps PixelStats
		ps.AddSample(core.NewVec3(luminance[0], luminance[0], luminance[0]))
		ps.AddSample(core.NewVec3(luminance[1], luminance[1], luminance[1]))
		first.TotalPixels++
		first.addPixel(&ps)
	}
	var flat PixelStats
	flat.AddSample(core.NewVec3(0.2, 0.2, 0.2))
	flat.AddSample(core.NewVec3(0.2, 0.2, 0.2))
	second.TotalPixels++
	second.addPixel(&flat)

	var total RenderStats
	total.merge(first)
	total.merge(second)
	total.finalize()

	// Errors sqrt(0.125), 0 and 0 over three pixels
	if math.Abs(total.MaxStandardError-math.Sqrt(0.125)) > 1e-9 {
		t.Errorf("Expected max standard error %f, got %f", math.Sqrt(0.125), total.MaxStandardError)
	}
	if math.Abs(total.MeanStandardError-math.Sqrt(0.125)/3) > 1e-9 {
		t.Errorf("Expected mean standard error %f, got %f", math.Sqrt(0.125)/3, total.MeanStandardError)
	}
}

func TestRenderTile_StandardErrorShrinksWithSamples(t *testing.T) {
	renderAt := func(spp int) RenderStats {
		camera := NewCamera(MergeCameraConfig(DefaultCameraConfig(), CameraConfig{
			Width:           8,
			AspectRatio:     1,
			SamplesPerPixel: spp,
			MaxDepth:        10,
		}))
		tileRenderer := NewTileRenderer(diffuseSphereWorld(), camera, NewPathTracer(DefaultBackground()))
		tile := NewTileGrid(8, 8, 8)[0]
		return tileRenderer.RenderTile(tile, NewPixelBuffer(8, 8), tile.NewRandom(42))
	}

	if single := renderAt(1); !math.IsInf(single.MaxStandardError, 1) {
		t.Errorf("Expected infinite error with one sample, got %f", single.MaxStandardError)
	}

	coarse := renderAt(4)
	fine := renderAt(256)
	if fine.MeanStandardError <= 0 || fine.MeanStandardError >= coarse.MeanStandardError {
		t.Errorf("Expected standard error to shrink with samples: 4 spp %f, 256 spp %f",
			coarse.MeanStandardError, fine.MeanStandardError)
	}
}
