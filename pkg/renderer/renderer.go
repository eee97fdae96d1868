package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; tile i samples with Seed+i
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
		Seed:       42,
	}
}

// Renderer renders a built world through a camera with a pool of tile workers
type Renderer struct {
	world      geometry.Shape
	camera     *Camera
	integrator Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRenderer creates a renderer. world must be fully built: rendering only reads it.
func NewRenderer(world geometry.Shape, camera *Camera, integrator Integrator, config RenderConfig, logger core.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Renderer{
		world:      world,
		camera:     camera,
		integrator: integrator,
		config:     config,
		logger:     logger,
	}
}

// Render renders every pixel and returns the averaged linear colors.
// The same seed always produces the same buffer, whatever the worker count.
// If ctx is cancelled, tiles not yet started are skipped and ctx.Err() is returned.
func (r *Renderer) Render(ctx context.Context) (*PixelBuffer, RenderStats, error) {
	startTime := time.Now()

	width, height := r.camera.Width(), r.camera.Height()
	buffer := NewPixelBuffer(width, height)
	tiles := NewTileGrid(width, height, r.config.TileSize)

	workerPool := NewWorkerPool(NewTileRenderer(r.world, r.camera, r.integrator), r.config.NumWorkers, len(tiles))
	workerPool.Start(ctx)
	defer workerPool.Stop()

	r.logger.Printf("Rendering %dx%d at %d samples/pixel: %d tiles on %d workers...\n",
		width, height, r.camera.Config().SamplesPerPixel, len(tiles), workerPool.GetNumWorkers())

	for _, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, Buffer: buffer, Seed: r.config.Seed})
	}

	stats := RenderStats{SamplesPerPixel: r.camera.Config().SamplesPerPixel}
	for i := 0; i < len(tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			r.logger.Printf("Rendering cancelled after %d of %d tiles\n", stats.TilesRendered, len(tiles))
			return nil, RenderStats{}, result.Error
		}
		stats.merge(result.Stats)
	}

	stats.finalize()
	stats.Duration = time.Since(startTime)

	r.logger.Printf("Render completed in %v (%d samples total, standard error mean %.4f max %.4f)\n",
		stats.Duration, stats.TotalSamples, stats.MeanStandardError, stats.MaxStandardError)
	return buffer, stats, nil
}
