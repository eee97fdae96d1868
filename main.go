package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	Scene       string
	Width       int
	Samples     int
	MaxDepth    int
	Seed        int64
	Workers     int
	TileSize    int
	Output      string
	Format      string
	TexturePath string
	List        bool
}

// parseFlags parses args (without the program name)
func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.Scene, "scene", "default", "Scene preset to render (see -list)")
	fs.IntVar(&opts.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.Samples, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.MaxDepth, "depth", 0, "Maximum bounces per path (0 = scene default)")
	fs.Int64Var(&opts.Seed, "seed", 42, "Random seed for the BVH and pixel sampling")
	fs.IntVar(&opts.Workers, "workers", 0, "Number of render workers (0 = CPU count)")
	fs.IntVar(&opts.TileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	fs.StringVar(&opts.Output, "out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	fs.StringVar(&opts.Format, "format", "", "Output format: png or ppm (default from -out extension, else png)")
	fs.StringVar(&opts.TexturePath, "texture", scene.DefaultTexturePath, "Image used by the textures scene")
	fs.BoolVar(&opts.List, "list", false, "List available scenes and exit")

	fs.Usage = func() {
		fmt.Fprintln(output, "Path Tracer")
		fmt.Fprintln(output, "Usage: pathtracer [options]")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.Width < 0 || opts.Samples < 0 || opts.MaxDepth < 0 || opts.Workers < 0 {
		return options{}, fmt.Errorf("-width, -spp, -depth and -workers must not be negative")
	}
	if opts.TileSize <= 0 {
		return options{}, fmt.Errorf("-tile must be positive, got %d", opts.TileSize)
	}

	format, err := resolveFormat(opts.Format, opts.Output)
	if err != nil {
		return options{}, err
	}
	opts.Format = format

	return opts, nil
}

// resolveFormat picks the output encoding from the flag or the file extension
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "" {
			format = "png"
		}
	}

	switch format {
	case "png", "ppm":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want png or ppm)", format)
	}
}

// createScene builds and preprocesses the selected preset with flag overrides applied
func createScene(opts options, logger core.Logger) (*scene.Scene, error) {
	selectedScene, err := scene.NewScene(opts.Scene, scene.Options{
		TexturePath: opts.TexturePath,
		Logger:      logger,
		Camera: renderer.CameraConfig{
			Width:           opts.Width,
			SamplesPerPixel: opts.Samples,
			MaxDepth:        opts.MaxDepth,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := selectedScene.Preprocess(rand.New(rand.NewSource(opts.Seed))); err != nil {
		return nil, fmt.Errorf("failed to prepare scene %s: %w", opts.Scene, err)
	}

	stats := selectedScene.BVH.Stats()
	logger.Printf("Scene %s: %d shapes, BVH depth %d (%d nodes)\n",
		opts.Scene, stats.TotalShapes, stats.MaxDepth, stats.TotalNodes)

	return selectedScene, nil
}

// run renders the scene described by opts and returns the written file path
func run(ctx context.Context, opts options, logger core.Logger) (string, error) {
	selectedScene, err := createScene(opts, logger)
	if err != nil {
		return "", err
	}

	camera := renderer.NewCamera(selectedScene.CameraConfig)
	r := renderer.NewRenderer(
		selectedScene.World(),
		camera,
		renderer.NewPathTracer(selectedScene.Background),
		renderer.RenderConfig{TileSize: opts.TileSize, NumWorkers: opts.Workers, Seed: opts.Seed},
		logger,
	)

	buffer, stats, err := r.Render(ctx)
	if err != nil {
		return "", fmt.Errorf("render failed: %w", err)
	}

	logger.Printf("Samples per pixel: %.1f, average luminance %.3f\n",
		stats.AverageSamples, renderer.CalculateAverageLuminance(buffer))

	filename := opts.Output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", opts.Scene, fmt.Sprintf("render_%s.%s", timestamp, opts.Format))
	}

	if err := writeOutput(filename, opts.Format, buffer); err != nil {
		return "", err
	}
	return filename, nil
}

// writeOutput encodes buffer to filename, creating parent directories as needed
func writeOutput(filename, format string, buffer *renderer.PixelBuffer) (err error) {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("error closing %s: %w", filename, closeErr)
		}
	}()

	if format == "ppm" {
		return renderer.WritePPM(file, buffer)
	}
	return renderer.WritePNG(file, buffer)
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.List {
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-10s %s\n", info.ID, info.Description)
		}
		return
	}

	// Ctrl-C stops the render between tiles
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := renderer.NewDefaultLogger()
	logger.Printf("Starting Path Tracer...\n")

	filename, err := run(ctx, opts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s\n", filename)
}
