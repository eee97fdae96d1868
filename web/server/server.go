package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// consoleBufferSize is how many log lines are kept for /api/console
const consoleBufferSize = 256

// Server handles web requests for the path tracer
type Server struct {
	port        int
	texturePath string
	console     chan ConsoleMessage
	renderCount atomic.Int64
}

// NewServer creates a new web server
func NewServer(port int, texturePath string) *Server {
	return &Server{
		port:        port,
		texturePath: texturePath,
		console:     make(chan ConsoleMessage, consoleBufferSize),
	}
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene           string // Preset ID (see /api/scenes)
	Width           int    // Image width, 0 = scene default
	SamplesPerPixel int    // 0 = scene default
	MaxDepth        int    // 0 = scene default
	Seed            int64
	Format          string // "png" or "ppm"
}

// SceneConfig describes a preset and its default camera
type SceneConfig struct {
	ID              string  `json:"id"`
	Description     string  `json:"description"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	SamplesPerPixel int     `json:"samplesPerPixel"`
	MaxDepth        int     `json:"maxDepth"`
	VFov            float64 `json:"vfov"`
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/console", s.handleConsole)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the presets with their default camera settings
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	var configs []SceneConfig
	for _, info := range scene.ListScenes() {
		sceneObj, err := scene.NewScene(info.ID, scene.Options{TexturePath: s.texturePath})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		camera := renderer.NewCamera(sceneObj.CameraConfig)
		configs = append(configs, SceneConfig{
			ID:              info.ID,
			Description:     info.Description,
			Width:           camera.Width(),
			Height:          camera.Height(),
			SamplesPerPixel: sceneObj.CameraConfig.SamplesPerPixel,
			MaxDepth:        sceneObj.CameraConfig.MaxDepth,
			VFov:            sceneObj.CameraConfig.VFov,
		})
	}

	writeJSON(w, http.StatusOK, configs)
}

// handleRender renders a full image and returns it encoded in the body.
// The render stops early if the client goes away.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	logger := NewWebLogger(fmt.Sprintf("render-%d", s.renderCount.Add(1)), s.console)

	sceneObj, err := s.buildScene(req, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rt := renderer.NewRenderer(
		sceneObj.World(),
		renderer.NewCamera(sceneObj.CameraConfig),
		renderer.NewPathTracer(sceneObj.Background),
		renderer.RenderConfig{TileSize: renderer.DefaultRenderConfig().TileSize, Seed: req.Seed},
		logger,
	)

	buffer, stats, err := rt.Render(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("Render error: %v", err))
		return
	}

	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Average-Samples", strconv.FormatFloat(stats.AverageSamples, 'f', 1, 64))
	w.Header().Set("X-Render-Mean-Standard-Error", strconv.FormatFloat(stats.MeanStandardError, 'g', 4, 64))
	w.Header().Set("X-Render-Max-Standard-Error", strconv.FormatFloat(stats.MaxStandardError, 'g', 4, 64))

	if req.Format == "ppm" {
		w.Header().Set("Content-Type", "image/x-portable-pixmap")
		err = renderer.WritePPM(w, buffer)
	} else {
		w.Header().Set("Content-Type", "image/png")
		err = renderer.WritePNG(w, buffer)
	}
	if err != nil {
		logger.Printf("Failed to write response: %v\n", err)
	}
}

// handleConsole returns the buffered log lines and clears them
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	messages := []ConsoleMessage{}
	for {
		select {
		case msg := <-s.console:
			messages = append(messages, msg)
		default:
			writeJSON(w, http.StatusOK, messages)
			return
		}
	}
}

// buildScene creates the requested preset and builds its BVH with the request seed
func (s *Server) buildScene(req *RenderRequest, logger core.Logger) (*scene.Scene, error) {
	sceneObj, err := scene.NewScene(req.Scene, scene.Options{
		TexturePath: s.texturePath,
		Logger:      logger,
		Camera: renderer.CameraConfig{
			Width:           req.Width,
			SamplesPerPixel: req.SamplesPerPixel,
			MaxDepth:        req.MaxDepth,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := sceneObj.Preprocess(rand.New(rand.NewSource(req.Seed))); err != nil {
		return nil, fmt.Errorf("failed to prepare scene %s: %w", req.Scene, err)
	}
	return sceneObj, nil
}

// parseRenderRequest parses request parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: "default", Format: "png"}

	if sceneName := values.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(values, "spp", 0, 1, 10000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", 0, 1, 1000); err != nil {
		return nil, err
	}

	seed, err := parseIntParam(values, "seed", int(renderer.DefaultRenderConfig().Seed), 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	switch format := values.Get("format"); format {
	case "", "png":
	case "ppm":
		req.Format = format
	default:
		return nil, fmt.Errorf("unsupported format %q (want png or ppm)", format)
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
