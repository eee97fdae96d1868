package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// SceneInfo describes a built-in scene preset
type SceneInfo struct {
	ID          string // Name passed to NewScene and the -scene flag
	Description string
}

// Options carries the settings a preset may need besides its camera
type Options struct {
	TexturePath string                // Image for the textures scene (default DefaultTexturePath)
	Logger      core.Logger           // Receives texture load messages (nil discards them)
	Camera      renderer.CameraConfig // Non-zero fields override the preset's camera
}

type preset struct {
	info  SceneInfo
	build func(opts Options) *Scene
}

var presets = map[string]preset{
	"default": {
		info: SceneInfo{ID: "default", Description: "Metal, matte and hollow glass spheres on a ground sphere"},
		build: func(opts Options) *Scene {
			return NewDefaultScene(opts.Camera)
		},
	},
	"textures": {
		info: SceneInfo{ID: "textures", Description: "Two image-textured spheres (cyan when the image is missing)"},
		build: func(opts Options) *Scene {
			return NewTextureScene(opts.TexturePath, opts.Logger, opts.Camera)
		},
	},
	"quads": {
		info: SceneInfo{ID: "quads", Description: "Quads, a disc, a glass triangle and rotated boxes"},
		build: func(opts Options) *Scene {
			return NewQuadsScene(opts.Camera)
		},
	},
	"spheres": {
		info: SceneInfo{ID: "spheres", Description: "Field of several hundred random spheres"},
		build: func(opts Options) *Scene {
			return NewSphereFieldScene(opts.Camera)
		},
	},
}

// ListScenes returns the built-in presets sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(presets))
	for _, p := range presets {
		scenes = append(scenes, p.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// NewScene builds the preset with the given ID
func NewScene(id string, opts Options) (*Scene, error) {
	p, ok := presets[id]
	if !ok {
		ids := make([]string, 0, len(presets))
		for _, info := range ListScenes() {
			ids = append(ids, info.ID)
		}
		return nil, fmt.Errorf("unknown scene %q (available: %s)", id, strings.Join(ids, ", "))
	}
	return p.build(opts), nil
}
