package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier, also offsets the tile's seed
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// NewRandom returns the tile's private generator. Seeding by tile rather
// than by worker makes the image independent of scheduling.
func (t *Tile) NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed + int64(t.ID)))
}

// TileRenderer renders the pixels of individual tiles using an integrator
type TileRenderer struct {
	world      geometry.Shape
	camera     *Camera
	integrator Integrator
}

// NewTileRenderer creates a new tile renderer over a built world
func NewTileRenderer(world geometry.Shape, camera *Camera, integrator Integrator) *TileRenderer {
	return &TileRenderer{
		world:      world,
		camera:     camera,
		integrator: integrator,
	}
}

// RenderTile renders every pixel inside the tile bounds into buffer.
// Tiles never overlap, so concurrent calls on distinct tiles do not race.
func (tr *TileRenderer) RenderTile(tile *Tile, buffer *PixelBuffer, random *rand.Rand) RenderStats {
	config := tr.camera.Config()

	stats := RenderStats{
		TotalPixels:     tile.Bounds.Dx() * tile.Bounds.Dy(),
		SamplesPerPixel: config.SamplesPerPixel,
		TilesRendered:   1,
	}

	for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			var ps PixelStats
			for sample := 0; sample < config.SamplesPerPixel; sample++ {
				ray := tr.camera.GetRay(i, j, random)
				ps.AddSample(tr.integrator.RayColor(ray, tr.world, config.MaxDepth, random))
			}
			buffer.Set(i, j, ps.GetColor())
			stats.TotalSamples += ps.SampleCount
			stats.addPixel(&ps)
		}
	}

	stats.finalize()
	return stats
}
