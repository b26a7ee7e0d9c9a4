package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier, row-major across the grid
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Seed   int64           // Seed of the tile's private random stream
}

// NewTile creates a tile whose random stream depends only on the render seed
// and the tile ID
func NewTile(id int, bounds image.Rectangle, baseSeed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Seed:   tileSeed(baseSeed, id),
	}
}

// Sampler returns a fresh sampler positioned at the start of the tile's stream
func (t *Tile) Sampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(t.Seed)))
}

// tileSeed mixes the base seed with the tile ID so neighbouring tiles get
// unrelated streams
func tileSeed(baseSeed int64, id int) int64 {
	h := uint64(baseSeed)*0x9E3779B97F4A7C15 + uint64(id+42)
	h ^= h >> 31
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	return int64(h)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, baseSeed int64) []*Tile {
	if tileSize <= 0 {
		tileSize = max(width, height)
	}

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

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), baseSeed))
			tileID++
		}
	}

	return tiles
}
