package renderer

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera          *geometry.Camera
	world           geometry.Shape
	integrator      integrator.Integrator
	samplesPerPixel int
}

// NewTileRenderer creates a tile renderer. The world is only read, so one
// renderer can be shared by every worker.
func NewTileRenderer(camera *geometry.Camera, world geometry.Shape, integratorInst integrator.Integrator, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		camera:          camera,
		world:           world,
		integrator:      integratorInst,
		samplesPerPixel: max(1, samplesPerPixel),
	}
}

// RenderTile renders every pixel of the tile in row-major order from the
// tile's own random stream and returns the averaged colors
func (tr *TileRenderer) RenderTile(tile *Tile) ([]core.Vec3, RenderStats) {
	bounds := tile.Bounds
	sampler := tile.Sampler()
	pixels := make([]core.Vec3, 0, bounds.Dx()*bounds.Dy())

	stats := RenderStats{
		TotalPixels:     bounds.Dx() * bounds.Dy(),
		SamplesPerPixel: tr.samplesPerPixel,
		Tiles:           1,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			var ps PixelStats
			for s := 0; s < tr.samplesPerPixel; s++ {
				ray := tr.camera.GetRay(i, j, sampler)
				ps.AddSample(tr.integrator.RayColor(ray, tr.world, sampler))
			}
			pixels = append(pixels, ps.GetColor())
			stats.TotalSamples += ps.SampleCount
		}
	}

	return pixels, stats
}
