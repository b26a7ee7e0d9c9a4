package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

// Printf writes the formatted message to standard output
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// NewSilentLogger creates a logger that discards everything
func NewSilentLogger() core.Logger {
	return core.DiscardLogger{}
}

// Config contains configuration for a render
type Config struct {
	TileSize        int   // Size of each square tile in pixels
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	SamplesPerPixel int   // Camera rays traced per pixel
	Seed            int64 // Base seed; the same seed always gives the same image
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:        32,
		NumWorkers:      0,
		SamplesPerPixel: 50,
		Seed:            42,
	}
}

// progressSteps is how many progress lines a render logs
const progressSteps = 4

// Raytracer renders a scene into a frame using a pool of tile workers
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger renders silently.
func NewRaytracer(s *scene.Scene, integratorInst integrator.Integrator, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewSilentLogger()
	}
	return &Raytracer{
		scene:      s,
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// Render traces every tile of the image and assembles the frame. The result
// depends only on the scene, the integrator and the config, not on how many
// workers ran or in which order tiles finished. Cancelling ctx stops the
// render between tiles and returns ctx.Err().
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	startTime := time.Now()
	camera := rt.scene.Camera
	width, height := camera.Width(), camera.Height()

	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)
	tileRenderer := NewTileRenderer(camera, rt.scene, rt.integrator, rt.config.SamplesPerPixel)
	workerPool := NewWorkerPool(tileRenderer, len(tiles), rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d, %d samples/pixel, %d tiles on %d workers...\n",
		width, height, tileRenderer.samplesPerPixel, len(tiles), workerPool.GetNumWorkers())

	workerPool.Start(ctx)
	for i, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	frame := NewFrame(width, height)
	stats := RenderStats{SamplesPerPixel: tileRenderer.samplesPerPixel}

	var renderErr error
	nextMilestone := 1
	for done := 0; done < len(tiles); done++ {
		result, ok := workerPool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = fmt.Errorf("tile %d: %w", result.TaskID, result.Error)
			}
			continue
		}

		frame.copyTile(result.Tile.Bounds, result.Pixels)
		stats.add(result.Stats)

		if renderErr == nil && (done+1)*progressSteps >= nextMilestone*len(tiles) {
			rt.logger.Printf("%d%% of tiles done (%v elapsed)\n", 100*(done+1)/len(tiles), time.Since(startTime).Round(time.Millisecond))
			for (done+1)*progressSteps >= nextMilestone*len(tiles) {
				nextMilestone++
			}
		}
	}
	workerPool.Stop()

	if err := ctx.Err(); err != nil {
		rt.logger.Printf("Rendering cancelled\n")
		return nil, RenderStats{}, err
	}
	if renderErr != nil {
		return nil, RenderStats{}, renderErr
	}

	stats.finalize(frame)
	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)

	return frame, stats, nil
}
