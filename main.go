package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/config"
	"github.com/df07/go-weekend-pathtracer/pkg/encoder"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
)

// errHelp signals that usage was printed and nothing should be rendered
var errHelp = errors.New("help requested")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseConfig(args, stdout)
	if err != nil {
		return err
	}

	logger := renderer.NewDefaultLogger()
	logger.Printf("Starting Weekend Path Tracer...\n")

	selectedScene, err := createScene(cfg)
	if err != nil {
		return err
	}
	sampling := cfg.Sampling(selectedScene.SamplingConfig)

	camera := selectedScene.Camera
	logger.Printf("Scene %q: %d shapes, %dx%d, camera at %v, %d samples/pixel, max depth %d, seed %d\n",
		cfg.Scene, selectedScene.Len(), camera.Width(), camera.Height(), camera.Center(),
		sampling.SamplesPerPixel, sampling.MaxDepth, cfg.Seed)

	integratorConfig := integrator.DefaultConfig()
	integratorConfig.MaxDepth = sampling.MaxDepth
	integratorConfig.DebugDepthExhaustion = cfg.DebugDepth

	raytracer := renderer.NewRaytracer(
		selectedScene,
		integrator.NewPathTracingIntegrator(integratorConfig),
		renderer.Config{
			TileSize:        cfg.TileSize,
			NumWorkers:      cfg.Workers,
			SamplesPerPixel: sampling.SamplesPerPixel,
			Seed:            cfg.Seed,
		},
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	logger.Printf("Average samples per pixel: %.1f, average luminance: %.3f\n", stats.AverageSamples, stats.AverageLuminance)

	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}
	filename := cfg.OutputPath(time.Now())
	if err := saveFrame(filename, frame, format); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// parseConfig builds the configuration from an optional JSON file and the
// command line. Flags given explicitly override values from the file.
func parseConfig(args []string, stdout io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stdout)

	defaults := config.Default()
	configPath := fs.String("config", "", "JSON config file; flags override its values")
	sceneName := fs.String("scene", defaults.Scene, "Scene name (see -list)")
	width := fs.Int("width", defaults.Width, "Image width in pixels (0 = scene default)")
	aspectRatio := fs.Float64("aspect", defaults.AspectRatio, "Width / height ratio (0 = scene default)")
	samples := fs.Int("spp", defaults.SamplesPerPixel, "Samples per pixel (0 = scene default)")
	maxDepth := fs.Int("depth", defaults.MaxDepth, "Maximum bounces per path (0 = scene default)")
	tileSize := fs.Int("tile", defaults.TileSize, "Tile size in pixels")
	workers := fs.Int("workers", defaults.Workers, "Number of render workers (0 = one per CPU)")
	seed := fs.Int64("seed", defaults.Seed, "Random seed")
	output := fs.String("output", defaults.Output, "Output file (default output/<scene>/render_<timestamp>.<format>)")
	format := fs.String("format", defaults.Format, "Output format: png or ppm (default from the -output extension, else png)")
	debugDepth := fs.Bool("debug-depth", defaults.DebugDepth, "Color paths that run out of depth magenta")
	list := fs.Bool("list", false, "List available scenes")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config.Config{}, errHelp
		}
		return config.Config{}, err
	}

	if *help {
		fmt.Fprintln(stdout, "Weekend Path Tracer")
		fmt.Fprintln(stdout, "Usage: pathtracer [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stdout)
		printScenes(stdout)
		return config.Config{}, errHelp
	}
	if *list {
		printScenes(stdout)
		return config.Config{}, errHelp
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneName
		case "width":
			cfg.Width = *width
		case "aspect":
			cfg.AspectRatio = *aspectRatio
		case "spp":
			cfg.SamplesPerPixel = *samples
		case "depth":
			cfg.MaxDepth = *maxDepth
		case "tile":
			cfg.TileSize = *tileSize
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		case "output":
			cfg.Output = *output
		case "format":
			cfg.Format = *format
		case "debug-depth":
			cfg.DebugDepth = *debugDepth
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// printScenes writes the built-in scene list
func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-14s %s\n", info.ID, info.Description)
	}
}

// createScene builds the configured scene with the configured image size
func createScene(cfg config.Config) (*scene.Scene, error) {
	return scene.CreateScene(cfg.Scene, cfg.Seed, cfg.CameraOverrides())
}

// saveFrame encodes the frame to filename, creating parent directories
func saveFrame(filename string, frame *renderer.Frame, format encoder.Format) (err error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("closing output file: %w", closeErr)
		}
	}()

	return encoder.Encode(file, frame, format)
}
