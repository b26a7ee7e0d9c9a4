package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/encoder"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything needed to run one render. Zero values of the
// image and sampling fields mean "use the scene's recommendation".
type Config struct {
	Scene           string  `json:"scene"`
	Width           int     `json:"width,omitempty"`
	AspectRatio     float64 `json:"aspectRatio,omitempty"`
	SamplesPerPixel int     `json:"samplesPerPixel,omitempty"`
	MaxDepth        int     `json:"maxDepth,omitempty"`
	TileSize        int     `json:"tileSize"`
	Workers         int     `json:"workers"` // 0 = one per CPU
	Seed            int64   `json:"seed"`
	Output          string  `json:"output,omitempty"` // empty = output/<scene>/render_<timestamp>.<format>
	Format          string  `json:"format,omitempty"` // empty = from the output extension, else png
	DebugDepth      bool    `json:"debugDepth,omitempty"`
}

// Default returns the configuration used when no file or flags are given
func Default() Config {
	return Config{
		Scene:    "default",
		TileSize: 32,
		Workers:  0,
		Seed:     42,
	}
}

// Load reads a JSON file on top of the defaults and validates the result.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem with the configuration at once
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if !scene.IsBuiltIn(c.Scene) {
		invalid("scene: %v: %q", scene.ErrUnknownScene, c.Scene)
	}
	if c.Width < 0 {
		invalid("width must not be negative, got %d", c.Width)
	}
	if c.AspectRatio < 0 {
		invalid("aspectRatio must not be negative, got %g", c.AspectRatio)
	}
	if c.SamplesPerPixel < 0 {
		invalid("samplesPerPixel must not be negative, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		invalid("maxDepth must not be negative, got %d", c.MaxDepth)
	}
	if c.TileSize <= 0 {
		invalid("tileSize must be positive, got %d", c.TileSize)
	}
	if c.Workers < 0 {
		invalid("workers must not be negative, got %d", c.Workers)
	}
	if _, err := c.OutputFormat(); err != nil {
		invalid("format: %v", err)
	}

	return errors.Join(errs...)
}

// CameraOverrides returns the image size settings to merge into the scene camera
func (c Config) CameraOverrides() geometry.CameraConfig {
	return geometry.CameraConfig{
		Width:       c.Width,
		AspectRatio: c.AspectRatio,
	}
}

// Sampling returns the scene's recommended sampling with any configured
// values taking precedence
func (c Config) Sampling(recommended scene.SamplingConfig) scene.SamplingConfig {
	result := recommended
	if c.SamplesPerPixel > 0 {
		result.SamplesPerPixel = c.SamplesPerPixel
	}
	if c.MaxDepth > 0 {
		result.MaxDepth = c.MaxDepth
	}
	return result
}

// OutputFormat resolves the image format. An explicit format wins, but it
// must agree with the extension of an explicit output file. Without one the
// output extension decides, and files without an extension are written as png.
func (c Config) OutputFormat() (encoder.Format, error) {
	var fromPath encoder.Format
	if ext := filepath.Ext(c.Output); ext != "" {
		format, err := encoder.FormatFromPath(c.Output)
		if err != nil && c.Format == "" {
			return "", fmt.Errorf("output %s: %w", c.Output, err)
		}
		fromPath = format
	}

	if c.Format == "" {
		if fromPath != "" {
			return fromPath, nil
		}
		return encoder.FormatPNG, nil
	}

	format, err := encoder.ParseFormat(c.Format)
	if err != nil {
		return "", err
	}
	if fromPath != "" && fromPath != format {
		return "", fmt.Errorf("format %s conflicts with output %s", format, c.Output)
	}
	return format, nil
}

// OutputPath returns the configured output file, or a timestamped file under
// output/<scene>/ when none is set
func (c Config) OutputPath(now time.Time) string {
	if c.Output != "" {
		return c.Output
	}
	extension := string(encoder.FormatPNG)
	if format, err := c.OutputFormat(); err == nil {
		extension = string(format)
	}
	filename := fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), extension)
	return filepath.Join("output", c.Scene, filename)
}
