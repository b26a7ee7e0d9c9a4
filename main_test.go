package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/config"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"single sphere scene", "single-sphere", false},
		{"materials scene", "materials", false},
		{"sphere grid scene", "sphere-grid", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Scene = tt.sceneType
			cfg.Width = 40

			scene, err := createScene(cfg)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.Camera.Width() != 40 {
				t.Errorf("Expected configured width 40, got %d", scene.Camera.Width())
			}
			if scene.SamplingConfig.SamplesPerPixel <= 0 || scene.SamplingConfig.MaxDepth <= 0 {
				t.Errorf("Scene sampling config should be positive, got %+v", scene.SamplingConfig)
			}
		})
	}
}

func TestParseConfig_Flags(t *testing.T) {
	var out bytes.Buffer
	cfg, err := parseConfig([]string{"-scene", "materials", "-width", "64", "-spp", "3", "-workers", "2", "-format", "ppm", "-debug-depth"}, &out)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Scene != "materials" || cfg.Width != 64 || cfg.SamplesPerPixel != 3 || cfg.Workers != 2 || cfg.Format != "ppm" || !cfg.DebugDepth {
		t.Errorf("Flags not applied: %+v", cfg)
	}
	if cfg.TileSize != config.Default().TileSize {
		t.Errorf("Unset flags should keep defaults, got tile size %d", cfg.TileSize)
	}
}

func TestParseConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.json")
	content := `{"scene": "sphere-grid", "width": 100, "seed": 5, "tileSize": 8}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	var out bytes.Buffer
	cfg, err := parseConfig([]string{"-config", path, "-width", "50"}, &out)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Width != 50 {
		t.Errorf("Flag should override file width, got %d", cfg.Width)
	}
	if cfg.Scene != "sphere-grid" || cfg.Seed != 5 || cfg.TileSize != 8 {
		t.Errorf("File values should be kept, got %+v", cfg)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"-scene", "teapot"}},
		{"bad format", []string{"-format", "bmp"}},
		{"negative workers", []string{"-workers", "-1"}},
		{"unknown flag", []string{"-bogus"}},
		{"missing config file", []string{"-config", "does-not-exist.json"}},
		{"format conflicts with output", []string{"-format", "png", "-output", "image.ppm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if _, err := parseConfig(tt.args, &out); err == nil || errors.Is(err, errHelp) {
				t.Errorf("Expected error for %v, got %v", tt.args, err)
			}
		})
	}
}

func TestParseConfig_HelpAndList(t *testing.T) {
	for _, args := range [][]string{{"-help"}, {"-list"}} {
		var out bytes.Buffer
		_, err := parseConfig(args, &out)
		if !errors.Is(err, errHelp) {
			t.Errorf("%v: expected errHelp, got %v", args, err)
		}
		if !strings.Contains(out.String(), "single-sphere") {
			t.Errorf("%v: expected scene list in output, got %q", args, out.String())
		}
	}
}

func TestSaveFrame(t *testing.T) {
	frame := renderer.NewFrame(2, 1)
	filename := filepath.Join(t.TempDir(), "nested", "image.ppm")

	if err := saveFrame(filename, frame, "ppm"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != "P3\n2 1\n255\n0 0 0\n0 0 0\n" {
		t.Errorf("Unexpected file contents %q", string(data))
	}

	if err := saveFrame(filepath.Join(t.TempDir(), "image.tiff"), frame, "tiff"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestRun_SmallRender(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "render.png")
	args := []string{"-scene", "single-sphere", "-width", "16", "-spp", "2", "-depth", "4", "-output", filename}

	var out bytes.Buffer
	if err := run(args, &out); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty PNG")
	}
}

func TestRun_OutputExtensionSelectsFormat(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "image.ppm")
	args := []string{"-scene", "single-sphere", "-width", "8", "-aspect", "2", "-spp", "1", "-depth", "2", "-output", filename}

	var out bytes.Buffer
	if err := run(args, &out); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n8 4\n255\n") {
		t.Errorf("Expected a PPM header, got %q", data[:min(len(data), 16)])
	}
}
