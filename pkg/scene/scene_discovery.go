package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name passed to CreateScene
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"`
}

type builder func(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene

type registration struct {
	info  SceneInfo
	build builder
}

var builtInScenes = map[string]registration{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Bouncing Spheres",
			Description: "Ground, glass, diffuse and metal spheres with 500 small moving spheres",
		},
		build: NewDefaultScene,
	},
	"single-sphere": {
		info: SceneInfo{
			ID:          "single-sphere",
			DisplayName: "Single Sphere",
			Description: "One diffuse sphere in front of a pinhole camera",
		},
		build: func(_ int64, overrides ...geometry.CameraConfig) *Scene {
			return NewSingleSphereScene(overrides...)
		},
	},
	"materials": {
		info: SceneInfo{
			ID:          "materials",
			DisplayName: "Materials",
			Description: "Diffuse, hollow glass and fuzzy metal spheres on a ground sphere",
		},
		build: func(_ int64, overrides ...geometry.CameraConfig) *Scene {
			return NewMaterialsScene(overrides...)
		},
	},
	"sphere-grid": {
		info: SceneInfo{
			ID:          "sphere-grid",
			DisplayName: "Sphere Grid",
			Description: "10x10 grid of colored spheres cycling through every material",
		},
		build: func(_ int64, overrides ...geometry.CameraConfig) *Scene {
			return NewSphereGridScene(overrides...)
		},
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, reg := range builtInScenes {
		scenes = append(scenes, reg.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// IsBuiltIn reports whether name is a registered scene
func IsBuiltIn(name string) bool {
	_, ok := builtInScenes[name]
	return ok
}

// CreateScene builds the named scene. Randomized scenes use seed; the camera
// overrides replace any non-zero camera fields.
func CreateScene(name string, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	reg, ok := builtInScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return reg.build(seed, cameraOverrides...), nil
}
