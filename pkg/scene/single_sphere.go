package scene

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// NewSingleSphereScene creates one diffuse sphere of radius 0.5 at (0,0,-1)
// seen by a pinhole camera at the origin
func NewSingleSphereScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})

	s.mustAdd(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))))

	return s
}
