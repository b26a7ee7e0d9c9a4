package scene

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// NewMaterialsScene creates a ground sphere with a diffuse, a hollow glass
// and a fuzzy metal sphere side by side
func NewMaterialsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  10.0,
		FocusDistance: 3.4,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})

	ground := material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewDiffuse(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewRefractive(1.50)
	bubble := material.NewRefractive(1.00 / 1.50)
	gold := material.NewReflective(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.mustAdd(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble), // air pocket inside the glass
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return s
}
