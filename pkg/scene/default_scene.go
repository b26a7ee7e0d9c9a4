package scene

import (
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

const (
	bouncingBallCount  = 500
	bouncingBallRadius = 0.15
	bouncingBallSpread = 6.0
	bouncingBallSpeed  = 1.0 / 3.0
)

// NewDefaultScene creates the bouncing spheres scene: a large ground sphere,
// three feature spheres and a field of small moving spheres with random
// materials. The same seed always produces the same scene.
func NewDefaultScene(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         320,
		AspectRatio:   4.0 / 3.0,
		VFov:          20.0,
		DefocusAngle:  0.6,
		FocusDistance: 10.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        100,
	})

	ground := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	glass := material.NewRefractive(1.5)
	brown := material.NewDiffuse(core.NewVec3(0.4, 0.2, 0.1))
	polished := material.NewReflective(core.NewVec3(0.7, 0.6, 0.5), 0.0)

	s.mustAdd(
		geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, brown),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, polished),
	)

	random := rand.New(rand.NewSource(seed))
	for i := 0; i < bouncingBallCount; i++ {
		center := core.NewVec3(
			(random.Float64()-0.5)*2*bouncingBallSpread,
			0.2,
			(random.Float64()-0.5)*2*bouncingBallSpread,
		)
		velocity := core.NewVec3(0, random.Float64()*bouncingBallSpeed, 0)

		s.mustAdd(geometry.NewMovingSphere(center, center.Add(velocity), bouncingBallRadius, randomMaterial(random)))
	}

	return s
}

// randomMaterial picks diffuse, reflective or refractive with roughly equal odds
func randomMaterial(random *rand.Rand) material.Material {
	randomColor := func() core.Vec3 {
		return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
	}

	switch choice := random.Float64(); {
	case choice < 0.33:
		return material.NewDiffuse(randomColor())
	case choice < 0.66:
		albedo := randomColor()
		return material.NewReflective(albedo, random.Float64()/2)
	default:
		return material.NewRefractive(1.0 / (random.Float64() + 0.5))
	}
}
