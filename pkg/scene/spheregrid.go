package scene

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b
	lc, mc, sc = lc*lc*lc, mc*mc*mc, sc*sc*sc

	// LMS to linear RGB
	rgb := core.NewVec3(
		+4.0767416621*lc-3.3077115913*mc+0.2309699292*sc,
		-1.2684380046*lc+2.6097574011*mc-0.3413193965*sc,
		-0.0041960863*lc-0.7034186147*mc+1.7076147010*sc,
	)
	return rgb.Clamp(0, 1)
}

// NewSphereGridScene creates a grid of spheres on a ground sphere. Hue varies
// along X; the material cycles diffuse, reflective, refractive along Z with
// reflective fuzz growing toward the back.
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(4.5, 6, 18),
		LookAt:      core.NewVec3(4.5, 0.8, 4.5),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        40,
	})

	s.mustAdd(geometry.NewSphere(core.NewVec3(4.5, -1000, 4.5), 1000, material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))))

	gridSize := 10
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	radius := spacing * 0.35

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, radius, z)

			hue := float64(i) / float64(gridSize-1) * 360.0
			lightness := 0.65 + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, 0.15, hue)

			var mat material.Material
			switch j % 3 {
			case 0:
				mat = material.NewDiffuse(color)
			case 1:
				mat = material.NewReflective(color, float64(j)/float64(gridSize-1)*0.5)
			default:
				mat = material.NewRefractive(1.3 + 0.05*float64(i))
			}

			s.mustAdd(geometry.NewSphere(position, radius, mat))
		}
	}

	return s
}
