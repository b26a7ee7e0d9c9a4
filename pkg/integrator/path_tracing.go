package integrator

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
)

// Config controls the path tracing estimator
type Config struct {
	MaxDepth         int       // Maximum number of ray segments per path
	BackgroundTop    core.Vec3 // Sky color straight up
	BackgroundBottom core.Vec3 // Sky color straight down

	// DebugDepthExhaustion returns magenta instead of black for paths that
	// run out of depth, to visualize where the bounce limit is reached
	DebugDepthExhaustion bool
}

// DefaultConfig returns a white to light blue sky and a depth of 50
func DefaultConfig() Config {
	return Config{
		MaxDepth:         50,
		BackgroundTop:    core.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// hitEpsilon keeps scattered rays from re-hitting the surface they left
const hitEpsilon = 0.001

var depthExhaustedColor = core.NewVec3(1, 0, 1)

// PathTracingIntegrator implements unidirectional path tracing without light
// sampling: the only light source is the background gradient
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// Config returns the integrator configuration
func (pt *PathTracingIntegrator) Config() Config {
	return pt.config
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, sampler, pt.config.MaxDepth)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		if pt.config.DebugDepthExhaustion {
			return depthExhaustedColor
		}
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(hitEpsilon, math.Inf(1)))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.Scattered, world, sampler, depth-1))
}

// backgroundGradient blends between the bottom and top sky colors by the
// height of the normalized ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return pt.config.BackgroundBottom.Lerp(pt.config.BackgroundTop, t)
}
