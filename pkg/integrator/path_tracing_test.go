package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// mockWorld returns the same hit record for every ray. With facing set the
// normal is turned to oppose the incoming ray.
type mockWorld struct {
	hit    *material.HitRecord
	facing bool
}

func (m mockWorld) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if m.hit == nil {
		return nil, false
	}
	h := *m.hit
	if m.facing {
		h.Normal = ray.Direction.Normalize().Negate()
	}
	return &h, true
}

func (m mockWorld) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))
}

func newSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance && math.Abs(a.Y-b.Y) <= tolerance && math.Abs(a.Z-b.Z) <= tolerance
}

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDiffuse(core.NewVec3(0.7, 0.3, 0.3)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name     string
		maxDepth int
		debug    bool
		expected core.Vec3
	}{
		{"zero depth is black", 0, false, core.Vec3{}},
		{"negative depth is black", -3, false, core.Vec3{}},
		{"zero depth in debug mode is magenta", 0, true, core.NewVec3(1, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.MaxDepth = tt.maxDepth
			config.DebugDepthExhaustion = tt.debug
			integrator := NewPathTracingIntegrator(config)

			color := integrator.RayColor(ray, sphere, newSampler(42))
			if color != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}

	// With depth available the sphere reflects some sky
	integrator := NewPathTracingIntegrator(DefaultConfig())
	if color := integrator.RayColor(ray, sphere, newSampler(42)); color == (core.Vec3{}) {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestPathTracingBackgroundGradient(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultConfig())
	empty := mockWorld{}
	origin := core.NewVec3(0, 0, 0)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
		{"unnormalized up", core.NewVec3(0, 10, 0), core.NewVec3(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := integrator.RayColor(core.NewRay(origin, tt.direction), empty, newSampler(1))
			if !vecNear(color, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracingAbsorption(t *testing.T) {
	// A mirror whose normal faces along the incoming ray reflects below the surface
	world := mockWorld{hit: &material.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1,
		FrontFace: true,
		Material:  material.NewReflective(core.NewVec3(1, 1, 1), 0),
	}}
	integrator := NewPathTracingIntegrator(DefaultConfig())

	ray := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))
	if color := integrator.RayColor(ray, world, newSampler(3)); color != (core.Vec3{}) {
		t.Errorf("Expected absorbed path to be black, got %v", color)
	}
}

func TestPathTracingDepthExhaustedInsideMirror(t *testing.T) {
	// Every bounce hits another mirror, so the path always runs out of depth
	world := mockWorld{facing: true, hit: &material.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		T:         1,
		FrontFace: true,
		Material:  material.NewReflective(core.NewVec3(0.9, 0.9, 0.9), 0),
	}}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	config := DefaultConfig()
	config.MaxDepth = 4
	if color := NewPathTracingIntegrator(config).RayColor(ray, world, newSampler(1)); color != (core.Vec3{}) {
		t.Errorf("Expected black when depth is exhausted, got %v", color)
	}

	config.DebugDepthExhaustion = true
	expected := core.NewVec3(1, 0, 1).Multiply(math.Pow(0.9, 4))
	if color := NewPathTracingIntegrator(config).RayColor(ray, world, newSampler(1)); !vecNear(color, expected, 1e-12) {
		t.Errorf("Expected attenuated magenta %v, got %v", expected, color)
	}
}

func TestPathTracingDiffuseUnderUniformSky(t *testing.T) {
	// Under a uniform white sky a convex diffuse shape returns its albedo exactly:
	// one bounce, then the scattered ray escapes
	albedo := core.NewVec3(0.8, 0.4, 0.2)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, material.NewDiffuse(albedo))

	config := DefaultConfig()
	config.BackgroundTop = core.NewVec3(1, 1, 1)
	config.BackgroundBottom = core.NewVec3(1, 1, 1)
	integrator := NewPathTracingIntegrator(config)
	sampler := newSampler(11)

	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	for i := 0; i < 500; i++ {
		if color := integrator.RayColor(ray, sphere, sampler); !vecNear(color, albedo, 1e-12) {
			t.Fatalf("Expected %v, got %v", albedo, color)
		}
	}
}

func TestPathTracingDiffuseConvergence(t *testing.T) {
	// Cosine-weighted directions above the top of the sphere have E[y] = 2/3,
	// so the gradient averages to bottom/6 + 5*top/6
	albedo := core.NewVec3(0.5, 0.5, 0.5)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, material.NewDiffuse(albedo))
	integrator := NewPathTracingIntegrator(DefaultConfig())
	sampler := newSampler(5)

	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	const samples = 20000
	sum := core.Vec3{}
	for i := 0; i < samples; i++ {
		sum = sum.Add(integrator.RayColor(ray, sphere, sampler))
	}
	mean := sum.Multiply(1.0 / samples)

	sky := core.NewVec3(1, 1, 1).Multiply(1.0 / 6).Add(core.NewVec3(0.5, 0.7, 1.0).Multiply(5.0 / 6))
	expected := albedo.MultiplyVec(sky)
	if !vecNear(mean, expected, 0.01) {
		t.Errorf("Expected mean radiance %v, got %v", expected, mean)
	}
}

func TestPathTracingGlassIsLossless(t *testing.T) {
	// Refraction and reflection both have white attenuation
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewRefractive(1.5))
	config := DefaultConfig()
	config.BackgroundTop = core.NewVec3(1, 1, 1)
	config.BackgroundBottom = core.NewVec3(1, 1, 1)
	integrator := NewPathTracingIntegrator(config)
	sampler := newSampler(9)

	for i := 0; i < 200; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(sampler.Get1D()*0.4-0.2, sampler.Get1D()*0.4-0.2, -1))
		if color := integrator.RayColor(ray, sphere, sampler); !vecNear(color, core.NewVec3(1, 1, 1), 1e-12) {
			t.Fatalf("Expected white through glass, got %v", color)
		}
	}
}

func TestPathTracingDeterminism(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))
	integrator := NewPathTracingIntegrator(DefaultConfig())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	a := integrator.RayColor(ray, sphere, newSampler(77))
	b := integrator.RayColor(ray, sphere, newSampler(77))
	if a != b {
		t.Errorf("Same seed should give the same radiance, got %v and %v", a, b)
	}
}

func TestPathTracingConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxDepth = 7
	config.DebugDepthExhaustion = true

	if got := NewPathTracingIntegrator(config).Config(); got != config {
		t.Errorf("Expected config %+v, got %+v", config, got)
	}
}
