package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// minUnitLengthSquared rejects candidates so short that normalizing them underflows
const minUnitLengthSquared = 1e-160

// SampleUnitVector returns a uniformly distributed direction on the unit sphere.
// Points are drawn from the [-1,1]³ cube and rejected unless they fall inside
// the unit ball, then projected onto its surface.
func SampleUnitVector(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		lenSq := p.LengthSquared()
		if minUnitLengthSquared < lenSq && lenSq <= 1.0 {
			return p.Multiply(1.0 / math.Sqrt(lenSq))
		}
	}
}

// SampleInUnitDisk returns a uniformly distributed point in the unit disk on the XY plane
func SampleInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// SampleSquare returns an offset in the [-0.5,0.5]² square, used for pixel jitter
func SampleSquare(sampler Sampler) Vec2 {
	s := sampler.Get2D()
	return NewVec2(s.X-0.5, s.Y-0.5)
}
