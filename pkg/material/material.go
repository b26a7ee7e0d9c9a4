package material

import (
	"fmt"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Kind identifies one of the scattering behaviors a Material can have
type Kind uint8

const (
	kindInvalid Kind = iota
	Diffuse          // Lambertian scattering around the normal
	Reflective       // Mirror reflection with optional fuzz
	Refractive       // Clear dielectric that reflects or refracts
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case Diffuse:
		return "diffuse"
	case Reflective:
		return "reflective"
	case Refractive:
		return "refractive"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Material is a closed set of surface behaviors. Values are immutable and
// cheap to copy; build them with NewDiffuse, NewReflective or NewRefractive.
// The zero value is not a valid material.
type Material struct {
	kind            Kind
	albedo          core.Vec3
	fuzz            float64
	refractionIndex float64
}

// NewDiffuse creates a perfectly diffuse material
func NewDiffuse(albedo core.Vec3) Material {
	return Material{kind: Diffuse, albedo: albedo}
}

// NewReflective creates a metallic material. fuzz is clamped to [0, 1]:
// 0 is a perfect mirror, 1 is very fuzzy.
func NewReflective(albedo core.Vec3, fuzz float64) Material {
	return Material{kind: Reflective, albedo: albedo, fuzz: core.NewInterval(0, 1).Clamp(fuzz)}
}

// NewRefractive creates a clear dielectric (e.g. 1.5 for glass)
func NewRefractive(refractionIndex float64) Material {
	return Material{kind: Refractive, refractionIndex: refractionIndex}
}

// Kind returns which scattering behavior the material has
func (m Material) Kind() Kind { return m.kind }

// Albedo returns the attenuation color of diffuse and reflective materials
func (m Material) Albedo() core.Vec3 { return m.albedo }

// Fuzz returns the clamped fuzz factor of a reflective material
func (m Material) Fuzz() float64 { return m.fuzz }

// RefractionIndex returns the index of refraction of a refractive material
func (m Material) RefractionIndex() float64 { return m.refractionIndex }

// IsValid reports whether the material was built by one of the constructors
func (m Material) IsValid() bool {
	switch m.kind {
	case Diffuse, Reflective, Refractive:
		return true
	default:
		return false
	}
}

// Scatter computes how rayIn leaves the surface described by hit. It returns
// false when the path is absorbed. Scattering on an invalid material panics.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.kind {
	case Diffuse:
		return m.scatterDiffuse(rayIn, hit, sampler)
	case Reflective:
		return m.scatterReflective(rayIn, hit, sampler)
	case Refractive:
		return m.scatterRefractive(rayIn, hit, sampler)
	default:
		panic(fmt.Sprintf("material: scatter on %v", m.kind))
	}
}

// String describes the material for logs and test failures
func (m Material) String() string {
	switch m.kind {
	case Diffuse:
		return fmt.Sprintf("diffuse(albedo=%v)", m.albedo)
	case Reflective:
		return fmt.Sprintf("reflective(albedo=%v, fuzz=%g)", m.albedo, m.fuzz)
	case Refractive:
		return fmt.Sprintf("refractive(ior=%g)", m.refractionIndex)
	default:
		return m.kind.String()
	}
}
