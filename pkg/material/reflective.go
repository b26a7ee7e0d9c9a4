package material

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// scatterReflective mirrors the ray about the normal and perturbs it by fuzz
func (m Material) scatterReflective(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction, hit.Normal).Normalize()

	if m.fuzz > 0 {
		reflected = reflected.Add(core.SampleUnitVector(sampler).Multiply(m.fuzz))
	}

	scattered := core.NewRayWithTime(hit.Point, reflected, rayIn.Time)

	// Fuzz can push the ray below the surface; treat that as absorbed
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.albedo,
	}, scatters
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
