package material

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

var white = core.NewVec3(1.0, 1.0, 1.0)

// scatterRefractive reflects or refracts through a clear dielectric. It never absorbs.
func (m Material) scatterRefractive(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Determine if we're entering or exiting the material
	refractionRatio := m.refractionIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / m.refractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()

	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = Reflect(unitDirection, hit.Normal)
	} else {
		direction = Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRayWithTime(hit.Point, direction, rayIn.Time),
		Attenuation: white,
	}, true
}

// Refract bends the unit vector uv through a surface with normal n using
// Snell's law. etaiOverEtat is the ratio of the incident to transmitted index.
func Refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
