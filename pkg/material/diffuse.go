package material

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// scatterDiffuse bounces the ray towards normal + a random unit vector, which
// yields a cosine-weighted direction around the normal.
func (m Material) scatterDiffuse(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.SampleUnitVector(sampler))

	// The random vector can nearly cancel the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRayWithTime(hit.Point, scatterDirection, rayIn.Time),
		Attenuation: m.albedo,
	}, true
}
