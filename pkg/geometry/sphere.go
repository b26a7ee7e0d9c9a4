package geometry

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly over the shutter interval
type Sphere struct {
	Center   core.Ray // Direction is the displacement over one unit of time; zero when stationary
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	r := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   core.NewRay(center, core.Vec3{}),
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromPoints(center.Subtract(r), center.Add(r)),
	}
}

// NewMovingSphere creates a sphere whose center travels from center0 at time 0
// to center1 at time 1
func NewMovingSphere(center0, center1 core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	r := core.NewVec3(radius, radius, radius)
	box0 := core.NewAABBFromPoints(center0.Subtract(r), center0.Add(r))
	box1 := core.NewAABBFromPoints(center1.Subtract(r), center1.Add(r))
	return &Sphere{
		Center:   core.NewRay(center0, center1.Subtract(center0)),
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromBoxes(box0, box1),
	}
}

// IsMoving reports whether the sphere changes position over time
func (s *Sphere) IsMoving() bool {
	return s.Center.Direction != core.Vec3{}
}

// CenterAt returns the sphere center at the given time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.At(time)
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	center := s.Center.At(ray.Time)

	// Vector from ray origin to sphere center
	oc := center.Subtract(ray.Origin)

	// Quadratic with b = -2h: at² - 2ht + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	// A degenerate ray or a point sphere has no usable intersection
	if a == 0 || s.Radius == 0 {
		return nil, false
	}

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Find the nearest root that lies in the acceptable range
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Calculate outward normal (from center to hit point)
	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}
