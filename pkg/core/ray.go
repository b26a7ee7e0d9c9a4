package core

// Ray represents a ray with an origin, a direction and a shutter time.
// Direction is not required to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64 // Only meaningful for shapes that move
}

// NewRay creates a new ray at time zero
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayWithTime creates a new ray cast at the given shutter time
func NewRayWithTime(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
