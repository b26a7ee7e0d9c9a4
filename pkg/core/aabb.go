package core

// AABB represents an axis-aligned bounding box as one interval per axis.
// The zero value is a degenerate box at the origin; use EmptyAABB for a box
// that bounds nothing.
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB returns a box that contains no points
func EmptyAABB() AABB {
	return AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
}

// NewAABB creates an AABB from explicit per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
// The points are treated as extrema, so no particular min/max order is required.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB()
	}

	box := AABB{
		X: NewInterval(points[0].X, points[0].X),
		Y: NewInterval(points[0].Y, points[0].Y),
		Z: NewInterval(points[0].Z, points[0].Z),
	}
	for _, point := range points[1:] {
		box.X = box.X.Union(NewInterval(point.X, point.X))
		box.Y = box.Y.Union(NewInterval(point.Y, point.Y))
		box.Z = box.Z.Union(NewInterval(point.Z, point.Z))
	}
	return box
}

// NewAABBFromBoxes creates the AABB enclosing both boxes
func NewAABBFromBoxes(box0, box1 AABB) AABB {
	return AABB{
		X: NewIntervalFromIntervals(box0.X, box1.X),
		Y: NewIntervalFromIntervals(box0.Y, box1.Y),
		Z: NewIntervalFromIntervals(box0.Z, box1.Z),
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return NewAABBFromBoxes(aabb, other)
}

// AxisInterval returns the interval along axis (0=X, 1=Y, 2=Z)
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// IsEmpty reports whether the box is empty (or has a NaN bound) on any axis
func (aabb AABB) IsEmpty() bool {
	return aabb.X.IsEmpty() || aabb.Y.IsEmpty() || aabb.Z.IsEmpty()
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Hit tests if a ray intersects with this AABB within rayT using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.AxisInterval(axis)
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)

		// A ray parallel to the slab never crosses its planes: it is either
		// inside for every t or outside for every t.
		if direction == 0 {
			if origin < ax.Min || origin > ax.Max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (ax.Min - origin) * invDirection
		t1 := (ax.Max - origin) * invDirection

		// Ensure t0 <= t1 (swap if needed)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}
