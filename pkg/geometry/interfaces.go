package geometry

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Implementations must be safe for concurrent Hit calls.
type Shape interface {
	// Hit returns the nearest intersection whose t lies strictly inside rayT
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
	// BoundingBox returns a box enclosing the shape over the whole shutter interval
	BoundingBox() core.AABB
}
