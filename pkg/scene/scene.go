package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// ErrNoBoundingBox is returned when a shape cannot be bounded
var ErrNoBoundingBox = errors.New("shape has no bounding box")

// Scene contains all the elements needed for rendering: an insertion-ordered
// list of shapes, the box enclosing all of them, and the recommended camera
// and sampling settings. A Scene is read-only while it is being rendered.
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	SamplingConfig SamplingConfig

	shapes []geometry.Shape
	bbox   core.AABB
}

// SamplingConfig contains rendering configuration recommended by a scene
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// NewScene creates an empty scene with the given camera and sampling settings
func NewScene(cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		shapes:         make([]geometry.Shape, 0),
		bbox:           core.EmptyAABB(),
	}
}

// Add appends a shape and grows the scene bounding box to enclose it.
// Shapes whose box is empty or contains NaN are rejected.
func (s *Scene) Add(shape geometry.Shape) error {
	if shape == nil {
		return fmt.Errorf("adding nil shape: %w", ErrNoBoundingBox)
	}

	box := shape.BoundingBox()
	if box.IsEmpty() {
		return fmt.Errorf("adding %T: %w", shape, ErrNoBoundingBox)
	}

	if len(s.shapes) == 0 {
		s.bbox = box
	} else {
		s.bbox = s.bbox.Union(box)
	}
	s.shapes = append(s.shapes, shape)
	return nil
}

// mustAdd adds shapes built by this package, which always have a bounding box
func (s *Scene) mustAdd(shapes ...geometry.Shape) {
	for _, shape := range shapes {
		if err := s.Add(shape); err != nil {
			panic(err)
		}
	}
}

// Hit finds the nearest intersection among all shapes whose t lies strictly
// inside rayT. Every shape is tested; the search upper bound shrinks to the
// closest hit found so far.
func (s *Scene) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if len(s.shapes) == 0 || !s.bbox.Hit(ray, rayT) {
		return nil, false
	}

	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range s.shapes {
		if hit, isHit := shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the box enclosing every shape added so far.
// It is empty for a scene without shapes.
func (s *Scene) BoundingBox() core.AABB {
	if len(s.shapes) == 0 {
		return core.EmptyAABB()
	}
	return s.bbox
}

// Len returns the number of shapes in the scene
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shapes returns the shapes in insertion order
func (s *Scene) Shapes() []geometry.Shape {
	shapes := make([]geometry.Shape, len(s.shapes))
	copy(shapes, s.shapes)
	return shapes
}
