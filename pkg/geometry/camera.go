package geometry

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look from)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually 0,1,0)
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height ratio
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Variation angle of rays through each pixel in degrees (0 = pinhole)
	FocusDistance float64   // Distance from camera to the plane of perfect focus (0 = auto-calculate)
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          90.0,
		DefocusAngle:  0.0,
		FocusDistance: 0.0,
	}
}

// Camera generates primary rays for rendering
type Camera struct {
	config       CameraConfig
	height       int
	center       core.Vec3
	pixel00Loc   core.Vec3 // Location of pixel (0,0) center
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	u, v, w      core.Vec3 // Camera frame basis vectors
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera with the given configuration
func NewCamera(config CameraConfig) *Camera {
	if config.Width < 1 {
		config.Width = 1
	}
	if config.AspectRatio <= 0 {
		config.AspectRatio = 1.0
	}

	// Calculate the image height, and ensure that it's at least 1
	height := max(1, int(float64(config.Width)/config.AspectRatio))

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}
	if focusDistance <= 0 {
		focusDistance = 1.0
	}

	// Viewport dimensions on the focus plane
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(height)

	// Orthonormal camera basis
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180.0)

	return &Camera{
		config:       config,
		height:       height,
		center:       config.Center,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.config.Width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Center returns the camera position
func (c *Camera) Center() core.Vec3 { return c.center }

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 { return c.w.Negate() }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// GetRay returns a randomly jittered ray through pixel (i, j), where (0,0) is
// the upper-left pixel. The ray starts on the defocus disk and carries a
// random shutter time in [0, 1).
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler)
	return c.RayThrough(float64(i)+0.5+offset.X, float64(j)+0.5+offset.Y, sampler)
}

// RayThrough returns a ray through continuous film coordinates (px, py),
// measured in pixels from the upper-left corner of the image.
func (c *Camera) RayThrough(px, py float64, sampler core.Sampler) core.Ray {
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(px - 0.5)).
		Add(c.pixelDeltaV.Multiply(py - 0.5))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayWithTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SampleInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.AspectRatio > 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov > 0 {
		result.VFov = override.VFov
	}
	if override.DefocusAngle > 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance > 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}
