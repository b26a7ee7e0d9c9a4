package renderer

import (
	"image"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Frame holds linear radiance values in raster order: row 0 is the top of
// the image and x grows to the right
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Bounds returns the frame rectangle
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// At returns the color at pixel (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color at pixel (x, y)
func (f *Frame) Set(x, y int, color core.Vec3) {
	f.Pixels[y*f.Width+x] = color
}

// copyTile writes a tile's row-major pixels into the frame at its bounds
func (f *Frame) copyTile(bounds image.Rectangle, pixels []core.Vec3) {
	tileWidth := bounds.Dx()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := pixels[(y-bounds.Min.Y)*tileWidth : (y-bounds.Min.Y+1)*tileWidth]
		copy(f.Pixels[y*f.Width+bounds.Min.X:], row)
	}
}

// AverageLuminance returns the mean luminance over all pixels, skipping NaN
// pixels
func (f *Frame) AverageLuminance() float64 {
	total := 0.0
	count := 0
	for _, p := range f.Pixels {
		if p.IsNaN() {
			continue
		}
		total += p.Luminance()
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
