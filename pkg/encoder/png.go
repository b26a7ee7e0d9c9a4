package encoder

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// ToImage converts the frame to an 8-bit RGBA image
func ToImage(frame *renderer.Frame) *image.RGBA {
	img := image.NewRGBA(frame.Bounds())
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			img.SetRGBA(x, y, ToRGBA(frame.At(x, y)))
		}
	}
	return img
}

// WritePNG writes the frame as a PNG
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	if err := png.Encode(w, ToImage(frame)); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}
