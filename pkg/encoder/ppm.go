package encoder

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// WritePPM writes the frame as an ASCII (P3) PPM: a header followed by one
// "r g b" line per pixel, rows top to bottom
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for _, pixel := range frame.Pixels {
		c := ToRGBA(pixel)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
			return fmt.Errorf("writing ppm pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing ppm: %w", err)
	}
	return nil
}
