package encoder

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// ErrUnknownFormat is returned for output formats other than ppm and png
var ErrUnknownFormat = errors.New("unknown image format")

// Format names an output image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// intensity maps gamma corrected values into [0, 0.999] so that scaling by
// 256 never overflows a byte
var intensity = core.NewInterval(0.000, 0.999)

// ParseFormat accepts a format name in any case
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(name, "."))); f {
	case FormatPPM, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath derives the format from a file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Encode writes the frame in the given format
func Encode(w io.Writer, frame *renderer.Frame, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, frame)
	case FormatPNG:
		return WritePNG(w, frame)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// toByte scales a gamma corrected channel to 0..255. NaN maps to 0.
func toByte(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	return uint8(256 * intensity.Clamp(c))
}

// ToRGBA converts a linear color to an opaque 8-bit color using gamma 2
func ToRGBA(linear core.Vec3) color.RGBA {
	c := linear.GammaCorrect(2.0)
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}
