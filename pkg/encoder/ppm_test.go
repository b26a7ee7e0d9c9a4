package encoder

import (
	"bytes"
	"errors"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

func TestWritePPM(t *testing.T) {
	frame := renderer.NewFrame(2, 2)
	frame.Set(0, 0, core.NewVec3(1, 0, 0))
	frame.Set(1, 0, core.NewVec3(0, 1, 0))
	frame.Set(0, 1, core.NewVec3(0, 0, 1))
	frame.Set(1, 1, core.NewVec3(0.25, 2, -1))

	var buf bytes.Buffer
	if err := WritePPM(&buf, frame); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "P3\n2 2\n255\n" +
		"255 0 0\n" +
		"0 255 0\n" +
		"0 0 255\n" +
		"128 255 0\n"
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

// failingWriter fails every write
type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestWritePPM_PropagatesWriteErrors(t *testing.T) {
	err := WritePPM(failingWriter{}, renderer.NewFrame(1, 1))
	if !errors.Is(err, errWrite) {
		t.Errorf("Expected wrapped write error, got %v", err)
	}
}
