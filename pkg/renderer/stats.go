package renderer

import (
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	AverageSamples   float64       // Average samples per pixel
	SamplesPerPixel  int           // Samples requested per pixel
	Tiles            int           // Number of tiles rendered
	AverageLuminance float64       // Mean linear luminance of the frame
	Duration         time.Duration // Wall time of the render
}

// add merges the counters of a finished tile
func (rs *RenderStats) add(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.Tiles += other.Tiles
}

// finalize computes the derived averages
func (rs *RenderStats) finalize(frame *Frame) {
	if rs.TotalPixels > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
	}
	rs.AverageLuminance = frame.AverageLuminance()
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the average color: the sum of samples scaled by 1/count
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
