package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of primary rays traced
	AverageSamples float64       // Average samples per pixel
	Tiles          int           // Number of tiles rendered
	Workers        int           // Number of parallel workers
	Duration       time.Duration // Wall-clock render time
}

// Merge folds the pixel and sample counts of a tile into the totals
func (s *RenderStats) Merge(tile RenderStats) {
	s.TotalPixels += tile.TotalPixels
	s.TotalSamples += tile.TotalSamples
	s.Tiles += tile.Tiles
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Color // RGB accumulator for final result
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Black
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// AverageLuminance returns the mean Rec. 709 luminance of a grid, computed
// on clamped colors
func AverageLuminance(g *core.Grid) float64 {
	if len(g.Pixels) == 0 {
		return 0
	}

	total := 0.0
	for _, c := range g.Pixels {
		c = c.Clamp(0, 1)
		total += 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
	}
	return total / float64(len(g.Pixels))
}
