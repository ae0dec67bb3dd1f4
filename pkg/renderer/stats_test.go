package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestAverageLuminance(t *testing.T) {
	// Red, green, blue and black: (0.2126 + 0.7152 + 0.0722 + 0.0) / 4 = 0.25
	grid := core.NewGrid(2, 2)
	grid.Set(0, 0, core.NewColor(1, 0, 0))
	grid.Set(1, 0, core.NewColor(0, 1, 0))
	grid.Set(0, 1, core.NewColor(0, 0, 1))

	avgLum := AverageLuminance(grid)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestAverageLuminance_ClampsOverbright(t *testing.T) {
	grid := core.NewGrid(1, 1)
	grid.Set(0, 0, core.NewColor(3, 3, 3))

	if got := AverageLuminance(grid); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Expected luminance 1.0, got %f", got)
	}
	if got := AverageLuminance(core.NewGrid(0, 0)); got != 0 {
		t.Errorf("Expected 0 for empty grid, got %f", got)
	}
}

func TestPixelStats(t *testing.T) {
	var ps PixelStats
	if ps.GetColor() != core.Black {
		t.Errorf("Expected black for empty pixel, got %v", ps.GetColor())
	}

	ps.AddSample(core.NewColor(1, 0, 0.5))
	ps.AddSample(core.NewColor(0, 1, 0.5))

	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}
	if got := ps.GetColor(); got != core.NewColor(0.5, 0.5, 0.5) {
		t.Errorf("Expected average (0.5,0.5,0.5), got %v", got)
	}
}

func TestRenderStats_Merge(t *testing.T) {
	var total RenderStats
	total.Merge(RenderStats{TotalPixels: 4, TotalSamples: 16, Tiles: 1})
	total.Merge(RenderStats{TotalPixels: 2, TotalSamples: 8, Tiles: 1})

	if total.TotalPixels != 6 || total.TotalSamples != 24 || total.Tiles != 2 {
		t.Errorf("Unexpected totals: %+v", total)
	}
	if total.AverageSamples != 4 {
		t.Errorf("Expected 4 samples per pixel, got %f", total.AverageSamples)
	}
}
