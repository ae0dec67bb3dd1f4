package renderer

import (
	"image"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// MockTracer returns a fixed color and records every call
type MockTracer struct {
	color  core.Color
	calls  int
	depths []int
}

func (mt *MockTracer) Trace(direction, origin core.Vec3, depth int) core.Color {
	mt.calls++
	mt.depths = append(mt.depths, depth)
	return mt.color
}

// createTestScene creates a small frame-only scene for tile tests
func createTestScene() *scene.Scene {
	return &scene.Scene{
		Frame:  scene.NewCenteredFrame(core.NewVec3(0, 0, 0), 2.0, 2.0),
		Camera: core.NewVec3(0, 0, -1),
		Width:  8,
		Height: 6,
	}
}

func TestRenderPixel_SamplesPerPattern(t *testing.T) {
	tests := []struct {
		pattern  SamplePattern
		expected int
	}{
		{SampleSingle, 1},
		{SampleFour, 4},
		{SampleSix, 6},
		{SampleNine, 9},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			tracer := &MockTracer{color: core.NewColor(0.2, 0.4, 0.6)}
			config := DefaultRenderConfig()
			config.Pattern = tt.pattern
			tr := NewTileRenderer(createTestScene(), tracer, config)

			color, samples := tr.RenderPixel(3, 2)
			if samples != tt.expected || tracer.calls != tt.expected {
				t.Errorf("Expected %d samples, got %d (tracer called %d times)", tt.expected, samples, tracer.calls)
			}
			if !colorsClose(color, core.NewColor(0.2, 0.4, 0.6), 1e-12) {
				t.Errorf("Expected averaged color (0.2,0.4,0.6), got %v", color)
			}
			for _, depth := range tracer.depths {
				if depth != config.MaxDepth {
					t.Errorf("Expected primary rays at depth %d, got %d", config.MaxDepth, depth)
				}
			}
		})
	}
}

func TestRenderPixel_Clamps(t *testing.T) {
	tracer := &MockTracer{color: core.NewColor(1.7, -0.2, 0.5)}
	tr := NewTileRenderer(createTestScene(), tracer, DefaultRenderConfig())

	color, _ := tr.RenderPixel(0, 0)
	expected := core.NewColor(1, 0, 0.5)
	if !colorsClose(color, expected, 1e-12) {
		t.Errorf("Expected clamped color %v, got %v", expected, color)
	}
}

func TestRenderTileBounds(t *testing.T) {
	tracer := &MockTracer{color: core.NewColor(0.5, 0.5, 0.5)}
	config := DefaultRenderConfig()
	config.Pattern = SampleSingle
	tr := NewTileRenderer(createTestScene(), tracer, config)

	bounds := image.Rect(2, 1, 5, 3)
	pixels, stats := tr.RenderTileBounds(bounds)

	if len(pixels) != 6 {
		t.Fatalf("Expected 6 pixels, got %d", len(pixels))
	}
	if stats.TotalPixels != 6 || stats.TotalSamples != 6 || stats.Tiles != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.AverageSamples != 1 {
		t.Errorf("Expected 1 sample per pixel, got %f", stats.AverageSamples)
	}

	seen := make(map[image.Point]bool)
	for _, p := range pixels {
		pt := image.Pt(p.X, p.Y)
		if !pt.In(bounds) {
			t.Errorf("Pixel %v outside bounds %v", pt, bounds)
		}
		if seen[pt] {
			t.Errorf("Pixel %v rendered twice", pt)
		}
		seen[pt] = true
	}
}

func TestRenderTileBounds_Empty(t *testing.T) {
	tracer := &MockTracer{}
	tr := NewTileRenderer(createTestScene(), tracer, DefaultRenderConfig())

	pixels, stats := tr.RenderTileBounds(image.Rect(3, 3, 3, 3))
	if len(pixels) != 0 || tracer.calls != 0 {
		t.Errorf("Expected no work for empty bounds, got %d pixels and %d calls", len(pixels), tracer.calls)
	}
	if stats.AverageSamples != 0 {
		t.Errorf("Expected zero average samples, got %f", stats.AverageSamples)
	}
}
