package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// PixelResult is one finished pixel, owned by whoever receives it
type PixelResult struct {
	X, Y  int
	Color core.Color
}

// TileRenderer evaluates the pixels of a tile with a tracer
type TileRenderer struct {
	scene  *scene.Scene
	tracer Tracer
	config RenderConfig
}

// NewTileRenderer creates a new tile renderer with the given scene and tracer
func NewTileRenderer(s *scene.Scene, tracer Tracer, config RenderConfig) *TileRenderer {
	return &TileRenderer{
		scene:  s,
		tracer: tracer,
		config: config,
	}
}

// RenderPixel averages one traced ray per pattern offset and clamps the
// result to [0,1]
func (tr *TileRenderer) RenderPixel(x, y int) (core.Color, int) {
	var ps PixelStats
	for _, offset := range tr.config.Pattern.Offsets() {
		ray := PrimaryRay(tr.scene, x, y, offset)
		ps.AddSample(tr.tracer.Trace(ray.Direction, ray.Origin, tr.config.MaxDepth))
	}
	return ps.GetColor().Clamp(0, 1), ps.SampleCount
}

// RenderTileBounds renders every pixel within bounds. It touches no shared
// state; the caller places the returned pixels.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle) ([]PixelResult, RenderStats) {
	pixels := make([]PixelResult, 0, bounds.Dx()*bounds.Dy())
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		Tiles:       1,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			color, samples := tr.RenderPixel(i, j)
			pixels = append(pixels, PixelResult{X: i, Y: j, Color: color})
			stats.TotalSamples += samples
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return pixels, stats
}
