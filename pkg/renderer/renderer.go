package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for a render
type RenderConfig struct {
	Pattern      SamplePattern // Supersampling offsets per pixel
	MaxDepth     int           // Maximum trace depth; 1 means no reflections
	Bias         float64       // Offset along the normal for reflected rays
	TileSize     int           // Size of each square tile in pixels
	NumWorkers   int           // Number of parallel workers (0 = use CPU count)
	DebugNormals bool          // Shade primary hits by surface normal
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Pattern:    SampleFour,
		MaxDepth:   3,
		Bias:       1e-4,
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// MergeRenderConfig overlays the non-zero fields of override onto base
func MergeRenderConfig(base, override RenderConfig) RenderConfig {
	result := base
	if override.Pattern != 0 {
		result.Pattern = override.Pattern
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Bias != 0 {
		result.Bias = override.Bias
	}
	if override.TileSize != 0 {
		result.TileSize = override.TileSize
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.DebugNormals {
		result.DebugNormals = true
	}
	return result
}

// Renderer evaluates every pixel of a scene in parallel and assembles the
// color grid
type Renderer struct {
	scene  *scene.Scene
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a new renderer. The scene must not be modified while
// Render is running.
func NewRenderer(s *scene.Scene, config RenderConfig, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// Render traces the whole image. Any tile failure aborts the render and no
// grid is returned.
func (r *Renderer) Render() (*core.Grid, RenderStats, error) {
	if !r.config.Pattern.Valid() {
		return nil, RenderStats{}, fmt.Errorf("%w: %v", ErrInvalidPattern, r.config.Pattern)
	}

	config := r.config
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}

	width, height := r.scene.Width, r.scene.Height
	tiles := NewTileGrid(width, height, config.TileSize)
	tileRenderer := NewTileRenderer(r.scene, NewRaytracer(r.scene, config), config)
	pool := NewWorkerPool(tileRenderer, config.NumWorkers)

	r.logger.Printf("Rendering %dx%d, %d spheres, %d lights, pattern %v, depth %d (%d tiles, %d workers)...\n",
		width, height, len(r.scene.Spheres), len(r.scene.Lights), config.Pattern, config.MaxDepth,
		len(tiles), pool.GetNumWorkers())

	tasks := make([]TileTask, len(tiles))
	for i, tile := range tiles {
		tasks[i] = TileTask{Tile: tile, TaskID: i}
	}

	startTime := time.Now()

	// Buffered for every tile so workers never block on the collector
	results := make(chan TileResult, len(tasks))
	errCh := make(chan error, 1)
	go func() {
		errCh <- pool.Run(tasks, results)
		close(results)
	}()

	// Single consumer: pixels are placed by coordinate, in any order
	grid := core.NewGrid(width, height)
	stats := RenderStats{Workers: pool.GetNumWorkers()}
	for result := range results {
		for _, p := range result.Pixels {
			grid.Set(p.X, p.Y, p.Color)
		}
		stats.Merge(result.Stats)
	}
	stats.Duration = time.Since(startTime)

	if err := <-errCh; err != nil {
		r.logger.Printf("Render aborted after %v: %v\n", stats.Duration, err)
		return nil, stats, fmt.Errorf("render aborted: %w", err)
	}

	r.logger.Printf("Render completed in %v (%d rays, %.1f samples/pixel)\n",
		stats.Duration, stats.TotalSamples, stats.AverageSamples)

	return grid, stats, nil
}
