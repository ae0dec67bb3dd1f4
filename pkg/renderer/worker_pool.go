package renderer

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int
}

// TileResult contains the pixels and stats of one finished tile
type TileResult struct {
	TaskID int
	Pixels []PixelResult
	Stats  RenderStats
}

// WorkerPool runs tile tasks on a bounded number of goroutines
type WorkerPool struct {
	renderer   *TileRenderer
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(renderer *TileRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		renderer:   renderer,
		numWorkers: numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every task and sends each result on results, in completion
// order. A panic inside a tile is returned as an error; tasks that have not
// started yet are then skipped. Run does not close results.
func (wp *WorkerPool) Run(tasks []TileTask, results chan<- TileResult) error {
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(wp.numWorkers)

	for _, task := range tasks {
		task := task // per-iteration copy; go directive is pre-1.22
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			result, err := wp.renderTask(task)
			if err != nil {
				return err
			}
			results <- result
			return nil
		})
	}

	return g.Wait()
}

// renderTask renders one tile, converting a precondition panic into an error
func (wp *WorkerPool) renderTask(task TileTask) (result TileResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("tile %d: %w", task.TaskID, rerr)
			} else {
				err = fmt.Errorf("tile %d: %v", task.TaskID, r)
			}
		}
	}()

	pixels, stats := wp.renderer.RenderTileBounds(task.Tile.Bounds)
	return TileResult{
		TaskID: task.TaskID,
		Pixels: pixels,
		Stats:  stats,
	}, nil
}
