package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BandResult contains the result from rendering a band
type BandResult struct {
	BandID int
	Stats  RenderStats
}

// WorkerPool renders bands in parallel on a bounded number of goroutines
type WorkerPool struct {
	renderer   *BandRenderer
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(renderer *BandRenderer, numWorkers int) *WorkerPool {
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

// Run renders every band into canvas and returns the results of the bands
// that finished, in band order. Once ctx is done no further band starts;
// bands already running finish and the context error is returned.
func (wp *WorkerPool) Run(ctx context.Context, bands []Band, canvas *Canvas) ([]BandResult, error) {
	results := make([]BandResult, len(bands))

	g := new(errgroup.Group)
	g.SetLimit(wp.numWorkers)

	for i, band := range bands {
		if ctx.Err() != nil {
			break
		}
		// Each band has its own rows and its own results slot, so workers never share writes
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = BandResult{
				BandID: band.ID,
				Stats:  wp.renderer.RenderBounds(band.Bounds, canvas),
			}
			return nil
		})
	}

	// Workers only fail with the context's error, which is reported below
	_ = g.Wait()

	finished := results[:0]
	for _, r := range results {
		if r.Stats.Tasks > 0 {
			finished = append(finished, r)
		}
	}
	if len(finished) < len(bands) {
		return finished, ctx.Err()
	}
	return finished, nil
}
