package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	MaxDepth    int // Reflection/refraction bounces per camera ray
	NumWorkers  int // Number of parallel workers (0 = use CPU count)
	RowsPerTask int // Rows rendered by one worker task
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:    scene.DefaultMaxDepth,
		NumWorkers:  0, // Auto-detect CPU count
		RowsPerTask: 8,
	}
}

// Validate checks the configuration for values that cannot render
func (c RenderConfig) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", c.NumWorkers)
	}
	if c.RowsPerTask <= 0 {
		return fmt.Errorf("rows per task must be positive, got %d", c.RowsPerTask)
	}
	return nil
}

// Raytracer renders a world through a camera into a canvas
type Raytracer struct {
	world  *scene.World
	camera *Camera
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a raytracer. The world must not change while it renders.
func NewRaytracer(world *scene.World, camera *Camera, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if world == nil {
		return nil, fmt.Errorf("raytracer needs a world")
	}
	if camera == nil {
		return nil, fmt.Errorf("raytracer needs a camera")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	if err := world.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		world:  world,
		camera: camera,
		config: config,
		logger: logger,
	}, nil
}

// Render colors every pixel on the calling goroutine, row then column.
// ctx is checked before each row; on cancellation the partially filled
// canvas is returned with the context's error.
func (rt *Raytracer) Render(ctx context.Context) (*Canvas, RenderStats, error) {
	start := time.Now()
	canvas := NewCanvas(rt.camera.HSize, rt.camera.VSize)
	br := NewBandRenderer(rt.world, rt.camera, rt.config.MaxDepth)
	stats := RenderStats{Workers: 1}

	rt.logger.Printf("Rendering %dx%d sequentially...\n", canvas.Width, canvas.Height)

	for y := 0; y < canvas.Height; y++ {
		if err := ctx.Err(); err != nil {
			stats.Elapsed = time.Since(start)
			return canvas, stats, err
		}
		stats.merge(br.RenderBounds(image.Rect(0, y, canvas.Width, y+1), canvas))
	}

	stats.Elapsed = time.Since(start)
	rt.logRenderComplete(stats)
	return canvas, stats, nil
}

// RenderParallel renders bands of RowsPerTask rows on NumWorkers goroutines.
// The image is identical to Render's. Cancelling ctx stops new bands from
// starting; the partial canvas is returned with the context's error.
func (rt *Raytracer) RenderParallel(ctx context.Context) (*Canvas, RenderStats, error) {
	start := time.Now()
	canvas := NewCanvas(rt.camera.HSize, rt.camera.VSize)
	bands := NewBandGrid(canvas.Width, canvas.Height, rt.config.RowsPerTask)
	pool := NewWorkerPool(NewBandRenderer(rt.world, rt.camera, rt.config.MaxDepth), rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d in %d bands (using %d workers)...\n",
		canvas.Width, canvas.Height, len(bands), pool.GetNumWorkers())

	results, err := pool.Run(ctx, bands, canvas)

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	for _, r := range results {
		stats.merge(r.Stats)
	}
	stats.Elapsed = time.Since(start)

	if err != nil {
		rt.logger.Printf("Render aborted after %d of %d bands: %v\n", stats.Tasks, len(bands), err)
		return canvas, stats, err
	}
	rt.logRenderComplete(stats)
	return canvas, stats, nil
}

func (rt *Raytracer) logRenderComplete(stats RenderStats) {
	rt.logger.Printf("Render complete: %d pixels in %v (%.0f pixels/s)\n",
		stats.Pixels, stats.Elapsed, stats.PixelsPerSecond())
}

// Render is a convenience for rendering sequentially with the default
// configuration and no log output
func Render(ctx context.Context, camera *Camera, world *scene.World) (*Canvas, error) {
	rt, err := NewRaytracer(world, camera, DefaultRenderConfig(), NewNopLogger())
	if err != nil {
		return nil, err
	}
	canvas, _, err := rt.Render(ctx)
	return canvas, err
}
