package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/integrator"
	"github.com/df07/phong-raytracer/pkg/scene"
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

// Config contains configuration for parallel rendering
type Config struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer renders the views of a scene one primary ray per pixel
type Raytracer struct {
	scene      *scene.Scene
	config     Config
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using the Phong integrator
func NewRaytracer(sc *scene.Scene, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:      sc,
		config:     config,
		integrator: integrator.NewPhongIntegrator(sc),
		logger:     logger,
	}
}

// Render traces every pixel of view in parallel tiles.
//
// The result does not depend on the worker count or tile size. If ctx is
// cancelled the remaining tiles are skipped and ctx's error is returned.
func (rt *Raytracer) Render(ctx context.Context, view scene.View) (*Framebuffer, RenderStats, error) {
	vp := view.Camera.Viewport()
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid viewport %dx%d", vp.Width, vp.Height)
	}

	startTime := time.Now()
	fb := NewFramebuffer(vp.Width, vp.Height)
	tiles := NewTileGrid(vp.Width, vp.Height, rt.config.TileSize)

	pool := NewWorkerPool(ctx, NewTileRenderer(view.Camera, rt.integrator), rt.config.NumWorkers, len(tiles))
	pool.Start()
	defer pool.Stop()

	rt.logger.Printf("Rendering %s/%s at %dx%d (%d tiles, %d workers)...\n",
		rt.scene.Name, view.Name, vp.Width, vp.Height, len(tiles), pool.GetNumWorkers())

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Framebuffer: fb})
	}

	stats := RenderStats{
		TotalTiles: len(tiles),
		Workers:    pool.GetNumWorkers(),
	}

	var renderErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil && renderErr == nil {
			renderErr = result.Error
		}
		stats.TotalPixels += result.Pixels
	}

	if renderErr != nil {
		rt.logger.Printf("Rendering %s/%s cancelled\n", rt.scene.Name, view.Name)
		return nil, RenderStats{}, renderErr
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Rendered %s/%s in %v\n", rt.scene.Name, view.Name, stats.Duration)

	return fb, stats, nil
}
