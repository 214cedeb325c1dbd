package renderer

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"

	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/geometry"
	"github.com/df07/phong-raytracer/pkg/integrator"
	"github.com/df07/phong-raytracer/pkg/loaders"
	"github.com/df07/phong-raytracer/pkg/scene"
)

// silentLogger discards render progress output in tests
type silentLogger struct{}

func (silentLogger) Printf(string, ...interface{}) {}

func smallClassicView() (*scene.Scene, scene.View) {
	sc := scene.NewClassicScene()
	view, _ := sc.View("view1")
	view.Camera = view.Camera.WithViewport(geometry.NewViewport(48, 36, scene.ClassicFOV))
	return sc, view
}

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 64, 64, 32, 4},
		{"partial tiles", 100, 50, 32, 8},
		{"single tile", 10, 10, 64, 1},
		{"zero size uses one tile", 30, 20, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			// Every pixel is covered exactly once
			covered := make([]int, tt.width*tt.height)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
				}
				if !tile.Bounds.In(image.Rect(0, 0, tt.width, tt.height)) {
					t.Errorf("Tile %d bounds %v exceed image", i, tile.Bounds)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[y*tt.width+x]++
					}
				}
			}
			for i, n := range covered {
				if n != 1 {
					t.Fatalf("Pixel %d covered %d times", i, n)
				}
			}
		})
	}
}

func TestFramebuffer_ToRGBA(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 0, core.NewVec3(0.5, 1.2, -0.3))
	fb.Set(0, 1, core.NewVec3(0.999, 0.0039, 1))
	fb.Set(1, 0, core.NewVec3(0.7, 0.9, 0.7))

	img := fb.ToRGBA()

	tests := []struct {
		x, y    int
		r, g, b uint8
	}{
		{0, 0, 127, 255, 0},
		{1, 0, 254, 0, 255},
		{0, 1, 178, 229, 178},
		{1, 1, 0, 0, 0},
	}

	for _, tt := range tests {
		c := img.RGBAAt(tt.x, tt.y)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 255 {
			t.Errorf("Pixel (%d,%d): expected (%d,%d,%d,255), got %v", tt.x, tt.y, tt.r, tt.g, tt.b, c)
		}
	}
}

func TestRaytracer_MatchesSerialTrace(t *testing.T) {
	sc, view := smallClassicView()

	fb, stats, err := NewRaytracer(sc, Config{TileSize: 7, NumWorkers: 3}, silentLogger{}).Render(context.Background(), view)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.TotalPixels != 48*36 {
		t.Errorf("Expected %d pixels, got %d", 48*36, stats.TotalPixels)
	}
	if stats.Workers != 3 {
		t.Errorf("Expected 3 workers, got %d", stats.Workers)
	}

	phong := integrator.NewPhongIntegrator(sc)
	for row := 0; row < 36; row++ {
		for col := 0; col < 48; col++ {
			expected := phong.RayColor(view.Camera.GetRay(row, col), 0)
			if got := fb.At(row, col); got != expected {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", row, col, expected, got)
			}
		}
	}
}

func TestRaytracer_DeterministicAcrossWorkers(t *testing.T) {
	sc, view := smallClassicView()

	configs := []Config{
		{TileSize: 64, NumWorkers: 1},
		{TileSize: 5, NumWorkers: 4},
		DefaultConfig(),
	}

	var reference []byte
	for _, config := range configs {
		fb, _, err := NewRaytracer(sc, config, silentLogger{}).Render(context.Background(), view)
		if err != nil {
			t.Fatalf("Render with %+v failed: %v", config, err)
		}

		var buf bytes.Buffer
		if err := loaders.WritePPM(&buf, fb.ToRGBA()); err != nil {
			t.Fatalf("WritePPM failed: %v", err)
		}

		if reference == nil {
			reference = buf.Bytes()
			continue
		}
		if !bytes.Equal(reference, buf.Bytes()) {
			t.Errorf("Render with %+v differs from single-worker render", config)
		}
	}
}

func TestRaytracer_FullSizeClassicDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size render in short mode")
	}

	sc := scene.NewClassicScene()
	view, ok := sc.View("view1")
	if !ok {
		t.Fatal("classic scene has no view1")
	}

	render := func(config Config) []byte {
		fb, stats, err := NewRaytracer(sc, config, silentLogger{}).Render(context.Background(), view)
		if err != nil {
			t.Fatalf("Render with %+v failed: %v", config, err)
		}
		if stats.TotalPixels != 1024*768 {
			t.Fatalf("Expected %d pixels, got %d", 1024*768, stats.TotalPixels)
		}
		var buf bytes.Buffer
		if err := loaders.WritePPM(&buf, fb.ToRGBA()); err != nil {
			t.Fatalf("WritePPM failed: %v", err)
		}
		return buf.Bytes()
	}

	serial := render(Config{TileSize: 64, NumWorkers: 1})
	parallel := render(DefaultConfig())
	if !bytes.Equal(serial, parallel) {
		t.Error("Full-size parallel render differs from single-worker render")
	}
}

func TestRaytracer_Cancelled(t *testing.T) {
	sc, view := smallClassicView()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewRaytracer(sc, DefaultConfig(), silentLogger{}).Render(ctx, view)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRaytracer_InvalidViewport(t *testing.T) {
	sc, view := smallClassicView()
	view.Camera = view.Camera.WithViewport(geometry.NewViewport(0, 10, 1))

	if _, _, err := NewRaytracer(sc, DefaultConfig(), silentLogger{}).Render(context.Background(), view); err == nil {
		t.Error("Expected error for empty viewport")
	}
}
