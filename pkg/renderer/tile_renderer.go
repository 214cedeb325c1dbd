package renderer

import (
	"image"

	"github.com/df07/phong-raytracer/pkg/geometry"
	"github.com/df07/phong-raytracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator.
// It holds no mutable state, so workers can share one instance.
type TileRenderer struct {
	camera     geometry.Camera
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given camera and integrator
func NewTileRenderer(camera geometry.Camera, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
	}
}

// RenderTileBounds traces one primary ray per pixel within bounds into fb and
// returns the number of pixels written
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, fb *Framebuffer) int {
	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			ray := tr.camera.GetRay(row, col)
			fb.Set(row, col, tr.integrator.RayColor(ray, 0))
		}
	}
	return bounds.Dx() * bounds.Dy()
}
