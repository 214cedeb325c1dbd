// Package background supplies the color seen by rays that escape the scene.
package background

import (
	"math"

	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/loaders"
)

// Background returns the color for a ray that hit nothing
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// Flat is a single background color
type Flat struct {
	Value core.Vec3
}

// NewFlat creates a flat background
func NewFlat(color core.Vec3) Flat {
	return Flat{Value: color}
}

// Color returns the flat color regardless of the ray
func (f Flat) Color(core.Ray) core.Vec3 {
	return f.Value
}

// Gradient blends from Bottom to Top with the ray's vertical direction
type Gradient struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradient creates a vertical gradient background
func NewGradient(top, bottom core.Vec3) Gradient {
	return Gradient{Top: top, Bottom: bottom}
}

// Color maps the unit direction's Y from [-1,1] to a blend factor in [0,1]
func (g Gradient) Color(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}

// Environment is an equirectangular panorama looked up by direction only.
// The ray origin is ignored, so it behaves as an infinitely distant skybox.
type Environment struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major
}

// NewEnvironment wraps loaded image data
func NewEnvironment(img *loaders.ImageData) *Environment {
	return &Environment{
		Width:  img.Width,
		Height: img.Height,
		Pixels: img.Pixels,
	}
}

// Color samples the nearest pixel for the ray direction
func (e *Environment) Color(ray core.Ray) core.Vec3 {
	return e.Lookup(ray.Direction.Normalize())
}

// Lookup maps a unit direction to (u, v) with
// u = 0.5 + atan2(x, z)/2π and v = 0.5 - asin(y)/π, then floors into the image.
// Indices on the far edges are clamped to the last row and column.
func (e *Environment) Lookup(dir core.Vec3) core.Vec3 {
	if e.Width <= 0 || e.Height <= 0 || len(e.Pixels) < e.Width*e.Height {
		return core.Vec3{}
	}

	y := max(-1, min(1, dir.Y))
	u := 0.5 + math.Atan2(dir.X, dir.Z)/(2*math.Pi)
	v := 0.5 - math.Asin(y)/math.Pi

	i := clampIndex(int(math.Floor(u*float64(e.Width))), e.Width)
	j := clampIndex(int(math.Floor(v*float64(e.Height))), e.Height)

	return e.Pixels[j*e.Width+i]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
