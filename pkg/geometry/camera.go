package geometry

import (
	"math"

	"github.com/df07/phong-raytracer/pkg/core"
)

// Viewport describes the output image and its field of view
type Viewport struct {
	Width  int
	Height int
	FOV    float64 // Field of view in radians
}

// NewViewport creates a new viewport
func NewViewport(width, height int, fov float64) Viewport {
	return Viewport{Width: width, Height: height, FOV: fov}
}

// Camera generates a primary ray for each pixel
type Camera interface {
	GetRay(row, col int) core.Ray
	Viewport() Viewport
	// WithViewport returns the same camera placement rendering into viewport
	WithViewport(viewport Viewport) Camera
}

// PinholeCamera sits at the origin looking down -Z with +Y up
type PinholeCamera struct {
	viewport   Viewport
	tanHalfFov float64
}

// NewPinholeCamera creates a fixed camera for the viewport
func NewPinholeCamera(viewport Viewport) *PinholeCamera {
	return &PinholeCamera{
		viewport:   viewport,
		tanHalfFov: math.Tan(viewport.FOV / 2),
	}
}

// GetRay returns the ray through the center of pixel (row, col)
func (c *PinholeCamera) GetRay(row, col int) core.Ray {
	w := float64(c.viewport.Width)
	h := float64(c.viewport.Height)

	x := (2*(float64(col)+0.5)/w - 1) * c.tanHalfFov * w / h
	y := -(2*(float64(row)+0.5)/h - 1) * c.tanHalfFov

	return core.NewRay(core.Vec3{}, core.NewVec3(x, y, -1).Normalize())
}

// Viewport returns the camera's viewport
func (c *PinholeCamera) Viewport() Viewport {
	return c.viewport
}

func (c *PinholeCamera) WithViewport(viewport Viewport) Camera {
	return NewPinholeCamera(viewport)
}

// CameraConfig places a RollCamera in the world
type CameraConfig struct {
	Position core.Vec3
	Forward  core.Vec3 // Viewing direction, normalized by the camera
	Roll     float64   // Degrees around Forward, right-hand rule
}

// RollCamera is a free camera with a roll angle around its viewing direction.
//
// Its image basis is derived from the world X axis rather than an up vector:
// down = forward × X and right = down × forward. Looking down -Z this gives the
// usual +X right, +Y up image.
type RollCamera struct {
	config   CameraConfig
	viewport Viewport
	forward  core.Vec3
	right    core.Vec3 // Moves one column per unit
	down     core.Vec3 // Moves one row per unit
	roll     float64   // Radians
	focal    float64   // Distance to the image plane in pixels
}

// NewRollCamera creates a camera for the given placement and viewport
func NewRollCamera(config CameraConfig, viewport Viewport) *RollCamera {
	forward := config.Forward.Normalize()

	seed := core.NewVec3(1, 0, 0)
	down := forward.Cross(seed)
	if down.IsZero() {
		// Looking along X: pick Z so that down stays -Y
		seed = core.NewVec3(0, 0, forward.X)
		down = forward.Cross(seed)
	}
	right := down.Cross(forward)

	return &RollCamera{
		config:   config,
		viewport: viewport,
		forward:  forward,
		right:    right.Normalize(),
		down:     down.Normalize(),
		roll:     math.Pi * 2 * config.Roll / 360,
		focal:    (float64(viewport.Width) * 0.5) / math.Tan(viewport.FOV/2),
	}
}

// GetRay returns the ray for pixel (row, col)
func (c *RollCamera) GetRay(row, col int) core.Ray {
	colOffset := float64(col) - float64(c.viewport.Width)*0.5
	rowOffset := float64(row) - float64(c.viewport.Height)*0.5

	dir := c.forward.Multiply(c.focal).
		Add(c.right.Multiply(colOffset)).
		Add(c.down.Multiply(rowOffset)).
		Normalize()
	dir = dir.RotateAround(c.forward, c.roll).Normalize()

	return core.NewRay(c.config.Position, dir)
}

// Viewport returns the camera's viewport
func (c *RollCamera) Viewport() Viewport {
	return c.viewport
}

func (c *RollCamera) WithViewport(viewport Viewport) Camera {
	return NewRollCamera(c.config, viewport)
}

// Forward returns the normalized viewing direction
func (c *RollCamera) Forward() core.Vec3 {
	return c.forward
}

// FocalDistance returns the distance to the image plane in pixel units
func (c *RollCamera) FocalDistance() float64 {
	return c.focal
}
