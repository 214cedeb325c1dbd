package renderer

import (
	"image"
	"image/color"

	"github.com/df07/phong-raytracer/pkg/core"
)

// Framebuffer holds linear pixel colors in row-major order
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the color of pixel (row, col)
func (fb *Framebuffer) Set(row, col int, c core.Vec3) {
	fb.Pixels[row*fb.Width+col] = c
}

// At returns the color of pixel (row, col)
func (fb *Framebuffer) At(row, col int) core.Vec3 {
	return fb.Pixels[row*fb.Width+col]
}

// ToRGBA converts the framebuffer to an 8-bit image
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for row := 0; row < fb.Height; row++ {
		for col := 0; col < fb.Width; col++ {
			img.SetRGBA(col, row, vec3ToColor(fb.At(row, col)))
		}
	}
	return img
}

// vec3ToColor clamps each channel to [0,1] and truncates 255*c, with no gamma
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
