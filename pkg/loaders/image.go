package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/df07/phong-raytracer/pkg/core"
)

// ImageData contains loaded image data as a row-major Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG or JPEG image and converts it to a Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// LoadEnvironmentImage picks the decoder from the file contents: binary PPM
// (P6) goes through LoadPPM with the declared size, anything else through
// LoadImage. A zero declared width or height accepts the size in the file;
// a nonzero one must match it on either path.
func LoadEnvironmentImage(filename string, width, height int) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	magic := make([]byte, 2)
	_, err = file.Read(magic)
	file.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	if string(magic) == "P6" {
		return LoadPPMFile(filename, width, height)
	}
	img, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	if (width != 0 && img.Width != width) || (height != 0 && img.Height != height) {
		return nil, fmt.Errorf("%s: %w: image %dx%d, declared %dx%d",
			filename, ErrDimensionMismatch, img.Width, img.Height, width, height)
	}
	return img, nil
}
