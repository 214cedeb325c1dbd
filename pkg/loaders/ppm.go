package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/phong-raytracer/pkg/core"
)

// maxPPMPixels bounds the pixel buffer allocated from an untrusted header
const maxPPMPixels = 1 << 26

var (
	// ErrUnsupportedHeader is returned for anything but an 8-bit binary P6 header
	ErrUnsupportedHeader = errors.New("unsupported image header")
	// ErrDimensionMismatch is returned when the pixel data disagrees with the declared size
	ErrDimensionMismatch = errors.New("image dimensions do not match declared width/height")
)

// LoadPPM reads a binary P6 pixel map. The header is three lines: magic,
// "<width> <height>", and maxval, which must be 255. Pixels follow as raw
// row-major RGB bytes.
//
// width and height are the dimensions the caller expects; zero accepts
// whatever the header declares.
func LoadPPM(r io.Reader, width, height int) (*ImageData, error) {
	br := bufio.NewReader(r)

	lines := make([]string, 0, 3)
	for len(lines) < 3 {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("%w: truncated header: %v", ErrUnsupportedHeader, err)
		}
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	if lines[0] != "P6" {
		return nil, fmt.Errorf("%w: magic %q", ErrUnsupportedHeader, lines[0])
	}

	dims := strings.Fields(lines[1])
	if len(dims) != 2 {
		return nil, fmt.Errorf("%w: size line %q", ErrUnsupportedHeader, lines[1])
	}
	headerWidth, errW := strconv.Atoi(dims[0])
	headerHeight, errH := strconv.Atoi(dims[1])
	if errW != nil || errH != nil || headerWidth <= 0 || headerHeight <= 0 {
		return nil, fmt.Errorf("%w: size line %q", ErrUnsupportedHeader, lines[1])
	}
	if lines[2] != "255" {
		return nil, fmt.Errorf("%w: maxval %q", ErrUnsupportedHeader, lines[2])
	}

	if width == 0 {
		width = headerWidth
	}
	if height == 0 {
		height = headerHeight
	}
	if headerWidth > maxPPMPixels/headerHeight {
		return nil, fmt.Errorf("%w: size %dx%d exceeds %d pixels",
			ErrUnsupportedHeader, headerWidth, headerHeight, maxPPMPixels)
	}
	if width != headerWidth || height != headerHeight {
		return nil, fmt.Errorf("%w: header %dx%d, declared %dx%d",
			ErrDimensionMismatch, headerWidth, headerHeight, width, height)
	}

	raw := make([]byte, width*height*3)
	n, err := io.ReadFull(br, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: got %d of %d pixel bytes", ErrDimensionMismatch, n, len(raw))
	}

	pixels := make([]core.Vec3, width*height)
	for i := range pixels {
		pixels[i] = core.NewVec3(
			float64(raw[i*3])/255,
			float64(raw[i*3+1])/255,
			float64(raw[i*3+2])/255,
		)
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// LoadPPMFile opens filename and reads it with LoadPPM
func LoadPPMFile(filename string, width, height int) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPM file: %w", err)
	}
	defer file.Close()

	data, err := LoadPPM(file, width, height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// WritePPM writes img as a binary P6 pixel map. Alpha is dropped.
func WritePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}

	row := make([]byte, bounds.Dx()*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			i := (x - bounds.Min.X) * 3
			row[i], row[i+1], row[i+2] = c.R, c.G, c.B
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}
