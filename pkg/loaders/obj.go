package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/phong-raytracer/pkg/core"
)

// ErrMalformedOBJ is returned for OBJ content the loader cannot interpret
var ErrMalformedOBJ = errors.New("mesh file malformed")

// OBJData contains the vertex and triangle lists read from an OBJ file
type OBJData struct {
	Vertices []core.Vec3
	Faces    [][3]int // Zero-based vertex indices
}

// LoadOBJ reads "v x y z" and "f a b c" statements. Every vertex is scaled by
// scale and then offset by center. Face indices are 1-based (negative indices
// count back from the last vertex), "a/b/c" references use only the vertex
// part, and polygons with more than three corners are fanned into triangles.
// Other statements (vn, vt, o, g, s, usemtl, ...) are ignored.
func LoadOBJ(r io.Reader, scale float64, center core.Vec3) (*OBJData, error) {
	data := &OBJData{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedOBJ, lineNo, err)
			}
			data.Vertices = append(data.Vertices, v.Multiply(scale).Add(center))
		case "f":
			corners, err := parseFace(fields[1:], len(data.Vertices))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedOBJ, lineNo, err)
			}
			for i := 1; i+1 < len(corners); i++ {
				data.Faces = append(data.Faces, [3]int{corners[0], corners[i], corners[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh file unreadable: %w", err)
	}

	if len(data.Faces) == 0 {
		return nil, fmt.Errorf("%w: no faces", ErrMalformedOBJ)
	}

	return data, nil
}

// LoadOBJFile opens filename and reads it with LoadOBJ
func LoadOBJFile(filename string, scale float64, center core.Vec3) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("mesh file unreadable: %w", err)
	}
	defer file.Close()

	data, err := LoadOBJ(file, scale, center)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

func parseVertex(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var xyz [3]float64
	for i := range xyz {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("bad coordinate %q", fields[i])
		}
		xyz[i] = f
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}

func parseFace(fields []string, vertexCount int) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}
	corners := make([]int, len(fields))
	for i, field := range fields {
		ref, _, _ := strings.Cut(field, "/")
		idx, err := strconv.Atoi(ref)
		if err != nil || idx == 0 {
			return nil, fmt.Errorf("bad vertex index %q", field)
		}
		if idx < 0 {
			idx = vertexCount + idx
		} else {
			idx--
		}
		if idx < 0 || idx >= vertexCount {
			return nil, fmt.Errorf("vertex index %s out of range (have %d vertices)", ref, vertexCount)
		}
		corners[i] = idx
	}
	return corners, nil
}
