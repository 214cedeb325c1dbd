package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/geometry"
	"github.com/df07/phong-raytracer/pkg/loaders"
	"github.com/df07/phong-raytracer/pkg/material"
)

// Unit polyhedra centered on the origin with outward winding

var tetrahedronVertices = []core.Vec3{
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1},
}

var tetrahedronFaces = []geometry.Face{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2},
}

var octahedronVertices = []core.Vec3{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

var octahedronFaces = []geometry.Face{
	{0, 2, 4}, {1, 4, 2}, {0, 4, 3}, {1, 3, 4},
	{0, 5, 2}, {1, 2, 5}, {0, 3, 5}, {1, 5, 3},
}

// NewTetrahedron builds the tetrahedron scaled by scale around center
func NewTetrahedron(scale float64, center core.Vec3, mat material.Material) *geometry.TriangleMesh {
	return newPlacedMesh(tetrahedronVertices, tetrahedronFaces, scale, center, mat)
}

// NewOctahedron builds the octahedron scaled by scale around center
func NewOctahedron(scale float64, center core.Vec3, mat material.Material) *geometry.TriangleMesh {
	return newPlacedMesh(octahedronVertices, octahedronFaces, scale, center, mat)
}

func newPlacedMesh(vertices []core.Vec3, faces []geometry.Face, scale float64, center core.Vec3, mat material.Material) *geometry.TriangleMesh {
	placed := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		placed[i] = v.Multiply(scale).Add(center)
	}
	return geometry.NewTriangleMesh(placed, faces, mat)
}

// loadMesh reads <dir>/<name>.obj when dir is set, falling back to the
// built-in shape when the file does not exist.
func loadMesh(dir, name string, scale float64, center core.Vec3, mat material.Material,
	builtin func(float64, core.Vec3, material.Material) *geometry.TriangleMesh) (*geometry.TriangleMesh, error) {
	if dir == "" {
		return builtin(scale, center, mat), nil
	}

	path := filepath.Join(dir, name+".obj")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return builtin(scale, center, mat), nil
	}

	data, err := loaders.LoadOBJFile(path, scale, center)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s mesh: %w", name, err)
	}

	faces := make([]geometry.Face, len(data.Faces))
	for i, f := range data.Faces {
		faces[i] = geometry.Face(f)
	}
	return geometry.NewTriangleMesh(data.Vertices, faces, mat), nil
}
