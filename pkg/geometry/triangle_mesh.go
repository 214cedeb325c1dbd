package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/material"
)

const (
	// parallelEpsilon rejects rays lying (nearly) in a triangle's plane
	parallelEpsilon = 1e-5
	// minHitDistance rejects hits at or just in front of the ray origin
	minHitDistance = 1e-5
	// degenerateTolerance marks triangles whose vertices are collinear
	degenerateTolerance = 1e-12
	// baryEpsilon is the slack allowed when summing barycentric areas
	baryEpsilon = 1e-6
)

// Face holds the vertex indices of one triangle
type Face [3]int

// TriangleMesh is a list of vertices and triangles sharing one material.
// Intersection is a linear scan over every face.
type TriangleMesh struct {
	Vertices []core.Vec3
	Faces    []Face
	Material material.Material

	normals    []core.Vec3 // Cached unit face normals
	areas      []float64   // Cached doubled face areas
	degenerate []bool      // Faces skipped by Normal
}

// NewTriangleMesh creates a new mesh. It panics if a face references a
// vertex that does not exist.
func NewTriangleMesh(vertices []core.Vec3, faces []Face, mat material.Material) *TriangleMesh {
	mesh := &TriangleMesh{
		Vertices:   vertices,
		Faces:      faces,
		Material:   mat,
		normals:    make([]core.Vec3, len(faces)),
		areas:      make([]float64, len(faces)),
		degenerate: make([]bool, len(faces)),
	}

	for i, face := range faces {
		for _, idx := range face {
			if idx < 0 || idx >= len(vertices) {
				panic(fmt.Sprintf("face %d: vertex index %d out of bounds", i, idx))
			}
		}
		tri := mesh.triangle(i)
		if tri.IsDegenerate(degenerateTolerance) {
			mesh.degenerate[i] = true
			continue
		}
		mesh.normals[i] = core.FromR3(r3.Unit(tri.Normal()))
		mesh.areas[i] = r3.Norm(r3.Cross(r3.Sub(tri[1], tri[0]), r3.Sub(tri[2], tri[0])))
	}

	return mesh
}

func (m *TriangleMesh) triangle(i int) r3.Triangle {
	f := m.Faces[i]
	return r3.Triangle{m.Vertices[f[0]].R3(), m.Vertices[f[1]].R3(), m.Vertices[f[2]].R3()}
}

// Intersect runs Möller-Trumbore against every face and keeps the nearest hit
func (m *TriangleMesh) Intersect(ray core.Ray) (float64, bool) {
	nearest := math.Inf(1)
	found := false

	for _, face := range m.Faces {
		if t, ok := intersectTriangle(ray, m.Vertices[face[0]], m.Vertices[face[1]], m.Vertices[face[2]]); ok {
			if !found || t < nearest {
				nearest = t
			}
			found = true
		}
	}

	return nearest, found
}

func intersectTriangle(ray core.Ray, v0, v1, v2 core.Vec3) (float64, bool) {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -parallelEpsilon && a < parallelEpsilon {
		return 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	if t > minHitDistance {
		return t, true
	}
	return 0, false
}

// Normal finds the first face containing point by comparing the areas of the
// three sub-triangles against the face area. When rounding leaves the point
// outside every face, the face with the smallest excess wins.
func (m *TriangleMesh) Normal(point core.Vec3) core.Vec3 {
	var best core.Vec3
	bestExcess := math.Inf(1)

	for i, face := range m.Faces {
		if m.degenerate[i] {
			continue
		}
		v0, v1, v2 := m.Vertices[face[0]], m.Vertices[face[1]], m.Vertices[face[2]]
		area := m.areas[i]

		a := v1.Subtract(point).Cross(v2.Subtract(point)).Length() / area
		b := v2.Subtract(point).Cross(v0.Subtract(point)).Length() / area
		c := v0.Subtract(point).Cross(v1.Subtract(point)).Length() / area

		excess := a + b + c - 1
		if excess <= baryEpsilon {
			return m.normals[i]
		}
		if excess < bestExcess {
			best, bestExcess = m.normals[i], excess
		}
	}

	return best
}

// GetMaterial returns the mesh material
func (m *TriangleMesh) GetMaterial() material.Material {
	return m.Material
}

// TriangleCount returns the number of faces in the mesh
func (m *TriangleMesh) TriangleCount() int {
	return len(m.Faces)
}
