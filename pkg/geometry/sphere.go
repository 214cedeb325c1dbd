package geometry

import (
	"math"

	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the sphere.
//
// A ray whose direction points away from the center is rejected outright,
// even when it starts inside the sphere.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	toCenter := s.Center.Subtract(ray.Origin)
	along := toCenter.Dot(ray.Direction)
	if along < 0 {
		return 0, false
	}

	dirLength := ray.Direction.Length()
	if dirLength == 0 {
		return 0, false
	}

	// Closest approach of the ray to the center
	closest := ray.Origin.Add(ray.Direction.Multiply(along / dirLength))
	offsetSq := closest.Subtract(s.Center).LengthSquared()
	radiusSq := s.Radius * s.Radius
	if offsetSq > radiusSq {
		return 0, false
	}

	halfChord := math.Sqrt(radiusSq - offsetSq)
	toClosest := closest.Subtract(ray.Origin).Length()

	if toCenter.LengthSquared() > radiusSq {
		// Origin outside: near root
		return toClosest - halfChord, true
	}
	// Origin inside: far root
	return toClosest + halfChord, true
}

// Normal returns the outward unit normal at point
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// GetMaterial returns the sphere's material
func (s *Sphere) GetMaterial() material.Material {
	return s.Material
}
