package geometry

import (
	"math"

	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/material"
)

// Cylinder represents a finite vertical cylinder (open-ended, no caps).
// It spans Base.Y to Base.Y+Height around the Y axis through Base.
type Cylinder struct {
	Base     core.Vec3
	Radius   float64
	Height   float64
	Material material.Material
}

// NewCylinder creates a new cylinder
func NewCylinder(base core.Vec3, radius, height float64, mat material.Material) *Cylinder {
	return &Cylinder{
		Base:     base,
		Radius:   radius,
		Height:   height,
		Material: mat,
	}
}

// Intersect solves the infinite-cylinder quadratic and returns the first root,
// smaller one first, whose height lies within the cylinder. That root is not
// necessarily the nearest positive one.
func (c *Cylinder) Intersect(ray core.Ray) (float64, bool) {
	if c.Base.Subtract(ray.Origin).Dot(ray.Direction) < 0 {
		return 0, false
	}

	d := ray.Direction
	ox := ray.Origin.X - c.Base.X
	oz := ray.Origin.Z - c.Base.Z

	a := d.X*d.X + d.Z*d.Z
	// Ray is parallel to the axis - without caps it will miss
	const epsilon = 1e-8
	if a < epsilon {
		return 0, false
	}
	b := 2 * (d.X*ox + d.Z*oz)
	cc := ox*ox + oz*oz - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	roots := [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}

	for _, t := range roots {
		y := ray.Origin.Y + t*d.Y
		if y >= c.Base.Y && y <= c.Base.Y+c.Height {
			return t, true
		}
	}

	return 0, false
}

// Normal returns the radial unit normal; it has no vertical component
func (c *Cylinder) Normal(point core.Vec3) core.Vec3 {
	return core.NewVec3(point.X-c.Base.X, 0, point.Z-c.Base.Z).Normalize()
}

// GetMaterial returns the cylinder's material
func (c *Cylinder) GetMaterial() material.Material {
	return c.Material
}
