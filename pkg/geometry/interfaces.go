package geometry

import (
	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
//
// Normal is only meaningful for points returned by a successful Intersect on
// the same shape.
type Shape interface {
	Intersect(ray core.Ray) (float64, bool)
	Normal(point core.Vec3) core.Vec3
	GetMaterial() material.Material
}

// Hit contains information about the nearest ray-object intersection
type Hit struct {
	Distance float64           // Parameter t along the ray
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Surface normal at intersection
	Material material.Material // Material of the shape that was hit
}
