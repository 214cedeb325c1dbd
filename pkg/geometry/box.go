package geometry

import (
	"math"

	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/material"
)

const (
	// faceEpsilon is how close a point must be to a face plane to take its normal
	faceEpsilon = 1e-4
	// minSlabEntry floors the entry distance; it is the smallest normal float32
	minSlabEntry = 1.17549435e-38
)

// Cuboid is an axis-aligned box spanned by two opposite corners.
// The corners need not be ordered; zero thickness along an axis is allowed.
// Faces lying on CornerA get the negative axis normal, faces on CornerB the positive one.
type Cuboid struct {
	CornerA  core.Vec3
	CornerB  core.Vec3
	Material material.Material
}

// NewCuboid creates a new axis-aligned box
func NewCuboid(cornerA, cornerB core.Vec3, mat material.Material) *Cuboid {
	return &Cuboid{
		CornerA:  cornerA,
		CornerB:  cornerB,
		Material: mat,
	}
}

// Intersect uses the slab method across the three axes. A ray parallel to an
// axis misses if its origin is outside that slab; otherwise the axis adds no
// constraint. A ray starting inside the box reports an entry at ~0.
func (b *Cuboid) Intersect(ray core.Ray) (float64, bool) {
	near := minSlabEntry
	far := math.MaxFloat64

	for axis := 0; axis < 3; axis++ {
		lo := math.Min(b.CornerA.Axis(axis), b.CornerB.Axis(axis))
		hi := math.Max(b.CornerA.Axis(axis), b.CornerB.Axis(axis))
		origin := ray.Origin.Axis(axis)
		dir := ray.Direction.Axis(axis)

		if dir == 0 {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		near = math.Max(near, t1)
		far = math.Min(far, t2)
		if near > far || far < 0 {
			return 0, false
		}
	}

	return near, true
}

// Normal returns the normal of the face plane the point lies on, testing the
// X faces first, then Y, then Z. A point on no face gets the nearest face's normal.
func (b *Cuboid) Normal(point core.Vec3) core.Vec3 {
	corners := [2]core.Vec3{b.CornerA, b.CornerB}
	var nearest core.Vec3
	nearestDist := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		for side, corner := range corners {
			n := axisNormal(axis, side == 1)
			dist := math.Abs(point.Axis(axis) - corner.Axis(axis))
			if dist < faceEpsilon {
				return n
			}
			if dist < nearestDist {
				nearest, nearestDist = n, dist
			}
		}
	}

	return nearest
}

// GetMaterial returns the box's material
func (b *Cuboid) GetMaterial() material.Material {
	return b.Material
}

func axisNormal(axis int, positive bool) core.Vec3 {
	sign := -1.0
	if positive {
		sign = 1.0
	}
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}
