package scene

import (
	"github.com/df07/phong-raytracer/pkg/background"
	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/geometry"
	"github.com/df07/phong-raytracer/pkg/lights"
	"github.com/df07/phong-raytracer/pkg/material"
)

// ClassicFOV is the pinhole field of view of the classic render, one radian
const ClassicFOV = 1.0

// newFixtureShapes returns the six shapes shared by the built-in scenes:
// a thin black ground slab, a red box, a green cylinder and three spheres.
func newFixtureShapes() []geometry.Shape {
	return []geometry.Shape{
		geometry.NewCuboid(core.NewVec3(-50, -7, -30), core.NewVec3(50, -7.001, -10), material.Black()),
		geometry.NewCuboid(core.NewVec3(-8, -7.002, -16), core.NewVec3(-5, -4, -13), material.Red()),
		geometry.NewCylinder(core.NewVec3(6.5, -7.002, -13), 2, 3, material.Green()),
		geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, material.Blue()),
		geometry.NewSphere(core.NewVec3(7, 5, -18), 4, material.Gray()),
		geometry.NewSphere(core.NewVec3(2, 1.5, -9), 1, material.Red()),
	}
}

func newFixtureLights() []lights.PointLight {
	return []lights.PointLight{
		lights.NewPointLight(core.NewVec3(-20, 50, 20), 1.5),
		lights.NewPointLight(core.NewVec3(20, 30, 20), 1.8),
	}
}

// NewClassicScene creates the six-shape scene on a flat pale green background,
// seen through a fixed pinhole camera at 1024x768.
func NewClassicScene() *Scene {
	return &Scene{
		Name:       "classic",
		Shapes:     newFixtureShapes(),
		Lights:     newFixtureLights(),
		Background: background.NewFlat(core.NewVec3(0.7, 0.9, 0.7)),
		Views: []View{
			{Name: "view1", Camera: geometry.NewPinholeCamera(geometry.NewViewport(1024, 768, ClassicFOV))},
		},
	}
}
