package scene

import (
	"fmt"
	"math"

	"github.com/df07/phong-raytracer/pkg/background"
	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/geometry"
	"github.com/df07/phong-raytracer/pkg/loaders"
	"github.com/df07/phong-raytracer/pkg/material"
)

// Declared size of the showcase panorama
const (
	ShowcaseEnvWidth  = 2880
	ShowcaseEnvHeight = 1800
)

// NewShowcaseScene creates the fixture shapes plus two polyhedra, lit by the
// same two lights and surrounded by an environment map, with five views.
//
// Without an environment file the background is a sky gradient.
func NewShowcaseScene(opts Options) (*Scene, error) {
	tetrahedron, err := loadMesh(opts.ModelDir, "tetrahedron", 2, core.NewVec3(2, 5, -15), material.Red(), NewTetrahedron)
	if err != nil {
		return nil, err
	}
	octahedron, err := loadMesh(opts.ModelDir, "octahedron", 5, core.NewVec3(-10, 3, -15), material.Green(), NewOctahedron)
	if err != nil {
		return nil, err
	}

	var bg background.Background = background.NewGradient(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))
	if opts.EnvironmentPath != "" {
		width, height := opts.EnvWidth, opts.EnvHeight
		img, err := loaders.LoadEnvironmentImage(opts.EnvironmentPath, width, height)
		if err != nil {
			return nil, fmt.Errorf("failed to load environment: %w", err)
		}
		bg = background.NewEnvironment(img)
	}

	shapes := append(newFixtureShapes(), tetrahedron, octahedron)

	standard := geometry.NewViewport(1024, 768, math.Pi/2)
	narrow := geometry.NewViewport(1024, 768, 2.1415/2)
	portrait := geometry.NewViewport(500, 1000, math.Pi/2)

	front := geometry.CameraConfig{Position: core.NewVec3(0, 0, 0), Forward: core.NewVec3(0, 0, -1)}
	above := geometry.CameraConfig{Position: core.NewVec3(10, 6, 0), Forward: core.NewVec3(-1, -1, -1)}
	rolled := geometry.CameraConfig{Position: core.NewVec3(0, 0, 0), Forward: core.NewVec3(0, 0, -1), Roll: 30}

	return &Scene{
		Name:       "showcase",
		Shapes:     shapes,
		Lights:     newFixtureLights(),
		Background: bg,
		Views: []View{
			{Name: "view1", Camera: geometry.NewRollCamera(front, standard)},
			{Name: "view2", Camera: geometry.NewRollCamera(above, standard)},
			{Name: "view3", Camera: geometry.NewRollCamera(front, narrow)},
			{Name: "view4", Camera: geometry.NewRollCamera(above, portrait)},
			{Name: "view5", Camera: geometry.NewRollCamera(rolled, standard)},
		},
	}, nil
}
