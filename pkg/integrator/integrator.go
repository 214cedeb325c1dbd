package integrator

import (
	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/geometry"
	"github.com/df07/phong-raytracer/pkg/lights"
)

// Scene is the read-only view of a scene an integrator needs
type Scene interface {
	Intersect(ray core.Ray) (geometry.Hit, bool)
	BackgroundColor(ray core.Ray) core.Vec3
	GetLights() []lights.PointLight
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color carried back along ray, where depth counts
	// the bounces already taken (0 for camera rays)
	RayColor(ray core.Ray, depth int) core.Vec3
}
