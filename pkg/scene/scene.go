package scene

import (
	"math"

	"github.com/df07/phong-raytracer/pkg/background"
	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/geometry"
	"github.com/df07/phong-raytracer/pkg/lights"
)

// MaxDistance is the scene extent; nearer hits count, farther ones are misses
const MaxDistance = 1000.0

// View names one camera/viewport combination rendered from a scene
type View struct {
	Name   string
	Camera geometry.Camera
}

// Scene contains all the elements needed for rendering.
// It is read-only once built; any number of renders may share it.
type Scene struct {
	Name       string
	Shapes     []geometry.Shape
	Lights     []lights.PointLight
	Background background.Background
	Views      []View
}

// Intersect returns the nearest hit along ray over every shape.
// Rays with a zero or non-finite direction never hit.
func (s *Scene) Intersect(ray core.Ray) (geometry.Hit, bool) {
	if ray.Direction.IsZero() || !ray.Direction.IsFinite() {
		return geometry.Hit{}, false
	}

	nearest := math.MaxFloat64
	var nearestShape geometry.Shape

	for _, shape := range s.Shapes {
		if dist, ok := shape.Intersect(ray); ok && dist < nearest {
			nearest = dist
			nearestShape = shape
		}
	}

	if nearestShape == nil || nearest >= MaxDistance {
		return geometry.Hit{}, false
	}

	point := ray.At(nearest)
	return geometry.Hit{
		Distance: nearest,
		Point:    point,
		Normal:   nearestShape.Normal(point),
		Material: nearestShape.GetMaterial(),
	}, true
}

// BackgroundColor returns the color seen by a ray that escapes the scene
func (s *Scene) BackgroundColor(ray core.Ray) core.Vec3 {
	if s.Background == nil {
		return core.Vec3{}
	}
	return s.Background.Color(ray)
}

// GetLights returns the scene's point lights
func (s *Scene) GetLights() []lights.PointLight {
	return s.Lights
}

// View returns the view with the given name
func (s *Scene) View(name string) (View, bool) {
	for _, v := range s.Views {
		if v.Name == name {
			return v, true
		}
	}
	return View{}, false
}

// ViewNames returns the view names in render order
func (s *Scene) ViewNames() []string {
	names := make([]string, len(s.Views))
	for i, v := range s.Views {
		names[i] = v.Name
	}
	return names
}

// GetPrimitiveCount returns the number of primitives, counting every mesh triangle
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		if mesh, ok := shape.(*geometry.TriangleMesh); ok {
			count += mesh.TriangleCount()
		} else {
			count++
		}
	}
	return count
}
