package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/phong-raytracer/pkg/background"
	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/geometry"
	"github.com/df07/phong-raytracer/pkg/material"
)

func newTestScene(shapes ...geometry.Shape) *Scene {
	return &Scene{
		Name:       "test",
		Shapes:     shapes,
		Background: background.NewFlat(core.NewVec3(0.7, 0.9, 0.7)),
	}
}

func TestScene_IntersectNearest(t *testing.T) {
	near := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.Red())
	far := geometry.NewSphere(core.NewVec3(0, 0, -20), 1, material.Blue())

	// Order in the shape list must not matter
	for _, s := range []*Scene{newTestScene(near, far), newTestScene(far, near)} {
		hit, ok := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
		if !ok {
			t.Fatal("Expected hit")
		}
		if math.Abs(hit.Distance-4) > 1e-9 {
			t.Errorf("Expected distance 4, got %f", hit.Distance)
		}
		if hit.Material != material.Red() {
			t.Errorf("Expected nearest sphere's material, got %+v", hit.Material)
		}
		if math.Abs(hit.Normal.Z-1) > 1e-9 {
			t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
		}
	}
}

func TestScene_IntersectMaxDistance(t *testing.T) {
	tests := []struct {
		name   string
		center float64
		hit    bool
	}{
		{"inside extent", -900, true},
		{"exactly at extent", -1001, false},
		{"beyond extent", -1500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(geometry.NewSphere(core.NewVec3(0, 0, tt.center), 1, material.Gray()))
			_, ok := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
			if ok != tt.hit {
				t.Errorf("Expected hit=%v, got %v", tt.hit, ok)
			}
		})
	}
}

func TestScene_IntersectMisses(t *testing.T) {
	s := NewClassicScene()

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"pointing away", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))},
		{"zero direction", core.NewRay(core.Vec3{}, core.Vec3{})},
		{"nan direction", core.NewRay(core.Vec3{}, core.NewVec3(math.NaN(), 0, -1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := s.Intersect(tt.ray); ok {
				t.Errorf("Expected miss, got hit at %f", hit.Distance)
			}
		})
	}
}

func TestScene_BackgroundColor(t *testing.T) {
	s := NewClassicScene()
	got := s.BackgroundColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)))
	if got != core.NewVec3(0.7, 0.9, 0.7) {
		t.Errorf("Expected classic background, got %v", got)
	}

	empty := &Scene{}
	if got := empty.BackgroundColor(core.Ray{}); got != (core.Vec3{}) {
		t.Errorf("Expected black without background, got %v", got)
	}
}

func TestClassicScene(t *testing.T) {
	s := NewClassicScene()

	if len(s.Shapes) != 6 {
		t.Errorf("Expected 6 shapes, got %d", len(s.Shapes))
	}
	if len(s.GetLights()) != 2 {
		t.Errorf("Expected 2 lights, got %d", len(s.GetLights()))
	}

	view, ok := s.View("view1")
	if !ok {
		t.Fatal("Expected view1")
	}
	vp := view.Camera.Viewport()
	if vp.Width != 1024 || vp.Height != 768 || vp.FOV != 1.0 {
		t.Errorf("Unexpected viewport %+v", vp)
	}

	// The center ray misses the small red sphere and hits the blue one
	hit, ok := s.Intersect(view.Camera.GetRay(384, 512))
	if !ok {
		t.Fatal("Expected center pixel to hit")
	}
	if hit.Material != material.Blue() {
		t.Errorf("Expected blue sphere at center, got %+v", hit.Material)
	}
}

func TestShowcaseScene_MeshHitsHaveUnitNormals(t *testing.T) {
	s, err := NewShowcaseScene(DefaultOptions())
	if err != nil {
		t.Fatalf("NewShowcaseScene failed: %v", err)
	}

	meshes := 0
	for _, shape := range s.Shapes {
		mesh, ok := shape.(*geometry.TriangleMesh)
		if !ok {
			continue
		}
		meshes++
		alone := newTestScene(mesh)

		for i, face := range mesh.Faces {
			v0, v1, v2 := mesh.Vertices[face[0]], mesh.Vertices[face[1]], mesh.Vertices[face[2]]
			centroid := v0.Add(v1).Add(v2).Multiply(1.0 / 3)
			n := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()

			// Aim back at the face from well outside the mesh on the side n points to
			hit, ok := alone.Intersect(core.NewRay(centroid.Add(n.Multiply(50)), n.Multiply(-1)))
			if !ok {
				t.Fatalf("Face %d: expected a hit", i)
			}
			if l := hit.Normal.Length(); math.Abs(l-1) > 1e-9 {
				t.Errorf("Face %d: expected unit hit normal, got length %v", i, l)
			}
			if l := mesh.Normal(centroid).Length(); math.Abs(l-1) > 1e-9 {
				t.Errorf("Face %d: expected unit face normal, got length %v", i, l)
			}
		}
	}
	if meshes != 2 {
		t.Errorf("Expected 2 meshes in the showcase scene, got %d", meshes)
	}
}

func TestShowcaseScene(t *testing.T) {
	s, err := NewShowcaseScene(DefaultOptions())
	if err != nil {
		t.Fatalf("NewShowcaseScene failed: %v", err)
	}

	if len(s.Shapes) != 8 {
		t.Errorf("Expected 8 shapes, got %d", len(s.Shapes))
	}
	// 6 analytic shapes + 4 tetrahedron faces + 8 octahedron faces
	if got := s.GetPrimitiveCount(); got != 18 {
		t.Errorf("Expected 18 primitives, got %d", got)
	}

	want := []string{"view1", "view2", "view3", "view4", "view5"}
	if got := strings.Join(s.ViewNames(), ","); got != strings.Join(want, ",") {
		t.Errorf("Expected views %v, got %v", want, s.ViewNames())
	}

	view4, _ := s.View("view4")
	if vp := view4.Camera.Viewport(); vp.Width != 500 || vp.Height != 1000 {
		t.Errorf("Expected 500x1000 portrait view, got %+v", vp)
	}

	if _, ok := s.Background.(background.Gradient); !ok {
		t.Errorf("Expected gradient fallback without environment, got %T", s.Background)
	}
}

func TestShowcaseScene_MissingEnvironment(t *testing.T) {
	opts := DefaultOptions()
	opts.EnvironmentPath = filepath.Join(t.TempDir(), "missing.ppm")

	if _, err := NewShowcaseScene(opts); err == nil {
		t.Error("Expected error for missing environment file")
	}
}

func TestShowcaseScene_ModelDir(t *testing.T) {
	dir := t.TempDir()
	// A single triangle replaces the built-in tetrahedron
	obj := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if err := os.WriteFile(filepath.Join(dir, "tetrahedron.obj"), []byte(obj), 0644); err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions()
	opts.ModelDir = dir
	s, err := NewShowcaseScene(opts)
	if err != nil {
		t.Fatalf("NewShowcaseScene failed: %v", err)
	}

	// 6 analytic shapes + 1 loaded triangle + 8 built-in octahedron faces
	if got := s.GetPrimitiveCount(); got != 15 {
		t.Errorf("Expected 15 primitives, got %d", got)
	}
}

func TestShowcaseScene_BadModel(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "octahedron.obj"), []byte("v 0 0 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions()
	opts.ModelDir = dir
	if _, err := NewShowcaseScene(opts); err == nil {
		t.Error("Expected error for mesh without faces")
	}
}

func TestBuiltinMeshes(t *testing.T) {
	tests := []struct {
		name  string
		mesh  *geometry.TriangleMesh
		faces int
	}{
		{"tetrahedron", NewTetrahedron(1, core.Vec3{}, material.Red()), 4},
		{"octahedron", NewOctahedron(1, core.Vec3{}, material.Green()), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mesh.TriangleCount() != tt.faces {
				t.Errorf("Expected %d faces, got %d", tt.faces, tt.mesh.TriangleCount())
			}

			// Outward winding: a ray from outside toward the center hits a face
			// whose normal faces back toward the ray origin.
			origin := core.NewVec3(0.3, 0.2, 5)
			ray := core.NewRay(origin, origin.Negate().Normalize())
			dist, ok := tt.mesh.Intersect(ray)
			if !ok {
				t.Fatal("Expected ray toward center to hit")
			}
			n := tt.mesh.Normal(ray.At(dist))
			if n.Dot(ray.Direction) >= 0 {
				t.Errorf("Expected outward normal, got %v for direction %v", n, ray.Direction)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if got := strings.Join(Names(), ","); got != "classic,showcase" {
		t.Errorf("Unexpected scene names %q", got)
	}

	for _, name := range Names() {
		s, err := Lookup(name, DefaultOptions())
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
			continue
		}
		if s.Name != name {
			t.Errorf("Expected scene name %q, got %q", name, s.Name)
		}
	}

	if _, err := Lookup("nope", DefaultOptions()); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
