package geometry

import (
	"math"
	"testing"

	"github.com/df07/phong-raytracer/pkg/core"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestPinholeCamera_CenterAndCorners(t *testing.T) {
	camera := NewPinholeCamera(NewViewport(4, 2, math.Pi/2))

	// The four central pixels straddle -Z symmetrically
	a := camera.GetRay(0, 1).Direction
	b := camera.GetRay(1, 2).Direction
	if math.Abs(a.X+b.X) > 1e-12 || math.Abs(a.Y+b.Y) > 1e-12 {
		t.Errorf("Expected symmetric rays, got %v and %v", a, b)
	}

	// Top-left pixel looks up and left
	tl := camera.GetRay(0, 0).Direction
	if tl.X >= 0 || tl.Y <= 0 || tl.Z >= 0 {
		t.Errorf("Expected top-left ray to point (-,+,-), got %v", tl)
	}
	if math.Abs(tl.Length()-1) > 1e-12 {
		t.Errorf("Expected unit direction, got length %f", tl.Length())
	}

	if origin := camera.GetRay(1, 3).Origin; !origin.IsZero() {
		t.Errorf("Expected origin at zero, got %v", origin)
	}
}

func TestPinholeCamera_FieldOfView(t *testing.T) {
	width, height := 1000, 10
	camera := NewPinholeCamera(NewViewport(width, height, math.Pi/2))

	// Rightmost pixel center sits just inside tan(45°)*aspect on the x/z plane
	d := camera.GetRay(height/2, width-1).Direction
	x := d.X / -d.Z
	expected := (2*(float64(width-1)+0.5)/float64(width) - 1) * float64(width) / float64(height)
	if math.Abs(x-expected) > 1e-9 {
		t.Errorf("Expected x/z %f, got %f", expected, x)
	}
}

func TestRollCamera_Basis(t *testing.T) {
	camera := NewRollCamera(CameraConfig{
		Position: core.NewVec3(0, 0, 0),
		Forward:  core.NewVec3(0, 0, -3),
	}, NewViewport(1024, 768, math.Pi/2))

	if !vecClose(camera.Forward(), core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected normalized forward, got %v", camera.Forward())
	}

	// Focal distance (w/2)/tan(fov/2)
	if math.Abs(camera.FocalDistance()-512) > 1e-9 {
		t.Errorf("Expected focal distance 512, got %f", camera.FocalDistance())
	}

	// Center pixel looks straight ahead
	center := camera.GetRay(384, 512).Direction
	if !vecClose(center, core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected center ray along -Z, got %v", center)
	}

	// Columns grow to +X, rows grow to -Y
	right := camera.GetRay(384, 1000).Direction
	below := camera.GetRay(700, 512).Direction
	if right.X <= 0 || math.Abs(right.Y) > 1e-12 {
		t.Errorf("Expected ray to the right, got %v", right)
	}
	if below.Y >= 0 || math.Abs(below.X) > 1e-12 {
		t.Errorf("Expected ray below, got %v", below)
	}
}

func TestRollCamera_Roll(t *testing.T) {
	viewport := NewViewport(200, 100, math.Pi/2)
	config := CameraConfig{Position: core.NewVec3(1, 2, 3), Forward: core.NewVec3(0, 0, -1)}
	flat := NewRollCamera(config, viewport)
	config.Roll = 90
	rolled := NewRollCamera(config, viewport)

	// A ray to the right, rolled 90° counter-clockwise about -Z, points down
	d := flat.GetRay(50, 150).Direction
	r := rolled.GetRay(50, 150).Direction
	expected := core.NewVec3(d.Y, -d.X, d.Z)
	if !vecClose(r, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, r)
	}

	if origin := rolled.GetRay(0, 0).Origin; origin != config.Position {
		t.Errorf("Expected origin %v, got %v", config.Position, origin)
	}
}

func TestRollCamera_RollMatchesRodrigues(t *testing.T) {
	viewport := NewViewport(64, 48, 2.1415/2)
	base := CameraConfig{Position: core.NewVec3(10, 6, 0), Forward: core.NewVec3(-1, -1, -1)}
	flat := NewRollCamera(base, viewport)
	base.Roll = 30
	rolled := NewRollCamera(base, viewport)

	k := flat.Forward()
	theta := 30 * math.Pi / 180
	for _, px := range [][2]int{{0, 0}, {10, 50}, {47, 63}} {
		v := flat.GetRay(px[0], px[1]).Direction
		expected := v.Multiply(math.Cos(theta)).
			Add(k.Cross(v).Multiply(math.Sin(theta))).
			Add(k.Multiply(k.Dot(v) * (1 - math.Cos(theta)))).
			Normalize()
		got := rolled.GetRay(px[0], px[1]).Direction
		if !vecClose(got, expected, 1e-12) {
			t.Errorf("pixel %v: expected %v, got %v", px, expected, got)
		}
	}
}

func TestRollCamera_ForwardAlongX(t *testing.T) {
	for _, forward := range []core.Vec3{core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0)} {
		camera := NewRollCamera(CameraConfig{Forward: forward}, NewViewport(10, 10, math.Pi/2))
		above := camera.GetRay(0, 5).Direction
		if !above.IsFinite() || above.Y <= 0 {
			t.Errorf("forward %v: expected finite upward ray for the top row, got %v", forward, above)
		}
	}
}

func TestCamera_WithViewport(t *testing.T) {
	small := NewViewport(32, 24, math.Pi/2)
	cameras := map[string]Camera{
		"pinhole": NewPinholeCamera(NewViewport(1024, 768, 1.0)),
		"roll":    NewRollCamera(CameraConfig{Position: core.NewVec3(10, 6, 0), Forward: core.NewVec3(-1, -1, -1), Roll: 30}, NewViewport(1024, 768, math.Pi/2)),
	}

	for name, camera := range cameras {
		t.Run(name, func(t *testing.T) {
			resized := camera.WithViewport(small)
			if resized.Viewport() != small {
				t.Errorf("Expected viewport %+v, got %+v", small, resized.Viewport())
			}
			if resized.GetRay(0, 0).Origin != camera.GetRay(0, 0).Origin {
				t.Errorf("Expected camera position to be kept")
			}
		})
	}
}
