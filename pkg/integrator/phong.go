package integrator

import (
	"math"

	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/geometry"
)

const (
	MaxDepth      = 12    // Deepest bounce that is still traced
	MirrorWeight  = 0.1   // Share of the reflected ray in every surface color
	ShadowBias    = 0.001 // Offset of shadow ray origins along the normal
	SecondaryBias = 0.01  // Offset of reflection and refraction origins along the normal
)

// PhongIntegrator implements Whitted-style recursive ray tracing with
// Blinn-Phong local lighting and hard shadows from point lights
type PhongIntegrator struct {
	scene Scene
}

// NewPhongIntegrator creates a new Phong integrator over scene
func NewPhongIntegrator(scene Scene) *PhongIntegrator {
	return &PhongIntegrator{scene: scene}
}

// RayColor computes the color for a single ray.
//
// The result is not clamped; secondary rays reuse this method with depth+1.
func (p *PhongIntegrator) RayColor(ray core.Ray, depth int) core.Vec3 {
	if depth > MaxDepth {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := p.scene.Intersect(ray)
	if !isHit {
		return p.scene.BackgroundColor(ray)
	}

	diffuse, specular, normal := p.localLighting(ray, hit)
	mat := hit.Material

	color := mat.DiffuseColor.Multiply(mat.Albedo.X * diffuse).
		Add(core.NewVec3(1, 1, 1).Multiply(mat.Albedo.Y * specular))

	secondaryOrigin := hit.Point.Add(normal.Multiply(SecondaryBias))

	reflected := core.NewRay(secondaryOrigin, ray.Direction.Reflect(normal))
	color = color.Add(p.RayColor(reflected, depth+1).Multiply(MirrorWeight))

	if !mat.IsOpaque() {
		// Simplified refraction: bend the ray into the surface by the index,
		// without Snell's law and without renormalizing
		refracted := core.NewRay(secondaryOrigin, ray.Direction.Subtract(normal.Multiply(mat.RefractionIndex)))
		color = color.Add(p.RayColor(refracted, depth+1).Multiply(mat.Transmittance()))
	}

	return color
}

// localLighting accumulates diffuse and specular intensity over every light.
//
// The normal is flipped to face each light in turn and the flip carries over
// to later lights; the final orientation is returned for the secondary rays.
func (p *PhongIntegrator) localLighting(ray core.Ray, hit geometry.Hit) (diffuse, specular float64, normal core.Vec3) {
	normal = hit.Normal
	viewDir := ray.Origin.Subtract(hit.Point).Normalize()

	for _, light := range p.scene.GetLights() {
		lightDir, lightDist := light.DirectionFrom(hit.Point)

		if lightDir.Dot(normal) < 0 {
			normal = normal.Negate()
		}

		shadowOrigin := hit.Point.Add(normal.Multiply(ShadowBias))
		if p.inShadow(shadowOrigin, lightDir, lightDist) {
			continue
		}

		diffuse += light.Intensity * math.Max(0, lightDir.Dot(normal))

		half := viewDir.Add(lightDir).Normalize()
		specular += light.Intensity * math.Pow(math.Max(0, half.Dot(normal)), hit.Material.SpecularExponent)
	}

	return diffuse, specular, normal
}

// inShadow reports whether any shape lies between origin and a light lightDist away
func (p *PhongIntegrator) inShadow(origin, lightDir core.Vec3, lightDist float64) bool {
	blocker, blocked := p.scene.Intersect(core.NewRay(origin, lightDir))
	return blocked && blocker.Point.Subtract(origin).Length() < lightDist
}
