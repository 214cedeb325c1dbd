package material

import "github.com/df07/phong-raytracer/pkg/core"

// Material describes how a surface responds to the Phong shading model
type Material struct {
	Albedo           core.Vec2 // X weights the diffuse term, Y the specular term
	DiffuseColor     core.Vec3 // Linear RGB in [0,1]
	SpecularExponent float64   // Phong shininess
	RefractionIndex  float64   // How far a transmitted ray bends toward -normal
	Alpha            float64   // Opacity, 1 means no transmitted contribution
}

// NewMaterial creates a new material
func NewMaterial(albedo core.Vec2, diffuseColor core.Vec3, specularExponent, refractionIndex, alpha float64) Material {
	return Material{
		Albedo:           albedo,
		DiffuseColor:     diffuseColor,
		SpecularExponent: specularExponent,
		RefractionIndex:  refractionIndex,
		Alpha:            alpha,
	}
}

// IsOpaque reports whether the material transmits nothing
func (m Material) IsOpaque() bool {
	return m.Alpha == 1
}

// Transmittance is the weight of the refracted color, 1 - alpha
func (m Material) Transmittance() float64 {
	return 1 - m.Alpha
}
