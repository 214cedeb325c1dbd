package material

import "github.com/df07/phong-raytracer/pkg/core"

// Preset materials used by the built-in scenes.

// Red is a glossy, partly transparent red.
func Red() Material {
	return NewMaterial(core.NewVec2(0.6, 0.3), core.NewVec3(1, 0, 0), 60, 0.05, 0.7)
}

func Green() Material {
	return NewMaterial(core.NewVec2(0.6, 0.3), core.NewVec3(0, 0.5, 0), 60, 1, 1)
}

func Blue() Material {
	return NewMaterial(core.NewVec2(0.9, 0.1), core.NewVec3(0, 0, 1), 10, 1, 1)
}

func Gray() Material {
	return NewMaterial(core.NewVec2(0.9, 0.1), core.NewVec3(0.5, 0.5, 0.5), 10, 1, 1)
}

// Black only shows highlights and reflections.
func Black() Material {
	return NewMaterial(core.NewVec2(0.6, 0.3), core.NewVec3(0, 0, 0), 60, 1, 1)
}
