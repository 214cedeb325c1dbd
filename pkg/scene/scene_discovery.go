package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by Lookup for names that are not built in
var ErrUnknownScene = errors.New("unknown scene")

// Options carries the external files a scene may load
type Options struct {
	EnvironmentPath string // Environment image (P6 PPM, PNG or JPEG)
	EnvWidth        int    // Declared environment width, 0 to trust the file
	EnvHeight       int    // Declared environment height, 0 to trust the file
	ModelDir        string // Directory holding tetrahedron.obj / octahedron.obj
}

// DefaultOptions returns options that use only built-in data
func DefaultOptions() Options {
	return Options{
		EnvWidth:  ShowcaseEnvWidth,
		EnvHeight: ShowcaseEnvHeight,
	}
}

// Builder creates a scene from options
type Builder func(opts Options) (*Scene, error)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	build       Builder
}

var builtinScenes = []SceneInfo{
	{
		Name:        "classic",
		Description: "Six shapes on a flat background through a fixed pinhole camera",
		build:       func(Options) (*Scene, error) { return NewClassicScene(), nil },
	},
	{
		Name:        "showcase",
		Description: "Shapes and polyhedra in an environment map, five camera views",
		build:       NewShowcaseScene,
	},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	list := make([]SceneInfo, len(builtinScenes))
	copy(list, builtinScenes)
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Names returns the names of the built-in scenes
func Names() []string {
	list := ListScenes()
	names := make([]string, len(list))
	for i, info := range list {
		names[i] = info.Name
	}
	return names
}

// Lookup builds the named scene
func Lookup(name string, opts Options) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.Name == name {
			return info.build(opts)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}
