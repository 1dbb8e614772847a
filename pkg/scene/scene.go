// Package scene wires primitives, materials, textures and a camera
// into a renderable Scene, and provides a small registry of built-in
// scenes selectable by name from the CLI.
package scene

import (
	"github.com/pkg/errors"

	"github.com/cbro/rayer-go/pkg/accel"
	"github.com/cbro/rayer-go/pkg/camera"
	"github.com/cbro/rayer-go/pkg/geometry"
)

// Config holds the sampling parameters a scene recommends for itself;
// the CLI may override any of these.
type Config struct {
	Width, Height int
	Samples       int
	RenderSky     bool
}

// Scene bundles everything the scheduler needs to render a frame.
type Scene struct {
	Camera *camera.Camera
	World  geometry.Hitable
	Config Config
}

// Build wraps a flat list of top-level hitables in a BVH and returns
// the assembled Scene. Named NewX scene constructors call this last.
func Build(cam *camera.Camera, items []geometry.Hitable, cfg Config) *Scene {
	return &Scene{
		Camera: cam,
		World:  accel.Build(items),
		Config: cfg,
	}
}

// Registry maps a scene name (as passed via --scene) to its
// constructor.
var Registry = map[string]func() *Scene{
	"cornell":   NewCornellScene,
	"spheres":   NewSphereFieldScene,
	"materials": NewMaterialShowcaseScene,
}

// Lookup resolves a scene name to a built Scene, or an error naming
// the available choices.
func Lookup(name string) (*Scene, error) {
	ctor, ok := Registry[name]
	if !ok {
		return nil, errors.Errorf("unknown scene %q (available: %s)", name, availableNames())
	}
	return ctor(), nil
}

func availableNames() string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
