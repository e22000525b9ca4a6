// Package demos registers the stock scene demos.
package demos

import (
	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/demos/basics"
	"github.com/Faultbox/scenelab/internal/demos/camera"
	"github.com/Faultbox/scenelab/internal/demos/geometry"
	"github.com/Faultbox/scenelab/internal/demos/light"
	"github.com/Faultbox/scenelab/internal/demos/material"
	"github.com/Faultbox/scenelab/internal/demos/shadow"
	"github.com/Faultbox/scenelab/internal/demos/transform"
)

// Registry returns a registry of every demo in lesson order.
func Registry() *demo.Registry {
	r := demo.NewRegistry()
	r.Register("basics", basics.New)
	r.Register("geometry", geometry.New)
	r.Register("transform", transform.New)
	r.Register("material", material.New)
	r.Register("light", light.New)
	r.Register("camera", camera.New)
	r.Register("shadow", shadow.New)
	return r
}

// Lookup creates the named demo.
func Lookup(name string) (demo.Demo, error) {
	return Registry().New(name)
}
