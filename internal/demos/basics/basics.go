// Package basics spins three Phong cubes under a single directional light.
package basics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
	"github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

// Demo is the rotating cubes scene.
type Demo struct {
	Cubes []*scene.Mesh
}

// New creates the demo.
func New() demo.Demo { return &Demo{} }

func (d *Demo) Name() string      { return "basics" }
func (d *Demo) Presets() []string { return []string{"default"} }

func (d *Demo) SetupCamera(ctx *demo.Context) camera.Camera {
	cam := camera.NewPerspective(75, ctx.Aspect, 0.1, 100)
	cam.Position[2] = 2
	return cam
}

func (d *Demo) SetupLights(ctx *demo.Context) {
	l := lighting.NewDirectional(color.Hex(0xffffff), 1)
	l.Position = mgl32.Vec3{-1, 2, 4}
	ctx.Scene.Add(l)
}

func (d *Demo) SetupModels(ctx *demo.Context) error {
	box := ctx.Geometry(geometry.Box(0.5, 0.5, 0.5, 1, 1, 1))
	for _, c := range []struct {
		hex uint32
		x   float32
	}{{0x44aaff, 0}, {0xff44aa, -1}, {0xaaff44, 1}} {
		cube := scene.NewMesh(box, ctx.Material(material.NewPhong(color.Hex(c.hex))))
		cube.Position[0] = c.x
		ctx.Scene.Add(cube)
		d.Cubes = append(d.Cubes, cube)
	}
	return nil
}

// Update turns cube i about x and y at 1 + 0.1i radians per second.
func (d *Demo) Update(_ *demo.Context, t float64) {
	for i, cube := range d.Cubes {
		rot := float32(t * (1 + float64(i)*0.1))
		cube.Rotation[0] = rot
		cube.Rotation[1] = rot
	}
}
