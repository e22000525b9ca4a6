// Package transform builds a small solar system of pivots: eight tori ring
// a big sphere and a small sphere orbits it.
package transform

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/debug"
	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
	"github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

// Palette is the set of colors meshes are drawn from.
var Palette = []string{"#fcba03", "#ff852e", "#a664e8", "#6471e8", "#4de3a0", "#94e65a", "#f573c3"}

// Seed fixes the color picks so every run looks the same.
const Seed = 7

// Demo is the pivot hierarchy scene.
type Demo struct {
	BigSphere        *scene.Mesh
	TorusPivots      []*scene.Node
	SmallSpherePivot *scene.Node
	SmallSphere      *scene.Mesh

	rng *rand.Rand
}

// New creates the demo.
func New() demo.Demo { return &Demo{rng: rand.New(rand.NewSource(Seed))} }

func (d *Demo) Name() string      { return "transform" }
func (d *Demo) Presets() []string { return []string{"default"} }

func (d *Demo) SetupCamera(ctx *demo.Context) camera.Camera {
	cam := camera.NewPerspective(75, ctx.Aspect, 0.1, 100)
	cam.Position = mgl32.Vec3{0, 10, 10}
	ctx.Orbit(cam)
	return cam
}

func (d *Demo) SetupLights(ctx *demo.Context) {
	l := lighting.NewDirectional(color.Hex(0xffffff), 3)
	l.Position = mgl32.Vec3{-1, 2, 4}
	ctx.Scene.Add(l)
}

func (d *Demo) randomMaterial(ctx *demo.Context) material.Material {
	c := color.MustParse(Palette[d.rng.Intn(len(Palette))])
	return ctx.Material(material.NewPhong(c))
}

func (d *Demo) SetupModels(ctx *demo.Context) error {
	ctx.Helper(debug.NewAxes(10))

	ground := scene.NewMesh(ctx.Geometry(geometry.Plane(15, 15, 1, 1)), d.randomMaterial(ctx))
	ground.Rotation[0] = mgl32.DegToRad(-90)
	ctx.Scene.Add(ground)

	d.BigSphere = scene.NewMesh(ctx.Geometry(geometry.SphereDefault(3)), d.randomMaterial(ctx))
	ctx.Scene.Add(d.BigSphere)

	torus := ctx.Geometry(geometry.TorusDefault(0.8, 0.3))
	for i := 0; i < 8; i++ {
		pivot := scene.NewNode("torus pivot")
		pivot.Position[1] = 1.5
		pivot.Rotation[1] = mgl32.DegToRad(-45 * float32(i))
		mesh := scene.NewMesh(torus, d.randomMaterial(ctx))
		mesh.Position[0] = 6
		pivot.Add(mesh)
		d.BigSphere.Add(pivot)
		d.TorusPivots = append(d.TorusPivots, pivot)
	}

	d.SmallSpherePivot = scene.NewNode("small sphere pivot")
	d.SmallSphere = scene.NewMesh(ctx.Geometry(geometry.SphereDefault(0.5)), d.randomMaterial(ctx))
	d.SmallSphere.Position = mgl32.Vec3{6, 1.5, 0}
	d.SmallSpherePivot.Add(d.SmallSphere)
	d.BigSphere.Add(d.SmallSpherePivot)
	return nil
}

// Update orbits the small sphere at one radian per second.
func (d *Demo) Update(_ *demo.Context, t float64) {
	demo.SpinY(d.SmallSpherePivot, float32(t))
}
