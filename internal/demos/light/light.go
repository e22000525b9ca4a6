// Package light shows each light kind on the shared stage, one per preset,
// with its helper and live parameters.
package light

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/demos/stage"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/debug"
	"github.com/Faultbox/scenelab/internal/engine/gui"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
)

// Presets name the light kinds in the order they are offered.
var Presets = []string{"ambient", "hemisphere", "directional", "point", "spot", "rectarea"}

// Demo is the light gallery.
type Demo struct {
	Light  lighting.Light
	Helper debug.Helper
	Stage  *stage.Stage
}

// New creates the demo.
func New() demo.Demo { return &Demo{} }

func (d *Demo) Name() string      { return "light" }
func (d *Demo) Presets() []string { return Presets }

func (d *Demo) SetupCamera(ctx *demo.Context) camera.Camera {
	cam := camera.NewPerspective(75, ctx.Aspect, 0.1, 100)
	cam.Position = mgl32.Vec3{2, 2, 3.5}
	ctx.Orbit(cam)
	return cam
}

// NewLight creates the light for preset, or nil for an unknown name.
func NewLight(preset string) lighting.Light {
	white := color.Hex(0xffffff)
	switch preset {
	case "ambient":
		return lighting.NewAmbient(color.MustParse("#fff"), 10)
	case "hemisphere":
		return lighting.NewHemisphere(color.MustParse("#b0d8f5"), color.MustParse("#bb7a1c"), 1)
	case "directional":
		l := lighting.NewDirectional(white, 1)
		l.Position = mgl32.Vec3{0, 1, 0}
		return l
	case "point":
		l := lighting.NewPoint(white, 2, 0)
		l.Position = mgl32.Vec3{0, 5, 0}
		return l
	case "spot":
		l := lighting.NewSpot(white, 10, 0, mgl32.DegToRad(30), 0)
		l.Position = mgl32.Vec3{0, 3, 0}
		return l
	case "rectarea":
		l := lighting.NewRectArea(white, 10, 2, 0.5)
		l.Position = mgl32.Vec3{0, 3, 0}
		l.Rotation[0] = mgl32.DegToRad(-90)
		return l
	}
	return nil
}

func (d *Demo) SetupLights(ctx *demo.Context) {
	d.Light = NewLight(ctx.Preset)
	ctx.Scene.Add(d.Light)
	d.Helper = ctx.Helper(debug.ForLight(d.Light))
	Controls(ctx.Panel.AddFolder("light"), d.Light, d.Helper)
}

// Controls adds the parameters of l to f. Every change refreshes helper.
func Controls(f *gui.Folder, l lighting.Light, helper debug.Helper) {
	refresh := func() {
		if helper != nil {
			helper.Update()
		}
	}
	f.AddFloat("intensity", &l.Params().Intensity, 0, 20, 1).OnChange(refresh)
	switch l := l.(type) {
	case *lighting.RectArea:
		f.AddFloat("width", &l.Width, 0, 20, 1).OnChange(refresh)
		f.AddFloat("height", &l.Height, 0, 10, 0.1).OnChange(refresh)
	case *lighting.Point:
		f.AddFloat("distance", &l.Distance, 0, 20, 1).OnChange(refresh)
	case *lighting.Spot:
		f.AddFloat("distance", &l.Distance, 0, 20, 1).OnChange(refresh)
		f.AddFloat("angle", &l.Angle, 0, mgl32.DegToRad(90), 0.01).OnChange(refresh)
		f.AddFloat("penumbra", &l.Penumbra, 0, 1, 0.01).OnChange(refresh)
	}
}

func (d *Demo) SetupModels(ctx *demo.Context) error {
	d.Stage = stage.HalfSphere(ctx)
	return nil
}

// Update orbits the small sphere and keeps the light on it.
func (d *Demo) Update(_ *demo.Context, t float64) {
	d.Stage.Spin(t)
	demo.FollowLight(d.Light, &d.Stage.SmallSphere.Node, d.Helper)
}
