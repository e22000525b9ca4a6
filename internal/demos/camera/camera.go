// Package camera compares perspective and orthographic projection on the
// shared stage and can ride the orbiting sphere.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/demos/stage"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

const (
	PresetPerspective  = "perspective"
	PresetOrthographic = "orthographic"
	PresetFollow       = "follow"
)

// LeadAngle is how far ahead of the small sphere the follow camera looks.
const LeadAngle = 30

// Demo is the camera comparison scene.
type Demo struct {
	Camera camera.Camera
	Stage  *stage.Stage

	// LookPivot carries LookTarget LeadAngle degrees ahead of the small
	// sphere in the follow preset.
	LookPivot  *scene.Node
	LookTarget *scene.Node
}

// New creates the demo.
func New() demo.Demo { return &Demo{} }

func (d *Demo) Name() string { return "camera" }
func (d *Demo) Presets() []string {
	return []string{PresetPerspective, PresetOrthographic, PresetFollow}
}

func (d *Demo) SetupCamera(ctx *demo.Context) camera.Camera {
	f := ctx.Panel.AddFolder("camera")
	if ctx.Preset == PresetOrthographic {
		cam := camera.NewOrthographic(-ctx.Aspect, ctx.Aspect, 1, -1, 0.1, 100)
		cam.Zoom = 0.3
		f.AddFloat("zoom", &cam.Zoom, 0.05, 3, 0.01)
		d.Camera = cam
	} else {
		cam := camera.NewPerspective(60, ctx.Aspect, 0.1, 100)
		f.AddFloat("fov", &cam.Fov, 10, 120, 1)
		d.Camera = cam
	}
	n := d.Camera.Base()
	n.Position = mgl32.Vec3{2, 2, 3.5}
	n.LookAt(mgl32.Vec3{})
	if ctx.Preset != PresetFollow {
		ctx.Orbit(d.Camera)
	}
	return d.Camera
}

func (d *Demo) SetupLights(ctx *demo.Context) {
	l := lighting.NewDirectional(color.Hex(0xffffff), 1)
	l.Position = mgl32.Vec3{-1, 2, 4}
	ctx.Scene.Add(l)
}

func (d *Demo) SetupModels(ctx *demo.Context) error {
	d.Stage = stage.HalfSphere(ctx)
	if ctx.Preset == PresetFollow {
		d.LookPivot = stage.Pivot(d.Stage.Centerpiece, 0.5, -45)
		d.LookPivot.Name = "look pivot"
		d.LookTarget = scene.NewNode("look target")
		d.LookTarget.Position[0] = stage.Orbit
		d.LookPivot.Add(d.LookTarget)
	}
	return nil
}

// Update orbits the small sphere; in the follow preset the camera sits on
// it looking ahead along the orbit.
func (d *Demo) Update(_ *demo.Context, t float64) {
	d.Stage.Spin(t)
	if d.LookPivot == nil {
		return
	}
	demo.SpinY(d.LookPivot, float32(t)+mgl32.DegToRad(LeadAngle))
	demo.FollowCamera(d.Camera, &d.Stage.SmallSphere.Node, d.LookTarget)
}
