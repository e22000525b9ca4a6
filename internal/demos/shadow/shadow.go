// Package shadow casts shadows from a torus knot and its satellites onto
// the ground, with a choice of shadow casting light.
package shadow

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/demos/stage"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/debug"
	"github.com/Faultbox/scenelab/internal/engine/gui"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
)

const (
	PresetSpot        = "spot"
	PresetDirectional = "directional"
	PresetPoint       = "point"
	PresetStudio      = "studio"
)

// StudioExposure is the tone mapping exposure of the studio preset.
const StudioExposure = 0.5

// Demo is the shadow scene.
type Demo struct {
	Light  lighting.Light
	Shadow *lighting.Shadow
	Helper debug.Helper
	Stage  *stage.Stage

	mapSize int
}

// New creates the demo.
func New() demo.Demo { return &Demo{} }

func (d *Demo) Name() string { return "shadow" }
func (d *Demo) Presets() []string {
	return []string{PresetSpot, PresetDirectional, PresetPoint, PresetStudio}
}

func (d *Demo) SetupCamera(ctx *demo.Context) camera.Camera {
	cam := camera.NewPerspective(75, ctx.Aspect, 0.1, 100)
	cam.Position = mgl32.Vec3{2, 2, 3.5}
	ctx.Orbit(cam)
	return cam
}

// NewLight creates the shadow casting light for preset and returns it with
// its shadow settings.
func NewLight(preset string) (lighting.Light, *lighting.Shadow) {
	white := color.Hex(0xffffff)
	switch preset {
	case PresetDirectional:
		l := lighting.NewDirectional(white, 6)
		l.Position = mgl32.Vec3{0, 3, 0}
		l.Shadow.MapSize = 2048
		l.Shadow.Radius = 20
		l.Shadow.Enabled = true
		return l, &l.Shadow
	case PresetPoint:
		l := lighting.NewPoint(white, 6, 10)
		l.Position = mgl32.Vec3{0, 5, 0}
		l.Shadow.Enabled = true
		return l, &l.Shadow
	default:
		l := lighting.NewSpot(white, 20, 0, mgl32.DegToRad(20), 0.1)
		l.Position = mgl32.Vec3{0, 3, 0}
		l.Shadow.Enabled = true
		return l, &l.Shadow
	}
}

func (d *Demo) SetupLights(ctx *demo.Context) {
	ctx.Options.Shadows = true
	d.Light, d.Shadow = NewLight(ctx.Preset)
	ctx.Scene.Add(d.Light)
	d.Helper = ctx.Helper(debug.ForLight(d.Light))

	if ctx.Preset == PresetStudio {
		ctx.Options.ToneMapping = demo.ACESFilmic
		ctx.Options.Exposure = StudioExposure
		ctx.LoadEnvironment(ctx.Assets.StudioEnvMap, true)
	}

	f := ctx.Panel.AddFolder("shadow")
	f.AddFloat("intensity", &d.Light.Params().Intensity, 0, 40, 0.5)
	f.AddFloat("radius", &d.Shadow.Radius, 0, 30, 0.5)
	f.AddFloat("bias", &d.Shadow.Bias, -0.01, 0.01, 0.0001)
	d.mapSizeControl(f)
}

var mapSizes = []int{512, 1024, 2048, 4096}

func (d *Demo) mapSizeControl(f *gui.Folder) {
	names := make([]string, len(mapSizes))
	for i, n := range mapSizes {
		names[i] = strconv.Itoa(n)
		if n == d.Shadow.MapSize {
			d.mapSize = i
		}
	}
	f.AddOptions("map size", &d.mapSize, names).OnChange(func() {
		d.Shadow.MapSize = mapSizes[d.mapSize]
	})
}

func (d *Demo) SetupModels(ctx *demo.Context) error {
	d.Stage = stage.TorusKnot(ctx)
	return nil
}

// Update orbits the small sphere and aims the light at it.
func (d *Demo) Update(_ *demo.Context, t float64) {
	d.Stage.Spin(t)
	demo.FollowLight(d.Light, &d.Stage.SmallSphere.Node, d.Helper)
}
