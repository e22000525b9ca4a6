// Package geometry shows the stock geometry generators one at a time, as a
// translucent flat-shaded mesh with its wireframe, rebuilt live from panel
// parameters.
package geometry

import (
	"go.uber.org/zap"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/debug"
	"github.com/Faultbox/scenelab/internal/engine/font"
	geo "github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/gui"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
	"github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/scene"
	"github.com/Faultbox/scenelab/internal/logger"
)

// Kinds lists the helper kinds; each is also a preset.
var Kinds = []string{
	"box", "circle", "cone", "cylinder", "torus", "sphere",
	"ring", "plane", "torusknot", "shape", "extrude", "text",
}

// Demo is the geometry browser.
type Demo struct {
	kind    int
	helpers map[string]Helper
	text    *textHelper

	ctx     *demo.Context
	meshMat *material.Phong
	lineMat *material.LineBasic
	params  *gui.Folder

	model *scene.Group
	mesh  *scene.Mesh
	wire  *scene.LineSegments
	log   *zap.Logger
}

// New creates the demo.
func New() demo.Demo {
	return &Demo{log: logger.Named("geometry")}
}

func (d *Demo) Name() string      { return "geometry" }
func (d *Demo) Presets() []string { return Kinds }

func (d *Demo) SetupCamera(ctx *demo.Context) camera.Camera {
	ctx.Scene.Fog = scene.NewFog(color.Hex(0x000000), 1, 3.5)
	cam := camera.NewPerspective(75, ctx.Aspect, 0.1, 100)
	cam.Position = mgl32.Vec3{0, 0, 2}
	ctx.Orbit(cam)
	return cam
}

func (d *Demo) SetupLights(ctx *demo.Context) {
	for _, p := range []mgl32.Vec3{{0, 200, 0}, {100, 200, 100}, {-100, -200, -100}} {
		l := lighting.NewDirectional(color.Hex(0xffffff), 3)
		l.Position = p
		ctx.Scene.Add(l)
	}

	ctx.Helper(debug.NewAxes(10))
	grid := debug.NewGrid(5, 20, color.Hex(0xffffff), color.Hex(0x444444))
	grid.Position[1] = -0.2
	ctx.Helper(grid)
}

func (d *Demo) SetupModels(ctx *demo.Context) error {
	d.ctx = ctx

	d.meshMat = material.NewPhong(color.Hex(0x5588cc))
	d.meshMat.FlatShading = true
	d.meshMat.Side = material.DoubleSide
	d.meshMat.Transparent = true
	d.meshMat.Opacity = 0.75
	ctx.Material(d.meshMat)

	d.lineMat = material.NewLineBasic(color.Hex(0xffffff))
	d.lineMat.Transparent = true
	d.lineMat.Opacity = 0.8
	ctx.Material(d.lineMat)

	fallback, err := font.Fallback()
	if err != nil {
		return err
	}
	d.text = newTextHelper(fallback)
	d.helpers = map[string]Helper{
		"box":       newBoxHelper(),
		"circle":    newCircleHelper(),
		"cone":      newConeHelper(),
		"cylinder":  newCylinderHelper(),
		"torus":     newTorusHelper(),
		"sphere":    newSphereHelper(),
		"ring":      newRingHelper(),
		"plane":     newPlaneHelper(),
		"torusknot": newTorusKnotHelper(),
		"shape":     newShapeHelper(),
		"extrude":   newExtrudeHelper(),
		"text":      d.text,
	}
	for i, k := range Kinds {
		if k == ctx.Preset {
			d.kind = i
		}
	}

	ctx.Panel.AddOptions("kind", &d.kind, Kinds).OnChange(d.selectKind)
	d.params = ctx.Panel.AddFolder("parameters")
	d.selectKind()

	ctx.Loader.Font(ctx.Assets.Font, func(f *font.Font, err error) {
		if err != nil || ctx.Closed() {
			return
		}
		d.text.Font = f
		if d.Kind() == "text" {
			d.Rebuild()
		}
	})
	return nil
}

func (d *Demo) Update(*demo.Context, float64) {}

// Close disposes the current model's geometries.
func (d *Demo) Close(*demo.Context) {
	if d.model != nil {
		d.mesh.Geometry.Dispose()
		d.wire.Geometry.Dispose()
		d.model = nil
	}
}

// Kind returns the selected helper kind.
func (d *Demo) Kind() string { return Kinds[d.kind] }

// Helper returns the helper for the selected kind.
func (d *Demo) Helper() Helper { return d.helpers[d.Kind()] }

// Model returns the group currently in the scene.
func (d *Demo) Model() *scene.Group { return d.model }

// Params returns the folder holding the selected helper's controls.
func (d *Demo) Params() *gui.Folder { return d.params }

func (d *Demo) selectKind() {
	d.ctx.Preset = d.Kind()
	d.params.Clear()
	d.Helper().CreateGUI(d.params, d.Rebuild)
	d.Rebuild()
}

// Rebuild replaces the model group with one built from the current
// parameters. On a build error the old model stays.
func (d *Demo) Rebuild() {
	g, err := d.Helper().CreateGeometry()
	if err != nil {
		d.log.Warn("build geometry", zap.String("kind", d.Kind()), zap.Error(err))
		return
	}

	mesh := scene.NewMesh(g, d.meshMat)
	wire := scene.NewLineSegments(geo.Wireframe(g), d.lineMat)
	group := scene.NewGroup("model")
	group.Add(mesh, wire)

	if d.model != nil {
		d.mesh.Geometry.Dispose()
		d.wire.Geometry.Dispose()
		d.ctx.Scene.Remove(d.model)
	}
	d.model, d.mesh, d.wire = group, mesh, wire
	d.ctx.Scene.Add(group)
}
