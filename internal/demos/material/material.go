// Package material shows a physically based material with a full texture
// set under image based lighting.
package material

import (
	"path"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/geometry"
	mat "github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/scene"
	"github.com/Faultbox/scenelab/internal/engine/texture"
)

const (
	PresetTextured = "textured"
	PresetPlain    = "plain"
)

// Demo is the textured material scene.
type Demo struct {
	Material *mat.Standard
	Box      *scene.Mesh
	Sphere   *scene.Mesh

	// BoxSegments and SphereSegments set mesh density; displacement needs
	// dense meshes to show.
	BoxSegments               int
	SphereWidth, SphereHeight int
}

// New creates the demo.
func New() demo.Demo {
	return &Demo{BoxSegments: 256, SphereWidth: 512, SphereHeight: 256}
}

func (d *Demo) Name() string      { return "material" }
func (d *Demo) Presets() []string { return []string{PresetTextured, PresetPlain} }

func (d *Demo) SetupCamera(ctx *demo.Context) camera.Camera {
	cam := camera.NewPerspective(75, ctx.Aspect, 0.1, 100)
	cam.Position[2] = 4
	ctx.Orbit(cam)
	return cam
}

// SetupLights loads the environment map; it is the only light source.
func (d *Demo) SetupLights(ctx *demo.Context) {
	ctx.LoadEnvironment(ctx.Assets.EnvMap, true)
}

// textureName maps a map kind to a file in the texture set directory.
func textureName(dir, kind, ext string) string {
	return path.Join(dir, path.Base(dir)+"_"+kind+ext)
}

func (d *Demo) SetupModels(ctx *demo.Context) error {
	m := mat.NewStandard(color.Hex(0xffffff))
	m.Roughness = 0.8
	m.Metalness = 0.9
	m.Transparent = true
	m.Side = mat.DoubleSide
	ctx.Material(m)
	d.Material = m

	if ctx.Preset == PresetTextured {
		dir := ctx.Assets.Textures
		load := func(kind, ext string, space texture.ColorSpace) *texture.Texture {
			return ctx.Texture(ctx.Loader.Texture(textureName(dir, kind, ext), space, nil))
		}
		m.Map = load("basecolor", ".jpg", texture.SRGBSpace)
		m.AOMap = load("ambientOcclusion", ".jpg", texture.LinearSpace)
		m.DisplacementMap = load("height", ".png", texture.LinearSpace)
		m.NormalMap = load("normal", ".jpg", texture.LinearSpace)
		m.RoughnessMap = load("roughness", ".jpg", texture.LinearSpace)
		m.MetalnessMap = load("metallic", ".jpg", texture.LinearSpace)
		m.AlphaMap = load("opacity", ".jpg", texture.LinearSpace)
		m.NormalScale = mgl32.Vec2{1, 1}
		m.DisplacementScale = 0.2
		m.DisplacementBias = -0.15
		m.AOMapIntensity = 1.5
	}

	n := d.BoxSegments
	d.Box = scene.NewMesh(ctx.Geometry(geometry.Box(1, 1, 1, n, n, n)), m)
	d.Box.Position[0] = -1
	ctx.Scene.Add(d.Box)

	d.Sphere = scene.NewMesh(ctx.Geometry(geometry.Sphere(0.6, d.SphereWidth, d.SphereHeight, 0, 2*math32.Pi, 0, math32.Pi)), m)
	d.Sphere.Position[0] = 1
	ctx.Scene.Add(d.Sphere)

	f := ctx.Panel.AddFolder("material")
	f.AddFloat("roughness", &m.Roughness, 0, 1, 0.01)
	f.AddFloat("metalness", &m.Metalness, 0, 1, 0.01)
	f.AddFloat("envMapIntensity", &m.EnvMapIntensity, 0, 3, 0.01)
	f.AddBool("wireframe", &m.Wireframe)
	if ctx.Preset == PresetTextured {
		f.AddFloat("displacementScale", &m.DisplacementScale, 0, 1, 0.01)
		f.AddFloat("displacementBias", &m.DisplacementBias, -1, 1, 0.01)
		f.AddFloat("aoMapIntensity", &m.AOMapIntensity, 0, 3, 0.01)
	}
	return nil
}

func (d *Demo) Update(*demo.Context, float64) {}
