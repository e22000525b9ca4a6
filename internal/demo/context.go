package demo

import (
	"github.com/Faultbox/scenelab/internal/assets"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/debug"
	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/gui"
	"github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/scene"
	"github.com/Faultbox/scenelab/internal/engine/texture"
)

// AssetNames are the files demos load, relative to the asset sources.
type AssetNames struct {
	Font         string
	EnvMap       string
	StudioEnvMap string
	Textures     string
	// EnvMaxWidth limits decoded environment maps; 0 keeps full size.
	EnvMaxWidth int
}

// DefaultAssetNames returns the stock asset file names.
func DefaultAssetNames() AssetNames {
	return AssetNames{
		Font:         "GowunDodum-Regular.ttf",
		EnvMap:       "charolettenbrunn_park_4k.hdr",
		StudioEnvMap: "studio_small_08_4k.hdr",
		Textures:     "Glass_Window_002",
		EnvMaxWidth:  1024,
	}
}

// Context is what a demo's hooks build into.
type Context struct {
	Scene    *scene.Scene
	Camera   camera.Camera
	Controls *camera.OrbitControls
	Panel    *gui.Panel
	Loader   *assets.Loader
	Assets   AssetNames
	Preset   string
	Options  RenderOptions

	// Aspect is the container's width / height at setup time.
	Aspect float32

	geometries []*geometry.Geometry
	materials  []material.Material
	textures   []*texture.Texture
	helpers    []debug.Helper
	closed     bool
}

// Orbit attaches orbit controls to the camera. Call from SetupCamera after
// positioning the camera.
func (c *Context) Orbit(cam camera.Camera) *camera.OrbitControls {
	c.Controls = camera.NewOrbitControls(cam)
	c.Controls.Update()
	return c.Controls
}

// Geometry records g for disposal when the app closes and returns it.
func (c *Context) Geometry(g *geometry.Geometry) *geometry.Geometry {
	c.geometries = append(c.geometries, g)
	return g
}

// Material records m for disposal when the app closes and returns it.
func (c *Context) Material(m material.Material) material.Material {
	c.materials = append(c.materials, m)
	return m
}

// Texture records t for disposal when the app closes and returns it. A nil
// t is ignored; on a closed context t is disposed at once.
func (c *Context) Texture(t *texture.Texture) *texture.Texture {
	if t != nil && c.closed {
		t.Dispose()
		return t
	}
	if t != nil {
		c.textures = append(c.textures, t)
	}
	return t
}

// Helper adds h to the scene root and keeps it for disposal.
func (c *Context) Helper(h debug.Helper) debug.Helper {
	if h == nil {
		return nil
	}
	c.Scene.Add(h)
	c.helpers = append(c.helpers, h)
	return h
}

// dispose releases every tracked resource once.
func (c *Context) dispose() {
	for _, g := range c.geometries {
		g.Dispose()
	}
	for _, m := range c.materials {
		if d, ok := m.(interface{ Dispose() }); ok {
			d.Dispose()
		}
	}
	for _, t := range c.textures {
		t.Dispose()
	}
	for _, h := range c.helpers {
		if ls, ok := h.(scene.LineObject); ok {
			ls.LineData().Geometry.Dispose()
		}
	}
	c.geometries, c.materials, c.textures, c.helpers = nil, nil, nil, nil
	c.closed = true
}

// Closed reports whether the app owning c has closed. Asset callbacks that
// arrive later must not touch the scene.
func (c *Context) Closed() bool { return c.closed }

// LoadEnvironment starts loading an equirectangular HDR and, once decoded,
// uses it as the scene environment and, with background set, as the
// background. On failure the scene keeps its plain background.
func (c *Context) LoadEnvironment(name string, background bool) {
	c.Loader.HDR(name, c.Assets.EnvMaxWidth, func(t *texture.Texture, err error) {
		if err != nil {
			return
		}
		if c.closed {
			t.Dispose()
			return
		}
		t.Mapping = texture.EquirectangularMapping
		c.Texture(t)
		c.Scene.Environment = t
		if background {
			c.Scene.BackgroundTexture = t
		}
	})
}
