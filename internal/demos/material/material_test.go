package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/demo/demotest"
	"github.com/Faultbox/scenelab/internal/engine/texture"
)

func small() *Demo {
	d := New().(*Demo)
	d.BoxSegments, d.SphereWidth, d.SphereHeight = 4, 16, 8
	return d
}

func TestTexturedFallsBackToCheckers(t *testing.T) {
	d := small()
	app, _, _ := demotest.Start(t, d, PresetTextured)

	m := d.Material
	require.Len(t, m.Textures(), 7)
	assert.Equal(t, texture.SRGBSpace, m.Map.ColorSpace)
	assert.Equal(t, texture.LinearSpace, m.NormalMap.ColorSpace)
	for _, tex := range m.Textures() {
		assert.NotNil(t, tex.RGBA, tex.Name)
	}
	assert.Equal(t, float32(0.2), m.DisplacementScale)
	assert.Same(t, d.Box.Material, d.Sphere.Material)

	scn := app.Context().Scene
	assert.Nil(t, scn.Environment, "missing HDR leaves no environment")
	assert.Nil(t, scn.BackgroundTexture)

	app.Close()
	assert.True(t, m.Map.Disposed())
	assert.True(t, m.Disposed())
}

func TestPlainHasNoMaps(t *testing.T) {
	d := small()
	app, _, _ := demotest.Start(t, d, PresetPlain)
	assert.Empty(t, d.Material.Textures())
	assert.Nil(t, app.Context().Panel.Find("displacementScale"))
}

func TestTextureName(t *testing.T) {
	assert.Equal(t, "Glass_Window_002/Glass_Window_002_normal.jpg", textureName("Glass_Window_002", "normal", ".jpg"))
	assert.Equal(t, "tex/Brick/Brick_height.png", textureName("tex/Brick", "height", ".png"))
}
