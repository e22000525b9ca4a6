package shadow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/demo/demotest"
	"github.com/Faultbox/scenelab/internal/engine/gui"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
)

func TestShadowsEnabledForEveryPreset(t *testing.T) {
	for _, preset := range New().Presets() {
		t.Run(preset, func(t *testing.T) {
			d := New().(*Demo)
			_, _, r := demotest.Start(t, d, preset)
			assert.True(t, r.Options.Shadows)
			assert.True(t, lighting.CastsShadow(d.Light))
			assert.NotNil(t, d.Helper)
		})
	}
}

func TestStudioToneMapping(t *testing.T) {
	d := New().(*Demo)
	app, _, r := demotest.Start(t, d, PresetStudio)
	assert.Equal(t, demo.ACESFilmic, r.Options.ToneMapping)
	assert.Equal(t, float32(StudioExposure), r.Options.Exposure)
	assert.Equal(t, lighting.KindSpot, d.Light.Kind())
	assert.Nil(t, app.Context().Scene.Environment, "no studio HDR without assets")
}

func TestDirectionalShadowSettings(t *testing.T) {
	d := New().(*Demo)
	app, _, _ := demotest.Start(t, d, PresetDirectional)
	assert.Equal(t, 2048, d.Shadow.MapSize)
	assert.Equal(t, float32(20), d.Shadow.Radius)

	sizes := app.Context().Panel.Find("map size").(*gui.Options)
	assert.Equal(t, "2048", sizes.Selected())
	sizes.Set(0)
	assert.Equal(t, 512, d.Shadow.MapSize)
}

func TestSpotAimsAtSmallSphere(t *testing.T) {
	d := New().(*Demo)
	app, _, _ := demotest.Start(t, d, PresetSpot)
	l := d.Light.(*lighting.Spot)
	app.OnFrame(1500)

	sphere := d.Stage.SmallSphere.WorldPosition()
	require.Less(t, l.Target.Position.Sub(sphere).Len(), float32(1e-5))
	assert.InDelta(t, 1, l.Direction().Dot(sphere.Sub(l.Position).Normalize()), 1e-5)
}
