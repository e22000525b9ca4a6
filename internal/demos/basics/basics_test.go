package basics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/demo/demotest"
	"github.com/Faultbox/scenelab/internal/engine/camera"
)

func TestSetup(t *testing.T) {
	d := New().(*Demo)
	app, s, r := demotest.Start(t, d, "")

	require.Len(t, d.Cubes, 3)
	assert.Equal(t, float32(-1), d.Cubes[1].Position[0])
	assert.Same(t, d.Cubes[0].Geometry, d.Cubes[2].Geometry, "cubes share one box")

	cam := app.Camera().(*camera.Perspective)
	assert.Equal(t, float32(75), cam.Fov)
	assert.InDelta(t, 800.0/600.0, cam.Aspect, 1e-6)

	s.Resize(400, 300)
	assert.InDelta(t, 400.0/300.0, cam.Aspect, 1e-6)
	assert.Equal(t, 400, r.W)
}

func TestRotationDependsOnTimeOnly(t *testing.T) {
	d := New().(*Demo)
	app, _, _ := demotest.Start(t, d, "")

	app.OnFrame(2000)
	first := d.Cubes[2].Rotation
	app.OnFrame(5000)
	app.OnFrame(2000)
	assert.Equal(t, first, d.Cubes[2].Rotation)
	assert.InDelta(t, 2.4, first[0], 1e-5)
	assert.Equal(t, first[0], first[1])
	assert.Zero(t, first[2])
}
