package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/demo/demotest"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/gui"
)

func TestOrthographicFollowsAspect(t *testing.T) {
	d := New().(*Demo)
	app, s, _ := demotest.Start(t, d, PresetOrthographic)
	cam := d.Camera.(*camera.Orthographic)

	assert.InDelta(t, -800.0/600.0, cam.Left, 1e-6)
	assert.Equal(t, float32(0.3), cam.Zoom)
	require.NotNil(t, app.Context().Controls)

	s.Resize(300, 600)
	assert.InDelta(t, 0.5, cam.Right, 1e-6)
	assert.InDelta(t, -0.5, cam.Left, 1e-6)
}

func TestPerspectiveFovControl(t *testing.T) {
	d := New().(*Demo)
	app, _, _ := demotest.Start(t, d, PresetPerspective)
	cam := d.Camera.(*camera.Perspective)
	assert.Equal(t, float32(60), cam.Fov)

	app.Context().Panel.Find("fov").(*gui.Float).Set(90)
	assert.Equal(t, float32(90), cam.Fov)
}

func TestFollowRidesTheSmallSphere(t *testing.T) {
	d := New().(*Demo)
	app, _, _ := demotest.Start(t, d, PresetFollow)
	assert.Nil(t, app.Context().Controls, "follow has no orbit controls")

	for _, ms := range []float64{0, 1000, 4200} {
		app.OnFrame(ms)
		eye := d.Stage.SmallSphere.WorldPosition()
		assert.Less(t, d.Camera.Base().Position.Sub(eye).Len(), float32(1e-5))

		forward := d.Camera.Base().WorldMatrix().Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
		toTarget := d.LookTarget.WorldPosition().Sub(eye).Normalize()
		assert.InDelta(t, 1, forward.Dot(toTarget), 1e-4)
	}
}
