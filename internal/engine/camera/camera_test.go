package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPerspectiveAspect(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 100)
	c.SetAspect(800.0 / 600.0)
	assert.InDelta(t, 4.0/3.0, c.Aspect, 1e-6)

	p := c.ProjectionMatrix()
	// m00 / m11 == 1 / aspect for a symmetric frustum.
	assert.InDelta(t, 3.0/4.0, p.At(0, 0)/p.At(1, 1), 1e-5)
}

func TestPerspectiveZoomNarrowsFov(t *testing.T) {
	c := NewPerspective(60, 1, 0.1, 100)
	wide := c.EffectiveFov()
	c.Zoom = 2
	assert.Less(t, c.EffectiveFov(), wide)
	assert.InDelta(t, mgl32.DegToRad(60), wide, 1e-5)
}

func TestOrthographicSetAspect(t *testing.T) {
	c := NewOrthographic(-1, 1, 1, -1, 0.1, 100)
	c.SetAspect(2)
	assert.Equal(t, float32(-2), c.Left)
	assert.Equal(t, float32(2), c.Right)

	c.Zoom = 0.3
	p := c.ProjectionMatrix()
	// Zooming out widens the frustum so a unit x maps closer to center.
	assert.InDelta(t, 0.3/2, p.At(0, 0), 1e-5)
}

func TestViewMatrixAfterLookAt(t *testing.T) {
	c := NewPerspective(60, 1, 0.1, 100)
	c.Position = mgl32.Vec3{2, 2, 3.5}
	c.LookAt(mgl32.Vec3{})

	v := ViewMatrix(c).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, v[0], 1e-5)
	assert.InDelta(t, 0, v[1], 1e-5)
	assert.InDelta(t, -mgl32.Vec3{2, 2, 3.5}.Len(), v[2], 1e-4)
}

func TestOrbitSyncMatchesPosition(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 100)
	c.Position = mgl32.Vec3{2, 2, 3.5}
	o := NewOrbitControls(c)

	assert.Less(t, o.Offset().Sub(c.Position).Len(), float32(1e-5))
	o.Update()
	assert.Less(t, c.Position.Sub(mgl32.Vec3{2, 2, 3.5}).Len(), float32(1e-5))
}

func TestOrbitDragClampsPitch(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 100)
	c.Position = mgl32.Vec3{0, 0, 10}
	o := NewOrbitControls(c)

	o.HandleDrag(0, 1e6)
	assert.Equal(t, o.MaxPitch, o.Pitch)
	o.HandleDrag(0, -1e6)
	assert.Equal(t, o.MinPitch, o.Pitch)
}

func TestOrbitZoom(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 100)
	c.Position = mgl32.Vec3{0, 10, 10}
	o := NewOrbitControls(c)
	before := o.Distance
	o.HandleZoom(1)
	assert.Less(t, o.Distance, before)

	o.Enabled = false
	d := o.Distance
	o.HandleZoom(1)
	assert.Equal(t, d, o.Distance)
}

func TestOrbitZoomOrthographic(t *testing.T) {
	c := NewOrthographic(-1, 1, 1, -1, 0.1, 100)
	c.Position = mgl32.Vec3{0, 0, 5}
	c.Zoom = 0.3
	o := NewOrbitControls(c)
	o.HandleZoom(1)
	assert.Greater(t, c.Zoom, float32(0.3))
	assert.InDelta(t, 5, o.Distance, 1e-6)
}

func TestOrbitPanMovesTarget(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 100)
	c.Position = mgl32.Vec3{0, 0, 10}
	o := NewOrbitControls(c)
	o.Update()
	o.HandlePan(100, 0)
	assert.Less(t, o.Target[0], float32(0))
	assert.InDelta(t, 0, o.Target[1], 1e-5)
}

func TestPointerLeftDragRotates(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 100)
	c.Position = mgl32.Vec3{0, 0, 2}
	o := NewOrbitControls(c)
	var p Pointer

	p.Move(o, 10, 10)
	assert.Zero(t, o.Yaw, "hovering does not rotate")

	p.Press(ButtonLeft, 10, 10)
	assert.True(t, p.Dragging())
	p.Move(o, 110, 10)
	assert.InDelta(t, -0.5, o.Yaw, 1e-5)

	p.Release(ButtonLeft)
	p.Move(o, 300, 10)
	assert.InDelta(t, -0.5, o.Yaw, 1e-5)
}

func TestPointerRightDragPans(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 100)
	c.Position = mgl32.Vec3{0, 0, 2}
	o := NewOrbitControls(c)
	var p Pointer

	p.Press(ButtonRight, 0, 0)
	p.Press(ButtonLeft, 0, 0)
	p.Move(o, 10, 0)
	assert.InDelta(t, -0.04, o.Target[0], 1e-5)
	assert.Zero(t, o.Yaw)

	p.Release(ButtonLeft)
	assert.True(t, p.Dragging(), "releasing another button keeps the gesture")
}

func TestPointerWheelAndNilControls(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 100)
	c.Position = mgl32.Vec3{0, 0, 2}
	o := NewOrbitControls(c)
	var p Pointer

	p.Wheel(o, 1)
	assert.InDelta(t, 1.8, o.Distance, 1e-5)

	p.Press(ButtonLeft, 0, 0)
	assert.NotPanics(t, func() {
		p.Move(nil, 5, 5)
		p.Wheel(nil, 1)
	})
}
