package renderlist

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
	"github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

func setup() (*scene.Scene, camera.Camera) {
	s := scene.New()
	cam := camera.NewPerspective(75, 1, 0.1, 100)
	cam.Position = mgl32.Vec3{0, 0, 5}
	return s, cam
}

func glass() *material.Phong {
	m := material.NewPhong(color.Hex(0x5588cc))
	m.Transparent = true
	m.Opacity = 0.5
	return m
}

func TestBuildSortsTransparentBackToFront(t *testing.T) {
	s, cam := setup()
	box := geometry.Box(1, 1, 1, 1, 1, 1)
	near := scene.NewMesh(box, glass())
	far := scene.NewMesh(box, glass())
	far.Position = mgl32.Vec3{0, 0, -3}
	s.Add(near, far)

	var l List
	Build(&l, s, cam)
	require.Len(t, l.Transparent, 2)
	assert.Same(t, far, l.Transparent[0].Object)
	assert.InDelta(t, 8, l.Transparent[0].Depth, 1e-4)
	assert.Same(t, near, l.Transparent[1].Object)
	assert.Empty(t, l.Opaque)
}

func TestBuildGroupsOpaqueByKind(t *testing.T) {
	s, cam := setup()
	box := geometry.Box(1, 1, 1, 1, 1, 1)
	std := scene.NewMesh(box, material.NewStandard(color.White))
	phongFar := scene.NewMesh(box, material.NewPhong(color.White))
	phongFar.Position = mgl32.Vec3{0, 0, -4}
	phongNear := scene.NewMesh(box, material.NewPhong(color.White))
	s.Add(std, phongFar, phongNear)

	var l List
	Build(&l, s, cam)
	require.Len(t, l.Opaque, 3)
	assert.Same(t, phongNear, l.Opaque[0].Object)
	assert.Same(t, phongFar, l.Opaque[1].Object)
	assert.Same(t, std, l.Opaque[2].Object)
}

func TestBuildSkipsHiddenAndDisposed(t *testing.T) {
	s, cam := setup()
	gone := geometry.Box(1, 1, 1, 1, 1, 1)
	gone.Dispose()
	s.Add(scene.NewMesh(gone, material.NewPhong(color.White)))

	parent := scene.NewGroup("hidden")
	parent.Visible = false
	parent.Add(scene.NewMesh(geometry.Box(1, 1, 1, 1, 1, 1), material.NewPhong(color.White)))
	s.Add(parent)

	lines := scene.NewLineSegments(geometry.Wireframe(geometry.Box(1, 1, 1, 1, 1, 1)), material.NewLineBasic(color.White))
	s.Add(lines)

	var l List
	Build(&l, s, cam)
	assert.Empty(t, l.Opaque)
	require.Len(t, l.Lines, 1)
	assert.Same(t, lines, l.Lines[0].Object)
}

func TestBuildCastersAndBounds(t *testing.T) {
	s, cam := setup()
	m := scene.NewMesh(geometry.Box(2, 2, 2, 1, 1, 1), material.NewStandard(color.White))
	m.Position = mgl32.Vec3{3, 0, 0}
	m.CastShadow = true
	m.ReceiveShadow = true
	s.Add(m)

	var l List
	Build(&l, s, cam)
	require.Len(t, l.Casters, 1)
	assert.True(t, l.Casters[0].Receive)
	assert.InDelta(t, 2, l.Bounds.Min[0], 1e-5)
	assert.InDelta(t, 4, l.Bounds.Max[0], 1e-5)

	Build(&l, scene.New(), cam)
	assert.Empty(t, l.Casters)
	assert.True(t, l.Bounds.Empty())
}

func TestNormalMatrixUndoesNonUniformScale(t *testing.T) {
	model := mgl32.Scale3D(2, 1, 1)
	n := NormalMatrix(model).Mul3x1(mgl32.Vec3{1, 1, 0})
	assert.InDelta(t, 0.5, n[0], 1e-6)
	assert.InDelta(t, 1, n[1], 1e-6)
}

func TestPlanShadows(t *testing.T) {
	dirOff := lighting.NewDirectional(color.White, 1)
	dir := lighting.NewDirectional(color.White, 1)
	dir.Shadow.Enabled = true
	spot := lighting.NewSpot(color.White, 1, 0, 0.5, 0)
	spot.Shadow.Enabled = true
	point := lighting.NewPoint(color.White, 1, 10)
	point.Shadow.Enabled = true

	slots := PlanShadows([]lighting.Light{dirOff, dir, spot, point, lighting.NewAmbient(color.White, 1)})
	require.Len(t, slots, 3)

	assert.Equal(t, 0, slots[0].Slot)
	assert.Equal(t, 1, slots[0].LightIndex)
	assert.False(t, slots[0].Cube)

	assert.Equal(t, 1, slots[1].Slot)
	assert.Equal(t, 0, slots[1].LightIndex)

	assert.True(t, slots[2].Cube)
	assert.Equal(t, 0, slots[2].Slot)
	assert.Equal(t, float32(10), slots[2].Far)
}

func TestPlanShadowsRunsOutOfSlots(t *testing.T) {
	var lights []lighting.Light
	for i := 0; i < MaxShadowMaps+2; i++ {
		l := lighting.NewDirectional(color.White, 1)
		l.Shadow.Enabled = true
		lights = append(lights, l)
	}
	assert.Len(t, PlanShadows(lights), MaxShadowMaps)
}
