package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.Less(t, want.Sub(got).Len(), float32(1e-4), "want %v, got %v", want, got)
}

func TestAddReparents(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	child := NewNode("child")

	a.Add(child)
	require.Same(t, a, child.Parent())
	require.Len(t, a.Children(), 1)

	b.Add(child)
	assert.Same(t, b, child.Parent())
	assert.Empty(t, a.Children())
	assert.Len(t, b.Children(), 1)

	assert.True(t, b.Remove(child))
	assert.Nil(t, child.Parent())
	assert.False(t, b.Remove(child))
}

func TestAddSelfIgnored(t *testing.T) {
	n := NewNode("n")
	n.Add(n)
	assert.Empty(t, n.Children())
}

func TestWorldPositionComposesAncestors(t *testing.T) {
	// big sphere -> pivot -> small sphere, as in the orbiting demos
	root := NewNode("big")
	root.Position = mgl32.Vec3{0, -0.5, 0}

	pivot := NewNode("pivot")
	pivot.Position = mgl32.Vec3{0, 0.5, 0}
	pivot.Rotation = mgl32.Vec3{0, DegToRad(90), 0}
	root.Add(pivot)

	leaf := NewNode("leaf")
	leaf.Position = mgl32.Vec3{2, 0, 0}
	pivot.Add(leaf)

	// Rotating +x by 90 degrees about y gives -z.
	assertVec3(t, mgl32.Vec3{0, 0, -2}, leaf.WorldPosition())

	root.Scale = mgl32.Vec3{2, 2, 2}
	assertVec3(t, mgl32.Vec3{0, 0.5, -4}, leaf.WorldPosition())
}

func TestEightPivotsAtFortyFiveDegrees(t *testing.T) {
	parent := NewNode("parent")
	const count = 8
	for i := 0; i < count; i++ {
		p := NewNode("pivot")
		p.Rotation[1] = DegToRad(360) / count * float32(i)
		parent.Add(p)
	}

	require.Len(t, parent.Children(), count)
	for i, c := range parent.Children() {
		assert.InDelta(t, float32(i)*45, RadToDeg(c.Base().Rotation[1]), 1e-3)
	}
}

func TestEulerRoundTrip(t *testing.T) {
	angles := []mgl32.Vec3{
		{0, 0, 0},
		{0.3, -0.7, 1.2},
		{-1.1, 0.4, -2.5},
		{DegToRad(-90), 0, 0},
	}
	for _, r := range angles {
		got := EulerFromMatrix(EulerMatrix(r))
		assertVec3(t, r, got)
	}
}

func TestEulerMatrixOrder(t *testing.T) {
	// With X applied last, a y-rotation of +x lands in the xz plane and the
	// x-rotation then tilts it: Rx * Ry * v.
	r := mgl32.Vec3{DegToRad(90), DegToRad(90), 0}
	v := EulerMatrix(r).Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assertVec3(t, mgl32.Vec3{0, 1, 0}, v)
}

func TestSetQuaternion(t *testing.T) {
	n := NewNode("n")
	n.SetQuaternion(mgl32.QuatRotate(1.25, mgl32.Vec3{0, 1, 0}))
	assertVec3(t, mgl32.Vec3{0, 1.25, 0}, n.Rotation)

	q := n.Quaternion()
	assert.True(t, q.OrientationEqualThreshold(mgl32.QuatRotate(1.25, mgl32.Vec3{0, 1, 0}), 1e-4))
}

func TestLookAtPointsNegativeZ(t *testing.T) {
	n := NewNode("cam")
	n.Position = mgl32.Vec3{2, 2, 3.5}
	n.LookAt(mgl32.Vec3{})

	forward := n.WorldMatrix().Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	want := mgl32.Vec3{-2, -2, -3.5}.Normalize()
	assertVec3(t, want, forward)

	up := n.WorldMatrix().Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
	assert.Greater(t, up[1], float32(0))
}

func TestLookAtUnderRotatedParent(t *testing.T) {
	parent := NewNode("parent")
	parent.Rotation = mgl32.Vec3{0, math32.Pi / 2, 0}
	n := NewNode("child")
	parent.Add(n)

	n.LookAt(mgl32.Vec3{0, 0, -5})
	forward := n.WorldMatrix().Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	assertVec3(t, mgl32.Vec3{0, 0, -1}, forward)
}

func TestTraverseVisible(t *testing.T) {
	root := NewNode("root")
	hidden := NewNode("hidden")
	hidden.Visible = false
	hidden.Add(NewNode("under-hidden"))
	root.Add(hidden, NewNode("shown"))

	var all, visible int
	root.Traverse(func(Object) { all++ })
	root.TraverseVisible(func(Object) { visible++ })
	assert.Equal(t, 3, all)
	assert.Equal(t, 1, visible)
}

func TestFogFactor(t *testing.T) {
	f := &Fog{Near: 1, Far: 3.5}
	assert.Equal(t, float32(0), f.Factor(0.5))
	assert.Equal(t, float32(1), f.Factor(10))
	assert.InDelta(t, 0.5, f.Factor(2.25), 1e-6)
}
