// Package scene provides the scene graph: transform nodes with owned
// children, meshes, line segments and the root Scene with its background,
// environment and fog.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Object is anything that can live in the scene graph.
type Object interface {
	Base() *Node
}

// Node holds a local transform and the children it owns. A child's world
// transform is its local transform composed with its parent's world
// transform. Rotation is Euler angles in radians applied in XYZ order.
type Node struct {
	Name string // debug label

	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3

	Visible       bool
	CastShadow    bool
	ReceiveShadow bool

	parent   *Node
	children []Object
}

// MakeNode returns a node with unit scale, visible. Types embedding Node
// initialize it with this.
func MakeNode() Node {
	return Node{
		Scale:   mgl32.Vec3{1, 1, 1},
		Visible: true,
	}
}

// NewNode creates an empty transform node, used as a pivot.
func NewNode(name string) *Node {
	n := MakeNode()
	n.Name = name
	return &n
}

// Base returns n itself. Embedding types inherit it.
func (n *Node) Base() *Node { return n }

// Parent returns the owning node or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the direct children in insertion order.
func (n *Node) Children() []Object { return n.children }

// Add attaches objects as children, detaching them from any previous parent.
func (n *Node) Add(objs ...Object) {
	for _, obj := range objs {
		child := obj.Base()
		if child == n {
			continue
		}
		if child.parent != nil {
			child.parent.Remove(obj)
		}
		child.parent = n
		n.children = append(n.children, obj)
	}
}

// Remove detaches obj if it is a direct child. It reports whether obj was found.
func (n *Node) Remove(obj Object) bool {
	child := obj.Base()
	for i, c := range n.children {
		if c.Base() == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Clear detaches all children.
func (n *Node) Clear() {
	for _, c := range n.children {
		c.Base().parent = nil
	}
	n.children = nil
}

// Traverse calls fn for every descendant, depth first, parents before
// children. n itself is not visited.
func (n *Node) Traverse(fn func(Object)) {
	for _, c := range n.children {
		fn(c)
		c.Base().Traverse(fn)
	}
}

// TraverseVisible is Traverse that skips hidden subtrees.
func (n *Node) TraverseVisible(fn func(Object)) {
	for _, c := range n.children {
		if !c.Base().Visible {
			continue
		}
		fn(c)
		c.Base().TraverseVisible(fn)
	}
}

// LocalMatrix returns T * R * S.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	s := mgl32.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(EulerMatrix(n.Rotation)).Mul4(s)
}

// WorldMatrix composes the local matrices of n and all its ancestors.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the origin of n in world space.
func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}

// Quaternion returns the local rotation as a quaternion.
func (n *Node) Quaternion() mgl32.Quat {
	return mgl32.Mat4ToQuat(EulerMatrix(n.Rotation))
}

// SetQuaternion sets the local rotation from q.
func (n *Node) SetQuaternion(q mgl32.Quat) {
	n.Rotation = EulerFromMatrix(q.Normalize().Mat4())
}

// LookAt rotates n so that its -Z axis points at the world-space target,
// with +Y kept as close to world up as possible. Cameras use this directly.
func (n *Node) LookAt(target mgl32.Vec3) {
	eye := n.WorldPosition()
	if eye.Sub(target).Len() < 1e-6 {
		return
	}
	up := mgl32.Vec3{0, 1, 0}
	dir := target.Sub(eye).Normalize()
	if abs(dir.Dot(up)) > 0.9999 {
		up = mgl32.Vec3{0, 0, 1}
	}
	// The view matrix rotation is the inverse of the world rotation.
	world := mgl32.LookAtV(eye, target, up).Mat3().Transpose().Mat4()
	if n.parent != nil {
		parentRot := rotationOnly(n.parent.WorldMatrix())
		world = parentRot.Transpose().Mul4(world)
	}
	n.Rotation = EulerFromMatrix(world)
}

// rotationOnly strips translation and scale from m.
func rotationOnly(m mgl32.Mat4) mgl32.Mat4 {
	x, y, z := mgl32.Extract3DScale(m)
	r := m.Mat3()
	for i := 0; i < 3; i++ {
		r[i] /= nonZero(x)
		r[3+i] /= nonZero(y)
		r[6+i] /= nonZero(z)
	}
	return r.Mat4()
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
