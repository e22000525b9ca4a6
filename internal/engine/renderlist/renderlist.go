// Package renderlist turns a scene graph into the ordered draw calls and
// shadow map assignments a frame needs. It holds no GPU state.
package renderlist

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

// Item is one draw call.
type Item struct {
	Object   scene.Object
	Geometry *geometry.Geometry
	Material material.Material
	Model    mgl32.Mat4
	// Depth is the view-space distance of the object origin in front of
	// the camera.
	Depth   float32
	Receive bool
}

// List is a frame's draw calls by pass.
type List struct {
	Opaque      []Item
	Transparent []Item
	Lines       []Item
	Casters     []Item
	// Bounds covers every mesh, used to fit shadow cameras.
	Bounds geometry.Box3
}

// Reset empties l, keeping capacity.
func (l *List) Reset() {
	l.Opaque = l.Opaque[:0]
	l.Transparent = l.Transparent[:0]
	l.Lines = l.Lines[:0]
	l.Casters = l.Casters[:0]
	l.Bounds = emptyBox()
}

func emptyBox() geometry.Box3 {
	const big = 1e30
	return geometry.Box3{Min: mgl32.Vec3{big, big, big}, Max: mgl32.Vec3{-big, -big, -big}}
}

// Build collects the visible meshes and line sets of s as seen from cam.
// Opaque meshes are sorted by lighting model then front to back,
// transparent ones back to front. Lines keep traversal order. Objects with
// a missing or disposed geometry are skipped.
func Build(l *List, s *scene.Scene, cam camera.Camera) {
	l.Reset()
	view := camera.ViewMatrix(cam)
	s.TraverseVisible(func(obj scene.Object) {
		switch o := obj.(type) {
		case scene.MeshObject:
			m := o.MeshData()
			if !drawable(m.Geometry) || m.Material == nil {
				return
			}
			it := item(obj, m.Geometry, m.Material, view)
			it.Receive = m.ReceiveShadow
			l.grow(m.Geometry, it.Model)
			if m.CastShadow {
				l.Casters = append(l.Casters, it)
			}
			if m.Material.Common().Blended() {
				l.Transparent = append(l.Transparent, it)
			} else {
				l.Opaque = append(l.Opaque, it)
			}
		case scene.LineObject:
			ls := o.LineData()
			if !drawable(ls.Geometry) || ls.Material == nil {
				return
			}
			l.Lines = append(l.Lines, item(obj, ls.Geometry, ls.Material, view))
		}
	})

	sort.SliceStable(l.Opaque, func(i, j int) bool {
		a, b := l.Opaque[i], l.Opaque[j]
		if ka, kb := a.Material.Kind(), b.Material.Kind(); ka != kb {
			return ka < kb
		}
		return a.Depth < b.Depth
	})
	sort.SliceStable(l.Transparent, func(i, j int) bool {
		return l.Transparent[i].Depth > l.Transparent[j].Depth
	})
}

func drawable(g *geometry.Geometry) bool {
	return g != nil && !g.Disposed() && len(g.Positions) > 0
}

func item(obj scene.Object, g *geometry.Geometry, m material.Material, view mgl32.Mat4) Item {
	model := obj.Base().WorldMatrix()
	p := view.Mul4x1(model.Col(3))
	return Item{Object: obj, Geometry: g, Material: m, Model: model, Depth: -p[2]}
}

// grow extends the bounds by the geometry's box in world space.
func (l *List) grow(g *geometry.Geometry, model mgl32.Mat4) {
	b := g.BoundingBox()
	if b.Empty() {
		return
	}
	for i := 0; i < 8; i++ {
		c := mgl32.Vec3{pick(i&1, b.Min[0], b.Max[0]), pick(i&2, b.Min[1], b.Max[1]), pick(i&4, b.Min[2], b.Max[2])}
		w := model.Mul4x1(c.Vec4(1)).Vec3()
		for k := 0; k < 3; k++ {
			l.Bounds.Min[k] = min(l.Bounds.Min[k], w[k])
			l.Bounds.Max[k] = max(l.Bounds.Max[k], w[k])
		}
	}
}

func pick(bit int, lo, hi float32) float32 {
	if bit != 0 {
		return hi
	}
	return lo
}

// NormalMatrix is the inverse transpose of the model matrix's upper 3x3.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}
