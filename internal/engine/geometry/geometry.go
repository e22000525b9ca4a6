// Package geometry builds indexed vertex buffers for the primitive shapes the
// demos use: parametric solids, flat shapes, extrusions, text and line sets
// derived from other geometries.
package geometry

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrEmptyShape is returned when a shape has too few points to fill.
var ErrEmptyShape = errors.New("geometry: shape has fewer than 3 points")

// Mode tells the renderer how to assemble Indices.
type Mode int

const (
	Triangles Mode = iota
	Lines
)

// Group is a sub-range of Indices drawn with one material slot.
type Group struct {
	Start         int
	Count         int
	MaterialIndex int
}

// Geometry holds vertex attributes as flat float slices: Positions and
// Normals have 3 components per vertex, UVs 2 and Colors 3.
type Geometry struct {
	Type      string
	Mode      Mode
	Positions []float32
	Normals   []float32
	UVs       []float32
	Colors    []float32
	Indices   []uint32
	Groups    []Group

	// Version is bumped by code that rewrites attributes in place so GPU
	// copies know to refresh.
	Version int

	disposals int
	onDispose []func(*Geometry)
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int { return len(g.Positions) / 3 }

// TriangleCount returns the number of triangles, or 0 for line geometry.
func (g *Geometry) TriangleCount() int {
	if g.Mode != Triangles {
		return 0
	}
	return len(g.Indices) / 3
}

// Position returns vertex i.
func (g *Geometry) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{g.Positions[3*i], g.Positions[3*i+1], g.Positions[3*i+2]}
}

// OnDispose registers fn to run when the geometry is first disposed.
// Renderers use it to free GPU buffers.
func (g *Geometry) OnDispose(fn func(*Geometry)) {
	g.onDispose = append(g.onDispose, fn)
}

// Dispose releases the geometry. Listeners run on the first call only;
// every call is counted.
func (g *Geometry) Dispose() {
	g.disposals++
	if g.disposals > 1 {
		return
	}
	for _, fn := range g.onDispose {
		fn(g)
	}
	g.onDispose = nil
}

// Disposed reports whether Dispose has been called.
func (g *Geometry) Disposed() bool { return g.disposals > 0 }

// Disposals returns how many times Dispose has been called.
func (g *Geometry) Disposals() int { return g.disposals }

// Box3 is an axis aligned bounding box.
type Box3 struct {
	Min, Max mgl32.Vec3
}

// Center returns the midpoint of b.
func (b Box3) Center() mgl32.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

// Size returns the extent of b along each axis.
func (b Box3) Size() mgl32.Vec3 { return b.Max.Sub(b.Min) }

// Empty reports whether b contains no points.
func (b Box3) Empty() bool { return b.Max[0] < b.Min[0] }

// BoundingBox computes the bounds of all positions.
func (g *Geometry) BoundingBox() Box3 {
	inf := math32.Inf(1)
	b := Box3{Min: mgl32.Vec3{inf, inf, inf}, Max: mgl32.Vec3{-inf, -inf, -inf}}
	for i := 0; i+2 < len(g.Positions); i += 3 {
		for k := 0; k < 3; k++ {
			v := g.Positions[i+k]
			b.Min[k] = math32.Min(b.Min[k], v)
			b.Max[k] = math32.Max(b.Max[k], v)
		}
	}
	return b
}

// Translate moves every vertex.
func (g *Geometry) Translate(x, y, z float32) *Geometry {
	for i := 0; i+2 < len(g.Positions); i += 3 {
		g.Positions[i] += x
		g.Positions[i+1] += y
		g.Positions[i+2] += z
	}
	return g
}

// Center translates the geometry so its bounding box is centered at the origin.
func (g *Geometry) Center() *Geometry {
	b := g.BoundingBox()
	if b.Empty() {
		return g
	}
	c := b.Center()
	return g.Translate(-c[0], -c[1], -c[2])
}

// Scale multiplies positions per axis. Normals are corrected for non-uniform
// and mirroring scales, and triangle winding is flipped when the scale
// mirrors an odd number of axes.
func (g *Geometry) Scale(x, y, z float32) *Geometry {
	for i := 0; i+2 < len(g.Positions); i += 3 {
		g.Positions[i] *= x
		g.Positions[i+1] *= y
		g.Positions[i+2] *= z
	}
	inv := mgl32.Vec3{1 / nonZero(x), 1 / nonZero(y), 1 / nonZero(z)}
	for i := 0; i+2 < len(g.Normals); i += 3 {
		n := mgl32.Vec3{g.Normals[i] * inv[0], g.Normals[i+1] * inv[1], g.Normals[i+2] * inv[2]}
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		g.Normals[i], g.Normals[i+1], g.Normals[i+2] = n[0], n[1], n[2]
	}
	if x*y*z < 0 && g.Mode == Triangles {
		for i := 0; i+2 < len(g.Indices); i += 3 {
			g.Indices[i+1], g.Indices[i+2] = g.Indices[i+2], g.Indices[i+1]
		}
	}
	return g
}

// RotateX rotates positions and normals about the X axis.
func (g *Geometry) RotateX(rad float32) *Geometry {
	return g.applyRotation(mgl32.Rotate3DX(rad))
}

// RotateY rotates positions and normals about the Y axis.
func (g *Geometry) RotateY(rad float32) *Geometry {
	return g.applyRotation(mgl32.Rotate3DY(rad))
}

// RotateZ rotates positions and normals about the Z axis.
func (g *Geometry) RotateZ(rad float32) *Geometry {
	return g.applyRotation(mgl32.Rotate3DZ(rad))
}

func (g *Geometry) applyRotation(m mgl32.Mat3) *Geometry {
	rotate := func(buf []float32) {
		for i := 0; i+2 < len(buf); i += 3 {
			v := m.Mul3x1(mgl32.Vec3{buf[i], buf[i+1], buf[i+2]})
			buf[i], buf[i+1], buf[i+2] = v[0], v[1], v[2]
		}
	}
	rotate(g.Positions)
	rotate(g.Normals)
	return g
}

// ComputeVertexNormals replaces Normals with area weighted face normals
// accumulated per vertex. Vertices not shared between faces get flat normals.
func (g *Geometry) ComputeVertexNormals() {
	normals := make([]float32, len(g.Positions))
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a, b, c := int(g.Indices[i]), int(g.Indices[i+1]), int(g.Indices[i+2])
		pa, pb, pc := g.Position(a), g.Position(b), g.Position(c)
		n := pc.Sub(pb).Cross(pa.Sub(pb))
		for _, v := range [3]int{a, b, c} {
			normals[3*v] += n[0]
			normals[3*v+1] += n[1]
			normals[3*v+2] += n[2]
		}
	}
	for i := 0; i+2 < len(normals); i += 3 {
		n := mgl32.Vec3{normals[i], normals[i+1], normals[i+2]}
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		normals[i], normals[i+1], normals[i+2] = n[0], n[1], n[2]
	}
	g.Normals = normals
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

// builder accumulates vertices and triangle indices.
type builder struct {
	pos, nrm, uv []float32
	idx          []uint32
	groups       []Group
	groupStart   int
}

func (b *builder) count() uint32 { return uint32(len(b.pos) / 3) }

func (b *builder) vertex(p, n mgl32.Vec3, u, v float32) uint32 {
	i := b.count()
	b.pos = append(b.pos, p[0], p[1], p[2])
	b.nrm = append(b.nrm, n[0], n[1], n[2])
	b.uv = append(b.uv, u, v)
	return i
}

func (b *builder) tri(x, y, z uint32) {
	b.idx = append(b.idx, x, y, z)
}

// quad adds the two triangles (a, b, d) and (b, c, d).
func (b *builder) quad(a, bb, c, d uint32) {
	b.idx = append(b.idx, a, bb, d, bb, c, d)
}

// endGroup closes the index range started by the previous endGroup.
func (b *builder) endGroup(material int) {
	n := len(b.idx) - b.groupStart
	b.groups = append(b.groups, Group{Start: b.groupStart, Count: n, MaterialIndex: material})
	b.groupStart = len(b.idx)
}

func (b *builder) build(kind string) *Geometry {
	return &Geometry{
		Type:      kind,
		Mode:      Triangles,
		Positions: b.pos,
		Normals:   b.nrm,
		UVs:       b.uv,
		Indices:   b.idx,
		Groups:    b.groups,
	}
}

func atLeast(v, min int) int {
	if v < min {
		return min
	}
	return v
}
