// Package debug provides line helpers that visualize axes, grids, lights,
// cameras and bounds, plus screenshot capture.
package debug

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

// Helper is a line object that follows something else in the scene. Update
// rebuilds its lines from the current state of what it tracks. Helpers draw
// in world space and belong directly under the scene root.
type Helper interface {
	scene.Object
	Update()
}

// lines accumulates segments with per-vertex colors.
type lines struct {
	pos, col []float32
}

func (l *lines) add(a, b mgl32.Vec3, ca, cb color.Color) {
	l.pos = append(l.pos, a[0], a[1], a[2], b[0], b[1], b[2])
	l.col = append(l.col, ca.R, ca.G, ca.B, cb.R, cb.G, cb.B)
}

func (l *lines) seg(a, b mgl32.Vec3, c color.Color) { l.add(a, b, c, c) }

// loop adds a closed polyline.
func (l *lines) loop(pts []mgl32.Vec3, c color.Color) {
	for i := range pts {
		l.seg(pts[i], pts[(i+1)%len(pts)], c)
	}
}

// circle returns n points of a circle of radius r around center, spanned
// by the unit vectors u and v.
func circle(center, u, v mgl32.Vec3, r float32, n int) []mgl32.Vec3 {
	pts := make([]mgl32.Vec3, n)
	for i := range pts {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(n))
		pts[i] = center.Add(u.Mul(c * r)).Add(v.Mul(s * r))
	}
	return pts
}

// basis returns two unit vectors perpendicular to d and each other.
func basis(d mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	ref := mgl32.Vec3{0, 1, 0}
	if math32.Abs(d[1]) > 0.99 {
		ref = mgl32.Vec3{1, 0, 0}
	}
	u := d.Cross(ref).Normalize()
	return u, d.Cross(u).Normalize()
}

// lineHelper is the shared line object that every helper embeds.
type lineHelper struct {
	scene.LineSegments
}

func newLineHelper(name string) lineHelper {
	mat := material.NewLineBasic(color.White)
	mat.VertexColors = true
	h := lineHelper{LineSegments: *scene.NewLineSegments(&geometry.Geometry{Type: name, Mode: geometry.Lines}, mat)}
	h.Name = name
	return h
}

// set replaces the helper's vertices in place.
func (h *lineHelper) set(l *lines) {
	g := h.Geometry
	g.Positions = append(g.Positions[:0], l.pos...)
	g.Colors = append(g.Colors[:0], l.col...)
	g.Version++
}

// Axes draws the X, Y and Z axes in red, green and blue.
type Axes struct {
	lineHelper
	Size float32
}

// NewAxes creates an axes helper of the given length.
func NewAxes(size float32) *Axes {
	a := &Axes{lineHelper: newLineHelper("axes"), Size: size}
	a.Update()
	return a
}

func (a *Axes) Update() {
	var l lines
	o := mgl32.Vec3{}
	l.seg(o, mgl32.Vec3{a.Size, 0, 0}, color.Hex(0xff0000))
	l.seg(o, mgl32.Vec3{0, a.Size, 0}, color.Hex(0x00ff00))
	l.seg(o, mgl32.Vec3{0, 0, a.Size}, color.Hex(0x0000ff))
	a.set(&l)
}

// Grid draws a square grid on the XZ plane. The two center lines use
// CenterColor and the rest GridColor.
type Grid struct {
	lineHelper
	Size        float32
	Divisions   int
	CenterColor color.Color
	GridColor   color.Color
}

// NewGrid creates a grid helper. Unlike the other helpers a grid may be
// positioned freely since it tracks nothing.
func NewGrid(size float32, divisions int, center, grid color.Color) *Grid {
	g := &Grid{lineHelper: newLineHelper("grid"), Size: size, Divisions: max(divisions, 1), CenterColor: center, GridColor: grid}
	g.Update()
	return g
}

func (g *Grid) Update() {
	var l lines
	half := g.Size / 2
	step := g.Size / float32(g.Divisions)
	for i := 0; i <= g.Divisions; i++ {
		k := -half + float32(i)*step
		c := g.GridColor
		if 2*i == g.Divisions {
			c = g.CenterColor
		}
		l.seg(mgl32.Vec3{-half, 0, k}, mgl32.Vec3{half, 0, k}, c)
		l.seg(mgl32.Vec3{k, 0, -half}, mgl32.Vec3{k, 0, half}, c)
	}
	g.set(&l)
}

// Box outlines the world bounds of every mesh under Object.
type Box struct {
	lineHelper
	Object scene.Object
	Color  color.Color
}

// NewBox creates a bounds helper for obj.
func NewBox(obj scene.Object, c color.Color) *Box {
	b := &Box{lineHelper: newLineHelper("box"), Object: obj, Color: c}
	b.Update()
	return b
}

func (b *Box) Update() {
	bounds, ok := WorldBounds(b.Object)
	if !ok {
		b.set(&lines{})
		return
	}
	var l lines
	v := BoxLines(bounds.Min, bounds.Max)
	for i := 0; i+5 < len(v); i += 6 {
		l.seg(mgl32.Vec3{v[i], v[i+1], v[i+2]}, mgl32.Vec3{v[i+3], v[i+4], v[i+5]}, b.Color)
	}
	b.set(&l)
}
