package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

type segmentKind int

const (
	segLine segmentKind = iota
	segQuad
	segCubic
)

type segment struct {
	kind segmentKind
	pts  [4]mgl32.Vec2 // start, controls..., end
}

// Path is a single 2D contour drawn pen-style: MoveTo starts it, the other
// calls extend it from the current point.
type Path struct {
	segs    []segment
	start   mgl32.Vec2
	current mgl32.Vec2
}

// NewPath creates an empty path.
func NewPath() *Path { return &Path{} }

// MoveTo sets the current point without drawing.
func (p *Path) MoveTo(x, y float32) *Path {
	p.start = mgl32.Vec2{x, y}
	p.current = p.start
	return p
}

// LineTo draws a straight line.
func (p *Path) LineTo(x, y float32) *Path {
	end := mgl32.Vec2{x, y}
	p.segs = append(p.segs, segment{kind: segLine, pts: [4]mgl32.Vec2{p.current, end}})
	p.current = end
	return p
}

// QuadraticCurveTo draws a quadratic bezier with control point (cx, cy).
func (p *Path) QuadraticCurveTo(cx, cy, x, y float32) *Path {
	end := mgl32.Vec2{x, y}
	p.segs = append(p.segs, segment{kind: segQuad, pts: [4]mgl32.Vec2{p.current, {cx, cy}, end}})
	p.current = end
	return p
}

// BezierCurveTo draws a cubic bezier with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	end := mgl32.Vec2{x, y}
	p.segs = append(p.segs, segment{kind: segCubic, pts: [4]mgl32.Vec2{p.current, {c1x, c1y}, {c2x, c2y}, end}})
	p.current = end
	return p
}

// ClosePath draws a line back to the MoveTo point if needed.
func (p *Path) ClosePath() *Path {
	if !p.current.ApproxEqual(p.start) {
		p.LineTo(p.start[0], p.start[1])
	}
	return p
}

// Empty reports whether nothing has been drawn.
func (p *Path) Empty() bool { return len(p.segs) == 0 }

// Points samples the path. Lines contribute their end points, curves
// divisions+1 evenly spaced parameter values. Consecutive duplicates are
// dropped.
func (p *Path) Points(divisions int) []mgl32.Vec2 {
	divisions = atLeast(divisions, 1)
	var out []mgl32.Vec2
	push := func(v mgl32.Vec2) {
		if n := len(out); n > 0 && out[n-1].ApproxEqual(v) {
			return
		}
		out = append(out, v)
	}
	for _, s := range p.segs {
		switch s.kind {
		case segLine:
			push(s.pts[0])
			push(s.pts[1])
		case segQuad:
			for i := 0; i <= divisions; i++ {
				t := float32(i) / float32(divisions)
				push(mgl32.QuadraticBezierCurve2D(t, s.pts[0], s.pts[1], s.pts[2]))
			}
		case segCubic:
			for i := 0; i <= divisions; i++ {
				t := float32(i) / float32(divisions)
				push(mgl32.CubicBezierCurve2D(t, s.pts[0], s.pts[1], s.pts[2], s.pts[3]))
			}
		}
	}
	return out
}

// Shape is an outer contour with optional holes.
type Shape struct {
	*Path
	Holes []*Path
}

// NewShape creates an empty shape.
func NewShape() *Shape { return &Shape{Path: NewPath()} }

// ExtractPoints samples the contour and its holes with the same division count.
func (s *Shape) ExtractPoints(divisions int) (contour []mgl32.Vec2, holes [][]mgl32.Vec2) {
	contour = removeClosingPoint(s.Points(divisions))
	for _, h := range s.Holes {
		if pts := removeClosingPoint(h.Points(divisions)); len(pts) >= 3 {
			holes = append(holes, pts)
		}
	}
	return contour, holes
}

func removeClosingPoint(pts []mgl32.Vec2) []mgl32.Vec2 {
	for len(pts) > 1 && pts[0].ApproxEqual(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// Area returns the signed area of a polygon; positive for counter-clockwise.
func Area(pts []mgl32.Vec2) float32 {
	var a float32
	n := len(pts)
	for p, q := n-1, 0; q < n; p, q = q, q+1 {
		a += pts[p][0]*pts[q][1] - pts[q][0]*pts[p][1]
	}
	return a * 0.5
}

// IsClockwise reports whether pts wind clockwise.
func IsClockwise(pts []mgl32.Vec2) bool { return Area(pts) < 0 }

// HeartShape returns the bezier heart outline with its lower tip near (x, y).
func HeartShape(x, y float32) *Shape {
	s := NewShape()
	s.MoveTo(x+2.5, y+2.5).
		BezierCurveTo(x+2.5, y+2.5, x+2, y, x, y).
		BezierCurveTo(x-3, y, x-3, y+3.5, x-3, y+3.5).
		BezierCurveTo(x-3, y+5.5, x-1.5, y+7.7, x+2.5, y+9.5).
		BezierCurveTo(x+6, y+7.7, x+8, y+4.5, x+8, y+3.5).
		BezierCurveTo(x+8, y+3.5, x+8, y, x+5, y).
		BezierCurveTo(x+3.5, y, x+2.5, y+2.5, x+2.5, y+2.5)
	return s
}
