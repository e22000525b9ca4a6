package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type edgeKey struct{ a, b uint32 }

func makeEdgeKey(a, b uint32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Wireframe returns a line geometry with every unique triangle edge of g
// drawn once.
func Wireframe(g *Geometry) *Geometry {
	out := &Geometry{Type: "wireframe", Mode: Lines}
	seen := make(map[edgeKey]struct{})
	forEachTriangle(g, func(tri [3]uint32) {
		for e := 0; e < 3; e++ {
			k := makeEdgeKey(tri[e], tri[(e+1)%3])
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out.addLine(g.Position(int(k.a)), g.Position(int(k.b)))
		}
	})
	return out
}

// Edges returns the edges of g whose adjacent faces meet at more than
// thresholdDeg degrees, plus every boundary edge. Vertices closer than a
// small epsilon are merged first so that split seams are not drawn.
func Edges(g *Geometry, thresholdDeg float32) *Geometry {
	out := &Geometry{Type: "edges", Mode: Lines}
	cosThreshold := math32.Cos(thresholdDeg * math32.Pi / 180)

	type quant [3]int32
	merged := make(map[quant]uint32)
	canon := func(i uint32) uint32 {
		p := g.Position(int(i))
		k := quant{int32(math32.Round(p[0] * 1e4)), int32(math32.Round(p[1] * 1e4)), int32(math32.Round(p[2] * 1e4))}
		if c, ok := merged[k]; ok {
			return c
		}
		merged[k] = i
		return i
	}

	type faceEdge struct {
		normal mgl32.Vec3
		a, b   uint32
		count  int
	}
	edges := make(map[edgeKey]*faceEdge)
	var order []edgeKey
	forEachTriangle(g, func(tri [3]uint32) {
		c := [3]uint32{canon(tri[0]), canon(tri[1]), canon(tri[2])}
		if c[0] == c[1] || c[1] == c[2] || c[0] == c[2] {
			return
		}
		pa, pb, pc := g.Position(int(c[0])), g.Position(int(c[1])), g.Position(int(c[2]))
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		if n.Len() < 1e-12 {
			return
		}
		n = n.Normalize()
		for e := 0; e < 3; e++ {
			k := makeEdgeKey(c[e], c[(e+1)%3])
			fe, ok := edges[k]
			if !ok {
				edges[k] = &faceEdge{normal: n, a: k.a, b: k.b, count: 1}
				order = append(order, k)
				continue
			}
			fe.count++
			if fe.normal.Dot(n) <= cosThreshold {
				fe.count = -1 << 20
			}
		}
	})
	for _, k := range order {
		fe := edges[k]
		if fe.count == 1 || fe.count < 0 {
			out.addLine(g.Position(int(fe.a)), g.Position(int(fe.b)))
		}
	}
	return out
}

func (g *Geometry) addLine(a, b mgl32.Vec3) {
	g.Positions = append(g.Positions, a[0], a[1], a[2], b[0], b[1], b[2])
}

// LineCount returns the number of segments in a line geometry.
func (g *Geometry) LineCount() int {
	if g.Mode != Lines {
		return 0
	}
	if len(g.Indices) > 0 {
		return len(g.Indices) / 2
	}
	return g.VertexCount() / 2
}

func forEachTriangle(g *Geometry, fn func([3]uint32)) {
	if g.Mode != Triangles {
		return
	}
	if len(g.Indices) > 0 {
		for i := 0; i+2 < len(g.Indices); i += 3 {
			fn([3]uint32{g.Indices[i], g.Indices[i+1], g.Indices[i+2]})
		}
		return
	}
	for i := uint32(0); int(i)+2 < g.VertexCount(); i += 3 {
		fn([3]uint32{i, i + 1, i + 2})
	}
}
