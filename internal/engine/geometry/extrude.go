package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ExtrudeOptions controls how a shape is pushed along +Z.
type ExtrudeOptions struct {
	Steps          int
	Depth          float32
	BevelEnabled   bool
	BevelThickness float32
	BevelSize      float32
	BevelOffset    float32
	BevelSegments  int
	CurveSegments  int
}

// DefaultExtrudeOptions mirrors the usual extrusion defaults.
func DefaultExtrudeOptions() ExtrudeOptions {
	return ExtrudeOptions{
		Steps:          1,
		Depth:          1,
		BevelEnabled:   true,
		BevelThickness: 0.2,
		BevelSize:      0.1,
		BevelOffset:    0,
		BevelSegments:  3,
		CurveSegments:  12,
	}
}

// Extrude turns shapes into solids: a front cap at the bevel start, side
// walls through every bevel and step layer, and a back cap at Depth plus
// the bevel thickness. Caps are group 0 and walls group 1. Vertices are not
// shared between faces, so normals are flat.
func Extrude(shapes []*Shape, opts ExtrudeOptions) (*Geometry, error) {
	steps := atLeast(opts.Steps, 1)
	bevelSegments := atLeast(opts.BevelSegments, 1)
	thickness, size, offset := opts.BevelThickness, opts.BevelSize, opts.BevelOffset
	if !opts.BevelEnabled {
		bevelSegments, thickness, size, offset = 0, 0, 0, 0
	}

	var caps, walls []mgl32.Vec3
	var capUV, wallUV []mgl32.Vec2

	for _, s := range shapes {
		contour, holes := s.ExtractPoints(opts.CurveSegments)
		if len(contour) < 3 {
			continue
		}
		// Outer contour clockwise and holes counter-clockwise, so that the
		// left normal of every edge points away from the solid.
		if !IsClockwise(contour) {
			contour = reversed(contour)
		}
		for i, h := range holes {
			if IsClockwise(h) {
				holes[i] = reversed(h)
			}
		}

		faces, err := Triangulate(contour, holes)
		if err != nil {
			return nil, err
		}

		rings := append([][]mgl32.Vec2{contour}, holes...)
		var flat, moves []mgl32.Vec2
		for _, r := range rings {
			flat = append(flat, r...)
			moves = append(moves, bevelVectors(r)...)
		}
		vlen := len(flat)

		// layers[k][i] is vertex i of layer k, front to back.
		var layers [][]mgl32.Vec3
		addLayer := func(bs, z float32) {
			layer := make([]mgl32.Vec3, vlen)
			for i, p := range flat {
				q := p.Add(moves[i].Mul(bs))
				layer[i] = mgl32.Vec3{q[0], q[1], z}
			}
			layers = append(layers, layer)
		}
		for b := 0; b < bevelSegments; b++ {
			t := float32(b) / float32(bevelSegments)
			z := thickness * math32.Cos(t*math32.Pi/2)
			addLayer(size*math32.Sin(t*math32.Pi/2)+offset, -z)
		}
		for st := 0; st <= steps; st++ {
			addLayer(size+offset, opts.Depth/float32(steps)*float32(st))
		}
		for b := bevelSegments - 1; b >= 0; b-- {
			t := float32(b) / float32(bevelSegments)
			z := thickness * math32.Cos(t*math32.Pi/2)
			addLayer(size*math32.Sin(t*math32.Pi/2)+offset, opts.Depth+z)
		}

		front, back := layers[0], layers[len(layers)-1]
		for _, f := range faces {
			// The front cap faces -Z, so its winding is reversed.
			for _, i := range [3]int{f[2], f[1], f[0]} {
				caps = append(caps, front[i])
				capUV = append(capUV, mgl32.Vec2{front[i][0], front[i][1]})
			}
			for _, i := range [3]int{f[0], f[1], f[2]} {
				caps = append(caps, back[i])
				capUV = append(capUV, mgl32.Vec2{back[i][0], back[i][1]})
			}
		}

		start := 0
		for _, r := range rings {
			n := len(r)
			for i := n - 1; i >= 0; i-- {
				j, k := start+i, start+(i-1+n)%n
				for l := 0; l+1 < len(layers); l++ {
					a, bb := layers[l][j], layers[l][k]
					c, d := layers[l+1][k], layers[l+1][j]
					quadUV := wallUVs(a, bb, c, d)
					walls = append(walls, a, bb, d, bb, c, d)
					wallUV = append(wallUV, quadUV[0], quadUV[1], quadUV[3], quadUV[1], quadUV[2], quadUV[3])
				}
			}
			start += n
		}
	}

	if len(caps) == 0 {
		return nil, ErrEmptyShape
	}

	g := &Geometry{Type: "extrude", Mode: Triangles}
	appendTris := func(pos []mgl32.Vec3, uv []mgl32.Vec2) int {
		for i, p := range pos {
			g.Positions = append(g.Positions, p[0], p[1], p[2])
			g.UVs = append(g.UVs, uv[i][0], uv[i][1])
			g.Indices = append(g.Indices, uint32(len(g.Indices)))
		}
		return len(pos)
	}
	n := appendTris(caps, capUV)
	g.Groups = append(g.Groups, Group{Start: 0, Count: n, MaterialIndex: 0})
	m := appendTris(walls, wallUV)
	g.Groups = append(g.Groups, Group{Start: n, Count: m, MaterialIndex: 1})
	g.ComputeVertexNormals()
	return g, nil
}

// bevelVectors returns, per vertex, the direction a bevel pushes it: the
// miter of the two adjacent edges' left normals, lengthened so that both
// edges move by one unit.
func bevelVectors(ring []mgl32.Vec2) []mgl32.Vec2 {
	n := len(ring)
	out := make([]mgl32.Vec2, n)
	for i := range ring {
		prev, cur, next := ring[(i-1+n)%n], ring[i], ring[(i+1)%n]
		n1 := leftNormal(cur.Sub(prev))
		n2 := leftNormal(next.Sub(cur))
		m := n1.Add(n2)
		if m.Len() < 1e-6 {
			out[i] = n1
			continue
		}
		m = m.Normalize()
		d := math32.Max(m.Dot(n1), 0.25)
		out[i] = m.Mul(1 / d)
	}
	return out
}

func leftNormal(e mgl32.Vec2) mgl32.Vec2 {
	if e.Len() < 1e-9 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{-e[1], e[0]}.Normalize()
}

// wallUVs projects a side quad onto whichever of XZ or YZ it spans more.
func wallUVs(a, b, c, d mgl32.Vec3) [4]mgl32.Vec2 {
	if math32.Abs(a[1]-b[1]) < math32.Abs(a[0]-b[0]) {
		return [4]mgl32.Vec2{{a[0], 1 - a[2]}, {b[0], 1 - b[2]}, {c[0], 1 - c[2]}, {d[0], 1 - d[2]}}
	}
	return [4]mgl32.Vec2{{a[1], 1 - a[2]}, {b[1], 1 - b[2]}, {c[1], 1 - c[2]}, {d[1], 1 - d[2]}}
}

func reversed(pts []mgl32.Vec2) []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
