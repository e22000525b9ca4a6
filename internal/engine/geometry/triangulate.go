package geometry

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Triangulate fills a polygon with holes by ear clipping. Triangle indices
// refer to the concatenation of contour followed by each hole in order, and
// every triangle winds counter-clockwise. Input orientation does not matter.
func Triangulate(contour []mgl32.Vec2, holes [][]mgl32.Vec2) ([][3]int, error) {
	if len(contour) < 3 {
		return nil, ErrEmptyShape
	}

	pts := append([]mgl32.Vec2(nil), contour...)
	poly := make([]int, len(contour))
	for i := range poly {
		poly[i] = i
	}
	if Area(contour) < 0 {
		reverseInts(poly)
	}

	type hole struct {
		idx  []int
		maxX float32
	}
	var hs []hole
	for _, h := range holes {
		if len(h) < 3 {
			continue
		}
		base := len(pts)
		pts = append(pts, h...)
		idx := make([]int, len(h))
		for i := range idx {
			idx[i] = base + i
		}
		// Holes wind opposite to the outer contour.
		if Area(h) > 0 {
			reverseInts(idx)
		}
		maxX := float32(-math32.MaxFloat32)
		for _, v := range h {
			maxX = math32.Max(maxX, v[0])
		}
		hs = append(hs, hole{idx: idx, maxX: maxX})
	}
	sort.SliceStable(hs, func(i, j int) bool { return hs[i].maxX > hs[j].maxX })
	for _, h := range hs {
		poly = bridgeHole(pts, poly, h.idx)
	}

	return clipEars(pts, poly), nil
}

// bridgeHole splices hole into poly through a pair of coincident edges
// joining the hole's rightmost vertex to a visible outer vertex.
func bridgeHole(pts []mgl32.Vec2, poly, hole []int) []int {
	hm := 0
	for i, v := range hole {
		if pts[v][0] > pts[hole[hm]][0] {
			hm = i
		}
	}
	m := pts[hole[hm]]

	// Cast a ray from m towards +x and find the closest edge it hits.
	best := -1
	bestX := float32(math32.MaxFloat32)
	var hit mgl32.Vec2
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := pts[poly[i]], pts[poly[(i+1)%n]]
		if (a[1] > m[1] && b[1] > m[1]) || (a[1] < m[1] && b[1] < m[1]) || a[1] == b[1] {
			continue
		}
		t := (m[1] - a[1]) / (b[1] - a[1])
		if t < 0 || t > 1 {
			continue
		}
		x := a[0] + t*(b[0]-a[0])
		if x < m[0] || x >= bestX {
			continue
		}
		bestX = x
		hit = mgl32.Vec2{x, m[1]}
		if a[0] > b[0] {
			best = i
		} else {
			best = (i + 1) % n
		}
	}

	if best < 0 {
		best = nearestVertex(pts, poly, m)
	} else {
		// A reflex vertex inside triangle (m, hit, candidate) blocks the view;
		// take the one closest in angle to the ray instead.
		p := pts[poly[best]]
		bestTan := float32(math32.MaxFloat32)
		for i, v := range poly {
			q := pts[v]
			if i == best || q[0] < m[0] || !pointInTriangle(q, m, hit, p) {
				continue
			}
			if tan := math32.Abs(q[1]-m[1]) / math32.Max(q[0]-m[0], 1e-12); tan < bestTan {
				bestTan = tan
				best = i
			}
		}
	}

	out := make([]int, 0, len(poly)+len(hole)+2)
	out = append(out, poly[:best+1]...)
	for k := 0; k <= len(hole); k++ {
		out = append(out, hole[(hm+k)%len(hole)])
	}
	out = append(out, poly[best])
	out = append(out, poly[best+1:]...)
	return out
}

func nearestVertex(pts []mgl32.Vec2, poly []int, m mgl32.Vec2) int {
	best, bestD := 0, float32(math32.MaxFloat32)
	for i, v := range poly {
		if d := pts[v].Sub(m).Len(); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// clipEars triangulates a counter-clockwise polygon given as indices into pts.
func clipEars(pts []mgl32.Vec2, poly []int) [][3]int {
	ring := append([]int(nil), poly...)
	tris := make([][3]int, 0, len(ring))

	for len(ring) > 3 {
		n := len(ring)
		clipped := false
		for i := 0; i < n; i++ {
			prev, cur, next := ring[(i+n-1)%n], ring[i], ring[(i+1)%n]
			if !isEar(pts, ring, prev, cur, next) {
				continue
			}
			tris = append(tris, [3]int{prev, cur, next})
			ring = append(ring[:i], ring[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Self-intersecting or degenerate input: drop the flattest corner
			// so the loop always makes progress.
			i := flattestCorner(pts, ring)
			n := len(ring)
			prev, cur, next := ring[(i+n-1)%n], ring[i], ring[(i+1)%n]
			if cross(pts[prev], pts[cur], pts[next]) > 0 {
				tris = append(tris, [3]int{prev, cur, next})
			}
			ring = append(ring[:i], ring[i+1:]...)
		}
	}
	if len(ring) == 3 && cross(pts[ring[0]], pts[ring[1]], pts[ring[2]]) > 0 {
		tris = append(tris, [3]int{ring[0], ring[1], ring[2]})
	}
	return tris
}

func isEar(pts []mgl32.Vec2, ring []int, prev, cur, next int) bool {
	a, b, c := pts[prev], pts[cur], pts[next]
	if cross(a, b, c) <= 0 {
		return false
	}
	for _, v := range ring {
		if v == prev || v == cur || v == next {
			continue
		}
		p := pts[v]
		// Bridge vertices duplicate positions of the triangle corners.
		if p.ApproxEqual(a) || p.ApproxEqual(b) || p.ApproxEqual(c) {
			continue
		}
		if pointInTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

func flattestCorner(pts []mgl32.Vec2, ring []int) int {
	n := len(ring)
	best, bestAbs := 0, float32(math32.MaxFloat32)
	for i := 0; i < n; i++ {
		c := math32.Abs(cross(pts[ring[(i+n-1)%n]], pts[ring[i]], pts[ring[(i+1)%n]]))
		if c < bestAbs {
			best, bestAbs = i, c
		}
	}
	return best
}

// cross is twice the signed area of triangle abc.
func cross(a, b, c mgl32.Vec2) float32 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func pointInTriangle(p, a, b, c mgl32.Vec2) bool {
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
