package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Torus builds a torus in the XY plane. radius is from the center to the
// middle of the tube; arc is the swept angle in radians.
func Torus(radius, tube float32, radialSegments, tubularSegments int, arc float32) *Geometry {
	radialSegments = atLeast(radialSegments, 2)
	tubularSegments = atLeast(tubularSegments, 3)

	b := &builder{}
	for j := 0; j <= radialSegments; j++ {
		for i := 0; i <= tubularSegments; i++ {
			u := float32(i) / float32(tubularSegments) * arc
			v := float32(j) / float32(radialSegments) * 2 * math32.Pi
			sinU, cosU := math32.Sincos(u)
			sinV, cosV := math32.Sincos(v)

			p := mgl32.Vec3{(radius + tube*cosV) * cosU, (radius + tube*cosV) * sinU, tube * sinV}
			center := mgl32.Vec3{radius * cosU, radius * sinU, 0}
			b.vertex(p, p.Sub(center).Normalize(), float32(i)/float32(tubularSegments), float32(j)/float32(radialSegments))
		}
	}

	stride := uint32(tubularSegments + 1)
	for j := uint32(1); j <= uint32(radialSegments); j++ {
		for i := uint32(1); i <= uint32(tubularSegments); i++ {
			a := stride*j + i - 1
			bb := stride*(j-1) + i - 1
			c := stride*(j-1) + i
			d := stride*j + i
			b.quad(a, bb, c, d)
		}
	}
	return b.build("torus")
}

// TorusDefault builds a full torus with 12 radial and 48 tubular segments.
func TorusDefault(radius, tube float32) *Geometry {
	return Torus(radius, tube, 12, 48, 2*math32.Pi)
}

// TorusKnot builds a (p, q) torus knot tube.
func TorusKnot(radius, tube float32, tubularSegments, radialSegments, p, q int) *Geometry {
	tubularSegments = atLeast(tubularSegments, 3)
	radialSegments = atLeast(radialSegments, 3)
	fp, fq := float32(atLeast(p, 1)), float32(atLeast(q, 1))

	curve := func(u float32) mgl32.Vec3 {
		sinU, cosU := math32.Sincos(u)
		quOverP := fq / fp * u
		cs := math32.Cos(quOverP)
		return mgl32.Vec3{
			radius * (2 + cs) * 0.5 * cosU,
			radius * (2 + cs) * sinU * 0.5,
			radius * math32.Sin(quOverP) * 0.5,
		}
	}

	b := &builder{}
	for i := 0; i <= tubularSegments; i++ {
		u := float32(i) / float32(tubularSegments) * fp * 2 * math32.Pi
		p1 := curve(u)
		p2 := curve(u + 0.01)

		// Frame along the curve.
		t := p2.Sub(p1)
		n := p2.Add(p1)
		bn := t.Cross(n)
		n = bn.Cross(t)
		bn = bn.Normalize()
		n = n.Normalize()

		for j := 0; j <= radialSegments; j++ {
			v := float32(j) / float32(radialSegments) * 2 * math32.Pi
			cx := -tube * math32.Cos(v)
			cy := tube * math32.Sin(v)
			pos := p1.Add(n.Mul(cx)).Add(bn.Mul(cy))
			b.vertex(pos, pos.Sub(p1).Normalize(), float32(i)/float32(tubularSegments), float32(j)/float32(radialSegments))
		}
	}

	stride := uint32(radialSegments + 1)
	for j := uint32(1); j <= uint32(tubularSegments); j++ {
		for i := uint32(1); i <= uint32(radialSegments); i++ {
			a := stride*(j-1) + i - 1
			bb := stride*j + i - 1
			c := stride*j + i
			d := stride*(j-1) + i
			b.quad(a, bb, c, d)
		}
	}
	return b.build("torusknot")
}
