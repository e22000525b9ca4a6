package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Cylinder builds a (possibly tapered) cylinder along Y centered at the
// origin. The side is group 0, the top cap group 1 and the bottom cap group 2.
func Cylinder(radiusTop, radiusBottom, height float32, radialSegments, heightSegments int, openEnded bool, thetaStart, thetaLength float32) *Geometry {
	radialSegments = atLeast(radialSegments, 1)
	heightSegments = atLeast(heightSegments, 1)
	halfHeight := height / 2

	b := &builder{}

	// torso
	slope := (radiusBottom - radiusTop) / height
	rows := make([][]uint32, heightSegments+1)
	for y := 0; y <= heightSegments; y++ {
		v := float32(y) / float32(heightSegments)
		radius := v*(radiusBottom-radiusTop) + radiusTop
		row := make([]uint32, radialSegments+1)
		for x := 0; x <= radialSegments; x++ {
			u := float32(x) / float32(radialSegments)
			theta := u*thetaLength + thetaStart
			sin, cos := math32.Sincos(theta)
			p := mgl32.Vec3{radius * sin, -v*height + halfHeight, radius * cos}
			n := mgl32.Vec3{sin, slope, cos}.Normalize()
			row[x] = b.vertex(p, n, u, 1-v)
		}
		rows[y] = row
	}
	for x := 0; x < radialSegments; x++ {
		for y := 0; y < heightSegments; y++ {
			b.quad(rows[y][x], rows[y+1][x], rows[y+1][x+1], rows[y][x+1])
		}
	}
	b.endGroup(0)

	if !openEnded {
		if radiusTop > 0 {
			b.cylinderCap(true, radiusTop, halfHeight, radialSegments, thetaStart, thetaLength)
			b.endGroup(1)
		}
		if radiusBottom > 0 {
			b.cylinderCap(false, radiusBottom, halfHeight, radialSegments, thetaStart, thetaLength)
			b.endGroup(2)
		}
	}
	return b.build("cylinder")
}

func (b *builder) cylinderCap(top bool, radius, halfHeight float32, radialSegments int, thetaStart, thetaLength float32) {
	sign := float32(-1)
	if top {
		sign = 1
	}
	normal := mgl32.Vec3{0, sign, 0}

	centerStart := b.count()
	for x := 1; x <= radialSegments; x++ {
		b.vertex(mgl32.Vec3{0, halfHeight * sign, 0}, normal, 0.5, 0.5)
	}
	centerEnd := b.count()
	for x := 0; x <= radialSegments; x++ {
		u := float32(x) / float32(radialSegments)
		theta := u*thetaLength + thetaStart
		sin, cos := math32.Sincos(theta)
		b.vertex(mgl32.Vec3{radius * sin, halfHeight * sign, radius * cos}, normal,
			cos*0.5+0.5, sin*0.5*sign+0.5)
	}
	for x := uint32(0); x < uint32(radialSegments); x++ {
		c := centerStart + x
		i := centerEnd + x
		if top {
			b.tri(i, i+1, c)
		} else {
			b.tri(i+1, i, c)
		}
	}
}

// Cone builds a cylinder whose top radius is zero.
func Cone(radius, height float32, radialSegments, heightSegments int, openEnded bool, thetaStart, thetaLength float32) *Geometry {
	g := Cylinder(0, radius, height, radialSegments, heightSegments, openEnded, thetaStart, thetaLength)
	g.Type = "cone"
	return g
}
