package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Circle builds a flat disc sector in the XY plane facing +Z. Angles are in
// radians.
func Circle(radius float32, segments int, thetaStart, thetaLength float32) *Geometry {
	segments = atLeast(segments, 3)
	normal := mgl32.Vec3{0, 0, 1}

	b := &builder{}
	b.vertex(mgl32.Vec3{}, normal, 0.5, 0.5)
	for s := 0; s <= segments; s++ {
		angle := thetaStart + float32(s)/float32(segments)*thetaLength
		x := radius * math32.Cos(angle)
		y := radius * math32.Sin(angle)
		b.vertex(mgl32.Vec3{x, y, 0}, normal, (x/radius+1)/2, (y/radius+1)/2)
	}
	for i := uint32(1); i <= uint32(segments); i++ {
		b.tri(i, i+1, 0)
	}
	return b.build("circle")
}

// Ring builds a flat annulus sector in the XY plane facing +Z.
func Ring(innerRadius, outerRadius float32, thetaSegments, phiSegments int, thetaStart, thetaLength float32) *Geometry {
	thetaSegments = atLeast(thetaSegments, 3)
	phiSegments = atLeast(phiSegments, 1)
	normal := mgl32.Vec3{0, 0, 1}

	b := &builder{}
	radius := innerRadius
	step := (outerRadius - innerRadius) / float32(phiSegments)
	for j := 0; j <= phiSegments; j++ {
		for i := 0; i <= thetaSegments; i++ {
			angle := thetaStart + float32(i)/float32(thetaSegments)*thetaLength
			x := radius * math32.Cos(angle)
			y := radius * math32.Sin(angle)
			b.vertex(mgl32.Vec3{x, y, 0}, normal, (x/outerRadius+1)/2, (y/outerRadius+1)/2)
		}
		radius += step
	}
	for j := 0; j < phiSegments; j++ {
		level := j * (thetaSegments + 1)
		for i := 0; i < thetaSegments; i++ {
			seg := uint32(i + level)
			ts := uint32(thetaSegments)
			b.quad(seg, seg+ts+1, seg+ts+2, seg+1)
		}
	}
	return b.build("ring")
}
