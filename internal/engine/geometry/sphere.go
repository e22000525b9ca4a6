package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere builds a UV sphere or a section of one. phi sweeps around Y,
// theta runs from the north pole (0) to the south pole (Pi).
func Sphere(radius float32, widthSegments, heightSegments int, phiStart, phiLength, thetaStart, thetaLength float32) *Geometry {
	widthSegments = atLeast(widthSegments, 3)
	heightSegments = atLeast(heightSegments, 2)
	thetaEnd := math32.Min(thetaStart+thetaLength, math32.Pi)

	b := &builder{}
	grid := make([][]uint32, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)

		// Offset pole UVs so each pole triangle samples its own column.
		var uOffset float32
		if iy == 0 && thetaStart == 0 {
			uOffset = 0.5 / float32(widthSegments)
		} else if iy == heightSegments && thetaEnd == math32.Pi {
			uOffset = -0.5 / float32(widthSegments)
		}

		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			sinPhi, cosPhi := math32.Sincos(phiStart + u*phiLength)
			sinTheta, cosTheta := math32.Sincos(thetaStart + v*thetaLength)
			p := mgl32.Vec3{-radius * cosPhi * sinTheta, radius * cosTheta, radius * sinPhi * sinTheta}
			n := mgl32.Vec3{-cosPhi * sinTheta, cosTheta, sinPhi * sinTheta}
			row[ix] = b.vertex(p, n, u+uOffset, 1-v)
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			bb := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 || thetaStart > 0 {
				b.tri(a, bb, d)
			}
			if iy != heightSegments-1 || thetaEnd < math32.Pi {
				b.tri(bb, c, d)
			}
		}
	}
	return b.build("sphere")
}

// SphereDefault builds a full sphere with 32x16 segments.
func SphereDefault(radius float32) *Geometry {
	return Sphere(radius, 32, 16, 0, 2*math32.Pi, 0, math32.Pi)
}
