package geometry

import "github.com/go-gl/mathgl/mgl32"

// Box builds a box centered at the origin. Each face is its own group so
// it can take a separate material slot (+x, -x, +y, -y, +z, -z).
func Box(width, height, depth float32, widthSegments, heightSegments, depthSegments int) *Geometry {
	ws := atLeast(widthSegments, 1)
	hs := atLeast(heightSegments, 1)
	ds := atLeast(depthSegments, 1)

	b := &builder{}
	b.boxPlane(2, 1, 0, -1, -1, depth, height, width, ds, hs)
	b.endGroup(0)
	b.boxPlane(2, 1, 0, 1, -1, depth, height, -width, ds, hs)
	b.endGroup(1)
	b.boxPlane(0, 2, 1, 1, 1, width, depth, height, ws, ds)
	b.endGroup(2)
	b.boxPlane(0, 2, 1, 1, -1, width, depth, -height, ws, ds)
	b.endGroup(3)
	b.boxPlane(0, 1, 2, 1, -1, width, height, depth, ws, hs)
	b.endGroup(4)
	b.boxPlane(0, 1, 2, -1, -1, width, height, -depth, ws, hs)
	b.endGroup(5)
	return b.build("box")
}

// boxPlane emits one face of a box. u, v and w are axis indices; the face
// lies at w = depth/2 and faces the sign of depth.
func (b *builder) boxPlane(u, v, w int, udir, vdir, width, height, depth float32, gridX, gridY int) {
	segW := width / float32(gridX)
	segH := height / float32(gridY)
	halfW, halfH, halfD := width/2, height/2, depth/2
	gridX1 := gridX + 1

	var normal mgl32.Vec3
	if depth > 0 {
		normal[w] = 1
	} else {
		normal[w] = -1
	}

	start := b.count()
	for iy := 0; iy <= gridY; iy++ {
		y := float32(iy)*segH - halfH
		for ix := 0; ix <= gridX; ix++ {
			x := float32(ix)*segW - halfW
			var p mgl32.Vec3
			p[u] = x * udir
			p[v] = y * vdir
			p[w] = halfD
			b.vertex(p, normal, float32(ix)/float32(gridX), 1-float32(iy)/float32(gridY))
		}
	}

	for iy := 0; iy < gridY; iy++ {
		for ix := 0; ix < gridX; ix++ {
			a := start + uint32(ix+gridX1*iy)
			bb := start + uint32(ix+gridX1*(iy+1))
			c := start + uint32(ix+1+gridX1*(iy+1))
			d := start + uint32(ix+1+gridX1*iy)
			b.quad(a, bb, c, d)
		}
	}
}
