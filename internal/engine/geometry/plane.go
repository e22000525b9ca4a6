package geometry

import "github.com/go-gl/mathgl/mgl32"

// Plane builds a rectangle in the XY plane facing +Z.
func Plane(width, height float32, widthSegments, heightSegments int) *Geometry {
	gridX := atLeast(widthSegments, 1)
	gridY := atLeast(heightSegments, 1)
	gridX1 := gridX + 1
	segW := width / float32(gridX)
	segH := height / float32(gridY)
	normal := mgl32.Vec3{0, 0, 1}

	b := &builder{}
	for iy := 0; iy <= gridY; iy++ {
		y := float32(iy)*segH - height/2
		for ix := 0; ix <= gridX; ix++ {
			x := float32(ix)*segW - width/2
			b.vertex(mgl32.Vec3{x, -y, 0}, normal, float32(ix)/float32(gridX), 1-float32(iy)/float32(gridY))
		}
	}
	for iy := 0; iy < gridY; iy++ {
		for ix := 0; ix < gridX; ix++ {
			a := uint32(ix + gridX1*iy)
			bb := uint32(ix + gridX1*(iy+1))
			c := uint32(ix + 1 + gridX1*(iy+1))
			d := uint32(ix + 1 + gridX1*iy)
			b.quad(a, bb, c, d)
		}
	}
	return b.build("plane")
}
