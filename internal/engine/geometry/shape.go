package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ShapeGeometry fills shapes flat in the XY plane facing +Z. UVs are the
// raw XY coordinates.
func ShapeGeometry(shapes []*Shape, curveSegments int) (*Geometry, error) {
	b := &builder{}
	normal := mgl32.Vec3{0, 0, 1}
	for i, s := range shapes {
		contour, holes := s.ExtractPoints(curveSegments)
		tris, err := Triangulate(contour, holes)
		if err != nil {
			return nil, err
		}
		offset := b.count()
		for _, pts := range append([][]mgl32.Vec2{contour}, holes...) {
			for _, p := range pts {
				b.vertex(mgl32.Vec3{p[0], p[1], 0}, normal, p[0], p[1])
			}
		}
		for _, t := range tris {
			b.tri(offset+uint32(t[0]), offset+uint32(t[1]), offset+uint32(t[2]))
		}
		b.endGroup(i)
	}
	if b.count() == 0 {
		return nil, ErrEmptyShape
	}
	return b.build("shape"), nil
}
