package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

// BoxLines returns the 12 edges of an axis aligned box as 24 points,
// [x, y, z] per point.
func BoxLines(min, max mgl32.Vec3) []float32 {
	x0, y0, z0 := min[0], min[1], min[2]
	x1, y1, z1 := max[0], max[1], max[2]
	return []float32{
		// bottom
		x0, y0, z0, x1, y0, z0,
		x1, y0, z0, x1, y0, z1,
		x1, y0, z1, x0, y0, z1,
		x0, y0, z1, x0, y0, z0,
		// top
		x0, y1, z0, x1, y1, z0,
		x1, y1, z0, x1, y1, z1,
		x1, y1, z1, x0, y1, z1,
		x0, y1, z1, x0, y1, z0,
		// verticals
		x0, y0, z0, x0, y1, z0,
		x1, y0, z0, x1, y1, z0,
		x1, y0, z1, x1, y1, z1,
		x0, y0, z1, x0, y1, z1,
	}
}

// WorldBounds returns the world-space bounds of obj and the meshes below
// it. ok is false when there is no mesh geometry.
func WorldBounds(obj scene.Object) (geometry.Box3, bool) {
	var out geometry.Box3
	found := false
	include := func(o scene.Object) {
		mo, isMesh := o.(scene.MeshObject)
		if !isMesh {
			return
		}
		m := mo.MeshData()
		if m.Geometry == nil || m.Geometry.VertexCount() == 0 {
			return
		}
		local := m.Geometry.BoundingBox()
		world := m.WorldMatrix()
		for i := 0; i < 8; i++ {
			c := mgl32.Vec3{pick(i&1, local.Min[0], local.Max[0]), pick(i&2, local.Min[1], local.Max[1]), pick(i&4, local.Min[2], local.Max[2])}
			p := world.Mul4x1(c.Vec4(1)).Vec3()
			if !found {
				out = geometry.Box3{Min: p, Max: p}
				found = true
				continue
			}
			for k := 0; k < 3; k++ {
				out.Min[k] = min(out.Min[k], p[k])
				out.Max[k] = max(out.Max[k], p[k])
			}
		}
	}
	include(obj)
	obj.Base().Traverse(include)
	return out, found
}

func pick(bit int, a, b float32) float32 {
	if bit != 0 {
		return b
	}
	return a
}
