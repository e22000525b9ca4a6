package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/texture"
)

// Fog fades fragments linearly to Color between Near and Far view depth.
type Fog struct {
	Color color.Color
	Near  float32
	Far   float32
}

// NewFog creates linear fog.
func NewFog(c color.Color, near, far float32) *Fog {
	return &Fog{Color: c, Near: near, Far: far}
}

// Factor returns how much of the fog color replaces a fragment at depth,
// smoothly interpolated between Near and Far.
func (f *Fog) Factor(depth float32) float32 {
	if f.Far <= f.Near {
		if depth >= f.Far {
			return 1
		}
		return 0
	}
	t := (depth - f.Near) / (f.Far - f.Near)
	t = math32.Max(0, math32.Min(1, t))
	return t * t * (3 - 2*t)
}

// Scene is the root of a scene graph.
type Scene struct {
	Node

	// Background is drawn behind everything. A texture takes priority over
	// a color; with neither set the renderer clears to black.
	BackgroundColor   *color.Color
	BackgroundTexture *texture.Texture

	// Environment supplies image based lighting and reflections for
	// standard materials.
	Environment          *texture.Texture
	EnvironmentIntensity float32

	Fog *Fog
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{Node: MakeNode(), EnvironmentIntensity: 1}
}

// Stats counts what a scene contains.
type Stats struct {
	Nodes     int
	Meshes    int
	Lines     int
	Triangles int
}

// CollectStats walks the whole graph, hidden parts included.
func (s *Scene) CollectStats() Stats {
	var st Stats
	s.Traverse(func(obj Object) {
		st.Nodes++
		switch o := obj.(type) {
		case MeshObject:
			st.Meshes++
			if g := o.MeshData().Geometry; g != nil {
				st.Triangles += g.TriangleCount()
			}
		case LineObject:
			st.Lines++
		}
	})
	return st
}
