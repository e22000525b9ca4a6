package scene

import (
	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/material"
)

// Group is a node that only exists to hold children.
type Group struct {
	Node
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	g := &Group{Node: MakeNode()}
	g.Name = name
	return g
}

// Mesh draws triangles from Geometry with Material. Both may be shared
// with other meshes.
type Mesh struct {
	Node
	Geometry *geometry.Geometry
	Material material.Material
}

// MeshObject is implemented by Mesh and by types that embed it.
type MeshObject interface {
	Object
	MeshData() *Mesh
}

// MeshData returns m.
func (m *Mesh) MeshData() *Mesh { return m }

// NewMesh creates a mesh at the origin.
func NewMesh(geom *geometry.Geometry, mat material.Material) *Mesh {
	return &Mesh{Node: MakeNode(), Geometry: geom, Material: mat}
}

// LineSegments draws Geometry as a list of independent line segments.
type LineSegments struct {
	Node
	Geometry *geometry.Geometry
	Material *material.LineBasic
}

// LineObject is implemented by LineSegments and by types that embed it,
// such as debug helpers.
type LineObject interface {
	Object
	LineData() *LineSegments
}

// LineData returns l.
func (l *LineSegments) LineData() *LineSegments { return l }

// NewLineSegments creates a line object at the origin.
func NewLineSegments(geom *geometry.Geometry, mat *material.LineBasic) *LineSegments {
	return &LineSegments{Node: MakeNode(), Geometry: geom, Material: mat}
}
