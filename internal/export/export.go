// Package export writes a scene graph to glTF 2.0, as .gltf JSON with an
// embedded buffer or as binary .glb.
package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/debug"
	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/scene"
	"github.com/Faultbox/scenelab/internal/logger"
)

// Options control what is exported.
type Options struct {
	// Helpers includes debug line helpers such as axes and grids.
	Helpers bool
	// Lines includes line segment objects other than helpers.
	Lines bool
}

// DefaultOptions exports line objects but not helpers.
func DefaultOptions() Options { return Options{Lines: true} }

type meshKey struct {
	geom *geometry.Geometry
	mat  any
}

type exporter struct {
	doc       *gltf.Document
	opts      Options
	meshes    map[meshKey]uint32
	materials map[any]uint32
	stats     Stats
}

// Stats counts what went into a document.
type Stats struct {
	Nodes, Meshes, Materials, Triangles int
}

// Scene converts s to a glTF document with a single scene whose roots are
// s's children. Hidden subtrees and objects without a glTF equivalent
// (lights, cameras) become plain transform nodes or are skipped.
func Scene(s *scene.Scene, opts Options) (*gltf.Document, Stats, error) {
	e := &exporter{
		doc:       gltf.NewDocument(),
		opts:      opts,
		meshes:    make(map[meshKey]uint32),
		materials: make(map[any]uint32),
	}
	for _, child := range s.Children() {
		idx, ok, err := e.node(child)
		if err != nil {
			return nil, Stats{}, err
		}
		if ok {
			e.doc.Scenes[0].Nodes = append(e.doc.Scenes[0].Nodes, idx)
		}
	}
	e.stats.Nodes = len(e.doc.Nodes)
	e.stats.Meshes = len(e.doc.Meshes)
	e.stats.Materials = len(e.doc.Materials)
	return e.doc, e.stats, nil
}

func (e *exporter) node(obj scene.Object) (uint32, bool, error) {
	n := obj.Base()
	if !n.Visible {
		return 0, false, nil
	}
	if _, ok := obj.(debug.Helper); ok && !e.opts.Helpers {
		return 0, false, nil
	}

	q := n.Quaternion()
	gn := &gltf.Node{
		Name:        n.Name,
		Translation: [3]float32(n.Position),
		Rotation:    [4]float32{q.V[0], q.V[1], q.V[2], q.W},
		Scale:       [3]float32(n.Scale),
	}

	switch o := obj.(type) {
	case scene.MeshObject:
		m := o.MeshData()
		idx, err := e.mesh(m.Geometry, m.Material, m.Material.Common())
		if err != nil {
			return 0, false, errors.Wrapf(err, "mesh %q", n.Name)
		}
		gn.Mesh = gltf.Index(idx)
	case scene.LineObject:
		if e.opts.Lines {
			l := o.LineData()
			idx, err := e.mesh(l.Geometry, l.Material, &l.Material.Base)
			if err != nil {
				return 0, false, errors.Wrapf(err, "lines %q", n.Name)
			}
			gn.Mesh = gltf.Index(idx)
		}
	}

	index := uint32(len(e.doc.Nodes))
	e.doc.Nodes = append(e.doc.Nodes, gn)
	for _, child := range n.Children() {
		ci, ok, err := e.node(child)
		if err != nil {
			return 0, false, err
		}
		if ok {
			gn.Children = append(gn.Children, ci)
		}
	}
	return index, true, nil
}

func (e *exporter) mesh(g *geometry.Geometry, mat any, base *material.Base) (uint32, error) {
	key := meshKey{g, mat}
	if idx, ok := e.meshes[key]; ok {
		return idx, nil
	}
	if g == nil || g.VertexCount() == 0 {
		return 0, errors.New("empty geometry")
	}
	if g.Disposed() {
		return 0, errors.Errorf("geometry %q is disposed", g.Type)
	}

	attrs := map[string]uint32{
		"POSITION": modeler.WritePosition(e.doc, vec3s(g.Positions)),
	}
	if len(g.Normals) == len(g.Positions) {
		attrs["NORMAL"] = modeler.WriteNormal(e.doc, vec3s(g.Normals))
	}
	if len(g.UVs) == 2*g.VertexCount() {
		attrs["TEXCOORD_0"] = modeler.WriteTextureCoord(e.doc, vec2s(g.UVs))
	}
	if len(g.Colors) == len(g.Positions) {
		attrs["COLOR_0"] = modeler.WriteColor(e.doc, rgba8(g.Colors))
	}

	prim := &gltf.Primitive{
		Attributes: attrs,
		Indices:    gltf.Index(modeler.WriteIndices(e.doc, g.Indices)),
		Material:   gltf.Index(e.material(mat, base)),
	}
	if g.Mode == geometry.Lines {
		prim.Mode = gltf.PrimitiveLines
	} else {
		e.stats.Triangles += g.TriangleCount()
	}

	e.doc.Meshes = append(e.doc.Meshes, &gltf.Mesh{Name: g.Type, Primitives: []*gltf.Primitive{prim}})
	idx := uint32(len(e.doc.Meshes) - 1)
	e.meshes[key] = idx
	return idx, nil
}

// material maps a material onto metallic-roughness. Phong shininess is
// converted to roughness with sqrt(2 / (shininess + 2)).
func (e *exporter) material(mat any, base *material.Base) uint32 {
	if idx, ok := e.materials[mat]; ok {
		return idx
	}
	var (
		c                    color.Color
		emissive             color.Color
		metalness, roughness float32 = 0, 1
	)
	switch m := mat.(type) {
	case *material.Basic:
		c = m.Color
	case *material.Phong:
		c, emissive = m.Color, m.Emissive
		roughness = math32.Sqrt(2 / (m.Shininess + 2))
	case *material.Standard:
		c, emissive = m.Color, m.Emissive
		metalness, roughness = m.Metalness, m.Roughness
	case *material.LineBasic:
		c = m.Color
	}

	alpha := float32(1)
	if base.Transparent {
		alpha = base.Opacity
	}
	gm := &gltf.Material{
		Name:        base.Name,
		DoubleSided: base.Side == material.DoubleSide,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{c.R, c.G, c.B, alpha},
			MetallicFactor:  ptr(metalness),
			RoughnessFactor: ptr(roughness),
		},
		EmissiveFactor: [3]float32{emissive.R, emissive.G, emissive.B},
	}
	if base.Blended() {
		gm.AlphaMode = gltf.AlphaBlend
	}
	e.doc.Materials = append(e.doc.Materials, gm)
	idx := uint32(len(e.doc.Materials) - 1)
	e.materials[mat] = idx
	return idx
}

func vec3s(flat []float32) [][3]float32 {
	out := make([][3]float32, len(flat)/3)
	for i := range out {
		copy(out[i][:], flat[i*3:])
	}
	return out
}

// rgba8 packs linear 0-1 RGB triples as opaque 8 bit colors.
func rgba8(flat []float32) [][4]uint8 {
	out := make([][4]uint8, len(flat)/3)
	for i := range out {
		for k := 0; k < 3; k++ {
			out[i][k] = uint8(math32.Round(math32.Max(0, math32.Min(1, flat[i*3+k])) * 255))
		}
		out[i][3] = 255
	}
	return out
}

func ptr(v float32) *float32 { return &v }

func vec2s(flat []float32) [][2]float32 {
	out := make([][2]float32, len(flat)/2)
	for i := range out {
		copy(out[i][:], flat[i*2:])
	}
	return out
}

// Encode writes doc to w, as .glb when binary is set.
func Encode(w io.Writer, doc *gltf.Document, binary bool) error {
	if !binary {
		for _, b := range doc.Buffers {
			if b.URI == "" {
				b.EmbeddedResource()
			}
		}
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = binary
	return errors.Wrap(enc.Encode(doc), "encode gltf")
}

// WriteFile exports s to path. A .glb extension selects the binary form.
func WriteFile(path string, s *scene.Scene, opts Options) (Stats, error) {
	doc, stats, err := Scene(s, opts)
	if err != nil {
		return Stats{}, err
	}
	f, err := os.Create(path)
	if err != nil {
		return Stats{}, errors.Wrap(err, "create export file")
	}
	defer f.Close()

	binary := strings.EqualFold(filepath.Ext(path), ".glb")
	if err := Encode(f, doc, binary); err != nil {
		return Stats{}, err
	}
	logger.Named("export").Info("scene exported",
		zap.String("path", path),
		zap.Int("nodes", stats.Nodes),
		zap.Int("meshes", stats.Meshes),
		zap.Int("triangles", stats.Triangles))
	return stats, f.Close()
}
