package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/debug"
	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

func testScene() *scene.Scene {
	s := scene.New()
	box := geometry.Box(1, 1, 1, 1, 1, 1)
	red := material.NewPhong(color.Hex(0xff0000))

	pivot := scene.NewNode("pivot")
	pivot.Position = mgl32.Vec3{0, 1.5, 0}
	a := scene.NewMesh(box, red)
	a.Position[0] = 2
	b := scene.NewMesh(box, red)
	b.Position[0] = -2
	pivot.Add(a, b)

	hidden := scene.NewMesh(geometry.SphereDefault(1), red)
	hidden.Visible = false

	glass := material.NewStandard(color.Hex(0x5588cc))
	glass.Transparent, glass.Opacity = true, 0.5
	glass.Side = material.DoubleSide
	sphere := scene.NewMesh(geometry.SphereDefault(0.5), glass)

	wire := scene.NewLineSegments(geometry.Wireframe(box), material.NewLineBasic(color.Hex(0xffffff)))

	s.Add(pivot, hidden, sphere, wire, debug.NewAxes(1))
	return s
}

func TestSceneStructure(t *testing.T) {
	doc, stats, err := Scene(testScene(), DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, doc.Scenes[0].Nodes, 3, "pivot, sphere and wireframe; hidden and helper skipped")
	assert.Equal(t, 5, stats.Nodes)
	assert.Equal(t, 3, stats.Meshes, "the two boxes share one mesh")
	assert.Equal(t, 3, stats.Materials)
	assert.Equal(t, 12+geometry.SphereDefault(0.5).TriangleCount(), stats.Triangles)

	pivot := doc.Nodes[doc.Scenes[0].Nodes[0]]
	assert.Equal(t, [3]float32{0, 1.5, 0}, pivot.Translation)
	require.Len(t, pivot.Children, 2)
	assert.Equal(t, *doc.Nodes[pivot.Children[0]].Mesh, *doc.Nodes[pivot.Children[1]].Mesh)

	var blended, lines int
	for _, m := range doc.Materials {
		if m.AlphaMode == gltf.AlphaBlend {
			blended++
			assert.True(t, m.DoubleSided)
			assert.InDelta(t, 0.5, m.PBRMetallicRoughness.BaseColorFactor[3], 1e-6)
		}
	}
	for _, m := range doc.Meshes {
		if m.Primitives[0].Mode == gltf.PrimitiveLines {
			lines++
		}
	}
	assert.Equal(t, 1, blended)
	assert.Equal(t, 1, lines)
}

func TestHelpersOptIn(t *testing.T) {
	_, without, err := Scene(testScene(), Options{})
	require.NoError(t, err)
	_, with, err := Scene(testScene(), Options{Helpers: true, Lines: true})
	require.NoError(t, err)
	assert.Equal(t, without.Nodes+1, with.Nodes, "axes")
	assert.Equal(t, without.Meshes+2, with.Meshes, "wireframe and axes")
}

func TestDisposedGeometryFails(t *testing.T) {
	s := scene.New()
	g := geometry.Plane(1, 1, 1, 1)
	g.Dispose()
	s.Add(scene.NewMesh(g, material.NewBasic(color.Hex(0xffffff))))
	_, _, err := Scene(s, DefaultOptions())
	assert.Error(t, err)
}

func TestEncodeForms(t *testing.T) {
	doc, _, err := Scene(testScene(), DefaultOptions())
	require.NoError(t, err)

	var glb bytes.Buffer
	require.NoError(t, Encode(&glb, doc, true))
	assert.Equal(t, "glTF", glb.String()[:4])

	doc, _, err = Scene(testScene(), DefaultOptions())
	require.NoError(t, err)
	var js bytes.Buffer
	require.NoError(t, Encode(&js, doc, false))
	assert.Contains(t, js.String(), "data:application/octet-stream;base64,")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.glb")
	stats, err := WriteFile(path, testScene(), DefaultOptions())
	require.NoError(t, err)
	assert.Positive(t, stats.Triangles)

	doc, err := gltf.Open(path)
	require.NoError(t, err)
	assert.Len(t, doc.Meshes, stats.Meshes)
}
