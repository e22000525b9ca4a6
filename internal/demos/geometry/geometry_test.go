package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/demo/demotest"
	geo "github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/gui"
)

func TestEveryKindBuilds(t *testing.T) {
	for _, kind := range Kinds {
		if kind == "text" {
			continue
		}
		t.Run(kind, func(t *testing.T) {
			d := New().(*Demo)
			app, _, _ := demotest.Start(t, d, kind)

			assert.Equal(t, kind, d.Kind())
			require.NotNil(t, d.Model())
			assert.Equal(t, 1, demotest.Count(app.Context().Scene, "model"))
			assert.Len(t, d.Model().Children(), 2)
			assert.Positive(t, d.mesh.Geometry.TriangleCount())
			assert.Positive(t, d.wire.Geometry.LineCount())
		})
	}
}

func TestTextKindUsesLoadedFont(t *testing.T) {
	d := New().(*Demo)
	app, _, _ := demotest.Start(t, d, "box")
	require.NotNil(t, d.text.Font)

	d.text.Text = "Go"
	opts := app.Context().Panel.Find("kind").(*gui.Options)
	opts.Set(indexOf("text"))
	assert.Equal(t, "text", d.Kind())
	require.NotNil(t, d.Model())
	assert.Equal(t, "text", d.mesh.Geometry.Type)
}

func TestParameterChangeReplacesModelOnce(t *testing.T) {
	d := New().(*Demo)
	app, _, _ := demotest.Start(t, d, "sphere")
	scn := app.Context().Scene

	old := d.Model()
	oldMesh, oldWire := d.mesh.Geometry, d.wire.Geometry

	radius := d.Params().Find("radius").(*gui.Float)
	radius.Set(1.5)

	assert.NotSame(t, old, d.Model())
	assert.Equal(t, 1, demotest.Count(scn, "model"))
	assert.Equal(t, 1, oldMesh.Disposals())
	assert.Equal(t, 1, oldWire.Disposals())
	assert.False(t, d.mesh.Geometry.Disposed())
	assert.InDelta(t, 1.5, d.mesh.Geometry.BoundingBox().Max[1], 1e-4)

	radius.Set(0.8)
	assert.Equal(t, 1, oldMesh.Disposals(), "a replaced geometry is never disposed again")
	assert.Equal(t, 1, demotest.Count(scn, "model"))
}

func TestKindSwitchRebuildsPanel(t *testing.T) {
	d := New().(*Demo)
	app, _, _ := demotest.Start(t, d, "box")
	first := d.mesh.Geometry

	app.Context().Panel.Find("kind").(*gui.Options).Set(indexOf("torusknot"))
	assert.Equal(t, "torusknot", d.Kind())
	assert.Equal(t, 1, first.Disposals())
	assert.NotNil(t, d.Params().Find("p"))
	assert.Nil(t, d.Params().Find("width"))
	assert.Equal(t, 1, demotest.Count(app.Context().Scene, "model"))
}

func TestFailedBuildKeepsModel(t *testing.T) {
	d := New().(*Demo)
	_, _, _ = demotest.Start(t, d, "text")
	d.text.Text = "Go"
	d.Rebuild()
	model := d.Model()
	require.NotNil(t, model)

	d.text.Text = ""
	d.Rebuild()
	assert.Same(t, model, d.Model())
	assert.False(t, d.mesh.Geometry.Disposed())
}

func TestCloseDisposesModel(t *testing.T) {
	d := New().(*Demo)
	app, _, _ := demotest.Start(t, d, "plane")
	g := d.mesh.Geometry
	app.Close()
	assert.Equal(t, 1, g.Disposals())
}

func TestBoxSegmentsTruncate(t *testing.T) {
	h := newBoxHelper()
	h.WidthSegments = 2.7
	g, err := h.CreateGeometry()
	require.NoError(t, err)
	want := geo.Box(1, 1, 1, 2, 1, 1)
	assert.Equal(t, want.VertexCount(), g.VertexCount())
}

func indexOf(kind string) int {
	for i, k := range Kinds {
		if k == kind {
			return i
		}
	}
	return -1
}

func TestKindSelectionDrivesPresetCycling(t *testing.T) {
	reg := demo.NewRegistry()
	reg.Register("geometry", New)
	sw := demo.NewSwitcher(reg, &demotest.Renderer{}, demotest.NewSurface(800, 600), demo.Options{})
	t.Cleanup(sw.Close)
	require.NoError(t, sw.Change("geometry", "box"))
	require.NoError(t, sw.Frame(0))

	ctx := sw.Current().Context()
	ctx.Panel.Find("kind").(*gui.Options).Set(indexOf("torus"))
	assert.Equal(t, "torus", ctx.Preset)

	sw.CyclePreset()
	require.NoError(t, sw.Frame(16))
	assert.Equal(t, "sphere", sw.Current().Context().Preset)
	assert.Equal(t, "sphere", sw.Current().Demo().(*Demo).Kind())
}
