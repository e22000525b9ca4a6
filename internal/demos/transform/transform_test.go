package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/demo/demotest"
	"github.com/Faultbox/scenelab/internal/engine/material"
)

func TestTorusPivotsEvenlySpaced(t *testing.T) {
	d := New().(*Demo)
	demotest.Start(t, d, "")

	require.Len(t, d.TorusPivots, 8)
	for i, p := range d.TorusPivots {
		assert.InDelta(t, -float64(i)*math.Pi/4, p.Rotation[1], 1e-5)
		assert.Equal(t, float32(1.5), p.Position[1])

		// Each torus sits 6 units out from the big sphere's axis.
		torus := p.Children()[0].Base()
		w := torus.WorldPosition()
		assert.InDelta(t, 6, mgl32.Vec2{w[0], w[2]}.Len(), 1e-4)
		assert.InDelta(t, 1.5, w[1], 1e-5)
	}
}

func TestSmallSphereOrbit(t *testing.T) {
	d := New().(*Demo)
	app, _, _ := demotest.Start(t, d, "")

	app.OnFrame(math.Pi / 2 * 1000)
	p := d.SmallSphere.WorldPosition()
	assert.Less(t, p.Sub(mgl32.Vec3{0, 1.5, -6}).Len(), float32(1e-3), "got %v", p)

	app.OnFrame(0)
	p = d.SmallSphere.WorldPosition()
	assert.Less(t, p.Sub(mgl32.Vec3{6, 1.5, 0}).Len(), float32(1e-4), "got %v", p)
}

func TestColorsAreReproducible(t *testing.T) {
	a, b := New().(*Demo), New().(*Demo)
	demotest.Start(t, a, "")
	demotest.Start(t, b, "")

	ca := a.BigSphere.Material.(*material.Phong).Color
	cb := b.BigSphere.Material.(*material.Phong).Color
	assert.Equal(t, ca, cb)
}
