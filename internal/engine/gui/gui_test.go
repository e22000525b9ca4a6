package gui

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/engine/color"
)

func TestFloatClampsAndSnaps(t *testing.T) {
	p := NewPanel("params")
	v := float32(1)
	calls := 0
	c := p.AddFloat("width", &v, 0.1, 10, 0.01)
	c.OnChange(func() { calls++ })

	c.Set(42)
	assert.Equal(t, float32(10), v)
	c.Set(0.5349)
	assert.InDelta(t, 0.53, v, 1e-5)
	c.Set(-3)
	assert.InDelta(t, 0.1, v, 1e-6)
	assert.Equal(t, 3, calls)
}

func TestIntAndOptions(t *testing.T) {
	p := NewPanel("params")
	seg := 8
	p.AddInt("radialSegments", &seg, 3, 64).Set(1)
	assert.Equal(t, 3, seg)

	kind := 0
	opts := p.AddOptions("kind", &kind, []string{"box", "sphere"})
	opts.Set(5)
	assert.Equal(t, 1, kind)
	assert.Equal(t, "sphere", opts.Selected())
}

func TestBoolTextColor(t *testing.T) {
	p := NewPanel("params")
	f := p.AddFolder("text")

	open := false
	text := "하디최고"
	col := color.White
	n := 0
	f.AddBool("openEnded", &open).OnChange(func() { n++ })
	f.AddText("text", &text).OnChange(func() { n++ })
	f.AddColor("color", &col).OnChange(func() { n++ })

	f.Find("openEnded").(*Bool).Set(true)
	f.Find("text").(*Text).Set("hi")
	f.Find("color").(*Color).Set(color.Hex(0x2c3e50))

	assert.True(t, open)
	assert.Equal(t, "hi", text)
	assert.Equal(t, uint32(0x2c3e50), col.Hex())
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, p.Count())
}

func TestAngleWritesRadians(t *testing.T) {
	p := NewPanel("params")
	theta := math32.Pi
	a := p.AddAngle("thetaLength", &theta, 0, 360, 1)
	assert.InDelta(t, 180, a.Degrees, 1e-4)

	seen := float32(-1)
	a.OnChange(func() { seen = theta })
	a.Set(90)
	assert.InDelta(t, math32.Pi/2, theta, 1e-6)
	assert.InDelta(t, math32.Pi/2, seen, 1e-6)
}

func TestDestroyStopsCallbacks(t *testing.T) {
	p := NewPanel("params")
	v := float32(1)
	c := p.AddFolder("light").AddFloat("intensity", &v, 0, 20, 1)
	calls := 0
	c.OnChange(func() { calls++ })

	p.Destroy()
	c.Set(5)

	assert.True(t, p.Destroyed())
	assert.Zero(t, calls)
	assert.Zero(t, p.Count())
	require.Nil(t, p.Find("intensity"))
}

func TestFloatFormatFollowsStep(t *testing.T) {
	p := NewPanel("params")
	v := float32(0)
	for step, want := range map[float32]string{
		0:     "%.3f",
		1:     "%.0f",
		0.5:   "%.1f",
		0.01:  "%.2f",
		0.001: "%.3f",
	} {
		assert.Equal(t, want, p.AddFloat("v", &v, 0, 10, step).Format(), "step %v", step)
	}
}
