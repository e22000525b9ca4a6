package material

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/texture"
)

func TestKinds(t *testing.T) {
	mats := []Material{
		NewBasic(color.White),
		NewPhong(color.Hex(0x44aaff)),
		NewStandard(color.White),
		NewLineBasic(color.White),
	}
	want := []Kind{KindBasic, KindPhong, KindStandard, KindLine}
	for i, m := range mats {
		assert.Equal(t, want[i], m.Kind())
		assert.Equal(t, float32(1), m.Common().Opacity)
	}
	assert.Equal(t, "standard", KindStandard.String())
}

func TestBlended(t *testing.T) {
	m := NewPhong(color.Hex(0x5588cc))
	assert.False(t, m.Blended())
	m.Transparent = true
	m.Opacity = 0.75
	assert.True(t, m.Blended())
}

func TestStandardTexturesSkipsNil(t *testing.T) {
	m := NewStandard(color.White)
	assert.Empty(t, m.Textures())

	tex := texture.New("normal", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	m.NormalMap = tex
	m.AOMap = tex
	assert.Len(t, m.Textures(), 2)
}

func TestDisposeOnce(t *testing.T) {
	m := NewLineBasic(color.White)
	n := 0
	m.OnDispose(func() { n++ })
	m.Dispose()
	m.Dispose()
	assert.Equal(t, 1, n)
	assert.True(t, m.Disposed())
}
