package font

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/engine/geometry"
)

func TestFallbackParses(t *testing.T) {
	f, err := Fallback()
	require.NoError(t, err)
	assert.NotEmpty(t, f.Name)
	assert.True(t, f.HasGlyph('A'))
	assert.Greater(t, f.LineHeight(1), float32(0))
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("junk.ttf", []byte("not a font"))
	assert.Error(t, err)
}

func TestShapesLetterWithHole(t *testing.T) {
	f, err := Fallback()
	require.NoError(t, err)

	layout, err := f.Shapes("o", 1, 4)
	require.NoError(t, err)
	require.Len(t, layout.Shapes, 1)
	assert.Len(t, layout.Shapes[0].Holes, 1)
	assert.Greater(t, layout.Width, float32(0))
}

func TestShapesAdvanceAndMissing(t *testing.T) {
	f, err := Fallback()
	require.NoError(t, err)

	one, err := f.Shapes("l", 1, 2)
	require.NoError(t, err)
	two, err := f.Shapes("ll", 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2*one.Width, two.Width, 1e-4)

	// Latin Modern has no Hangul.
	ko, err := f.Shapes("하디", 1, 2)
	require.NoError(t, err)
	assert.Empty(t, ko.Shapes)
	assert.Equal(t, []rune("하디"), ko.Missing)
}

func TestTextGeometry(t *testing.T) {
	f, err := Fallback()
	require.NoError(t, err)

	opts := TextOptions{Size: 0.5, Depth: 0.1, CurveSegments: 2, BevelEnabled: true, BevelThickness: 0.1, BevelSize: 0.01, BevelSegments: 3}
	g, err := TextGeometry(f, "Hi", opts)
	require.NoError(t, err)
	assert.Equal(t, "text", g.Type)
	b := g.BoundingBox()
	assert.InDelta(t, -0.1, b.Min[2], 1e-5)
	assert.InDelta(t, 0.2, b.Max[2], 1e-5)

	_, err = TextGeometry(f, "하디최고", opts)
	assert.True(t, errors.Is(err, geometry.ErrEmptyShape))
}

func TestInsidePolygon(t *testing.T) {
	sq := []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	assert.True(t, insidePolygon(mgl32.Vec2{0.5, 0.5}, sq))
	assert.False(t, insidePolygon(mgl32.Vec2{1.5, 0.5}, sq))
}
