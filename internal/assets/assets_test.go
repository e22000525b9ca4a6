package assets

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/engine/font"
	"github.com/Faultbox/scenelab/internal/engine/texture"
)

func TestManagerPriorityAndCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("disk"), 0o644))

	m := NewDirManager(dir)
	m.AddSource(FSSource{FS: fstest.MapFS{"a.txt": {Data: []byte("mem")}}})

	data, err := m.Load("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "mem", string(data))

	_, err = m.Load("a.txt")
	require.NoError(t, err)
	hits, misses := m.Cache().Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)

	_, err = m.Load("missing.png")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.png")
}

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue()
	var got []int
	q.Post(func() { got = append(got, 1) })
	q.Post(func() {
		got = append(got, 2)
		q.Post(func() { got = append(got, 3) })
	})

	assert.Equal(t, 2, q.Drain())
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 1, q.Len())
	q.Drain()
	assert.Equal(t, []int{1, 2, 3}, got)
}

func pngBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, texture.Checker(2, 1, color.RGBA{255, 0, 0, 255}, color.RGBA{0, 255, 0, 255})))
	return buf.Bytes()
}

func TestTextureLoadFillsHandleOnDrain(t *testing.T) {
	m := NewManager()
	m.AddSource(FSSource{FS: fstest.MapFS{"tex/basecolor.png": {Data: pngBytes(t)}}})
	q := NewQueue()
	l := NewLoader(m, q)

	var cbErr error
	called := false
	tex := l.Texture("tex/basecolor.png", texture.SRGBSpace, func(_ *texture.Texture, err error) {
		called, cbErr = true, err
	})
	w, _ := tex.Size()
	assert.Equal(t, 64, w, "placeholder before drain")

	l.Wait()
	assert.False(t, called)
	q.Drain()

	require.True(t, called)
	assert.NoError(t, cbErr)
	w, _ = tex.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, texture.SRGBSpace, tex.ColorSpace)
	assert.Equal(t, 2, tex.Version)
}

func TestTextureFailureKeepsChecker(t *testing.T) {
	l := NewLoader(NewManager(), NewQueue())
	var cbErr error
	tex := l.Texture("nope.jpg", texture.LinearSpace, func(_ *texture.Texture, err error) { cbErr = err })
	l.Wait()
	l.Queue().Drain()

	assert.Error(t, cbErr)
	w, _ := tex.Size()
	assert.Equal(t, 64, w)
}

func TestHDRFailureDeliversNil(t *testing.T) {
	l := NewLoader(NewManager(), NewQueue())
	var got *texture.Texture
	var cbErr error
	l.HDR("park.hdr", 512, func(tex *texture.Texture, err error) { got, cbErr = tex, err })
	l.Wait()
	l.Queue().Drain()

	assert.Nil(t, got)
	assert.Error(t, cbErr)
}

func TestHDRLoadDownsamples(t *testing.T) {
	img := &texture.HDRImage{Width: 8, Height: 4, Pix: make([]float32, 8*4*3)}
	var buf bytes.Buffer
	require.NoError(t, texture.EncodeHDR(&buf, img))

	m := NewManager()
	m.AddSource(FSSource{FS: fstest.MapFS{"env.hdr": {Data: buf.Bytes()}}})
	l := NewLoader(m, NewQueue())

	var got *texture.Texture
	l.HDR("env.hdr", 4, func(tex *texture.Texture, err error) { got = tex })
	l.Wait()
	l.Queue().Drain()

	require.NotNil(t, got)
	assert.True(t, got.IsHDR())
	w, _ := got.Size()
	assert.Equal(t, 4, w)
}

func TestFontFallsBack(t *testing.T) {
	l := NewLoader(NewManager(), NewQueue())
	var got *font.Font
	var cbErr error
	l.Font("GowunDodum-Regular.ttf", func(f *font.Font, err error) { got, cbErr = f, err })
	l.Wait()
	l.Queue().Drain()

	assert.Error(t, cbErr)
	require.NotNil(t, got)
	assert.True(t, got.HasGlyph('A'))
}
