package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x1, 24bpp, bottom-up: blue then red in BGR order.
	data := make([]byte, 18)
	data[2] = tgaUncompressed
	data[12], data[14], data[16] = 2, 1, 24
	data = append(data, 255, 0, 0, 0, 0, 255)

	img, err := DecodeTGA(data)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(1, 0))
}

func TestDecodeTGARLE(t *testing.T) {
	data := make([]byte, 18)
	data[2] = tgaRLE
	data[12], data[14], data[16], data[17] = 3, 1, 32, 0x20
	data = append(data, 0x82, 10, 20, 30, 40)

	img, err := DecodeTGA(data)
	require.NoError(t, err)
	for x := 0; x < 3; x++ {
		assert.Equal(t, color.RGBA{30, 20, 10, 40}, img.RGBAAt(x, 0))
	}
}

func TestDecodeTGARejectsColorMapped(t *testing.T) {
	data := make([]byte, 18)
	data[1] = 1
	_, err := DecodeTGA(data)
	assert.Error(t, err)
}

func TestHDRRoundTripKeepsBrightness(t *testing.T) {
	src := &HDRImage{Width: 2, Height: 1, Pix: []float32{4, 2, 1, 0.5, 0.25, 0}}
	var buf bytes.Buffer
	require.NoError(t, EncodeHDR(&buf, src))

	got, err := DecodeHDR(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, got.Width)
	for i, v := range src.Pix {
		assert.InDelta(t, v, got.Pix[i], float64(v)*0.02+1e-6)
	}
}

func TestDecodeHDRRejectsBadSignature(t *testing.T) {
	_, err := DecodeHDR(bytes.NewBufferString("P6\n"))
	assert.Error(t, err)
}

func TestDecodeByExtension(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, Checker(4, 2, color.RGBA{255, 255, 255, 255}, color.RGBA{0, 0, 0, 255})))

	tex, err := Decode("basecolor.PNG", buf.Bytes())
	require.NoError(t, err)
	w, h := tex.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)
	assert.False(t, tex.IsHDR())

	_, err = Decode("broken.jpg", []byte("nope"))
	assert.Error(t, err)
}

func TestDisposeRunsListenersOnce(t *testing.T) {
	tex := New("t", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	n := 0
	tex.OnDispose(func(*Texture) { n++ })
	tex.Dispose()
	tex.Dispose()
	assert.Equal(t, 1, n)
	assert.True(t, tex.Disposed())
}

func TestFitAndFlip(t *testing.T) {
	img := Checker(64, 8, color.RGBA{255, 0, 0, 255}, color.RGBA{0, 0, 255, 255})
	small := Fit(img, 16)
	assert.Equal(t, 16, small.Bounds().Dx())

	flipped := FlipY(img)
	assert.Equal(t, img.RGBAAt(0, 63), flipped.RGBAAt(0, 0))
}

func TestDownsample(t *testing.T) {
	img := &HDRImage{Width: 4, Height: 2, Pix: make([]float32, 4*2*3)}
	for i := range img.Pix {
		img.Pix[i] = 1
	}
	out := Downsample(img, 2)
	assert.Equal(t, 2, out.Width)
	assert.Equal(t, 1, out.Height)
	assert.InDelta(t, 1, out.Pix[0], 1e-6)
}
