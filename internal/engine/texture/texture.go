// Package texture decodes the images scenes sample from (color maps, data
// maps and HDR environments) and wraps them in disposable handles.
package texture

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
)

// ColorSpace tells the renderer whether texels need decoding before lighting.
type ColorSpace int

const (
	LinearSpace ColorSpace = iota
	SRGBSpace
)

// Mapping is how a texture is projected.
type Mapping int

const (
	UVMapping Mapping = iota
	EquirectangularMapping
)

// Texture is an image plus sampling metadata. Exactly one of RGBA and HDR
// is set.
type Texture struct {
	Name       string
	RGBA       *image.RGBA
	HDR        *HDRImage
	ColorSpace ColorSpace
	Mapping    Mapping
	Repeat     [2]float32

	// Version increases whenever the pixels change so GPU copies can refresh.
	Version int

	disposed  bool
	onDispose []func(*Texture)
}

// New wraps an RGBA image.
func New(name string, img *image.RGBA) *Texture {
	return &Texture{Name: name, RGBA: img, Repeat: [2]float32{1, 1}, Version: 1}
}

// NewHDR wraps a float image for equirectangular environment lighting.
func NewHDR(name string, img *HDRImage) *Texture {
	return &Texture{Name: name, HDR: img, Mapping: EquirectangularMapping, Repeat: [2]float32{1, 1}, Version: 1}
}

// Size returns the pixel dimensions.
func (t *Texture) Size() (int, int) {
	switch {
	case t.RGBA != nil:
		b := t.RGBA.Bounds()
		return b.Dx(), b.Dy()
	case t.HDR != nil:
		return t.HDR.Width, t.HDR.Height
	}
	return 0, 0
}

// IsHDR reports whether the texture holds float data.
func (t *Texture) IsHDR() bool { return t.HDR != nil }

// OnDispose registers fn to run when the texture is disposed.
func (t *Texture) OnDispose(fn func(*Texture)) {
	t.onDispose = append(t.onDispose, fn)
}

// Dispose releases the texture. Later calls do nothing.
func (t *Texture) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	for _, fn := range t.onDispose {
		fn(t)
	}
}

// Disposed reports whether Dispose has been called.
func (t *Texture) Disposed() bool { return t.disposed }

// Decode picks a decoder from the file extension: .tga and .hdr are handled
// here, everything else goes through image.Decode (png, jpeg, bmp).
func Decode(name string, data []byte) (*Texture, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".hdr":
		img, err := DecodeHDR(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s", name)
		}
		return NewHDR(name, img), nil
	case ".tga":
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s", name)
		}
		return New(name, img), nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return New(name, clone.AsRGBA(img)), nil
}

// Checker builds a size x size checkerboard with cells of cell pixels. The
// asset loader substitutes it for textures that fail to load.
func Checker(size, cell int, a, b color.RGBA) *image.RGBA {
	if cell < 1 {
		cell = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// FlipY returns the image mirrored vertically, matching GL's bottom-left
// texture origin.
func FlipY(img *image.RGBA) *image.RGBA {
	return transform.FlipV(img)
}

// Fit scales img down so neither side exceeds maxSize.
func Fit(img *image.RGBA, maxSize int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}
	if w >= h {
		h = h * maxSize / w
		w = maxSize
	} else {
		w = w * maxSize / h
		h = maxSize
	}
	return transform.Resize(img, max(w, 1), max(h, 1), transform.Linear)
}

// Downsample halves an HDR image until its width is at most maxWidth. Used
// to keep 4k environment maps cheap to sample on the CPU.
func Downsample(img *HDRImage, maxWidth int) *HDRImage {
	for maxWidth > 0 && img.Width > maxWidth && img.Height > 1 {
		w, h := img.Width/2, img.Height/2
		out := &HDRImage{Width: w, Height: h, Pix: make([]float32, w*h*3)}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				for c := 0; c < 3; c++ {
					s := img.Pix[((2*y)*img.Width+2*x)*3+c] +
						img.Pix[((2*y)*img.Width+2*x+1)*3+c] +
						img.Pix[((2*y+1)*img.Width+2*x)*3+c] +
						img.Pix[((2*y+1)*img.Width+2*x+1)*3+c]
					out.Pix[(y*w+x)*3+c] = s / 4
				}
			}
		}
		img = out
	}
	return img
}
