package texture

import (
	"image"

	"github.com/pkg/errors"
)

const (
	tgaUncompressed = 2
	tgaRLE          = 10
)

// DecodeTGA decodes uncompressed and RLE true-color TGA images with 24 or
// 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < 18 {
		return nil, errors.New("tga: header too short")
	}
	idLength := int(data[0])
	colorMapType, imageType := data[1], data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, errors.New("tga: color-mapped images are not supported")
	}
	if imageType != tgaUncompressed && imageType != tgaRLE {
		return nil, errors.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, errors.Errorf("tga: unsupported bit depth %d", bpp)
	}
	offset := 18 + idLength
	if offset > len(data) {
		return nil, errors.New("tga: truncated")
	}
	src := data[offset:]
	stride := bpp / 8

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	put := func(n int, px []byte) {
		x, y := n%width, n/width
		if !topToBottom {
			y = height - 1 - y
		}
		i := img.PixOffset(x, y)
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = px[2], px[1], px[0], 255
		if stride == 4 {
			img.Pix[i+3] = px[3]
		}
	}

	total := width * height
	if imageType == tgaUncompressed {
		if len(src) < total*stride {
			return nil, errors.New("tga: pixel data truncated")
		}
		for n := 0; n < total; n++ {
			put(n, src[n*stride:])
		}
		return img, nil
	}

	n, pos := 0, 0
	for n < total && pos < len(src) {
		header := src[pos]
		pos++
		count := int(header&0x7f) + 1
		if header&0x80 != 0 {
			if pos+stride > len(src) {
				break
			}
			for i := 0; i < count && n < total; i++ {
				put(n, src[pos:])
				n++
			}
			pos += stride
			continue
		}
		for i := 0; i < count && n < total && pos+stride <= len(src); i++ {
			put(n, src[pos:])
			pos += stride
			n++
		}
	}
	return img, nil
}
