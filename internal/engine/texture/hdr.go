package texture

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// HDRImage is a linear float RGB image, rows top to bottom.
type HDRImage struct {
	Width, Height int
	Pix           []float32
}

// At returns the RGB value at (x, y).
func (h *HDRImage) At(x, y int) [3]float32 {
	i := (y*h.Width + x) * 3
	return [3]float32{h.Pix[i], h.Pix[i+1], h.Pix[i+2]}
}

// DecodeHDR reads a Radiance RGBE image, flat or with adaptive run-length
// scanlines.
func DecodeHDR(r io.Reader) (*HDRImage, error) {
	br := bufio.NewReader(r)
	magic, err := br.ReadString('\n')
	if err != nil {
		return nil, errors.Wrap(err, "hdr: read magic")
	}
	if !strings.HasPrefix(magic, "#?") {
		return nil, errors.New("hdr: missing #? signature")
	}
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, errors.Wrap(err, "hdr: read header")
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		if strings.HasPrefix(line, "FORMAT=") && line != "FORMAT=32-bit_rle_rgbe" {
			return nil, errors.Errorf("hdr: unsupported %s", line)
		}
	}
	res, err := br.ReadString('\n')
	if err != nil {
		return nil, errors.Wrap(err, "hdr: read resolution")
	}
	w, h, flipY, err := parseResolution(res)
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("hdr: bad size %dx%d", w, h)
	}

	img := &HDRImage{Width: w, Height: h, Pix: make([]float32, w*h*3)}
	scan := make([]byte, w*4)
	for y := 0; y < h; y++ {
		if err := readScanline(br, scan, w); err != nil {
			return nil, errors.Wrapf(err, "hdr: scanline %d", y)
		}
		row := y
		if flipY {
			row = h - 1 - y
		}
		for x := 0; x < w; x++ {
			rgbe := scan[x*4 : x*4+4]
			i := (row*w + x) * 3
			if rgbe[3] == 0 {
				continue
			}
			f := math32.Ldexp(1, int(rgbe[3])-(128+8))
			img.Pix[i] = float32(rgbe[0]) * f
			img.Pix[i+1] = float32(rgbe[1]) * f
			img.Pix[i+2] = float32(rgbe[2]) * f
		}
	}
	return img, nil
}

// parseResolution accepts the standard "-Y h +X w" orientation and its
// bottom-up variant "+Y h +X w".
func parseResolution(line string) (w, h int, flipY bool, err error) {
	f := strings.Fields(line)
	if len(f) != 4 || (f[0] != "-Y" && f[0] != "+Y") || f[2] != "+X" {
		return 0, 0, false, errors.Errorf("hdr: unsupported resolution line %q", strings.TrimSpace(line))
	}
	if h, err = strconv.Atoi(f[1]); err != nil {
		return 0, 0, false, errors.Wrap(err, "hdr: height")
	}
	if w, err = strconv.Atoi(f[3]); err != nil {
		return 0, 0, false, errors.Wrap(err, "hdr: width")
	}
	return w, h, f[0] == "+Y", nil
}

func readScanline(br *bufio.Reader, scan []byte, w int) error {
	head, err := br.Peek(4)
	if err != nil {
		return err
	}
	if w < 8 || w > 0x7fff || head[0] != 2 || head[1] != 2 || head[2]&0x80 != 0 {
		_, err := io.ReadFull(br, scan)
		return err
	}
	if int(head[2])<<8|int(head[3]) != w {
		return errors.New("scanline width mismatch")
	}
	if _, err := br.Discard(4); err != nil {
		return err
	}
	for c := 0; c < 4; c++ {
		for x := 0; x < w; {
			count, err := br.ReadByte()
			if err != nil {
				return err
			}
			if count > 128 {
				n := int(count) - 128
				v, err := br.ReadByte()
				if err != nil {
					return err
				}
				if x+n > w {
					return errors.New("run overflows scanline")
				}
				for ; n > 0; n-- {
					scan[x*4+c] = v
					x++
				}
				continue
			}
			n := int(count)
			if n == 0 || x+n > w {
				return errors.New("bad literal run")
			}
			for ; n > 0; n-- {
				v, err := br.ReadByte()
				if err != nil {
					return err
				}
				scan[x*4+c] = v
				x++
			}
		}
	}
	return nil
}

// EncodeHDR writes img as a flat RGBE file.
func EncodeHDR(w io.Writer, img *HDRImage) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y %d +X %d\n", img.Height, img.Width)
	for i := 0; i+2 < len(img.Pix); i += 3 {
		if _, err := bw.Write(toRGBE(img.Pix[i], img.Pix[i+1], img.Pix[i+2])); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func toRGBE(r, g, b float32) []byte {
	v := math32.Max(r, math32.Max(g, b))
	if v < 1e-32 {
		return []byte{0, 0, 0, 0}
	}
	m, e := math32.Frexp(v)
	scale := m * 256 / v
	return []byte{byte(r * scale), byte(g * scale), byte(b * scale), byte(e + 128)}
}
