// Package color provides RGB colors in sRGB space with helpers for hex
// literals and conversion to linear values for shading.
package color

import (
	"fmt"
	imgcolor "image/color"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Color is an sRGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Common colors.
var (
	White = Color{1, 1, 1}
	Black = Color{0, 0, 0}
)

// Hex converts a 0xRRGGBB literal.
func Hex(h uint32) Color {
	return Color{
		R: float32((h>>16)&0xff) / 255,
		G: float32((h>>8)&0xff) / 255,
		B: float32(h&0xff) / 255,
	}
}

// Parse accepts "#rgb", "#rrggbb" and "0xrrggbb".
func Parse(s string) (Color, error) {
	v := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(v, "#"):
		v = v[1:]
	case strings.HasPrefix(v, "0x"), strings.HasPrefix(v, "0X"):
		v = v[2:]
	default:
		return Color{}, fmt.Errorf("color %q: missing # or 0x prefix", s)
	}
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return Color{}, fmt.Errorf("color %q: want 3 or 6 hex digits", s)
	}
	h, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Hex(uint32(h)), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the 0xRRGGBB form of c.
func (c Color) Hex() uint32 {
	return uint32(to8(c.R))<<16 | uint32(to8(c.G))<<8 | uint32(to8(c.B))
}

// String formats c as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.Hex())
}

// Vec3 returns the raw components.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// Linear converts c from sRGB to linear space.
func (c Color) Linear() Color {
	return Color{toLinear(c.R), toLinear(c.G), toLinear(c.B)}
}

// Scale multiplies every component by s without clamping.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// RGBA converts to an opaque 8-bit color.
func (c Color) RGBA() imgcolor.RGBA {
	return imgcolor.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255}
}

func toLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

func to8(v float32) uint8 {
	return uint8(math32.Round(mgl32.Clamp(v, 0, 1) * 255))
}
