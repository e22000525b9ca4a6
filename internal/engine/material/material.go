// Package material describes how surfaces respond to light. Materials are
// plain parameter sets; the renderer picks a shader program per Kind.
package material

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/texture"
)

// Side selects which triangle faces are drawn.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Kind identifies the lighting model.
type Kind int

const (
	KindBasic Kind = iota
	KindPhong
	KindStandard
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindPhong:
		return "phong"
	case KindStandard:
		return "standard"
	case KindLine:
		return "line"
	}
	return "unknown"
}

// Material is implemented by every concrete material type.
type Material interface {
	Common() *Base
	Kind() Kind
	// Textures lists the maps the material samples, nil entries omitted.
	Textures() []*texture.Texture
}

// Base holds the parameters every material shares.
type Base struct {
	Name        string
	Side        Side
	Transparent bool
	Opacity     float32
	Wireframe   bool
	FlatShading bool
	DepthWrite  bool

	disposed  bool
	onDispose []func()
}

func newBase() Base {
	return Base{Opacity: 1, DepthWrite: true}
}

// Common returns the shared parameters.
func (b *Base) Common() *Base { return b }

// Blended reports whether the material must be drawn in the transparent pass.
func (b *Base) Blended() bool { return b.Transparent && b.Opacity < 1 }

// OnDispose registers fn to run when the material is disposed.
func (b *Base) OnDispose(fn func()) { b.onDispose = append(b.onDispose, fn) }

// Dispose releases GPU state tied to the material. Textures are not
// disposed since they may be shared.
func (b *Base) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	for _, fn := range b.onDispose {
		fn()
	}
}

// Disposed reports whether Dispose has been called.
func (b *Base) Disposed() bool { return b.disposed }

// Basic is unlit.
type Basic struct {
	Base
	Color color.Color
	Map   *texture.Texture
}

// NewBasic creates an unlit material.
func NewBasic(c color.Color) *Basic {
	return &Basic{Base: newBase(), Color: c}
}

func (m *Basic) Kind() Kind { return KindBasic }

func (m *Basic) Textures() []*texture.Texture { return compact(m.Map) }

// Phong is Blinn-Phong shading with a specular highlight.
type Phong struct {
	Base
	Color     color.Color
	Emissive  color.Color
	Specular  color.Color
	Shininess float32
	Map       *texture.Texture
}

// NewPhong creates a Phong material with the usual defaults.
func NewPhong(c color.Color) *Phong {
	return &Phong{Base: newBase(), Color: c, Specular: color.Hex(0x111111), Shininess: 30}
}

func (m *Phong) Kind() Kind { return KindPhong }

func (m *Phong) Textures() []*texture.Texture { return compact(m.Map) }

// Standard is the metallic-roughness physically based model.
type Standard struct {
	Base
	Color     color.Color
	Emissive  color.Color
	Roughness float32
	Metalness float32

	Map             *texture.Texture
	NormalMap       *texture.Texture
	NormalScale     mgl32.Vec2
	AOMap           *texture.Texture
	AOMapIntensity  float32
	DisplacementMap *texture.Texture
	// Displacement moves vertices along their normal by
	// texel*DisplacementScale + DisplacementBias.
	DisplacementScale float32
	DisplacementBias  float32
	RoughnessMap      *texture.Texture
	MetalnessMap      *texture.Texture
	AlphaMap          *texture.Texture
	EnvMapIntensity   float32
}

// NewStandard creates a standard material with the usual defaults.
func NewStandard(c color.Color) *Standard {
	return &Standard{
		Base:              newBase(),
		Color:             c,
		Roughness:         1,
		Metalness:         0,
		NormalScale:       mgl32.Vec2{1, 1},
		AOMapIntensity:    1,
		DisplacementScale: 1,
		EnvMapIntensity:   1,
	}
}

func (m *Standard) Kind() Kind { return KindStandard }

func (m *Standard) Textures() []*texture.Texture {
	return compact(m.Map, m.NormalMap, m.AOMap, m.DisplacementMap, m.RoughnessMap, m.MetalnessMap, m.AlphaMap)
}

// LineBasic draws line geometry in a flat color, or per vertex when
// VertexColors is set and the geometry carries Colors.
type LineBasic struct {
	Base
	Color        color.Color
	VertexColors bool
}

// NewLineBasic creates a line material.
func NewLineBasic(c color.Color) *LineBasic {
	return &LineBasic{Base: newBase(), Color: c}
}

func (m *LineBasic) Kind() Kind { return KindLine }

func (m *LineBasic) Textures() []*texture.Texture { return nil }

func compact(ts ...*texture.Texture) []*texture.Texture {
	var out []*texture.Texture
	for _, t := range ts {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}
