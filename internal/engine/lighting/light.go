// Package lighting defines the light sources a scene can hold. Light is a
// closed set of kinds; code that must handle each kind implements Visitor so
// a new kind fails to compile until every visitor covers it.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/scene"
	"github.com/Faultbox/scenelab/internal/engine/texture"
)

// Kind enumerates light types.
type Kind int

const (
	KindAmbient Kind = iota
	KindHemisphere
	KindDirectional
	KindPoint
	KindSpot
	KindRectArea
	KindEnvironment
)

func (k Kind) String() string {
	switch k {
	case KindAmbient:
		return "ambient"
	case KindHemisphere:
		return "hemisphere"
	case KindDirectional:
		return "directional"
	case KindPoint:
		return "point"
	case KindSpot:
		return "spot"
	case KindRectArea:
		return "rectarea"
	case KindEnvironment:
		return "environment"
	}
	return "unknown"
}

// Light is a scene object that emits light.
type Light interface {
	scene.Object
	Kind() Kind
	Params() *Common
	Accept(v Visitor)
}

// Visitor receives the concrete light in Accept.
type Visitor interface {
	Ambient(*Ambient)
	Hemisphere(*Hemisphere)
	Directional(*Directional)
	Point(*Point)
	Spot(*Spot)
	RectArea(*RectArea)
	Environment(*Environment)
}

// Common is embedded by every light.
type Common struct {
	scene.Node
	Color     color.Color
	Intensity float32
}

func newCommon(name string, c color.Color, intensity float32) Common {
	n := scene.MakeNode()
	n.Name = name
	return Common{Node: n, Color: c, Intensity: intensity}
}

// Params returns the shared fields.
func (c *Common) Params() *Common { return c }

// Radiance is Color scaled by Intensity in linear space.
func (c *Common) Radiance() mgl32.Vec3 {
	return c.Color.Linear().Vec3().Mul(c.Intensity)
}

// Shadow configures shadow casting for lights that support it.
type Shadow struct {
	Enabled bool
	MapSize int
	// Radius blurs the shadow edge, in shadow map texels.
	Radius     float32
	Bias       float32
	NormalBias float32
	Near       float32
	Far        float32
	// OrthoSize is the half extent of a directional light's shadow camera.
	OrthoSize float32
}

// DefaultShadow returns shadow settings for a 512 texel map.
func DefaultShadow() Shadow {
	return Shadow{MapSize: 512, Radius: 1, Near: 0.5, Far: 500, OrthoSize: 5}
}

// Ambient lights every surface equally.
type Ambient struct {
	Common
}

// NewAmbient creates an ambient light.
func NewAmbient(c color.Color, intensity float32) *Ambient {
	return &Ambient{Common: newCommon("ambient", c, intensity)}
}

func (l *Ambient) Kind() Kind       { return KindAmbient }
func (l *Ambient) Accept(v Visitor) { v.Ambient(l) }

// Hemisphere blends from Ground to Color (the sky) by how much a surface
// faces up.
type Hemisphere struct {
	Common
	Ground color.Color
}

// NewHemisphere creates a hemisphere light positioned straight up.
func NewHemisphere(sky, ground color.Color, intensity float32) *Hemisphere {
	l := &Hemisphere{Common: newCommon("hemisphere", sky, intensity), Ground: ground}
	l.Position = mgl32.Vec3{0, 1, 0}
	return l
}

func (l *Hemisphere) Kind() Kind       { return KindHemisphere }
func (l *Hemisphere) Accept(v Visitor) { v.Hemisphere(l) }

// Up returns the world direction of the sky.
func (l *Hemisphere) Up() mgl32.Vec3 {
	p := l.WorldPosition()
	if p.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return p.Normalize()
}

// Directional shines parallel rays from its position toward Target.
type Directional struct {
	Common
	// Target is not part of the scene unless added; when detached its
	// Position is used directly.
	Target *scene.Node
	Shadow Shadow
}

// NewDirectional creates a directional light at (0, 1, 0) aimed at the origin.
func NewDirectional(c color.Color, intensity float32) *Directional {
	l := &Directional{Common: newCommon("directional", c, intensity), Target: scene.NewNode("target"), Shadow: DefaultShadow()}
	l.Position = mgl32.Vec3{0, 1, 0}
	return l
}

func (l *Directional) Kind() Kind       { return KindDirectional }
func (l *Directional) Accept(v Visitor) { v.Directional(l) }

// Direction returns the normalized world direction the light travels.
func (l *Directional) Direction() mgl32.Vec3 {
	return direction(l.WorldPosition(), l.Target.WorldPosition())
}

// Point radiates in all directions. Distance 0 means no cutoff.
type Point struct {
	Common
	Distance float32
	Decay    float32
	Shadow   Shadow
}

// NewPoint creates a point light.
func NewPoint(c color.Color, intensity, distance float32) *Point {
	return &Point{Common: newCommon("point", c, intensity), Distance: distance, Decay: 2, Shadow: DefaultShadow()}
}

func (l *Point) Kind() Kind       { return KindPoint }
func (l *Point) Accept(v Visitor) { v.Point(l) }

// Attenuation returns the falloff factor at distance d.
func (l *Point) Attenuation(d float32) float32 {
	return attenuation(d, l.Distance, l.Decay)
}

// Spot is a cone of light from its position toward Target. Angle is the
// half angle of the cone in radians; Penumbra is the fraction of it that
// fades out.
type Spot struct {
	Common
	Distance float32
	Angle    float32
	Penumbra float32
	Decay    float32
	Target   *scene.Node
	Shadow   Shadow
}

// NewSpot creates a spot light at (0, 1, 0) aimed at the origin.
func NewSpot(c color.Color, intensity, distance, angle, penumbra float32) *Spot {
	l := &Spot{
		Common:   newCommon("spot", c, intensity),
		Distance: distance,
		Angle:    angle,
		Penumbra: penumbra,
		Decay:    2,
		Target:   scene.NewNode("target"),
		Shadow:   DefaultShadow(),
	}
	l.Position = mgl32.Vec3{0, 1, 0}
	return l
}

func (l *Spot) Kind() Kind       { return KindSpot }
func (l *Spot) Accept(v Visitor) { v.Spot(l) }

// Direction returns the normalized world direction of the cone axis.
func (l *Spot) Direction() mgl32.Vec3 {
	return direction(l.WorldPosition(), l.Target.WorldPosition())
}

// ConeCosines returns the cosines of the outer and inner cone angles.
func (l *Spot) ConeCosines() (outer, inner float32) {
	outer = cos(l.Angle)
	inner = cos(l.Angle * (1 - l.Penumbra))
	return outer, inner
}

// Attenuation returns the distance falloff factor at d.
func (l *Spot) Attenuation(d float32) float32 {
	return attenuation(d, l.Distance, l.Decay)
}

// RectArea emits from a Width x Height rectangle facing its local -Z.
type RectArea struct {
	Common
	Width  float32
	Height float32
}

// NewRectArea creates a rectangular area light.
func NewRectArea(c color.Color, intensity, width, height float32) *RectArea {
	return &RectArea{Common: newCommon("rectarea", c, intensity), Width: width, Height: height}
}

func (l *RectArea) Kind() Kind       { return KindRectArea }
func (l *RectArea) Accept(v Visitor) { v.RectArea(l) }

// Normal returns the world direction the light faces.
func (l *RectArea) Normal() mgl32.Vec3 {
	m := l.WorldMatrix()
	return m.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3().Normalize()
}

// Environment lights the scene from an equirectangular image.
type Environment struct {
	Common
	Map *texture.Texture
}

// NewEnvironment creates image based lighting from tex.
func NewEnvironment(tex *texture.Texture, intensity float32) *Environment {
	return &Environment{Common: newCommon("environment", color.White, intensity), Map: tex}
}

func (l *Environment) Kind() Kind       { return KindEnvironment }
func (l *Environment) Accept(v Visitor) { v.Environment(l) }

// Collect returns the visible lights under root in traversal order.
func Collect(root scene.Object) []Light {
	var out []Light
	root.Base().TraverseVisible(func(obj scene.Object) {
		if l, ok := obj.(Light); ok {
			out = append(out, l)
		}
	})
	return out
}

// CastsShadow reports whether l has shadows enabled.
func CastsShadow(l Light) bool {
	switch l := l.(type) {
	case *Directional:
		return l.Shadow.Enabled
	case *Point:
		return l.Shadow.Enabled
	case *Spot:
		return l.Shadow.Enabled
	}
	return false
}
