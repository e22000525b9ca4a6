package debug

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
)

// helperColor is the light's color unless an override is set.
func helperColor(override *color.Color, l lighting.Light) color.Color {
	if override != nil {
		return *override
	}
	return l.Params().Color
}

// DirectionalLightHelper draws a square facing the target and a line to it.
type DirectionalLightHelper struct {
	lineHelper
	Light *lighting.Directional
	Size  float32
	Color *color.Color
}

// NewDirectionalLightHelper creates a helper for l.
func NewDirectionalLightHelper(l *lighting.Directional, size float32) *DirectionalLightHelper {
	h := &DirectionalLightHelper{lineHelper: newLineHelper("directional-helper"), Light: l, Size: size}
	h.Update()
	return h
}

func (h *DirectionalLightHelper) Update() {
	c := helperColor(h.Color, h.Light)
	pos := h.Light.WorldPosition()
	dir := h.Light.Direction()
	u, v := basis(dir)
	s := h.Size
	var l lines
	l.loop([]mgl32.Vec3{
		pos.Add(u.Mul(-s)).Add(v.Mul(s)),
		pos.Add(u.Mul(s)).Add(v.Mul(s)),
		pos.Add(u.Mul(s)).Add(v.Mul(-s)),
		pos.Add(u.Mul(-s)).Add(v.Mul(-s)),
	}, c)
	l.seg(pos, h.Light.Target.WorldPosition(), c)
	h.set(&l)
}

// PointLightHelper draws three great circles around the light.
type PointLightHelper struct {
	lineHelper
	Light  *lighting.Point
	Radius float32
	Color  *color.Color
}

// NewPointLightHelper creates a helper for l.
func NewPointLightHelper(l *lighting.Point, radius float32) *PointLightHelper {
	h := &PointLightHelper{lineHelper: newLineHelper("point-helper"), Light: l, Radius: radius}
	h.Update()
	return h
}

func (h *PointLightHelper) Update() {
	c := helperColor(h.Color, h.Light)
	p := h.Light.WorldPosition()
	x, y, z := mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}
	var l lines
	l.loop(circle(p, x, y, h.Radius, 16), c)
	l.loop(circle(p, y, z, h.Radius, 16), c)
	l.loop(circle(p, z, x, h.Radius, 16), c)
	h.set(&l)
}

// SpotLightHelper draws the light cone out to Distance, or 1000 units when
// the light has no cutoff.
type SpotLightHelper struct {
	lineHelper
	Light *lighting.Spot
	Color *color.Color
}

// NewSpotLightHelper creates a helper for l.
func NewSpotLightHelper(l *lighting.Spot) *SpotLightHelper {
	h := &SpotLightHelper{lineHelper: newLineHelper("spot-helper"), Light: l}
	h.Update()
	return h
}

func (h *SpotLightHelper) Update() {
	c := helperColor(h.Color, h.Light)
	length := h.Light.Distance
	if length <= 0 {
		length = 1000
	}
	apex := h.Light.WorldPosition()
	dir := h.Light.Direction()
	u, v := basis(dir)
	center := apex.Add(dir.Mul(length))
	radius := length * math32.Tan(h.Light.Angle)

	var l lines
	rim := circle(center, u, v, radius, 32)
	l.loop(rim, c)
	for i := 0; i < len(rim); i += len(rim) / 4 {
		l.seg(apex, rim[i], c)
	}
	h.set(&l)
}

// RectAreaLightHelper outlines the emitting rectangle and its normal.
type RectAreaLightHelper struct {
	lineHelper
	Light *lighting.RectArea
	Color *color.Color
}

// NewRectAreaLightHelper creates a helper for l.
func NewRectAreaLightHelper(l *lighting.RectArea) *RectAreaLightHelper {
	h := &RectAreaLightHelper{lineHelper: newLineHelper("rectarea-helper"), Light: l}
	h.Update()
	return h
}

func (h *RectAreaLightHelper) Update() {
	c := helperColor(h.Color, h.Light)
	m := h.Light.WorldMatrix()
	w, ht := h.Light.Width/2, h.Light.Height/2
	at := func(x, y, z float32) mgl32.Vec3 { return m.Mul4x1(mgl32.Vec4{x, y, z, 1}).Vec3() }
	var l lines
	l.loop([]mgl32.Vec3{at(-w, ht, 0), at(w, ht, 0), at(w, -ht, 0), at(-w, -ht, 0)}, c)
	l.seg(at(0, 0, 0), at(0, 0, -min(w, ht)), c)
	h.set(&l)
}

// HemisphereLightHelper draws a small diamond colored sky on top and ground
// below.
type HemisphereLightHelper struct {
	lineHelper
	Light *lighting.Hemisphere
	Size  float32
}

// NewHemisphereLightHelper creates a helper for l.
func NewHemisphereLightHelper(l *lighting.Hemisphere, size float32) *HemisphereLightHelper {
	h := &HemisphereLightHelper{lineHelper: newLineHelper("hemisphere-helper"), Light: l, Size: size}
	h.Update()
	return h
}

func (h *HemisphereLightHelper) Update() {
	p := h.Light.WorldPosition()
	up := h.Light.Up()
	u, v := basis(up)
	s := h.Size
	top, bottom := p.Add(up.Mul(s)), p.Sub(up.Mul(s))
	ring := []mgl32.Vec3{p.Add(u.Mul(s)), p.Add(v.Mul(s)), p.Sub(u.Mul(s)), p.Sub(v.Mul(s))}
	var l lines
	for _, r := range ring {
		l.seg(top, r, h.Light.Color)
		l.seg(r, bottom, h.Light.Ground)
	}
	l.loop(ring, h.Light.Color)
	h.set(&l)
}

// CameraHelper draws a camera's view frustum.
type CameraHelper struct {
	lineHelper
	Camera camera.Camera
	Color  color.Color
}

// NewCameraHelper creates a frustum helper for cam.
func NewCameraHelper(cam camera.Camera) *CameraHelper {
	h := &CameraHelper{lineHelper: newLineHelper("camera-helper"), Camera: cam, Color: color.Hex(0xffaa00)}
	h.Update()
	return h
}

func (h *CameraHelper) Update() {
	inv := camera.ViewProjection(h.Camera).Inv()
	corner := func(x, y, z float32) mgl32.Vec3 {
		v := inv.Mul4x1(mgl32.Vec4{x, y, z, 1})
		return v.Vec3().Mul(1 / v[3])
	}
	var near, far []mgl32.Vec3
	for _, xy := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		near = append(near, corner(xy[0], xy[1], -1))
		far = append(far, corner(xy[0], xy[1], 1))
	}
	var l lines
	l.loop(near, h.Color)
	l.loop(far, h.Color)
	for i := range near {
		l.seg(near[i], far[i], h.Color)
	}
	l.seg(h.Camera.Base().WorldPosition(), corner(0, 0, -1), h.Color)
	h.set(&l)
}

// ForLight returns the helper matching l's kind, or nil for kinds without
// a visual (ambient and environment).
func ForLight(l lighting.Light) Helper {
	var out Helper
	l.Accept(helperPicker{out: &out})
	return out
}

type helperPicker struct{ out *Helper }

func (p helperPicker) Ambient(*lighting.Ambient) {}
func (p helperPicker) Hemisphere(l *lighting.Hemisphere) {
	*p.out = NewHemisphereLightHelper(l, 0.5)
}
func (p helperPicker) Directional(l *lighting.Directional) {
	*p.out = NewDirectionalLightHelper(l, 0.5)
}
func (p helperPicker) Point(l *lighting.Point)           { *p.out = NewPointLightHelper(l, 0.2) }
func (p helperPicker) Spot(l *lighting.Spot)             { *p.out = NewSpotLightHelper(l) }
func (p helperPicker) RectArea(l *lighting.RectArea)     { *p.out = NewRectAreaLightHelper(l) }
func (p helperPicker) Environment(*lighting.Environment) {}
