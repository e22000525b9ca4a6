// Package camera provides perspective and orthographic cameras as scene
// nodes, plus orbit controls that drive either from pointer input.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/engine/scene"
)

// Camera is a scene node that can project the scene.
type Camera interface {
	scene.Object
	ProjectionMatrix() mgl32.Mat4
	// SetAspect adapts the projection to a width/height ratio.
	SetAspect(aspect float32)
	NearFar() (near, far float32)
}

// ViewMatrix is the inverse of the camera's world transform.
func ViewMatrix(c Camera) mgl32.Mat4 {
	return c.Base().WorldMatrix().Inv()
}

// ViewProjection returns projection * view.
func ViewProjection(c Camera) mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(ViewMatrix(c))
}

// Perspective is a pinhole camera. Fov is the vertical field of view in
// degrees.
type Perspective struct {
	scene.Node
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32
	Zoom   float32
}

// NewPerspective creates a perspective camera at the origin looking down -Z.
func NewPerspective(fov, aspect, near, far float32) *Perspective {
	c := &Perspective{Node: scene.MakeNode(), Fov: fov, Aspect: aspect, Near: near, Far: far, Zoom: 1}
	c.Name = "camera"
	return c
}

// EffectiveFov returns the vertical field of view in radians after zoom.
func (c *Perspective) EffectiveFov() float32 {
	half := math32.Tan(mgl32.DegToRad(c.Fov)/2) / nonZero(c.Zoom)
	return 2 * math32.Atan(half)
}

func (c *Perspective) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.EffectiveFov(), nonZero(c.Aspect), c.Near, c.Far)
}

func (c *Perspective) SetAspect(aspect float32) { c.Aspect = aspect }

func (c *Perspective) NearFar() (float32, float32) { return c.Near, c.Far }

// Orthographic projects without perspective. The frustum is scaled by
// 1/Zoom around its center.
type Orthographic struct {
	scene.Node
	Left, Right, Top, Bottom float32
	Near, Far                float32
	Zoom                     float32
}

// NewOrthographic creates an orthographic camera.
func NewOrthographic(left, right, top, bottom, near, far float32) *Orthographic {
	c := &Orthographic{Node: scene.MakeNode(), Left: left, Right: right, Top: top, Bottom: bottom, Near: near, Far: far, Zoom: 1}
	c.Name = "camera"
	return c
}

func (c *Orthographic) ProjectionMatrix() mgl32.Mat4 {
	z := nonZero(c.Zoom)
	cx, cy := (c.Left+c.Right)/2, (c.Top+c.Bottom)/2
	dx, dy := (c.Right-c.Left)/(2*z), (c.Top-c.Bottom)/(2*z)
	return mgl32.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, c.Near, c.Far)
}

// SetAspect sets Left and Right to -aspect and +aspect.
func (c *Orthographic) SetAspect(aspect float32) {
	c.Left, c.Right = -aspect, aspect
}

func (c *Orthographic) NearFar() (float32, float32) { return c.Near, c.Far }

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}
