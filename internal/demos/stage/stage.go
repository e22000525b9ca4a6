// Package stage builds the set shared by the light, camera and shadow
// demos: a ground plane, a centerpiece, a small sphere orbiting on a pivot
// and a ring of eight tori.
package stage

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/debug"
	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

// Orbit is the radius of the small sphere and tori around the centerpiece.
const Orbit = 2

// Stage holds handles to the set pieces.
type Stage struct {
	Ground           *scene.Mesh
	Centerpiece      *scene.Mesh
	SmallSpherePivot *scene.Node
	SmallSphere      *scene.Mesh
	TorusPivots      []*scene.Node
}

func standard(ctx *demo.Context, hex string, roughness, metalness float32) *material.Standard {
	m := material.NewStandard(color.MustParse(hex))
	m.Roughness, m.Metalness = roughness, metalness
	ctx.Material(m)
	return m
}

// HalfSphere builds the set around a white dome resting on the ground.
func HalfSphere(ctx *demo.Context) *Stage {
	dome := scene.NewMesh(
		ctx.Geometry(geometry.Sphere(1, 32, 16, 0, 2*math32.Pi, 0, math32.Pi/2)),
		standard(ctx, "#ffffff", 0.1, 0.2),
	)
	dome.Position[1] = -0.5
	return build(ctx, dome, 0.5)
}

// TorusKnot builds the set around a floating torus knot, with every piece
// casting and receiving shadows.
func TorusKnot(ctx *demo.Context) *Stage {
	knot := scene.NewMesh(
		ctx.Geometry(geometry.TorusKnot(0.55, 0.15, 128, 64, 2, 3)),
		standard(ctx, "#ffffff", 0.1, 0.2),
	)
	knot.Position[1] = 0.6
	knot.CastShadow = true
	s := build(ctx, knot, -0.6)

	s.Ground.ReceiveShadow = true
	s.Ground.CastShadow = true
	s.SmallSphere.CastShadow = true
	s.SmallSphere.ReceiveShadow = true
	for _, p := range s.TorusPivots {
		t := p.Children()[0].Base()
		t.CastShadow = true
		t.ReceiveShadow = true
	}
	return s
}

func build(ctx *demo.Context, center *scene.Mesh, pivotY float32) *Stage {
	ctx.Helper(debug.NewAxes(10))

	s := &Stage{Centerpiece: center}
	groundMat := standard(ctx, "#2c3e50", 0.5, 0.5)
	groundMat.Side = material.DoubleSide
	s.Ground = scene.NewMesh(ctx.Geometry(geometry.Plane(5, 5, 1, 1)), groundMat)
	s.Ground.Rotation[0] = -mgl32.DegToRad(90)
	s.Ground.Position[1] = -0.5
	ctx.Scene.Add(s.Ground, center)

	s.SmallSphere = scene.NewMesh(ctx.Geometry(geometry.SphereDefault(0.2)), standard(ctx, "#e74c3c", 0.2, 0.5))
	s.SmallSphere.Position[0] = Orbit
	s.SmallSpherePivot = Pivot(center, pivotY, -45)
	s.SmallSpherePivot.Name = "small sphere pivot"
	s.SmallSpherePivot.Add(s.SmallSphere)

	torus := ctx.Geometry(geometry.TorusDefault(0.3, 0.1))
	torusMat := standard(ctx, "#9b59b6", 0.5, 0.9)
	const count = 8
	for i := 0; i < count; i++ {
		m := scene.NewMesh(torus, torusMat)
		m.Position[0] = Orbit
		p := Pivot(center, pivotY, 360/count*float32(i))
		p.Add(m)
		s.TorusPivots = append(s.TorusPivots, p)
	}
	return s
}

// Pivot adds an empty node to parent at height y turned deg degrees about
// Y.
func Pivot(parent *scene.Mesh, y, deg float32) *scene.Node {
	p := scene.NewNode("pivot")
	p.Position[1] = y
	p.Rotation[1] = mgl32.DegToRad(deg)
	parent.Add(p)
	return p
}

// Spin turns the small sphere's pivot to t radians.
func (s *Stage) Spin(t float64) {
	demo.SpinY(s.SmallSpherePivot, float32(t))
}
