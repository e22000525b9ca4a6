package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/engine/geometry"
)

// lookAtFrom builds a view matrix looking from eye to center, switching the
// up vector when the view is nearly vertical.
func lookAtFrom(eye, center mgl32.Vec3) mgl32.Mat4 {
	up := mgl32.Vec3{0, 1, 0}
	if math32.Abs(direction(eye, center)[1]) > 0.99 {
		up = mgl32.Vec3{0, 0, 1}
	}
	return mgl32.LookAtV(eye, center, up)
}

// DirectionalShadowMatrix is the light-space view projection for l: an
// orthographic box of half size Shadow.OrthoSize looking from the light
// toward its target.
func DirectionalShadowMatrix(l *Directional) mgl32.Mat4 {
	s := l.Shadow
	view := lookAtFrom(l.WorldPosition(), l.Target.WorldPosition())
	proj := mgl32.Ortho(-s.OrthoSize, s.OrthoSize, -s.OrthoSize, s.OrthoSize, s.Near, s.Far)
	return proj.Mul4(view)
}

// FitShadowMatrix covers bounds entirely with an orthographic shadow camera
// placed along dir (pointing toward the light) outside the box.
func FitShadowMatrix(dir mgl32.Vec3, bounds geometry.Box3) mgl32.Mat4 {
	center := bounds.Center()
	radius := bounds.Size().Len() / 2
	distance := radius * 2
	eye := center.Add(dir.Normalize().Mul(distance))

	view := lookAtFrom(eye, center)
	half := radius * 1.1
	proj := mgl32.Ortho(-half, half, -half, half, 0.1, distance+half)
	return proj.Mul4(view)
}

// SpotShadowMatrix uses a perspective camera whose field of view matches
// the cone.
func SpotShadowMatrix(l *Spot) mgl32.Mat4 {
	s := l.Shadow
	far := s.Far
	if l.Distance > 0 {
		far = l.Distance
	}
	fov := mgl32.Clamp(2*l.Angle, mgl32.DegToRad(1), mgl32.DegToRad(179))
	view := lookAtFrom(l.WorldPosition(), l.Target.WorldPosition())
	return mgl32.Perspective(fov, 1, s.Near, far).Mul4(view)
}

// cubeFaces are the look directions and up vectors of the six cube map
// faces in GL order: +X, -X, +Y, -Y, +Z, -Z.
var cubeFaces = [6][2]mgl32.Vec3{
	{{1, 0, 0}, {0, -1, 0}},
	{{-1, 0, 0}, {0, -1, 0}},
	{{0, 1, 0}, {0, 0, 1}},
	{{0, -1, 0}, {0, 0, -1}},
	{{0, 0, 1}, {0, -1, 0}},
	{{0, 0, -1}, {0, -1, 0}},
}

// PointShadowMatrices returns a 90 degree view projection per cube face
// centered on the light.
func PointShadowMatrices(l *Point) [6]mgl32.Mat4 {
	s := l.Shadow
	far := s.Far
	if l.Distance > 0 {
		far = l.Distance
	}
	pos := l.WorldPosition()
	proj := mgl32.Perspective(mgl32.DegToRad(90), 1, s.Near, far)
	var out [6]mgl32.Mat4
	for i, f := range cubeFaces {
		out[i] = proj.Mul4(mgl32.LookAtV(pos, pos.Add(f[0]), f[1]))
	}
	return out
}

// PointShadowFar returns the far plane the cube shadow is rendered with.
func PointShadowFar(l *Point) float32 {
	if l.Distance > 0 {
		return l.Distance
	}
	return l.Shadow.Far
}
