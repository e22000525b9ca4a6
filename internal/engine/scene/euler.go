package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// EulerMatrix builds Rx * Ry * Rz for angles r (radians).
func EulerMatrix(r mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(r[0]).
		Mul4(mgl32.HomogRotate3DY(r[1])).
		Mul4(mgl32.HomogRotate3DZ(r[2]))
}

// EulerFromMatrix extracts XYZ Euler angles from the rotation part of an
// unscaled matrix. It is the inverse of EulerMatrix.
func EulerFromMatrix(m mgl32.Mat4) mgl32.Vec3 {
	m11, m12, m13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m22, m23 := m.At(1, 1), m.At(1, 2)
	m32, m33 := m.At(2, 1), m.At(2, 2)

	y := math32.Asin(mgl32.Clamp(m13, -1, 1))
	if math32.Abs(m13) < 0.9999999 {
		return mgl32.Vec3{
			math32.Atan2(-m23, m33),
			y,
			math32.Atan2(-m12, m11),
		}
	}
	// Gimbal lock: fold Z into X.
	return mgl32.Vec3{math32.Atan2(m32, m22), y, 0}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math32.Pi
}
