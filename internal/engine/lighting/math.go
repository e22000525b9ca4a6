package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func direction(from, to mgl32.Vec3) mgl32.Vec3 {
	d := to.Sub(from)
	if d.Len() < 1e-9 {
		return mgl32.Vec3{0, -1, 0}
	}
	return d.Normalize()
}

func cos(a float32) float32 { return math32.Cos(a) }

// attenuation is inverse-power falloff windowed to reach zero at cutoff.
// A cutoff of 0 disables the window.
func attenuation(d, cutoff, decay float32) float32 {
	f := 1 / math32.Max(math32.Pow(d, decay), 0.01)
	if cutoff > 0 {
		w := math32.Max(0, 1-math32.Pow(d/cutoff, 4))
		f *= w * w
	}
	return f
}
