package renderlist

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/engine/lighting"
)

// Shadow map slots available to the shaders.
const (
	MaxShadowMaps  = 4
	MaxShadowCubes = 2
)

// ShadowSlot assigns a shadow map to one light.
type ShadowSlot struct {
	Light lighting.Light
	// Slot indexes the 2D or cube map array.
	Slot int
	Cube bool
	// LightIndex is the light's position among lights of its kind in the
	// packed lighting.Buffer.
	LightIndex int
	Matrix     mgl32.Mat4
	Faces      [6]mgl32.Mat4
	Far        float32
	Params     lighting.Shadow
}

// PlanShadows gives each shadow casting light a map, in scene order, until
// the slots run out. Directional and spot lights use 2D maps, point lights
// cube maps. Light indices follow the packing order of lighting.Buffer.
func PlanShadows(lights []lighting.Light) []ShadowSlot {
	var out []ShadowSlot
	var dir, point, spot, flat, cube int
	for _, l := range lights {
		switch l := l.(type) {
		case *lighting.Directional:
			if l.Shadow.Enabled && dir < lighting.MaxLights && flat < MaxShadowMaps {
				out = append(out, ShadowSlot{Light: l, Slot: flat, LightIndex: dir, Matrix: lighting.DirectionalShadowMatrix(l), Params: l.Shadow})
				flat++
			}
			dir++
		case *lighting.Spot:
			if l.Shadow.Enabled && spot < lighting.MaxLights && flat < MaxShadowMaps {
				out = append(out, ShadowSlot{Light: l, Slot: flat, LightIndex: spot, Matrix: lighting.SpotShadowMatrix(l), Params: l.Shadow})
				flat++
			}
			spot++
		case *lighting.Point:
			if l.Shadow.Enabled && point < lighting.MaxLights && cube < MaxShadowCubes {
				out = append(out, ShadowSlot{
					Light: l, Slot: cube, Cube: true, LightIndex: point,
					Faces: lighting.PointShadowMatrices(l), Far: lighting.PointShadowFar(l), Params: l.Shadow,
				})
				cube++
			}
			point++
		}
	}
	return out
}
