package lighting

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

type kindRecorder struct{ kinds []Kind }

func (r *kindRecorder) Ambient(*Ambient)         { r.kinds = append(r.kinds, KindAmbient) }
func (r *kindRecorder) Hemisphere(*Hemisphere)   { r.kinds = append(r.kinds, KindHemisphere) }
func (r *kindRecorder) Directional(*Directional) { r.kinds = append(r.kinds, KindDirectional) }
func (r *kindRecorder) Point(*Point)             { r.kinds = append(r.kinds, KindPoint) }
func (r *kindRecorder) Spot(*Spot)               { r.kinds = append(r.kinds, KindSpot) }
func (r *kindRecorder) RectArea(*RectArea)       { r.kinds = append(r.kinds, KindRectArea) }
func (r *kindRecorder) Environment(*Environment) { r.kinds = append(r.kinds, KindEnvironment) }

func allLights() []Light {
	return []Light{
		NewAmbient(color.White, 10),
		NewHemisphere(color.MustParse("#b0d8f5"), color.MustParse("#bb7a1c"), 1),
		NewDirectional(color.White, 1),
		NewPoint(color.White, 2, 0),
		NewSpot(color.White, 10, 0, mgl32.DegToRad(30), 0),
		NewRectArea(color.White, 10, 2, 0.5),
		NewEnvironment(nil, 1),
	}
}

func TestAcceptDispatchesByKind(t *testing.T) {
	r := &kindRecorder{}
	for _, l := range allLights() {
		l.Accept(r)
	}
	for i, l := range allLights() {
		assert.Equal(t, l.Kind(), r.kinds[i])
		assert.NotEqual(t, "unknown", l.Kind().String())
	}
}

func TestDirectionalTracksTarget(t *testing.T) {
	l := NewDirectional(color.White, 1)
	assert.Less(t, l.Direction().Sub(mgl32.Vec3{0, -1, 0}).Len(), float32(1e-5))

	l.Target.Position = mgl32.Vec3{1, 1, 0}
	assert.Less(t, l.Direction().Sub(mgl32.Vec3{1, 0, 0}).Len(), float32(1e-5))
}

func TestSpotConeCosines(t *testing.T) {
	l := NewSpot(color.White, 10, 0, math32.Pi/3, 0.5)
	outer, inner := l.ConeCosines()
	assert.InDelta(t, 0.5, outer, 1e-6)
	assert.InDelta(t, math32.Cos(math32.Pi/6), inner, 1e-6)
}

func TestAttenuationCutoff(t *testing.T) {
	l := NewPoint(color.White, 1, 10)
	assert.Greater(t, l.Attenuation(1), l.Attenuation(5))
	assert.Equal(t, float32(0), l.Attenuation(10))

	unbounded := NewPoint(color.White, 1, 0)
	assert.Greater(t, unbounded.Attenuation(100), float32(0))
}

func TestRectAreaNormalFollowsRotation(t *testing.T) {
	l := NewRectArea(color.White, 10, 2, 0.5)
	l.Rotation[0] = mgl32.DegToRad(-90)
	assert.Less(t, l.Normal().Sub(mgl32.Vec3{0, -1, 0}).Len(), float32(1e-5))
}

func TestCollectSkipsHidden(t *testing.T) {
	s := scene.New()
	visible := NewPoint(color.White, 1, 0)
	hidden := NewAmbient(color.White, 1)
	hidden.Visible = false
	s.Add(visible, hidden, scene.NewGroup("models"))

	got := Collect(s)
	require.Len(t, got, 1)
	assert.Same(t, visible, got[0])
}

func TestBufferFill(t *testing.T) {
	b := NewBuffer()
	spot := NewSpot(color.White, 20, 0, mgl32.DegToRad(20), 0.1)
	spot.Shadow.Enabled = true
	spot.Position = mgl32.Vec3{0, 3, 0}
	lights := []Light{NewAmbient(color.White, 1), NewAmbient(color.White, 1), spot, NewPoint(color.White, 6, 10)}

	b.Fill(lights)

	assert.InDelta(t, 2, b.AmbientRadiance[0], 1e-6)
	assert.Equal(t, 1, b.SpotCount)
	assert.Equal(t, 1, b.PointCount)
	assert.Equal(t, float32(10), b.PointDistance[0])
	assert.InDelta(t, 3, b.SpotPosition[1], 1e-6)
	require.Len(t, b.Shadowed, 1)
	assert.Equal(t, KindSpot, b.Shadowed[0].Kind())

	b.Fill(nil)
	assert.Zero(t, b.SpotCount)
	assert.Empty(t, b.Shadowed)
}

func TestBufferCapsPerKind(t *testing.T) {
	var lights []Light
	for i := 0; i < MaxLights+3; i++ {
		lights = append(lights, NewDirectional(color.White, 1))
	}
	b := NewBuffer()
	b.Fill(lights)
	assert.Equal(t, MaxLights, b.DirCount)
}

func project(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	return v.Vec3().Mul(1 / v[3])
}

func TestDirectionalShadowMatrixCentersTarget(t *testing.T) {
	l := NewDirectional(color.White, 6)
	l.Position = mgl32.Vec3{0, 3, 0}
	m := DirectionalShadowMatrix(l)
	c := project(m, mgl32.Vec3{})
	assert.InDelta(t, 0, c[0], 1e-5)
	assert.InDelta(t, 0, c[1], 1e-5)
}

func TestFitShadowMatrixContainsBounds(t *testing.T) {
	bounds := geometry.Box3{Min: mgl32.Vec3{-2, -1, -2}, Max: mgl32.Vec3{2, 1, 2}}
	m := FitShadowMatrix(mgl32.Vec3{1, 2, 0.5}, bounds)
	for _, corner := range []mgl32.Vec3{bounds.Min, bounds.Max, {-2, 1, 2}, {2, -1, -2}} {
		p := project(m, corner)
		for k := 0; k < 3; k++ {
			assert.LessOrEqual(t, math32.Abs(p[k]), float32(1))
		}
	}
}

func TestSpotShadowMatrixCentersAxis(t *testing.T) {
	l := NewSpot(color.White, 20, 0, mgl32.DegToRad(20), 0.1)
	l.Position = mgl32.Vec3{0, 3, 0}
	p := project(SpotShadowMatrix(l), mgl32.Vec3{0, 0, 0})
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
}

func TestPointShadowFaces(t *testing.T) {
	l := NewPoint(color.White, 6, 10)
	l.Position = mgl32.Vec3{0, 5, 0}
	faces := PointShadowMatrices(l)
	// A point straight below lands in the center of the -Y face.
	p := project(faces[3], mgl32.Vec3{0, 2, 0})
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.Equal(t, float32(10), PointShadowFar(l))
}
