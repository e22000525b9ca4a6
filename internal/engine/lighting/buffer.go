package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the most lights of each kind the shaders accept.
const MaxLights = 8

// Buffer packs a frame's lights into flat arrays for uniform upload. Lights
// beyond MaxLights of a kind are dropped.
type Buffer struct {
	AmbientRadiance mgl32.Vec3

	HemiSky, HemiGround, HemiUp mgl32.Vec3
	HasHemi                     bool

	DirCount     int
	DirDirection []float32
	DirRadiance  []float32

	PointCount    int
	PointPosition []float32
	PointRadiance []float32
	PointDistance []float32
	PointDecay    []float32

	SpotCount     int
	SpotPosition  []float32
	SpotDirection []float32
	SpotRadiance  []float32
	SpotDistance  []float32
	SpotDecay     []float32
	SpotCone      []float32 // outer, inner cosine pairs

	RectCount    int
	RectPosition []float32
	RectNormal   []float32
	RectRadiance []float32
	RectSize     []float32

	Env          *Environment
	EnvIntensity float32

	// Shadow casters in the order the renderer allocates maps for them.
	Shadowed []Light
}

// NewBuffer allocates the fixed-size arrays.
func NewBuffer() *Buffer {
	return &Buffer{
		DirDirection:  make([]float32, MaxLights*3),
		DirRadiance:   make([]float32, MaxLights*3),
		PointPosition: make([]float32, MaxLights*3),
		PointRadiance: make([]float32, MaxLights*3),
		PointDistance: make([]float32, MaxLights),
		PointDecay:    make([]float32, MaxLights),
		SpotPosition:  make([]float32, MaxLights*3),
		SpotDirection: make([]float32, MaxLights*3),
		SpotRadiance:  make([]float32, MaxLights*3),
		SpotDistance:  make([]float32, MaxLights),
		SpotDecay:     make([]float32, MaxLights),
		SpotCone:      make([]float32, MaxLights*2),
		RectPosition:  make([]float32, MaxLights*3),
		RectNormal:    make([]float32, MaxLights*3),
		RectRadiance:  make([]float32, MaxLights*3),
		RectSize:      make([]float32, MaxLights*2),
	}
}

// Clear resets counts without reallocating.
func (b *Buffer) Clear() {
	b.AmbientRadiance = mgl32.Vec3{}
	b.HasHemi = false
	b.DirCount, b.PointCount, b.SpotCount, b.RectCount = 0, 0, 0, 0
	b.Env = nil
	b.EnvIntensity = 0
	b.Shadowed = b.Shadowed[:0]
}

// Fill clears b and packs lights.
func (b *Buffer) Fill(lights []Light) {
	b.Clear()
	for _, l := range lights {
		l.Accept(b)
		if CastsShadow(l) {
			b.Shadowed = append(b.Shadowed, l)
		}
	}
}

func put3(dst []float32, i int, v mgl32.Vec3) {
	dst[i*3], dst[i*3+1], dst[i*3+2] = v[0], v[1], v[2]
}

// Ambient lights sum.
func (b *Buffer) Ambient(l *Ambient) {
	b.AmbientRadiance = b.AmbientRadiance.Add(l.Radiance())
}

// Hemisphere keeps only the first hemisphere light.
func (b *Buffer) Hemisphere(l *Hemisphere) {
	if b.HasHemi {
		return
	}
	b.HasHemi = true
	b.HemiSky = l.Radiance()
	b.HemiGround = l.Ground.Linear().Vec3().Mul(l.Intensity)
	b.HemiUp = l.Up()
}

func (b *Buffer) Directional(l *Directional) {
	if b.DirCount >= MaxLights {
		return
	}
	put3(b.DirDirection, b.DirCount, l.Direction())
	put3(b.DirRadiance, b.DirCount, l.Radiance())
	b.DirCount++
}

func (b *Buffer) Point(l *Point) {
	if b.PointCount >= MaxLights {
		return
	}
	i := b.PointCount
	put3(b.PointPosition, i, l.WorldPosition())
	put3(b.PointRadiance, i, l.Radiance())
	b.PointDistance[i] = l.Distance
	b.PointDecay[i] = l.Decay
	b.PointCount++
}

func (b *Buffer) Spot(l *Spot) {
	if b.SpotCount >= MaxLights {
		return
	}
	i := b.SpotCount
	put3(b.SpotPosition, i, l.WorldPosition())
	put3(b.SpotDirection, i, l.Direction())
	put3(b.SpotRadiance, i, l.Radiance())
	b.SpotDistance[i] = l.Distance
	b.SpotDecay[i] = l.Decay
	b.SpotCone[i*2], b.SpotCone[i*2+1] = l.ConeCosines()
	b.SpotCount++
}

func (b *Buffer) RectArea(l *RectArea) {
	if b.RectCount >= MaxLights {
		return
	}
	i := b.RectCount
	put3(b.RectPosition, i, l.WorldPosition())
	put3(b.RectNormal, i, l.Normal())
	put3(b.RectRadiance, i, l.Radiance())
	b.RectSize[i*2], b.RectSize[i*2+1] = l.Width, l.Height
	b.RectCount++
}

// Environment keeps the last environment light.
func (b *Buffer) Environment(l *Environment) {
	b.Env = l
	b.EnvIntensity = l.Intensity
}
