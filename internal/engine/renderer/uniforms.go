package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
	"github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/renderlist"
	"github.com/Faultbox/scenelab/internal/engine/shader"
	"github.com/Faultbox/scenelab/internal/engine/texture"
)

// prepare uploads the per-frame uniforms of a mesh program once per frame:
// camera, lights, shadows and output settings.
func (r *Renderer) prepare(p *shader.Program) {
	if r.frame.prepared[p] {
		return
	}
	r.frame.prepared[p] = true

	p.SetMat4("uView", r.frame.view)
	p.SetMat4("uProjection", r.frame.projection)
	p.SetVec3("uCameraPos", r.frame.cameraPos)
	r.setOutput(p)

	b := r.lights
	p.SetVec3("uAmbient", b.AmbientRadiance)
	p.SetBool("uHasHemi", b.HasHemi)
	if b.HasHemi {
		p.SetVec3("uHemiSky", b.HemiSky)
		p.SetVec3("uHemiGround", b.HemiGround)
		p.SetVec3("uHemiUp", b.HemiUp)
	}

	p.SetInt("uDirCount", int32(b.DirCount))
	p.SetFloats("uDirDirection", 3, b.DirCount, b.DirDirection)
	p.SetFloats("uDirRadiance", 3, b.DirCount, b.DirRadiance)

	p.SetInt("uPointCount", int32(b.PointCount))
	p.SetFloats("uPointPosition", 3, b.PointCount, b.PointPosition)
	p.SetFloats("uPointRadiance", 3, b.PointCount, b.PointRadiance)
	p.SetFloats("uPointDistance", 1, b.PointCount, b.PointDistance)
	p.SetFloats("uPointDecay", 1, b.PointCount, b.PointDecay)

	p.SetInt("uSpotCount", int32(b.SpotCount))
	p.SetFloats("uSpotPosition", 3, b.SpotCount, b.SpotPosition)
	p.SetFloats("uSpotDirection", 3, b.SpotCount, b.SpotDirection)
	p.SetFloats("uSpotRadiance", 3, b.SpotCount, b.SpotRadiance)
	p.SetFloats("uSpotDistance", 1, b.SpotCount, b.SpotDistance)
	p.SetFloats("uSpotDecay", 1, b.SpotCount, b.SpotDecay)
	p.SetFloats("uSpotCone", 2, b.SpotCount, b.SpotCone)

	p.SetInt("uRectCount", int32(b.RectCount))
	p.SetFloats("uRectPosition", 3, b.RectCount, b.RectPosition)
	p.SetFloats("uRectNormal", 3, b.RectCount, b.RectNormal)
	p.SetFloats("uRectRadiance", 3, b.RectCount, b.RectRadiance)
	p.SetFloats("uRectSize", 2, b.RectCount, b.RectSize)

	r.setShadows(p)
}

// setShadows maps lights to shadow slots and binds every shadow unit,
// using placeholders for unused slots so sampler types never clash.
func (r *Renderer) setShadows(p *shader.Program) {
	var dir, point, spot [lighting.MaxLights]int32
	for i := range dir {
		dir[i], point[i], spot[i] = -1, -1, -1
	}
	var (
		matrices   [renderlist.MaxShadowMaps]mgl32.Mat4
		bias       [renderlist.MaxShadowMaps]float32
		normalBias [renderlist.MaxShadowMaps]float32
		radius     [renderlist.MaxShadowMaps]float32
		cubePos    [renderlist.MaxShadowCubes * 3]float32
		cubeFar    [renderlist.MaxShadowCubes]float32
		cubeBias   [renderlist.MaxShadowCubes]float32
	)
	var flat [renderlist.MaxShadowMaps]bool
	var cube [renderlist.MaxShadowCubes]bool

	for _, s := range r.frame.slots {
		if s.Cube {
			if !r.cubes[s.Slot].IsValid() {
				continue
			}
			point[s.LightIndex] = int32(s.Slot)
			pos := s.Light.Base().WorldPosition()
			copy(cubePos[s.Slot*3:], pos[:])
			cubeFar[s.Slot] = s.Far
			cubeBias[s.Slot] = s.Params.Bias
			cube[s.Slot] = true
			continue
		}
		if !r.maps[s.Slot].IsValid() {
			continue
		}
		switch s.Light.(type) {
		case *lighting.Directional:
			dir[s.LightIndex] = int32(s.Slot)
		case *lighting.Spot:
			spot[s.LightIndex] = int32(s.Slot)
		}
		matrices[s.Slot] = s.Matrix
		bias[s.Slot] = s.Params.Bias
		normalBias[s.Slot] = s.Params.NormalBias
		radius[s.Slot] = max(s.Params.Radius, 0)
		flat[s.Slot] = true
	}

	p.SetInts("uDirShadow", dir[:])
	p.SetInts("uPointShadow", point[:])
	p.SetInts("uSpotShadow", spot[:])
	p.SetMat4s("uShadowMatrix", matrices[:])
	p.SetFloats("uShadowBias", 1, len(bias), bias[:])
	p.SetFloats("uShadowNormalBias", 1, len(normalBias), normalBias[:])
	p.SetFloats("uShadowRadius", 1, len(radius), radius[:])
	p.SetFloats("uShadowCubePos", 3, len(cubeFar), cubePos[:])
	p.SetFloats("uShadowCubeFar", 1, len(cubeFar), cubeFar[:])
	p.SetFloats("uShadowCubeBias", 1, len(cubeBias), cubeBias[:])

	for i, used := range flat {
		if used {
			r.maps[i].BindTexture(uint32(unitShadow + i))
		} else {
			r.dummyMap.BindTexture(uint32(unitShadow + i))
		}
	}
	for i, used := range cube {
		if used {
			r.cubes[i].BindTexture(uint32(unitCube + i))
		} else {
			r.dummyCube.BindTexture(uint32(unitCube + i))
		}
	}
}

// bindMap binds t to unit, or the white placeholder when t is nil or
// disposed, and reports whether t was bound.
func (r *Renderer) bindMap(unit uint32, t *texture.Texture) bool {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	if t == nil || t.Disposed() {
		gl.BindTexture(gl.TEXTURE_2D, r.white)
		return false
	}
	gl.BindTexture(gl.TEXTURE_2D, r.cache.texture(t).id)
	return true
}

func linear(c color.Color) mgl32.Vec3 { return c.Linear().Vec3() }

// setMaterial uploads the per-draw material uniforms and binds its maps.
func (r *Renderer) setMaterial(p *shader.Program, m material.Material) {
	base := m.Common()
	p.SetFloat("uOpacity", base.Opacity)
	p.SetBool("uFlatShading", base.FlatShading)
	p.SetBool("uFlipBackFaces", base.Side != material.FrontSide)
	p.SetBool("uVertexColors", false)
	p.SetVec2("uUVRepeat", mgl32.Vec2{1, 1})

	var colorMap *texture.Texture
	switch m := m.(type) {
	case *material.Basic:
		p.SetVec3("uColor", linear(m.Color))
		p.SetVec3("uEmissive", mgl32.Vec3{})
		colorMap = m.Map
	case *material.Phong:
		p.SetVec3("uColor", linear(m.Color))
		p.SetVec3("uEmissive", linear(m.Emissive))
		p.SetVec3("uSpecular", linear(m.Specular))
		p.SetFloat("uShininess", m.Shininess)
		colorMap = m.Map
	case *material.Standard:
		p.SetVec3("uColor", linear(m.Color))
		p.SetVec3("uEmissive", linear(m.Emissive))
		p.SetFloat("uRoughness", m.Roughness)
		p.SetFloat("uMetalness", m.Metalness)
		p.SetFloat("uAOMapIntensity", m.AOMapIntensity)
		p.SetVec2("uNormalScale", m.NormalScale)
		p.SetBool("uHasNormalMap", r.bindMap(unitNormal, m.NormalMap))
		p.SetBool("uHasAOMap", r.bindMap(unitAO, m.AOMap))
		p.SetBool("uHasRoughnessMap", r.bindMap(unitRoughness, m.RoughnessMap))
		p.SetBool("uHasMetalnessMap", r.bindMap(unitMetalness, m.MetalnessMap))
		p.SetBool("uHasAlphaMap", r.bindMap(unitAlpha, m.AlphaMap))
		p.SetBool("uHasDisplacementMap", r.bindMap(unitDisplacement, m.DisplacementMap))
		p.SetFloat("uDisplacementScale", m.DisplacementScale)
		p.SetFloat("uDisplacementBias", m.DisplacementBias)
		r.setEnvironment(p, m.EnvMapIntensity)
		colorMap = m.Map
	}
	p.SetBool("uHasMap", r.bindMap(unitMap, colorMap))
	if colorMap != nil {
		p.SetVec2("uUVRepeat", mgl32.Vec2(colorMap.Repeat))
	}
}

// setEnvironment binds the scene environment, falling back to an
// environment light.
func (r *Renderer) setEnvironment(p *shader.Program, materialIntensity float32) {
	s := r.frame.scene
	env, intensity := s.Environment, s.EnvironmentIntensity
	if env == nil && r.lights.Env != nil {
		env, intensity = r.lights.Env.Map, r.lights.EnvIntensity
	}
	has := env != nil && !env.Disposed()
	gl.ActiveTexture(gl.TEXTURE0 + unitEnv)
	if !has {
		gl.BindTexture(gl.TEXTURE_2D, r.white)
		p.SetBool("uHasEnvMap", false)
		return
	}
	te := r.cache.texture(env)
	gl.BindTexture(gl.TEXTURE_2D, te.id)
	p.SetBool("uHasEnvMap", true)
	p.SetFloat("uEnvIntensity", intensity*materialIntensity)
	p.SetFloat("uEnvMaxLod", float32(te.levels-1))
}
