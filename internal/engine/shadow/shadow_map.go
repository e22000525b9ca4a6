// Package shadow provides the depth targets used for shadow mapping: a 2D
// map for directional and spot lights and a cube map for point lights.
package shadow

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// DefaultResolution is the default shadow map resolution.
const DefaultResolution = 2048

// Map is a depth-only framebuffer sampled with comparison (sampler2DShadow).
type Map struct {
	FBO          uint32
	DepthTexture uint32
	Resolution   int32
	prevViewport [4]int32
}

// NewMap creates a shadow map. Non-positive resolutions use
// DefaultResolution. It returns nil when the framebuffer is incomplete.
func NewMap(resolution int32) *Map {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	sm := &Map{Resolution: resolution}

	gl.GenFramebuffers(1, &sm.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.FBO)

	gl.GenTextures(1, &sm.DepthTexture)
	gl.BindTexture(gl.TEXTURE_2D, sm.DepthTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, resolution, resolution, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Outside the light frustum counts as lit.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	borderColor := []float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &borderColor[0])

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_FUNC, gl.LEQUAL)

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, sm.DepthTexture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	if !complete() {
		sm.Destroy()
		return nil
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return sm
}

// Bind binds the map for the depth pass and clears it. Front faces are
// culled to reduce acne; Unbind restores back-face culling.
func (sm *Map) Bind() {
	gl.GetIntegerv(gl.VIEWPORT, &sm.prevViewport[0])
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.FBO)
	gl.Viewport(0, 0, sm.Resolution, sm.Resolution)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	beginDepthPass()
}

// Unbind restores the viewport. The caller rebinds its own target.
func (sm *Map) Unbind() {
	gl.Viewport(sm.prevViewport[0], sm.prevViewport[1], sm.prevViewport[2], sm.prevViewport[3])
	gl.CullFace(gl.BACK)
}

// BindTexture binds the depth texture to texture unit GL_TEXTURE0+unit.
func (sm *Map) BindTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, sm.DepthTexture)
}

// Destroy releases the GPU resources.
func (sm *Map) Destroy() {
	if sm.FBO != 0 {
		gl.DeleteFramebuffers(1, &sm.FBO)
		sm.FBO = 0
	}
	if sm.DepthTexture != 0 {
		gl.DeleteTextures(1, &sm.DepthTexture)
		sm.DepthTexture = 0
	}
}

// IsValid returns true if the shadow map was created successfully.
func (sm *Map) IsValid() bool {
	return sm != nil && sm.FBO != 0 && sm.DepthTexture != 0
}

// CubeMap stores normalized light distance per face for point lights,
// sampled with samplerCubeShadow.
type CubeMap struct {
	FBO          uint32
	DepthTexture uint32
	Resolution   int32
	prevViewport [4]int32
}

// NewCubeMap creates a cube shadow map, nil when incomplete.
func NewCubeMap(resolution int32) *CubeMap {
	if resolution <= 0 {
		resolution = DefaultResolution / 2
	}
	cm := &CubeMap{Resolution: resolution}

	gl.GenTextures(1, &cm.DepthTexture)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, cm.DepthTexture)
	for face := uint32(0); face < 6; face++ {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+face, 0, gl.DEPTH_COMPONENT24, resolution, resolution, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_COMPARE_FUNC, gl.LEQUAL)

	gl.GenFramebuffers(1, &cm.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, cm.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_CUBE_MAP_POSITIVE_X, cm.DepthTexture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	if !complete() {
		cm.Destroy()
		return nil
	}
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return cm
}

// Bind saves the viewport and binds the framebuffer. Call BindFace before
// drawing each face.
func (cm *CubeMap) Bind() {
	gl.GetIntegerv(gl.VIEWPORT, &cm.prevViewport[0])
	gl.BindFramebuffer(gl.FRAMEBUFFER, cm.FBO)
	gl.Viewport(0, 0, cm.Resolution, cm.Resolution)
	beginDepthPass()
}

// BindFace attaches face (0..5 in +X, -X, +Y, -Y, +Z, -Z order) and clears it.
func (cm *CubeMap) BindFace(face int) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(face), cm.DepthTexture, 0)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

// Unbind restores the viewport.
func (cm *CubeMap) Unbind() {
	gl.Viewport(cm.prevViewport[0], cm.prevViewport[1], cm.prevViewport[2], cm.prevViewport[3])
	gl.CullFace(gl.BACK)
}

// BindTexture binds the cube texture to texture unit GL_TEXTURE0+unit.
func (cm *CubeMap) BindTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, cm.DepthTexture)
}

// Destroy releases the GPU resources.
func (cm *CubeMap) Destroy() {
	if cm.FBO != 0 {
		gl.DeleteFramebuffers(1, &cm.FBO)
		cm.FBO = 0
	}
	if cm.DepthTexture != 0 {
		gl.DeleteTextures(1, &cm.DepthTexture)
		cm.DepthTexture = 0
	}
}

// IsValid returns true if the cube map was created successfully.
func (cm *CubeMap) IsValid() bool {
	return cm != nil && cm.FBO != 0 && cm.DepthTexture != 0
}

func beginDepthPass() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.FRONT)
}

func complete() bool {
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return status == gl.FRAMEBUFFER_COMPLETE
}
