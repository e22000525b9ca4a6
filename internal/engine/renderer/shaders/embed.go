// Package shaders provides embedded GLSL shader sources. The version line
// and defines are prepended at build time by shader.Build.
package shaders

import _ "embed"

// Common holds shared helpers (color encoding, tone mapping, fog); it is
// spliced into fragment shaders that use them.
//
//go:embed common.glsl
var Common string

// MeshVertexShader transforms lit and unlit meshes.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader shades meshes. BASIC, PHONG or STANDARD selects the
// lighting model.
//
//go:embed mesh.frag
var MeshFragmentShader string

// LineVertexShader is the vertex shader for line segments.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for line segments.
//
//go:embed line.frag
var LineFragmentShader string

// DepthVertexShader renders shadow casters into a light's depth map.
//
//go:embed depth.vert
var DepthVertexShader string

// DepthFragmentShader writes depth only; with CUBE it writes the
// normalized distance to the light.
//
//go:embed depth.frag
var DepthFragmentShader string

// BackgroundVertexShader draws a fullscreen triangle.
//
//go:embed background.vert
var BackgroundVertexShader string

// BackgroundFragmentShader samples an equirectangular background.
//
//go:embed background.frag
var BackgroundFragmentShader string
