// Package renderer draws scene graphs with OpenGL 4.1 core.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/framebuffer"
	"github.com/Faultbox/scenelab/internal/engine/lighting"
	"github.com/Faultbox/scenelab/internal/engine/material"
	"github.com/Faultbox/scenelab/internal/engine/renderer/shaders"
	"github.com/Faultbox/scenelab/internal/engine/renderlist"
	"github.com/Faultbox/scenelab/internal/engine/scene"
	"github.com/Faultbox/scenelab/internal/engine/shader"
	"github.com/Faultbox/scenelab/internal/engine/shadow"
	"github.com/Faultbox/scenelab/internal/logger"
)

// Texture units. Material maps use the low units, shadow maps the rest.
const (
	unitMap = iota
	unitNormal
	unitAO
	unitRoughness
	unitMetalness
	unitAlpha
	unitDisplacement
	unitEnv
	unitShadow
	unitCube = unitShadow + renderlist.MaxShadowMaps
)

// Config holds renderer configuration.
type Config struct {
	// MaxShadowMapSize caps the map size lights ask for.
	MaxShadowMapSize int
	// Samples is the MSAA sample count of the offscreen target.
	Samples int
}

// Stats describe the last rendered frame.
type Stats struct {
	DrawCalls int
	Triangles int
	Lights    int
	Shadows   int
}

// Renderer implements demo.Renderer. It draws into an offscreen target
// sized to the drawable; hosts either show ColorTexture or Present it.
// Must be created and used on the thread owning the GL context.
type Renderer struct {
	config Config
	log    *zap.Logger

	ratio         float32
	width, height int
	opts          demo.RenderOptions

	target     *framebuffer.Framebuffer
	programs   map[material.Kind]*shader.Program
	line       *shader.Program
	depth      *shader.Program
	cubeDepth  *shader.Program
	background *shader.Program
	emptyVAO   uint32
	white      uint32

	cache  *cache
	lights *lighting.Buffer
	list   renderlist.List

	maps      [renderlist.MaxShadowMaps]*shadow.Map
	cubes     [renderlist.MaxShadowCubes]*shadow.CubeMap
	dummyMap  *shadow.Map
	dummyCube *shadow.CubeMap

	frame frameState
	stats Stats
}

// frameState is what every mesh program needs for the current frame.
type frameState struct {
	view, projection mgl32.Mat4
	cameraPos        mgl32.Vec3
	scene            *scene.Scene
	slots            []renderlist.ShadowSlot
	prepared         map[*shader.Program]bool
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	if cfg.MaxShadowMapSize <= 0 {
		cfg.MaxShadowMapSize = 4096
	}

	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		ratio:    1,
		width:    1,
		height:   1,
		opts:     demo.DefaultRenderOptions(),
		programs: make(map[material.Kind]*shader.Program),
		lights:   lighting.NewBuffer(),
		frame:    frameState{prepared: make(map[*shader.Program]bool)},
	}
	r.cache = newCache(r.log)

	r.log.Info("OpenGL initialized",
		zap.Int("samples", cfg.Samples),
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	if err := r.buildPrograms(); err != nil {
		r.Close()
		return nil, err
	}

	var err error
	if r.target, err = framebuffer.New(1, 1, int32(cfg.Samples)); err != nil {
		r.Close()
		return nil, err
	}
	r.dummyMap = shadow.NewMap(1)
	r.dummyCube = shadow.NewCubeMap(1)
	if !r.dummyMap.IsValid() || !r.dummyCube.IsValid() {
		r.Close()
		return nil, fmt.Errorf("creating placeholder shadow maps")
	}

	gl.GenVertexArrays(1, &r.emptyVAO)
	gl.GenTextures(1, &r.white)
	gl.BindTexture(gl.TEXTURE_2D, r.white)
	white := []uint8{255, 255, 255, 255}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(white))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	// Geometry without vertex colors reads this constant.
	gl.VertexAttrib3f(attrColor, 1, 1, 1)

	return r, nil
}

func (r *Renderer) buildPrograms() error {
	limits := []string{
		fmt.Sprintf("MAX_LIGHTS %d", lighting.MaxLights),
		fmt.Sprintf("MAX_SHADOW_MAPS %d", renderlist.MaxShadowMaps),
		fmt.Sprintf("MAX_SHADOW_CUBES %d", renderlist.MaxShadowCubes),
	}
	meshFrag := shaders.Common + shaders.MeshFragmentShader
	for kind, define := range map[material.Kind]string{
		material.KindBasic:    "BASIC",
		material.KindPhong:    "PHONG",
		material.KindStandard: "STANDARD",
	} {
		p, err := shader.Build(kind.String(), shaders.MeshVertexShader, meshFrag, append([]string{define}, limits...)...)
		if err != nil {
			return fmt.Errorf("failed to create shader program: %w", err)
		}
		r.programs[kind] = p
		bindSamplers(p)
	}

	var err error
	if r.line, err = shader.Build("line", shaders.LineVertexShader, shaders.Common+shaders.LineFragmentShader); err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}
	if r.depth, err = shader.Build("depth", shaders.DepthVertexShader, shaders.DepthFragmentShader); err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}
	if r.cubeDepth, err = shader.Build("cube-depth", shaders.DepthVertexShader, shaders.DepthFragmentShader, "CUBE"); err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}
	if r.background, err = shader.Build("background", shaders.BackgroundVertexShader, shaders.Common+shaders.BackgroundFragmentShader); err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}
	r.background.Use()
	r.background.SetInt("uBackground", unitMap)
	return nil
}

// bindSamplers assigns each sampler uniform its fixed texture unit.
func bindSamplers(p *shader.Program) {
	p.Use()
	for name, unit := range map[string]int32{
		"uMap":             unitMap,
		"uNormalMap":       unitNormal,
		"uAOMap":           unitAO,
		"uRoughnessMap":    unitRoughness,
		"uMetalnessMap":    unitMetalness,
		"uAlphaMap":        unitAlpha,
		"uDisplacementMap": unitDisplacement,
		"uEnvMap":          unitEnv,
	} {
		p.SetInt(name, unit)
	}
	for i := 0; i < renderlist.MaxShadowMaps; i++ {
		p.SetInt(fmt.Sprintf("uShadowMap[%d]", i), int32(unitShadow+i))
	}
	for i := 0; i < renderlist.MaxShadowCubes; i++ {
		p.SetInt(fmt.Sprintf("uShadowCube[%d]", i), int32(unitCube+i))
	}
}

// SetPixelRatio sets the device pixel ratio. Non-positive values count as 1.
func (r *Renderer) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	r.ratio = ratio
}

// SetSize sets the output size in logical pixels.
func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = max(width, 1), max(height, 1)
	w, h := r.DrawableSize()
	r.target.Resize(int32(w), int32(h))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("drawable_width", w),
		zap.Int("drawable_height", h),
	)
}

// DrawableSize is the target size in device pixels.
func (r *Renderer) DrawableSize() (int, int) {
	return demo.DrawableSize(r.width, r.height, r.ratio)
}

// Configure applies a demo's render options.
func (r *Renderer) Configure(opts demo.RenderOptions) {
	if opts.Exposure <= 0 {
		opts.Exposure = 1
	}
	r.opts = opts
	r.log.Debug("configured",
		zap.Bool("shadows", opts.Shadows),
		zap.Int("tone_mapping", int(opts.ToneMapping)),
		zap.Float32("exposure", opts.Exposure),
	)
}

// Render draws s from cam into the offscreen target: shadow maps first,
// then background, opaque meshes, transparent meshes and lines.
func (r *Renderer) Render(s *scene.Scene, cam camera.Camera) {
	r.stats = Stats{}
	lights := lighting.Collect(s)
	r.lights.Fill(lights)
	r.stats.Lights = len(lights)
	renderlist.Build(&r.list, s, cam)

	r.frame.view = camera.ViewMatrix(cam)
	r.frame.projection = cam.ProjectionMatrix()
	r.frame.cameraPos = cam.Base().WorldPosition()
	r.frame.scene = s
	r.frame.slots = r.frame.slots[:0]
	clear(r.frame.prepared)

	if r.opts.Shadows {
		r.frame.slots = renderlist.PlanShadows(lights)
		r.renderShadows()
	}

	r.target.Bind()
	bg := mgl32.Vec3{}
	if s.BackgroundColor != nil {
		bg = s.BackgroundColor.Vec3()
	}
	r.target.Clear(bg[0], bg[1], bg[2], 1)
	if s.BackgroundTexture != nil && !s.BackgroundTexture.Disposed() {
		r.drawBackground(s, cam)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	for _, it := range r.list.Opaque {
		r.drawMesh(it)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	for _, it := range r.list.Transparent {
		gl.DepthMask(it.Material.Common().DepthWrite)
		r.drawMesh(it)
	}
	gl.DepthMask(true)

	r.drawLines()

	gl.Disable(gl.BLEND)
	gl.Disable(gl.CULL_FACE)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	r.target.Resolve()
	r.target.Unbind()
}

func (r *Renderer) renderShadows() {
	for _, slot := range r.frame.slots {
		size := int32(min(max(slot.Params.MapSize, 16), r.config.MaxShadowMapSize))
		if slot.Cube {
			cm := r.cubes[slot.Slot]
			if cm == nil || cm.Resolution != size {
				if cm != nil {
					cm.Destroy()
				}
				cm = shadow.NewCubeMap(size)
				r.cubes[slot.Slot] = cm
			}
			if !cm.IsValid() {
				continue
			}
			r.cubeDepth.Use()
			r.cubeDepth.SetVec3("uLightPos", slot.Light.Base().WorldPosition())
			r.cubeDepth.SetFloat("uFar", slot.Far)
			cm.Bind()
			for face, m := range slot.Faces {
				cm.BindFace(face)
				r.cubeDepth.SetMat4("uLightViewProj", m)
				r.drawCasters(r.cubeDepth)
			}
			cm.Unbind()
		} else {
			sm := r.maps[slot.Slot]
			if sm == nil || sm.Resolution != size {
				if sm != nil {
					sm.Destroy()
				}
				sm = shadow.NewMap(size)
				r.maps[slot.Slot] = sm
			}
			if !sm.IsValid() {
				continue
			}
			r.depth.Use()
			r.depth.SetMat4("uLightViewProj", slot.Matrix)
			sm.Bind()
			r.drawCasters(r.depth)
			sm.Unbind()
		}
		r.stats.Shadows++
	}
}

func (r *Renderer) drawCasters(p *shader.Program) {
	for _, it := range r.list.Casters {
		if it.Material.Common().Side == material.DoubleSide {
			gl.Disable(gl.CULL_FACE)
		} else {
			gl.Enable(gl.CULL_FACE)
		}
		p.SetMat4("uModel", it.Model)
		r.cache.draw(it.Geometry)
		r.stats.DrawCalls++
	}
}

func (r *Renderer) drawBackground(s *scene.Scene, cam camera.Camera) {
	te := r.cache.texture(s.BackgroundTexture)
	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	r.background.Use()
	r.setOutput(r.background)
	r.background.SetBool("uFog", false)
	r.background.SetMat4("uInvViewProj", camera.ViewProjection(cam).Inv())
	r.background.SetFloat("uIntensity", 1)
	gl.ActiveTexture(gl.TEXTURE0 + unitMap)
	gl.BindTexture(gl.TEXTURE_2D, te.id)
	gl.BindVertexArray(r.emptyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.DepthMask(true)
	r.stats.DrawCalls++
}

// setOutput sets tone mapping, exposure and fog uniforms.
func (r *Renderer) setOutput(p *shader.Program) {
	tm := int32(0)
	if r.opts.ToneMapping == demo.ACESFilmic {
		tm = 1
	}
	p.SetInt("uToneMapping", tm)
	p.SetFloat("uExposure", r.opts.Exposure)
	fog := r.frame.scene.Fog
	p.SetBool("uFog", fog != nil)
	if fog != nil {
		p.SetVec3("uFogColor", fog.Color.Vec3())
		p.SetFloat("uFogNear", fog.Near)
		p.SetFloat("uFogFar", fog.Far)
	}
}

func setSide(side material.Side) {
	switch side {
	case material.FrontSide:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case material.BackSide:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}
}

func (r *Renderer) drawMesh(it renderlist.Item) {
	p := r.programs[it.Material.Kind()]
	if p == nil {
		// Line materials on meshes have no triangle program.
		return
	}
	p.Use()
	r.prepare(p)

	base := it.Material.Common()
	setSide(base.Side)
	if base.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	p.SetMat4("uModel", it.Model)
	p.SetMat3("uNormalMatrix", renderlist.NormalMatrix(it.Model))
	p.SetBool("uReceiveShadow", it.Receive && len(r.frame.slots) > 0)
	r.setMaterial(p, it.Material)

	r.cache.draw(it.Geometry)
	r.stats.DrawCalls++
	r.stats.Triangles += it.Geometry.TriangleCount()
}

func (r *Renderer) drawLines() {
	if len(r.list.Lines) == 0 {
		return
	}
	gl.Disable(gl.CULL_FACE)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	r.line.Use()
	r.line.SetMat4("uView", r.frame.view)
	r.line.SetMat4("uProjection", r.frame.projection)
	r.setOutput(r.line)
	for _, it := range r.list.Lines {
		m, ok := it.Material.(*material.LineBasic)
		if !ok {
			continue
		}
		r.line.SetMat4("uModel", it.Model)
		r.line.SetVec3("uColor", m.Color.Vec3())
		r.line.SetFloat("uOpacity", lineOpacity(m))
		r.line.SetBool("uVertexColors", m.VertexColors && len(it.Geometry.Colors) > 0)
		r.cache.draw(it.Geometry)
		r.stats.DrawCalls++
	}
}

func lineOpacity(m *material.LineBasic) float32 {
	if m.Transparent {
		return m.Opacity
	}
	return 1
}

// Present copies the frame to the window's default framebuffer.
func (r *Renderer) Present(windowWidth, windowHeight int) {
	r.target.BlitToScreen(int32(windowWidth), int32(windowHeight))
}

// ColorTexture returns the GL texture holding the last frame.
func (r *Renderer) ColorTexture() uint32 {
	return r.target.ColorTexture()
}

// Capture reads back the last frame as bottom-up RGBA rows.
func (r *Renderer) Capture() (pixels []byte, width, height int) {
	w, h := r.target.Size()
	return r.target.ReadPixels(), int(w), int(h)
}

// Stats returns counters for the last frame.
func (r *Renderer) Stats() Stats { return r.stats }

// Close releases all GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.cache != nil {
		r.cache.close()
	}
	for _, p := range r.programs {
		p.Delete()
	}
	for _, p := range []*shader.Program{r.line, r.depth, r.cubeDepth, r.background} {
		if p != nil {
			p.Delete()
		}
	}
	for _, m := range r.maps {
		if m != nil {
			m.Destroy()
		}
	}
	for _, c := range r.cubes {
		if c != nil {
			c.Destroy()
		}
	}
	if r.dummyMap != nil {
		r.dummyMap.Destroy()
	}
	if r.dummyCube != nil {
		r.dummyCube.Destroy()
	}
	if r.target != nil {
		r.target.Destroy()
	}
	if r.emptyVAO != 0 {
		gl.DeleteVertexArrays(1, &r.emptyVAO)
	}
	if r.white != 0 {
		gl.DeleteTextures(1, &r.white)
	}
}
