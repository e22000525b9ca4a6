package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/texture"
)

// Attribute locations shared by every vertex shader.
const (
	attrPosition = 0
	attrNormal   = 1
	attrUV       = 2
	attrColor    = 3
)

// meshBuffers is the GPU copy of one geometry.
type meshBuffers struct {
	vao     uint32
	vbos    [4]uint32
	ebo     uint32
	count   int32
	indexed bool
	mode    uint32
	version int
}

type textureEntry struct {
	id      uint32
	version int
	levels  int
}

// cache uploads geometries and textures on first use, refreshes them when
// their Version changes and frees them when they are disposed.
type cache struct {
	log      *zap.Logger
	meshes   map[*geometry.Geometry]*meshBuffers
	textures map[*texture.Texture]*textureEntry
	closed   bool
}

func newCache(log *zap.Logger) *cache {
	return &cache{
		log:      log,
		meshes:   make(map[*geometry.Geometry]*meshBuffers),
		textures: make(map[*texture.Texture]*textureEntry),
	}
}

// mesh returns the buffers for g, uploading as needed.
func (c *cache) mesh(g *geometry.Geometry) *meshBuffers {
	mb, ok := c.meshes[g]
	if !ok {
		mb = &meshBuffers{version: -1}
		gl.GenVertexArrays(1, &mb.vao)
		gl.GenBuffers(4, &mb.vbos[0])
		gl.GenBuffers(1, &mb.ebo)
		c.meshes[g] = mb
		g.OnDispose(c.releaseMesh)
	}
	if mb.version != g.Version {
		c.uploadMesh(mb, g)
	}
	return mb
}

func (c *cache) uploadMesh(mb *meshBuffers, g *geometry.Geometry) {
	gl.BindVertexArray(mb.vao)
	attrib(mb.vbos[0], attrPosition, 3, g.Positions)
	attrib(mb.vbos[1], attrNormal, 3, g.Normals)
	attrib(mb.vbos[2], attrUV, 2, g.UVs)
	attrib(mb.vbos[3], attrColor, 3, g.Colors)

	mb.indexed = len(g.Indices) > 0
	if mb.indexed {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)
		mb.count = int32(len(g.Indices))
	} else {
		mb.count = int32(g.VertexCount())
	}
	gl.BindVertexArray(0)

	mb.mode = gl.TRIANGLES
	if g.Mode == geometry.Lines {
		mb.mode = gl.LINES
	}
	mb.version = g.Version
}

// attrib uploads data to vbo and points location at it, or disables the
// array when data is empty so the shader sees the constant attribute.
func attrib(vbo uint32, location uint32, size int32, data []float32) {
	if len(data) == 0 {
		gl.DisableVertexAttribArray(location)
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(location, size, gl.FLOAT, false, size*4, 0)
	gl.EnableVertexAttribArray(location)
}

func (c *cache) releaseMesh(g *geometry.Geometry) {
	mb, ok := c.meshes[g]
	if !ok {
		return
	}
	delete(c.meshes, g)
	if c.closed {
		return
	}
	deleteMesh(mb)
}

func deleteMesh(mb *meshBuffers) {
	gl.DeleteVertexArrays(1, &mb.vao)
	gl.DeleteBuffers(4, &mb.vbos[0])
	gl.DeleteBuffers(1, &mb.ebo)
}

// draw issues the draw call for g.
func (c *cache) draw(g *geometry.Geometry) {
	mb := c.mesh(g)
	if mb.count == 0 {
		return
	}
	gl.BindVertexArray(mb.vao)
	if mb.indexed {
		gl.DrawElementsWithOffset(mb.mode, mb.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(mb.mode, 0, mb.count)
	}
	gl.BindVertexArray(0)
}

// texture returns the GL name for t, uploading as needed.
func (c *cache) texture(t *texture.Texture) *textureEntry {
	te, ok := c.textures[t]
	if !ok {
		te = &textureEntry{version: -1}
		gl.GenTextures(1, &te.id)
		c.textures[t] = te
		t.OnDispose(c.releaseTexture)
	}
	if te.version != t.Version {
		c.uploadTexture(te, t)
	}
	return te
}

func (c *cache) uploadTexture(te *textureEntry, t *texture.Texture) {
	w, h := t.Size()
	gl.BindTexture(gl.TEXTURE_2D, te.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	switch {
	case t.HDR != nil:
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB16F, int32(w), int32(h), 0, gl.RGB, gl.FLOAT, gl.Ptr(t.HDR.Pix))
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	case t.RGBA != nil:
		internal := int32(gl.RGBA8)
		if t.ColorSpace == texture.SRGBSpace {
			internal = gl.SRGB8_ALPHA8
		}
		img := texture.FlipY(t.RGBA)
		gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	default:
		return
	}
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	te.levels = mipLevels(w, h)
	te.version = t.Version
	c.log.Debug("texture uploaded", zap.String("name", t.Name), zap.Int("width", w), zap.Int("height", h), zap.Bool("hdr", t.IsHDR()))
}

// mipLevels is the length of the full mip chain for a w x h image.
func mipLevels(w, h int) int {
	n := 1
	for s := max(w, h); s > 1; s >>= 1 {
		n++
	}
	return n
}

func (c *cache) releaseTexture(t *texture.Texture) {
	te, ok := c.textures[t]
	if !ok {
		return
	}
	delete(c.textures, t)
	if c.closed {
		return
	}
	gl.DeleteTextures(1, &te.id)
}

// close frees everything still cached. Dispose callbacks registered
// earlier become no-ops.
func (c *cache) close() {
	for _, mb := range c.meshes {
		deleteMesh(mb)
	}
	for _, te := range c.textures {
		gl.DeleteTextures(1, &te.id)
	}
	c.meshes = map[*geometry.Geometry]*meshBuffers{}
	c.textures = map[*texture.Texture]*textureEntry{}
	c.closed = true
}
