// Package shader compiles GLSL programs and caches their uniform locations.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", strings.TrimRight(string(log), "\x00"))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, strings.TrimRight(string(log), "\x00"))
	}

	return shader, nil
}

// Program is a linked program with lazily looked up uniform locations.
// Setters for uniforms the driver optimized away are silently ignored.
type Program struct {
	Name     string
	ID       uint32
	uniforms map[string]int32
}

// Build prepends the version line and defines to both stages, then
// compiles and links them.
func Build(name, vertexSrc, fragmentSrc string, defines ...string) (*Program, error) {
	header := Header(defines...)
	id, err := CompileProgram(header+vertexSrc, header+fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	return &Program{Name: name, ID: id, uniforms: make(map[string]int32)}, nil
}

// Header is the source prefix Build uses: the GLSL version and one #define
// per entry. Entries may carry a value ("MAX_LIGHTS 8").
func Header(defines ...string) string {
	var b strings.Builder
	b.WriteString("#version 410 core\n")
	for _, d := range defines {
		b.WriteString("#define ")
		b.WriteString(d)
		b.WriteByte('\n')
	}
	return b.String()
}

// Use makes p current.
func (p *Program) Use() { gl.UseProgram(p.ID) }

// Uniform returns the location of name, -1 when inactive.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.Uniform2f(loc, v[0], v[1])
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (p *Program) SetMat3(name string, m mgl32.Mat3) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.UniformMatrix3fv(loc, 1, false, &m[0])
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// SetFloats uploads count elements of an array uniform of float, vec2 or
// vec3 (size 1, 2 or 3).
func (p *Program) SetFloats(name string, size int, count int, v []float32) {
	loc := p.Uniform(name)
	if loc < 0 || count == 0 {
		return
	}
	switch size {
	case 1:
		gl.Uniform1fv(loc, int32(count), &v[0])
	case 2:
		gl.Uniform2fv(loc, int32(count), &v[0])
	case 3:
		gl.Uniform3fv(loc, int32(count), &v[0])
	}
}

// SetInts uploads an int array uniform.
func (p *Program) SetInts(name string, v []int32) {
	if loc := p.Uniform(name); loc >= 0 && len(v) > 0 {
		gl.Uniform1iv(loc, int32(len(v)), &v[0])
	}
}

// SetMat4s uploads an array of matrices.
func (p *Program) SetMat4s(name string, ms []mgl32.Mat4) {
	loc := p.Uniform(name)
	if loc < 0 || len(ms) == 0 {
		return
	}
	gl.UniformMatrix4fv(loc, int32(len(ms)), false, &ms[0][0])
}

// Delete frees the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
