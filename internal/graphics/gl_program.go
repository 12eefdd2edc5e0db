package graphics

import (
	"path/filepath"

	"mini-hud/internal/graphics/gpu"
	"mini-hud/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const FloatSize = 4

// GLProgram implements gpu.Program on an OpenGL 4.1 core context. Geometry is
// uploaded into a transient VAO/VBO per draw and deleted right after.
type GLProgram struct {
	shader *Shader

	// per-frame counters
	drawCalls int
	vertices  int
}

// NewGLProgram loads <dir>/<name>.vert and <dir>/<name>.frag
func NewGLProgram(dir, name string) (*GLProgram, error) {
	shader, err := NewShader(filepath.Join(dir, name+".vert"), filepath.Join(dir, name+".frag"))
	if err != nil {
		return nil, err
	}
	return &GLProgram{shader: shader}, nil
}

// Bind implements gpu.Program
func (p *GLProgram) Bind(fn func(ctx gpu.Context)) {
	p.shader.Use()
	// HUD geometry is drawn without a projection, so clip-space z grows away
	// from the viewer and outward faces wind clockwise on screen.
	gl.FrontFace(gl.CW)
	defer gl.FrontFace(gl.CCW)
	defer gl.UseProgram(0)

	fn(&glContext{program: p, units: make(map[string]int32)})
}

// Dispose implements gpu.Program
func (p *GLProgram) Dispose() {
	p.shader.Delete()
}

// Stats returns draw calls and vertices issued since the last call
func (p *GLProgram) Stats() (drawCalls, vertices int) {
	drawCalls, vertices = p.drawCalls, p.vertices
	p.drawCalls, p.vertices = 0, 0
	return drawCalls, vertices
}

type glContext struct {
	program *GLProgram
	units   map[string]int32
}

func (c *glContext) SetMatrix(name string, m mgl32.Mat4) {
	c.program.shader.SetMatrix4(name, &m[0])
}

func (c *glContext) SetVec4(name string, v mgl32.Vec4) {
	c.program.shader.SetVector4(name, v.X(), v.Y(), v.Z(), v.W())
}

func (c *glContext) SetTexture(name string, tex uint32) {
	unit, ok := c.units[name]
	if !ok {
		unit = int32(len(c.units))
		c.units[name] = unit
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, tex)
	c.program.shader.SetInt(name, unit)
}

func (c *glContext) Enable(capability gpu.Capability) {
	gl.Enable(glCapability(capability))
}

func (c *glContext) Disable(capability gpu.Capability) {
	gl.Disable(glCapability(capability))
}

func (c *glContext) BlendFunc(src, dst gpu.BlendFactor) {
	gl.BlendFunc(glBlendFactor(src), glBlendFactor(dst))
}

func (c *glContext) ClearDepth() {
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

func (c *glContext) Draw(g *meshing.Geometry) {
	if g.Empty() {
		return
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	defer gl.DeleteVertexArrays(1, &vao)
	defer gl.DeleteBuffers(1, &vbo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Data)*FloatSize, gl.Ptr(g.Data), gl.STREAM_DRAW)

	stride := int32(g.Layout.Stride() * FloatSize)
	for i, a := range g.Layout {
		loc := c.program.shader.Attribute(a.Name)
		if loc < 0 {
			// attribute optimised out or unused by this program
			continue
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), int32(a.Size), gl.FLOAT, false, stride, uintptr(g.Layout.Offset(i)*FloatSize))
	}

	gl.DrawArrays(gl.TRIANGLES, 0, int32(g.Vertices))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	c.program.drawCalls++
	c.program.vertices += g.Vertices
}

func glCapability(c gpu.Capability) uint32 {
	switch c {
	case gpu.Blend:
		return gl.BLEND
	case gpu.DepthTest:
		return gl.DEPTH_TEST
	case gpu.CullFace:
		return gl.CULL_FACE
	}
	return 0
}

func glBlendFactor(f gpu.BlendFactor) uint32 {
	switch f {
	case gpu.SrcAlpha:
		return gl.SRC_ALPHA
	case gpu.OneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	}
	return gl.ONE
}
