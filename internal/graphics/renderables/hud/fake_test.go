package hud

import (
	"fmt"

	"mini-hud/internal/graphics/gpu"
	"mini-hud/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// drawCall is a copy of one geometry passed to Draw
type drawCall struct {
	layout   meshing.Layout
	vertices int
	data     []float32
	sampler  uint32
	matrix   mgl32.Mat4
	offset   mgl32.Vec4
}

// recorder implements gpu.Context and logs every call
type recorder struct {
	events []string
	draws  []drawCall

	matrix  mgl32.Mat4
	offset  mgl32.Vec4
	sampler uint32
}

func (r *recorder) SetMatrix(name string, m mgl32.Mat4) {
	r.matrix = m
	r.events = append(r.events, "set "+name)
}

func (r *recorder) SetVec4(name string, v mgl32.Vec4) {
	r.offset = v
	r.events = append(r.events, "set "+name)
}

func (r *recorder) SetTexture(name string, tex uint32) {
	r.sampler = tex
	r.events = append(r.events, fmt.Sprintf("texture %s=%d", name, tex))
}

func (r *recorder) Enable(c gpu.Capability)  { r.events = append(r.events, "enable "+c.String()) }
func (r *recorder) Disable(c gpu.Capability) { r.events = append(r.events, "disable "+c.String()) }

func (r *recorder) BlendFunc(src, dst gpu.BlendFactor) {
	r.events = append(r.events, fmt.Sprintf("blend %d %d", src, dst))
}

func (r *recorder) ClearDepth() { r.events = append(r.events, "clear depth") }

func (r *recorder) Draw(g *meshing.Geometry) {
	r.events = append(r.events, "draw")
	r.draws = append(r.draws, drawCall{
		layout:   g.Layout,
		vertices: g.Vertices,
		data:     append([]float32(nil), g.Data...),
		sampler:  r.sampler,
		matrix:   r.matrix,
		offset:   r.offset,
	})
}

// program implements gpu.Program around a recorder
type program struct {
	ctx      *recorder
	binds    int
	disposed bool
}

func (p *program) Bind(fn func(ctx gpu.Context)) {
	p.binds++
	fn(p.ctx)
}

func (p *program) Dispose() { p.disposed = true }

// attribute value of vertex v in a draw
func (d drawCall) attr(v int, name string) []float32 {
	i := d.layout.Index(name)
	stride := d.layout.Stride()
	off := v*stride + d.layout.Offset(i)
	return d.data[off : off+d.layout[i].Size]
}

// centroid of the positions of vertices [from, to)
func (d drawCall) centroid(from, to int) mgl32.Vec3 {
	var sum mgl32.Vec3
	for v := from; v < to; v++ {
		p := d.attr(v, "position")
		sum = sum.Add(mgl32.Vec3{p[0], p[1], p[2]})
	}
	return sum.Mul(1 / float32(to-from))
}
