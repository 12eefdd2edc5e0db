package highlight

import (
	"testing"

	"mini-hud/internal/graphics/gpu"
	"mini-hud/internal/graphics/renderables/hud"
	renderer "mini-hud/internal/graphics/renderer"
	"mini-hud/internal/inventory"
	"mini-hud/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

type recorder struct {
	draws []*meshing.Geometry
	color mgl32.Vec4
	quad  []float32
}

func (r *recorder) SetMatrix(string, mgl32.Mat4) {}
func (r *recorder) SetVec4(name string, v mgl32.Vec4) {
	if name == "color" {
		r.color = v
	}
}
func (r *recorder) SetTexture(string, uint32)          {}
func (r *recorder) Enable(gpu.Capability)              {}
func (r *recorder) Disable(gpu.Capability)             {}
func (r *recorder) BlendFunc(src, dst gpu.BlendFactor) {}
func (r *recorder) ClearDepth()                        {}
func (r *recorder) Draw(g *meshing.Geometry) {
	r.draws = append(r.draws, g)
	r.quad = append([]float32(nil), g.Data...)
}

type program struct {
	ctx   *recorder
	binds int
}

func (p *program) Bind(fn func(gpu.Context)) {
	p.binds++
	fn(p.ctx)
}

func (p *program) Dispose() {}

func TestHighlightFollowsHitTest(t *testing.T) {
	grid := inventory.NewGrid(17, 14)
	h := hud.New(grid, nil, hud.LitStyle(), 0.6, nil)
	prog := &program{ctx: &recorder{}}
	hl := NewHighlight(h, func() (gpu.Program, error) { return prog, nil })
	if err := hl.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	p := h.Projection(1024, 768)
	x, y := p.Pixel(6.3, 2.8)
	hl.Render(renderer.RenderContext{Width: 1024, Height: 768, CursorX: x, CursorY: y})

	cell, ok := hl.Hovered()
	if !ok || cell != (inventory.Cell{Column: 6, Row: 2}) {
		t.Fatalf("hovered: %v %v", cell, ok)
	}
	if len(prog.ctx.draws) != 1 || prog.ctx.color != Color {
		t.Fatalf("expected one tinted quad, got %d draws", len(prog.ctx.draws))
	}
	stride := meshing.LayoutTextured.Stride()
	// bottom-left corner of the quad
	if bx, by := prog.ctx.quad[stride], prog.ctx.quad[stride+1]; bx != 6 || by != 2 {
		t.Errorf("quad corner at (%v,%v)", bx, by)
	}
}

func TestHighlightOutsideGrid(t *testing.T) {
	h := hud.New(inventory.NewGrid(17, 14), nil, hud.LitStyle(), 0.6, nil)
	prog := &program{ctx: &recorder{}}
	hl := NewHighlight(h, func() (gpu.Program, error) { return prog, nil })
	if err := hl.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	hl.Render(renderer.RenderContext{Width: 1024, Height: 768, CursorX: 1, CursorY: 1})
	if _, ok := hl.Hovered(); ok {
		t.Errorf("corner pixel should not hover a slot")
	}
	if prog.binds != 0 {
		t.Errorf("nothing should be drawn outside the grid")
	}
}
