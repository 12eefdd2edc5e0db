package highlight

import (
	"errors"

	"mini-hud/internal/graphics/gpu"
	"mini-hud/internal/graphics/renderables/hud"
	renderer "mini-hud/internal/graphics/renderer"
	"mini-hud/internal/inventory"
	"mini-hud/internal/meshing"
	"mini-hud/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is the tint laid over the hovered slot
var Color = mgl32.Vec4{1, 1, 1, 0.35}

// Highlight tints the inventory slot under the cursor
type Highlight struct {
	hud     *hud.HUD
	load    func() (gpu.Program, error)
	program gpu.Program

	hovered    inventory.Cell
	hasHovered bool
}

// NewHighlight creates a highlight for the slots of h
func NewHighlight(h *hud.HUD, load func() (gpu.Program, error)) *Highlight {
	return &Highlight{hud: h, load: load}
}

// Init implements renderer.Renderable
func (hl *Highlight) Init() error {
	if hl.load == nil {
		return errors.New("highlight: no program loader")
	}
	p, err := hl.load()
	if err != nil {
		return err
	}
	hl.program = p
	return nil
}

// Render implements renderer.Renderable
func (hl *Highlight) Render(ctx renderer.RenderContext) {
	defer profiling.Track("highlight.Render")()

	hl.hovered, hl.hasHovered = hl.hud.HitTest(ctx.CursorX, ctx.CursorY, ctx.Width, ctx.Height)
	if !hl.hasHovered || hl.program == nil {
		return
	}
	p := hl.hud.Projection(ctx.Width, ctx.Height)
	hl.program.Bind(func(c gpu.Context) {
		hl.Draw(c, p, hl.hovered)
	})
}

// Draw tints cell on a bound program
func (hl *Highlight) Draw(ctx gpu.Context, p hud.Projection, cell inventory.Cell) {
	g := meshing.NewGeometry(meshing.LayoutTextured, meshing.QuadVertices)
	defer g.Release()
	x, y := float32(cell.Column), float32(cell.Row)
	g.Data = meshing.Quad(g.Data, x, y, x+1, y+1, 0, 0, 0, 1, 1, false)

	ctx.SetMatrix("matrix", p.Matrix())
	ctx.SetVec4("offset", p.Offset())
	ctx.SetVec4("color", Color)
	ctx.BlendFunc(gpu.SrcAlpha, gpu.OneMinusSrcAlpha)
	ctx.Enable(gpu.Blend)
	ctx.Draw(g)
	ctx.Disable(gpu.Blend)
}

// Hovered returns the cell found by the last Render
func (hl *Highlight) Hovered() (inventory.Cell, bool) {
	return hl.hovered, hl.hasHovered
}

// SetViewport implements renderer.Renderable
func (hl *Highlight) SetViewport(width, height int) {}

// Dispose implements renderer.Renderable
func (hl *Highlight) Dispose() {
	if hl.program != nil {
		hl.program.Dispose()
		hl.program = nil
	}
}
