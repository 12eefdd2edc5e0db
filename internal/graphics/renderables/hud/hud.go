package hud

import (
	"errors"

	"mini-hud/internal/graphics/gpu"
	renderer "mini-hud/internal/graphics/renderer"
	"mini-hud/internal/inventory"
	"mini-hud/internal/item"
	"mini-hud/internal/logging"
	"mini-hud/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform and sampler names shared with assets/shaders/hud
const (
	uniformMatrix  = "matrix"
	uniformOffset  = "offset"
	uniformSampler = "sampler"
)

// Textures are the three atlases the HUD samples from
type Textures struct {
	Background uint32
	Items      uint32
	Font       uint32
}

// Resources are the GPU objects created in Init. Release, when set, frees the
// textures on Dispose.
type Resources struct {
	Program  gpu.Program
	Textures Textures
	Release  func()
}

// Loader creates the HUD's GPU resources on the render thread
type Loader func() (Resources, error)

// FrameStats are the vertex counts issued by the last frame
type FrameStats struct {
	Backgrounds int
	Stacks      int
	Held        int
	Amounts     int
}

// Total returns the number of vertices drawn
func (s FrameStats) Total() int {
	return s.Backgrounds + s.Stacks + s.Held + s.Amounts
}

// HUD renders an inventory grid and answers which cell a cursor points at
type HUD struct {
	grid       *inventory.Grid
	atlas      item.AtlasLayout
	style      Style
	screenArea float64

	load      Loader
	resources Resources

	width, height int

	// projection of the most recent frame
	last     Projection
	rendered bool
	stats    FrameStats
}

// New creates a HUD over grid. load may be nil when only Draw is used.
func New(grid *inventory.Grid, atlas item.AtlasLayout, style Style, screenArea float64, load Loader) *HUD {
	if atlas == nil {
		atlas = item.AtlasLayout{}
	}
	return &HUD{
		grid:       grid,
		atlas:      atlas,
		style:      style,
		screenArea: screenArea,
		load:       load,
	}
}

// Grid returns the state store drawn by the HUD
func (h *HUD) Grid() *inventory.Grid { return h.grid }

// Style returns the active presentation style
func (h *HUD) Style() Style { return h.style }

// SetStyle switches the presentation style from the next frame on
func (h *HUD) SetStyle(s Style) { h.style = s }

// SetScreenArea changes the fraction of the viewport height the grid uses
func (h *HUD) SetScreenArea(area float64) { h.screenArea = area }

// SetAtlas replaces the item atlas layout
func (h *HUD) SetAtlas(atlas item.AtlasLayout) { h.atlas = atlas }

// Init implements renderer.Renderable
func (h *HUD) Init() error {
	if h.load == nil {
		return errors.New("hud: no resource loader")
	}
	res, err := h.load()
	if err != nil {
		return err
	}
	if res.Program == nil {
		return errors.New("hud: loader returned no program")
	}
	h.resources = res
	logging.Debug("hud initialised: %dx%d grid, style %s", h.grid.Columns(), h.grid.Rows(), h.style.Name)
	return nil
}

// SetViewport implements renderer.Renderable
func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
}

// Render implements renderer.Renderable
func (h *HUD) Render(ctx renderer.RenderContext) {
	if h.resources.Program == nil {
		return
	}
	h.resources.Program.Bind(func(c gpu.Context) {
		h.Draw(c, ctx.Width, ctx.Height, ctx.CursorX, ctx.CursorY)
	})
}

// Dispose implements renderer.Renderable
func (h *HUD) Dispose() {
	if h.resources.Program != nil {
		h.resources.Program.Dispose()
	}
	if h.resources.Release != nil {
		h.resources.Release()
	}
	h.resources = Resources{}
}

// Draw issues one frame of HUD passes on a bound program: backgrounds,
// stacks, the held stack at the cursor and finally the count glyphs.
// Geometry is rebuilt from the grid on every call.
func (h *HUD) Draw(ctx gpu.Context, width, height int, cursorX, cursorY float64) {
	defer profiling.Track("hud.Draw")()

	p := h.Projection(width, height)
	h.last, h.rendered = p, true
	h.stats = FrameStats{}
	if !p.Valid() {
		return
	}

	matrix, offset := p.Matrix(), p.Offset()
	tex := h.resources.Textures

	ctx.BlendFunc(gpu.SrcAlpha, gpu.OneMinusSrcAlpha)
	ctx.Enable(gpu.Blend)
	ctx.SetMatrix(uniformMatrix, matrix)
	ctx.SetVec4(uniformOffset, offset)

	ctx.SetTexture(uniformSampler, tex.Background)
	h.stats.Backgrounds = h.drawBackgrounds(ctx)
	ctx.Disable(gpu.Blend)

	ctx.Enable(gpu.DepthTest)
	ctx.Enable(gpu.CullFace)
	ctx.SetTexture(uniformSampler, tex.Items)
	h.stats.Stacks = h.drawStacks(ctx)

	if held, ok := h.grid.Held(); ok {
		h.stats.Held = h.drawHeld(ctx, p, held, cursorX, cursorY)
	}

	ctx.Disable(gpu.CullFace)
	ctx.Disable(gpu.DepthTest)
	ctx.SetMatrix(uniformMatrix, matrix)
	ctx.SetVec4(uniformOffset, offset)

	ctx.SetTexture(uniformSampler, tex.Font)
	ctx.Enable(gpu.Blend)
	h.stats.Amounts = h.drawAmounts(ctx)
	ctx.Disable(gpu.Blend)
}

func (h *HUD) drawBackgrounds(ctx gpu.Context) int {
	defer profiling.Track("hud.Backgrounds")()
	g := BuildBackgrounds(h.grid.Backgrounds(), h.style)
	defer g.Release()
	ctx.Draw(g)
	return g.Vertices
}

func (h *HUD) drawStacks(ctx gpu.Context) int {
	defer profiling.Track("hud.Stacks")()
	g := BuildStacks(h.grid.Stacks(), h.atlas, h.style)
	defer g.Release()
	ctx.Draw(g)
	return g.Vertices
}

func (h *HUD) drawHeld(ctx gpu.Context, p Projection, held item.ItemStack, cursorX, cursorY float64) int {
	defer profiling.Track("hud.Held")()
	ctx.SetMatrix(uniformMatrix, p.OverlayMatrix())
	ctx.SetVec4(uniformOffset, mgl32.Vec4{})
	// held item stays on top of the grid's cubes
	ctx.ClearDepth()

	x, y := p.CursorNDC(cursorX, cursorY)
	g := BuildHeld(held, h.atlas, float32(x/p.Aspect), float32(y), p.OverlaySize(h.style.CubeSize), h.style)
	defer g.Release()
	ctx.Draw(g)
	return g.Vertices
}

func (h *HUD) drawAmounts(ctx gpu.Context) int {
	defer profiling.Track("hud.Amounts")()
	g := BuildAmounts(h.grid.Stacks(), h.style)
	defer g.Release()
	ctx.Draw(g)
	return g.Vertices
}

// HitTest returns the cell under cursor pixel (x, y) for a width x height
// viewport, or false when the cursor is outside the grid
func (h *HUD) HitTest(x, y float64, width, height int) (inventory.Cell, bool) {
	return h.Projection(width, height).Cell(x, y, h.grid.Rows())
}

// Projection returns the grid transform for a viewport. Draw and HitTest
// both go through it.
func (h *HUD) Projection(width, height int) Projection {
	return NewProjection(width, height, h.grid.Columns(), h.screenArea)
}

// LastProjection returns the projection used by the most recent Draw
func (h *HUD) LastProjection() (Projection, bool) {
	return h.last, h.rendered
}

// Stats returns the vertex counts of the most recent Draw
func (h *HUD) Stats() FrameStats {
	return h.stats
}
