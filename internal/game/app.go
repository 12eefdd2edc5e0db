package game

import (
	"fmt"
	"time"

	"mini-hud/internal/config"
	"mini-hud/internal/graphics"
	"mini-hud/internal/graphics/renderables/highlight"
	"mini-hud/internal/graphics/renderables/hud"
	"mini-hud/internal/graphics/renderer"
	"mini-hud/internal/input"
	"mini-hud/internal/inventory"
	"mini-hud/internal/item"
	"mini-hud/internal/logging"
	"mini-hud/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// screen area change per key press
const screenAreaStep = 0.05

// App drives the inventory window: input, interaction and the render loop
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager

	renderer  *renderer.Renderer
	hud       *hud.HUD
	highlight *highlight.Highlight
	cfg       *config.Config

	// cursor in window coordinates
	cursorX, cursorY float64
	showProfiling    bool

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp builds the renderer over grid. The window's GL context must be
// current.
func NewApp(window *glfw.Window, cfg *config.Config, grid *inventory.Grid, atlas item.AtlasLayout) (*App, error) {
	h := hud.New(grid, atlas, hud.StyleFromConfig(cfg.HUD), config.GetScreenArea(), HUDLoader(cfg.Assets))
	hl := highlight.NewHighlight(h, HighlightLoader(cfg.Assets))

	r, err := renderer.NewRenderer(graphics.Surface{}, h, hl)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	fbW, fbH := window.GetFramebufferSize()
	r.UpdateViewport(fbW, fbH)

	app := &App{
		window:       window,
		inputManager: input.NewInputManager(),
		renderer:     r,
		hud:          h,
		highlight:    hl,
		cfg:          cfg,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
	SetupInputHandlers(app)
	return app, nil
}

// Run loops until the window is closed
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	glfw.PollEvents()
	a.handleActions()

	a.render(dt)
	a.window.SwapBuffers()

	if d := time.Since(startTick); d > 16*time.Millisecond {
		logging.Warn("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	} else if a.showProfiling {
		logging.Info("frame %v, hud %v, %d vertices", d, profiling.SumWithPrefix("hud."), a.hud.Stats().Total())
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags
	a.fpsLimiter.Wait()
}

func (a *App) render(dt float64) {
	x, y := a.framebufferCursor()
	a.renderer.Render(x, y, dt)
}

// framebufferCursor converts the window cursor into framebuffer pixels so
// hit testing and rendering use the same viewport on HiDPI screens
func (a *App) framebufferCursor() (float64, float64) {
	winW, winH := a.window.GetSize()
	fbW, fbH := a.renderer.Viewport()
	if winW == 0 || winH == 0 {
		return a.cursorX, a.cursorY
	}
	return a.cursorX * float64(fbW) / float64(winW), a.cursorY * float64(fbH) / float64(winH)
}

func (a *App) handleActions() {
	im := a.inputManager
	grid := a.hud.Grid()

	if im.JustPressed(input.ActionSelect) {
		x, y := a.framebufferCursor()
		w, h := a.renderer.Viewport()
		if cell, ok := a.hud.HitTest(x, y, w, h); ok {
			if grid.SlotClick(cell) {
				logging.Debug("slot %d,%d clicked", cell.Column, cell.Row)
			}
		}
	}
	if im.JustPressed(input.ActionDropHeld) {
		grid.ClearHeld()
	}
	if im.JustPressed(input.ActionToggleStyle) {
		name := config.ToggleStyle()
		a.hud.SetStyle(hud.StyleByName(name).With(a.cfg.HUD.Overrides))
		logging.Info("hud style: %s", name)
	}
	if im.JustPressed(input.ActionGrowHUD) || im.JustPressed(input.ActionShrinkHUD) {
		step := screenAreaStep
		if im.JustPressed(input.ActionShrinkHUD) {
			step = -step
		}
		config.SetScreenArea(config.GetScreenArea() + step)
		a.hud.SetScreenArea(config.GetScreenArea())
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		a.showProfiling = !a.showProfiling
	}
	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
}

// RefreshRender repaints during window resizes
func (a *App) RefreshRender() {
	a.render(0)
	a.window.SwapBuffers()
}

// Dispose releases all GPU resources
func (a *App) Dispose() {
	a.renderer.Dispose()
}
