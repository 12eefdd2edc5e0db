package renderer

import (
	"fmt"

	"mini-hud/internal/graphics/gpu"
)

// ClearColor is the backdrop behind the HUD
var ClearColor = [4]float32{0.1, 0.1, 0.12, 1.0}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	surface     gpu.Surface
	renderables []Renderable

	width, height int
}

// NewRenderer initialises every renderable in order. If one fails the ones
// already initialised are disposed again.
func NewRenderer(surface gpu.Surface, rs ...Renderable) (*Renderer, error) {
	r := &Renderer{surface: surface}
	for i, feature := range rs {
		if err := feature.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
		r.renderables = append(r.renderables, feature)
	}
	return r, nil
}

// Render clears the frame and executes each feature in registration order
func (r *Renderer) Render(cursorX, cursorY, dt float64) {
	c := ClearColor
	r.surface.Clear(c[0], c[1], c[2], c[3])

	ctx := RenderContext{
		Width:   r.width,
		Height:  r.height,
		CursorX: cursorX,
		CursorY: cursorY,
		DT:      dt,
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// UpdateViewport resizes the framebuffer viewport and propagates the new
// size to every feature
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	r.surface.Viewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Viewport returns the last framebuffer size
func (r *Renderer) Viewport() (width, height int) {
	return r.width, r.height
}
