package renderer

// RenderContext provides shared per-frame context for all renderables
type RenderContext struct {
	// framebuffer size in pixels
	Width, Height int
	// cursor position in window pixels, origin top-left
	CursorX, CursorY float64
	DT               float64
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
