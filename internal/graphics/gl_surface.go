package graphics

import "github.com/go-gl/gl/v4.1-core/gl"

// Surface implements gpu.Surface on the default framebuffer
type Surface struct{}

func (Surface) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (Surface) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
