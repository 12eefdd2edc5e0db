// Package gpu declares the pipeline operations render passes are written
// against, independent of the graphics API behind them.
package gpu

import (
	"mini-hud/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// Capability is a fixed-function pipeline toggle
type Capability int

const (
	Blend Capability = iota
	DepthTest
	CullFace
)

func (c Capability) String() string {
	switch c {
	case Blend:
		return "blend"
	case DepthTest:
		return "depth_test"
	case CullFace:
		return "cull_face"
	}
	return "unknown"
}

// BlendFactor is a blend equation operand
type BlendFactor int

const (
	One BlendFactor = iota
	SrcAlpha
	OneMinusSrcAlpha
)

// Program is a bound shader program. Bind makes it current for the duration
// of fn and passes the drawing context that operates on it.
type Program interface {
	Bind(fn func(ctx Context))
	Dispose()
}

// Context carries all pipeline state a render pass may touch, so passes
// never reach for the currently bound program or texture implicitly.
type Context interface {
	SetMatrix(name string, m mgl32.Mat4)
	SetVec4(name string, v mgl32.Vec4)
	// SetTexture binds tex to the sampler uniform name
	SetTexture(name string, tex uint32)
	Enable(c Capability)
	Disable(c Capability)
	BlendFunc(src, dst BlendFactor)
	ClearDepth()
	// Draw uploads g and issues one triangle draw. Empty geometry is skipped.
	Draw(g *meshing.Geometry)
}

// Surface is the default framebuffer
type Surface interface {
	Clear(r, g, b, a float32)
	Viewport(width, height int)
}
