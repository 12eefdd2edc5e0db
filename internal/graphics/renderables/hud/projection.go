package hud

import (
	"math"

	"mini-hud/internal/inventory"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection maps grid space onto the viewport. Grid space has one unit per
// cell with the origin at the bottom-left corner of cell (0,0); the grid
// spans 4/columns NDC units per cell, scaled by the screen area fraction and
// corrected for aspect ratio horizontally.
//
// Rendering and hit testing must derive their Projection from NewProjection
// with the same viewport, or clicks land in a different cell than drawn.
type Projection struct {
	Width, Height int
	Columns       int

	Aspect     float64 // height / width
	CellScale  float64 // 4 / columns
	ScreenArea float64
}

// NewProjection computes the transform parameters for a viewport
func NewProjection(width, height, columns int, screenArea float64) Projection {
	p := Projection{
		Width:      width,
		Height:     height,
		Columns:    columns,
		ScreenArea: screenArea,
	}
	if width > 0 {
		p.Aspect = float64(height) / float64(width)
	}
	if columns > 0 {
		p.CellScale = 4.0 / float64(columns)
	}
	return p
}

// Valid reports whether the viewport can show the grid at all. A minimised
// window reports a zero framebuffer.
func (p Projection) Valid() bool {
	return p.Width > 0 && p.Height > 0 && p.Columns > 0 && p.ScreenArea > 0
}

// Matrix is the grid model matrix
func (p Projection) Matrix() mgl32.Mat4 {
	s := p.CellScale * p.ScreenArea
	return mgl32.Diag4(mgl32.Vec4{float32(s * p.Aspect), float32(s), 1, 1})
}

// Offset translates the grid so its left edge is centred horizontally and
// its bottom edge sits on the bottom of the viewport
func (p Projection) Offset() mgl32.Vec4 {
	return mgl32.Vec4{float32(-2 * p.Aspect * p.ScreenArea), -1, 0, 0}
}

// OverlayMatrix is the aspect-corrected screen transform of the held item
func (p Projection) OverlayMatrix() mgl32.Mat4 {
	return mgl32.Diag4(mgl32.Vec4{float32(p.Aspect), 1, 1, 1})
}

// OverlaySize converts a cube size in grid units to overlay units
func (p Projection) OverlaySize(size float32) float32 {
	return size * float32(p.CellScale*p.ScreenArea)
}

// CursorNDC converts a window pixel (origin top-left) to normalised device
// coordinates (origin centre, y up)
func (p Projection) CursorNDC(x, y float64) (float64, float64) {
	glx := 2*x/float64(p.Width) - 1
	gly := 2*(float64(p.Height)-y)/float64(p.Height) - 1
	return glx, gly
}

// Cell returns the grid cell under pixel (x, y), or false outside the grid
func (p Projection) Cell(x, y float64, rows int) (inventory.Cell, bool) {
	if !p.Valid() {
		return inventory.Cell{}, false
	}
	glx, gly := p.CursorNDC(x, y)

	ix := (glx + 2*p.Aspect*p.ScreenArea) / (p.CellScale * p.Aspect * p.ScreenArea)
	iy := (gly + 1) / (p.CellScale * p.ScreenArea)

	if ix < 0 || ix >= float64(p.Columns) || iy < 0 || iy >= float64(rows) {
		return inventory.Cell{}, false
	}
	return inventory.Cell{Column: int(math.Floor(ix)), Row: int(math.Floor(iy))}, true
}

// Pixel maps a grid-space point to the window pixel it is drawn at
func (p Projection) Pixel(gx, gy float64) (float64, float64) {
	glx := gx*p.CellScale*p.Aspect*p.ScreenArea - 2*p.Aspect*p.ScreenArea
	gly := gy*p.CellScale*p.ScreenArea - 1

	x := (glx + 1) * float64(p.Width) / 2
	y := float64(p.Height) - (gly+1)*float64(p.Height)/2
	return x, y
}
