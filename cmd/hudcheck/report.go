package main

import (
	"fmt"
	"strconv"
	"strings"

	"mini-hud/internal/graphics/gpu"
	"mini-hud/internal/graphics/renderables/hud"
	"mini-hud/internal/inventory"
	"mini-hud/internal/item"
	"mini-hud/internal/meshing"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	backgroundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))
	stackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))
	hoverStyle = lipgloss.NewStyle().
			Reverse(true)
)

// counter implements gpu.Context and keeps totals only
type counter struct {
	draws       int
	vertices    int
	floats      int
	depthClears int
}

func (c *counter) SetMatrix(string, mgl32.Mat4)   {}
func (c *counter) SetVec4(string, mgl32.Vec4)     {}
func (c *counter) SetTexture(string, uint32)      {}
func (c *counter) Enable(gpu.Capability)          {}
func (c *counter) Disable(gpu.Capability)         {}
func (c *counter) BlendFunc(_, _ gpu.BlendFactor) {}
func (c *counter) ClearDepth()                    { c.depthClears++ }

func (c *counter) Draw(g *meshing.Geometry) {
	c.draws++
	c.vertices += g.Vertices
	c.floats += len(g.Data)
}

// Report is the outcome of one headless frame
type Report struct {
	Width, Height int
	Style         string
	Stats         hud.FrameStats
	Draws         int
	Floats        int
	DepthClears   int

	Cursor  [2]float64
	Hit     inventory.Cell
	HasHit  bool
	Grid    *inventory.Grid
	Columns int
	Rows    int
}

// Check draws one frame of h into a counting context
func Check(h *hud.HUD, width, height int, cursorX, cursorY float64) Report {
	c := &counter{}
	h.Draw(c, width, height, cursorX, cursorY)

	r := Report{
		Width:       width,
		Height:      height,
		Style:       h.Style().Name,
		Stats:       h.Stats(),
		Draws:       c.draws,
		Floats:      c.floats,
		DepthClears: c.depthClears,
		Cursor:      [2]float64{cursorX, cursorY},
		Grid:        h.Grid(),
		Columns:     h.Grid().Columns(),
		Rows:        h.Grid().Rows(),
	}
	r.Hit, r.HasHit = h.HitTest(cursorX, cursorY, width, height)
	return r
}

// Format renders the report, with ANSI colours when color is set
func (r Report) Format(color bool) string {
	paint := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	b.WriteString(paint(titleStyle, fmt.Sprintf("HUD %dx%d at %dx%d, style %s", r.Columns, r.Rows, r.Width, r.Height, r.Style)))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "backgrounds %d  stacks %d  held %d  amounts %d vertices\n",
		r.Stats.Backgrounds, r.Stats.Stacks, r.Stats.Held, r.Stats.Amounts)
	fmt.Fprintf(&b, "%d draws, %d floats, %d depth clears\n", r.Draws, r.Floats, r.DepthClears)
	if r.HasHit {
		fmt.Fprintf(&b, "cursor (%.0f,%.0f) -> cell %d,%d\n", r.Cursor[0], r.Cursor[1], r.Hit.Column, r.Hit.Row)
	} else {
		fmt.Fprintf(&b, "cursor (%.0f,%.0f) -> outside\n", r.Cursor[0], r.Cursor[1])
	}

	bg := r.Grid.Backgrounds()
	stacks := r.Grid.Stacks()
	// row 0 is the bottom of the grid
	for row := r.Rows - 1; row >= 0; row-- {
		for col := 0; col < r.Columns; col++ {
			c := inventory.Cell{Column: col, Row: row}
			text, style := cellText(c, bg, stacks)
			if r.HasHit && c == r.Hit {
				style = hoverStyle.Inherit(style)
			}
			b.WriteString(paint(style, text))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellText(c inventory.Cell, bg map[inventory.Cell]int, stacks map[inventory.Cell]item.ItemStack) (string, lipgloss.Style) {
	if s, ok := stacks[c]; ok {
		label := strconv.Itoa(int(s.Type))
		if s.HasCount() {
			label += "x" + strconv.Itoa(s.Amount)
		}
		return fmt.Sprintf("[%-6s]", clip(label, 6)), stackStyle
	}
	if t, ok := bg[c]; ok && t >= 0 {
		return fmt.Sprintf("[ bg %d ]", t%10), backgroundStyle
	}
	return "[      ]", emptyStyle
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
