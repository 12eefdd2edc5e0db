package inventory

import (
	"sort"

	"mini-hud/internal/item"
)

// Cell is the (column, row) address of one inventory slot, origin at the
// bottom-left of the grid.
type Cell struct {
	Column int
	Row    int
}

// Grid is the sparse state behind the inventory HUD: a background tile per
// cell, an item stack per cell and at most one stack held by the cursor.
//
// Mutators accept any cell, including cells outside Columns x Rows. Bounds are
// advisory and only consulted through Active; interaction code is expected to
// check them first. Grid is not safe for concurrent use and must only be
// touched from the render thread.
type Grid struct {
	columns int
	rows    int

	backgrounds map[Cell]int
	stacks      map[Cell]item.ItemStack
	held        *item.ItemStack
}

// NewGrid creates an empty grid with the given dimensions
func NewGrid(columns, rows int) *Grid {
	return &Grid{
		columns:     columns,
		rows:        rows,
		backgrounds: make(map[Cell]int),
		stacks:      make(map[Cell]item.ItemStack),
	}
}

func (g *Grid) Columns() int { return g.columns }
func (g *Grid) Rows() int    { return g.rows }

// Active reports whether c lies inside the configured grid
func (g *Grid) Active(c Cell) bool {
	return c.Column >= 0 && c.Column < g.columns && c.Row >= 0 && c.Row < g.rows
}

// SetBackground stores tile for c. A negative tile is kept but never drawn.
func (g *Grid) SetBackground(c Cell, tile int) {
	g.backgrounds[c] = tile
}

// ClearBackground removes the background entry of c
func (g *Grid) ClearBackground(c Cell) {
	delete(g.backgrounds, c)
}

// SetStack places s in c, replacing whatever was there
func (g *Grid) SetStack(c Cell, s item.ItemStack) {
	g.stacks[c] = s
}

// ClearStack empties c
func (g *Grid) ClearStack(c Cell) {
	delete(g.stacks, c)
}

// Stack returns the stack in c, if any
func (g *Grid) Stack(c Cell) (item.ItemStack, bool) {
	s, ok := g.stacks[c]
	return s, ok
}

// Backgrounds returns a snapshot of all background entries
func (g *Grid) Backgrounds() map[Cell]int {
	out := make(map[Cell]int, len(g.backgrounds))
	for c, t := range g.backgrounds {
		out[c] = t
	}
	return out
}

// Stacks returns a snapshot of all cell stacks
func (g *Grid) Stacks() map[Cell]item.ItemStack {
	out := make(map[Cell]item.ItemStack, len(g.stacks))
	for c, s := range g.stacks {
		out[c] = s
	}
	return out
}

// Held returns the stack attached to the cursor
func (g *Grid) Held() (item.ItemStack, bool) {
	if g.held == nil {
		return item.ItemStack{}, false
	}
	return *g.held, true
}

// SetHeld attaches s to the cursor
func (g *Grid) SetHeld(s item.ItemStack) {
	g.held = &s
}

// ClearHeld detaches the cursor stack
func (g *Grid) ClearHeld() {
	g.held = nil
}

// SortedCells returns the keys of m ordered by row, then column
func SortedCells[V any](m map[Cell]V) []Cell {
	cells := make([]Cell, 0, len(m))
	for c := range m {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Column < cells[j].Column
	})
	return cells
}
