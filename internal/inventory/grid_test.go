package inventory

import (
	"testing"

	"mini-hud/internal/config"
	"mini-hud/internal/item"
)

func TestActive(t *testing.T) {
	g := NewGrid(17, 14)
	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{16, 13}, true},
		{Cell{17, 0}, false},
		{Cell{0, 14}, false},
		{Cell{-1, 3}, false},
		{Cell{3, -1}, false},
	}
	for _, tt := range tests {
		if got := g.Active(tt.cell); got != tt.want {
			t.Errorf("Active(%v) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestMutatorsIgnoreBounds(t *testing.T) {
	g := NewGrid(2, 2)
	out := Cell{10, 10}
	g.SetBackground(out, 1)
	g.SetStack(out, item.NewItemStack(1, 1))
	if _, ok := g.Backgrounds()[out]; !ok {
		t.Errorf("out-of-bounds background should be stored")
	}
	if _, ok := g.Stack(out); !ok {
		t.Errorf("out-of-bounds stack should be stored")
	}
}

func TestNegativeTileIsStored(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetBackground(Cell{1, 1}, -1)
	tile, ok := g.Backgrounds()[Cell{1, 1}]
	if !ok || tile != -1 {
		t.Fatalf("got (%d, %v), want (-1, true)", tile, ok)
	}
	g.ClearBackground(Cell{1, 1})
	if _, ok := g.Backgrounds()[Cell{1, 1}]; ok {
		t.Errorf("cleared background still present")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetBackground(Cell{0, 0}, 2)
	g.SetStack(Cell{0, 0}, item.NewItemStack(5, 3))

	bg := g.Backgrounds()
	st := g.Stacks()
	bg[Cell{1, 1}] = 0
	delete(st, Cell{0, 0})

	if len(g.Backgrounds()) != 1 {
		t.Errorf("mutating background snapshot changed the grid")
	}
	if len(g.Stacks()) != 1 {
		t.Errorf("mutating stack snapshot changed the grid")
	}
}

func TestHeld(t *testing.T) {
	g := NewGrid(4, 4)
	if _, ok := g.Held(); ok {
		t.Fatalf("new grid should not hold anything")
	}
	g.SetHeld(item.NewItemStack(9, 1))
	s, ok := g.Held()
	if !ok || s.Type != 9 {
		t.Fatalf("held: got (%+v, %v)", s, ok)
	}
	g.ClearHeld()
	if _, ok := g.Held(); ok {
		t.Errorf("held not cleared")
	}
}

func TestSortedCells(t *testing.T) {
	m := map[Cell]int{{2, 1}: 0, {0, 1}: 0, {5, 0}: 0, {1, 0}: 0}
	got := SortedCells(m)
	want := []Cell{{1, 0}, {5, 0}, {0, 1}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSlotClick(t *testing.T) {
	g := NewGrid(4, 4)
	a, b := Cell{0, 0}, Cell{1, 0}
	g.SetStack(a, item.NewItemStack(1, 10))

	if g.SlotClick(b) {
		t.Errorf("click on empty slot with empty cursor should do nothing")
	}

	// pick up
	if !g.SlotClick(a) {
		t.Fatalf("pick up failed")
	}
	if _, ok := g.Stack(a); ok {
		t.Errorf("slot should be empty after pick up")
	}
	if s, ok := g.Held(); !ok || s.Type != 1 {
		t.Errorf("cursor should hold type 1, got %+v", s)
	}

	// put down
	g.SlotClick(b)
	if s, ok := g.Stack(b); !ok || s.Amount != 10 {
		t.Errorf("slot b should hold the stack, got %+v", s)
	}
	if _, ok := g.Held(); ok {
		t.Errorf("cursor should be empty after put down")
	}

	// swap
	g.SetHeld(item.NewItemStack(2, 1))
	g.SlotClick(b)
	if s, _ := g.Stack(b); s.Type != 2 {
		t.Errorf("slot b should hold type 2 after swap, got %+v", s)
	}
	if s, _ := g.Held(); s.Type != 1 {
		t.Errorf("cursor should hold type 1 after swap, got %+v", s)
	}

	if g.SlotClick(Cell{4, 0}) {
		t.Errorf("click outside the grid should be ignored")
	}
}

func TestLoadLayout(t *testing.T) {
	l := config.Layout{
		Backgrounds: []config.BackgroundEntry{{Column: 0, Row: 0, Tile: 3}},
		Stacks:      []config.StackEntry{{Column: 2, Row: 2, Type: 7, Amount: 42}},
		Held:        &config.HeldEntry{Type: 9},
		Atlas: []config.AtlasEntry{
			{Type: 7, Faces: []int{4}},
			{Type: 9, Faces: []int{1, 2, 3, 4, 5, 6}},
		},
	}
	g := NewGrid(17, 14)
	g.Load(l)

	if g.Backgrounds()[Cell{0, 0}] != 3 {
		t.Errorf("background not loaded")
	}
	if s, ok := g.Stack(Cell{2, 2}); !ok || s.Amount != 42 || s.Type != 7 {
		t.Errorf("stack not loaded: %+v", s)
	}
	if s, ok := g.Held(); !ok || s.Type != 9 {
		t.Errorf("held not loaded: %+v", s)
	}

	atlas := AtlasFromLayout(l)
	if atlas.Faces(7) != item.Uniform(4) {
		t.Errorf("uniform atlas entry: got %v", atlas.Faces(7))
	}
	if atlas.Faces(9) != (item.FaceTiles{1, 2, 3, 4, 5, 6}) {
		t.Errorf("per-face atlas entry: got %v", atlas.Faces(9))
	}
}
