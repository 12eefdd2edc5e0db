package inventory

import (
	"mini-hud/internal/config"
	"mini-hud/internal/item"
)

// Load populates g from a layout fixture. Existing entries at the same cells
// are overwritten; other entries are kept.
func (g *Grid) Load(l config.Layout) {
	for _, b := range l.Backgrounds {
		g.SetBackground(Cell{b.Column, b.Row}, b.Tile)
	}
	for _, s := range l.Stacks {
		g.SetStack(Cell{s.Column, s.Row}, item.NewItemStack(item.Type(s.Type), s.Amount))
	}
	if l.Held != nil {
		g.SetHeld(item.NewItemStack(item.Type(l.Held.Type), l.Held.Amount))
	}
}

// AtlasFromLayout builds the item atlas layout described by a fixture
func AtlasFromLayout(l config.Layout) item.AtlasLayout {
	atlas := make(item.AtlasLayout, len(l.Atlas))
	for _, e := range l.Atlas {
		switch len(e.Faces) {
		case 1:
			atlas[item.Type(e.Type)] = item.Uniform(e.Faces[0])
		case item.FaceCount:
			var f item.FaceTiles
			copy(f[:], e.Faces)
			atlas[item.Type(e.Type)] = f
		}
	}
	return atlas
}
