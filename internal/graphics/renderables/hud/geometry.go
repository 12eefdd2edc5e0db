package hud

import (
	"strconv"

	"mini-hud/internal/inventory"
	"mini-hud/internal/item"
	"mini-hud/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// background texture holds 4 tiles side by side
const backgroundTile = float32(0.25)

// digit anchor inside a cell
const (
	amountX = 0.75
	amountY = 0.25
)

// BuildBackgrounds emits one unit quad per cell with a tile >= 0. Negative
// tiles are kept in the grid but produce nothing.
func BuildBackgrounds(bg map[inventory.Cell]int, style Style) *meshing.Geometry {
	n := 0
	for _, t := range bg {
		if t >= 0 {
			n++
		}
	}

	g := meshing.NewGeometry(style.BackgroundLayout(), n*meshing.QuadVertices)
	for _, c := range inventory.SortedCells(bg) {
		t := bg[c]
		if t < 0 {
			continue
		}
		x, y := float32(c.Column), float32(c.Row)
		u := float32(t) * backgroundTile
		g.Data = meshing.Quad(g.Data, x, y, x+1, y+1, 0, u, 0, u+backgroundTile, 1, style.BackgroundNormals)
	}
	return g
}

// BuildStacks emits one cube per stack, textured from atlas
func BuildStacks(stacks map[inventory.Cell]item.ItemStack, atlas item.AtlasLayout, style Style) *meshing.Geometry {
	g := meshing.NewGeometry(meshing.LayoutLit, len(stacks)*meshing.CubeVertices)
	if len(stacks) == 0 {
		return g
	}

	rot := style.Rotation()
	for _, c := range inventory.SortedCells(stacks) {
		s := stacks[c]
		center := mgl32.Vec3{float32(c.Column) + 0.5, float32(c.Row) + style.CubeOffsetY, 0}
		g.Data = meshing.Cube(g.Data, atlas.Faces(s.Type), center, style.CubeSize, rot, style.AO, style.Light)
	}
	return g
}

// BuildAmounts emits the decimal count of every stack with a positive amount,
// one glyph per digit, right-anchored in the cell
func BuildAmounts(stacks map[inventory.Cell]item.ItemStack, style Style) *meshing.Geometry {
	digits := 0
	for _, s := range stacks {
		if s.HasCount() {
			digits += len(strconv.Itoa(s.Amount))
		}
	}

	g := meshing.NewGeometry(meshing.LayoutTextured, digits*meshing.QuadVertices)
	for _, c := range inventory.SortedCells(stacks) {
		s := stacks[c]
		if !s.HasCount() {
			continue
		}
		text := strconv.Itoa(s.Amount)
		y := float32(c.Row) + amountY
		for i := 0; i < len(text); i++ {
			remaining := float32(len(text) - i - 1)
			x := float32(c.Column) + amountX - remaining*style.GlyphAdvance
			g.Data = meshing.Character(g.Data, x, y, style.GlyphWidth, style.GlyphHeight, text[i], 0)
		}
	}
	return g
}

// BuildHeld emits the cube of the held stack centred at (x, y) in overlay
// space
func BuildHeld(s item.ItemStack, atlas item.AtlasLayout, x, y, size float32, style Style) *meshing.Geometry {
	g := meshing.NewGeometry(meshing.LayoutLit, meshing.CubeVertices)
	g.Data = meshing.Cube(g.Data, atlas.Faces(s.Type), mgl32.Vec3{x, y, 0}, size, style.Rotation(), style.AO, style.Light)
	return g
}
