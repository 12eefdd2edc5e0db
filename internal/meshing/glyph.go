package meshing

// Font grid: printable ASCII from 32, 16 glyphs per row, 8 rows
const (
	fontColumns = 16
	fontRows    = 8
	firstGlyph  = 32
	glyphU      = float32(1.0) / fontColumns
	glyphV      = float32(1.0) / fontRows
)

// Character appends the 6 LayoutTextured vertices of glyph c centred at
// (x, y) with half-width w and half-height h, at depth z. Bytes outside the
// printable range render as a space.
func Character(dst []float32, x, y, w, h float32, c byte, z float32) []float32 {
	if c < firstGlyph || c > 127 {
		c = ' '
	}
	g := int(c - firstGlyph)
	du := float32(g%fontColumns) * glyphU
	dv := 1 - float32(g/fontColumns)*glyphV - glyphV

	return Quad(dst, x-w, y-h, x+w, y+h, z, du, dv, du+glyphU, dv+glyphV, false)
}

// Quad appends an axis-aligned rectangle (x0,y0)-(x1,y1) at depth z as two
// CCW triangles with uv spanning (u0,v0)-(u1,v1). With normal set the
// vertices follow LayoutLit and carry a +Y normal; otherwise LayoutTextured.
func Quad(dst []float32, x0, y0, x1, y1, z, u0, v0, u1, v1 float32, normal bool) []float32 {
	corners := [4][4]float32{
		{x0, y1, u0, v1}, // top left
		{x0, y0, u0, v0}, // bottom left
		{x1, y0, u1, v0}, // bottom right
		{x1, y1, u1, v1}, // top right
	}
	for _, idx := range quadIndices {
		c := corners[idx]
		dst = append(dst, c[0], c[1], z)
		if normal {
			dst = append(dst, 0, 1, 0)
		}
		dst = append(dst, c[2], c[3], 0, 0)
	}
	return dst
}

// GlyphGrid returns the font grid dimensions expected by Character
func GlyphGrid() (columns, rows, first int) {
	return fontColumns, fontRows, firstGlyph
}
