// Package atlas builds the CPU side of the HUD textures: the baked glyph
// grid and row-flipped RGBA images ready for upload.
package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"mini-hud/internal/meshing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LoadFontBytes reads a TrueType/OpenType font. An empty path or a missing
// file yields the bundled Go Mono face and reports the fallback.
func LoadFontBytes(path string) ([]byte, bool, error) {
	if path == "" {
		return gomono.TTF, true, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return gomono.TTF, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read font: %w", err)
	}
	return data, false, nil
}

// BakeGlyphGrid renders printable ASCII into the fixed cell grid sampled by
// meshing.Character: 16 glyphs per row starting at ' ', top row first, each
// glyph centred in a cellPx square. Glyphs are white with coverage in alpha.
func BakeGlyphGrid(fontBytes []byte, cellPx int) (*image.RGBA, error) {
	if cellPx <= 0 {
		return nil, fmt.Errorf("glyph cell size must be positive, got %d", cellPx)
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	// 3/4 of the cell leaves room for ascenders and descenders
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(cellPx) * 0.75, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	columns, rows, first := meshing.GlyphGrid()
	img := image.NewRGBA(image.Rect(0, 0, columns*cellPx, rows*cellPx))
	white := image.NewUniform(color.White)

	m := face.Metrics()
	baseline := (cellPx + m.Ascent.Ceil() - m.Descent.Ceil()) / 2

	for i := 0; i < columns*rows; i++ {
		r := rune(first + i)
		if r > '~' {
			break
		}
		advance, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}

		cell := image.Rect(0, 0, cellPx, cellPx).Add(image.Pt((i%columns)*cellPx, (i/columns)*cellPx))
		dot := fixed.P(cell.Min.X, cell.Min.Y+baseline)
		dot.X += (fixed.I(cellPx) - advance) / 2

		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if !ok || mask == nil {
			continue
		}
		clip := dr.Intersect(cell)
		if clip.Empty() {
			continue
		}
		draw.DrawMask(img, clip, white, image.Point{}, mask, maskp.Add(clip.Min.Sub(dr.Min)), draw.Over)
	}

	return img, nil
}
