package graphics

import (
	"mini-hud/internal/graphics/atlas"
)

// BuildGlyphTexture bakes and uploads the glyph grid for the font at path.
// fallback reports whether the bundled face was used instead.
func BuildGlyphTexture(path string, cellPx int) (tex uint32, fallback bool, err error) {
	data, fallback, err := atlas.LoadFontBytes(path)
	if err != nil {
		return 0, false, err
	}
	img, err := atlas.BakeGlyphGrid(data, cellPx)
	if err != nil {
		return 0, false, err
	}
	tex, _, _ = UploadImage(img)
	return tex, fallback, nil
}
