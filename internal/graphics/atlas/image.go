package atlas

import (
	"image"
	"image/draw"
)

// FlipVertical returns an RGBA copy of img with its rows reversed, so that
// row 0 of the source ends up at v = 1 once uploaded.
func FlipVertical(img image.Image) *image.RGBA {
	b := img.Bounds()
	src := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)

	out := image.NewRGBA(src.Rect)
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+rowLen]
		d := (b.Dy() - 1 - y) * out.Stride
		copy(out.Pix[d:d+rowLen], s)
	}
	return out
}
