package font

import (
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Rasterize renders the printable ASCII range of face into 5x8 cells and returns the
// resulting Table. Glyphs are drawn with their baseline on the lowest row the face's ascent
// allows; anything outside of the cell is cut off. A cell pixel is set when its coverage is
// at least 50%.
func Rasterize(face xfont.Face) *Table {
	var (
		t        = new(Table)
		cell     = image.NewAlpha(image.Rect(0, 0, Width, Height))
		baseline = face.Metrics().Ascent.Ceil()
	)
	if baseline > Height-1 {
		baseline = Height - 1
	}
	d := &xfont.Drawer{
		Dst:  cell,
		Src:  image.Opaque,
		Face: face,
	}
	for i := range t {
		for j := range cell.Pix {
			cell.Pix[j] = 0
		}
		d.Dot = fixed.P(0, baseline)
		d.DrawString(string(rune(First + i)))

		var g Glyph
		for col := 0; col < Width; col++ {
			for row := 0; row < Height; row++ {
				if cell.AlphaAt(col, row).A >= 0x80 {
					g[col] |= 1 << uint(row)
				}
			}
		}
		t[i] = g
	}
	return t
}
