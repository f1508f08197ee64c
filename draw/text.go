package draw

import (
	"image"
	"image/color"

	"github.com/BeatGlow/ssd1306/font"
)

// Character draws the glyph for ch with its top left corner at (x, y).
//
// Drawing is additive: set glyph bits light their pixel, unset bits leave the destination
// untouched. Characters outside of the printable ASCII range, or missing from face, are skipped.
// Glyph pixels outside of dst are dropped.
func Character(dst Image, face font.Face, x, y int, ch byte, c color.Color) {
	if face == nil || !font.Printable(ch) {
		return
	}
	g, ok := face.Glyph(ch)
	if !ok {
		return
	}
	for col := 0; col < font.Width; col++ {
		if g[col] == 0 {
			continue
		}
		for row := 0; row < font.Height; row++ {
			if g.Bit(col, row) {
				dst.Set(x+col, y+row, c)
			}
		}
	}
}

// String draws the bytes of s left to right, starting at (x, y) and advancing 6 pixels per byte.
//
// Text is clipped per character: a character whose 5x8 cell is not entirely inside dst is not
// drawn at all, but still takes up its advance. There is no wrapping. String returns the x
// coordinate following the last character.
func String(dst Image, face font.Face, x, y int, s string, c color.Color) int {
	bounds := dst.Bounds()
	for i := 0; i < len(s); i++ {
		if cell := image.Rect(x, y, x+font.Width, y+font.Height); cell.In(bounds) {
			Character(dst, face, x, y, s[i], c)
		}
		x += font.Advance
	}
	return x
}
