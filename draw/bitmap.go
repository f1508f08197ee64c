package draw

import (
	"image/color"

	"github.com/BeatGlow/ssd1306/pixel"
)

// Bitmap draws src with its top left corner at (x, y).
//
// Like text, bitmaps are additive: set source bits light the destination pixel, unset bits never
// clear it. Source pixels that land outside of dst are dropped.
func Bitmap(dst Image, x, y int, src *pixel.Bitmap, c color.Color) {
	var (
		b  = dst.Bounds()
		sr = src.Bounds()
		w  = uint64(sr.Dx())
		h  = uint64(sr.Dy())
	)
	// offsets into src are taken unsigned, they are exact for any dx >= x
	for dy := max(y, b.Min.Y); dy < b.Max.Y; dy++ {
		oy := uint64(dy) - uint64(y)
		if oy >= h {
			break
		}
		for dx := max(x, b.Min.X); dx < b.Max.X; dx++ {
			ox := uint64(dx) - uint64(x)
			if ox >= w {
				break
			}
			if src.Bit(sr.Min.X+int(ox), sr.Min.Y+int(oy)) {
				dst.Set(dx, dy, c)
			}
		}
	}
}
