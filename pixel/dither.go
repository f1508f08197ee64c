package pixel

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/makeworld-the-better-one/dither"
)

// Dither fits src into a w by h black canvas, keeping its aspect ratio, and reduces it to a
// packed Bitmap using Floyd-Steinberg error diffusion.
func Dither(src image.Image, w, h int) *Bitmap {
	out := NewBitmap(w, h)
	if src == nil || w <= 0 || h <= 0 {
		return out
	}

	fit := imaging.Fit(src, w, h, imaging.Lanczos)
	var img image.Image = imaging.PasteCenter(imaging.New(w, h, color.Black), fit)

	d := dither.NewDitherer([]color.Color{color.Black, color.White})
	d.Matrix = dither.FloydSteinberg
	d.Serpentine = true
	if tmp := d.DitherPaletted(img); tmp != nil {
		img = tmp
	}

	b := img.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}
