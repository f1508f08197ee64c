// Package draw implements the rasterization primitives used on monochrome frame buffers.
//
// Every primitive writes pixels through the destination's Set method, so the bounds policy of
// the destination image applies to each pixel: for the types in package pixel, writes outside of
// the image are silently dropped.
package draw

import (
	"image"

	"golang.org/x/image/draw"
)

// Drawer is an alias for [golang.org/x/image/draw.Drawer].
type Drawer = draw.Drawer

// Image is an alias for [golang.org/x/image/draw.Image].
type Image = draw.Image

// Op is an alias for [golang.org/x/image/draw.Op].
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over = draw.Over

	// Src specifies ``src in mask''.
	Src = draw.Src
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// Scale scales all of src into the rectangle r of dst. Nearest neighbour sampling is used, it
// keeps edges hard on 1-bit displays.
func Scale(dst Image, r image.Rectangle, src image.Image, op Op) {
	draw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), op, nil)
}
