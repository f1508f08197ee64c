package draw

import (
	"image"
	"image/color"
	"math"
)

// MaxSpan is the largest horizontal or vertical extent of a line that Line draws.
const MaxSpan = math.MaxInt32

// Line draws a line between two points, both included.
//
// The pixels are those of an integer error accumulator stepping from one point to the other and
// are 8-connected. The points are visited in a canonical order, so Line(a, b) and Line(b, a)
// light the same pixels. Only the part of the line inside dst is visited. Lines extending more
// than MaxSpan pixels in either direction are not drawn.
func Line(dst Image, a, b image.Point, c color.Color) {
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		a, b = b, a
	}

	var (
		r          = dst.Bounds()
		minY, maxY = a.Y, b.Y
	)
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	if b.X < r.Min.X || a.X >= r.Max.X || maxY < r.Min.Y || minY >= r.Max.Y {
		return
	}

	// unsigned differences are exact even where the signed ones overflow
	udx, udy := uint64(b.X)-uint64(a.X), uint64(maxY)-uint64(minY)
	if udx > MaxSpan || udy > MaxSpan {
		return
	}
	var (
		dx = int64(udx)
		dy = int64(udy)
		sy = 1
	)
	if a.Y > b.Y {
		sy = -1
	}

	if dx >= dy {
		// one pixel per column, row offset j = round-half-down(i*dy/dx)
		lo, hi := max(0, r.Min.X-a.X), min(int(dx), r.Max.X-1-a.X)
		for i := lo; i <= hi; i++ {
			var j int64
			if dx > 0 {
				j = (2*int64(i)*dy + dx - 1) / (2 * dx)
			}
			dst.Set(a.X+i, a.Y+sy*int(j), c)
		}
		return
	}

	// one pixel per row, j counts rows from a towards b
	var lo, hi int
	if sy > 0 {
		lo, hi = r.Min.Y-a.Y, r.Max.Y-1-a.Y
	} else {
		lo, hi = a.Y-(r.Max.Y-1), a.Y-r.Min.Y
	}
	lo, hi = max(0, lo), min(int(dy), hi)
	for j := lo; j <= hi; j++ {
		i := (2*int64(j)*dx + dy - 1) / (2 * dy)
		dst.Set(a.X+int(i), a.Y+sy*j, c)
	}
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	if w <= 0 {
		return
	}
	Line(dst, image.Pt(x, y), image.Pt(x+w-1, y), c)
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	if h <= 0 {
		return
	}
	Line(dst, image.Pt(x, y), image.Pt(x, y+h-1), c)
}

// Rectangle draws the outline of rect.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// RoundedRectangle draws a rectangle with radius pixels rounded corners.
func RoundedRectangle(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	var (
		r = radius
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if limit := min(w, h) / 2; r > limit {
		r = limit
	}
	if r <= 0 {
		Rectangle(dst, rect, c)
		return
	}
	HorizontalLine(dst, x+r, y, w-2*r, c)
	HorizontalLine(dst, x+r, y+h-1, w-2*r, c)
	VerticalLine(dst, x, y+r, h-2*r, c)
	VerticalLine(dst, x+w-1, y+r, h-2*r, c)
	roundedCorner(dst, x+0+r+0, y+0+r+0, r, 1, c)
	roundedCorner(dst, x+w-r-1, y+0+r+0, r, 2, c)
	roundedCorner(dst, x+w-r-1, y+h-r-1, r, 4, c)
	roundedCorner(dst, x+0+r+0, y+h-r-1, r, 8, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

func roundedCorner(dst Image, x0, y0, radius, quadrant int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	plot := func(x, y int) {
		if quadrant&4 != 0 {
			dst.Set(x0+x, y0+y, c)
			dst.Set(x0+y, y0+x, c)
		}
		if quadrant&2 != 0 {
			dst.Set(x0+x, y0-y, c)
			dst.Set(x0+y, y0-x, c)
		}
		if quadrant&8 != 0 {
			dst.Set(x0-y, y0+x, c)
			dst.Set(x0-x, y0+y, c)
		}
		if quadrant&1 != 0 {
			dst.Set(x0-y, y0-x, c)
			dst.Set(x0-x, y0-y, c)
		}
	}
	plot(x, y)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		plot(x, y)
	}
}
