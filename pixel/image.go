package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by the image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent rows (or pages).
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func (p *Buffer) fill(on bool) {
	var value byte
	if on {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// PageHeight is the number of pixel rows stored in one FrameBuffer page byte.
const PageHeight = 8

// FrameBuffer is the 1-bit per pixel bit-plane of an SSD1306 style controller.
//
// Pixels are organized in pages of 8 rows. Every page holds one byte per column, bit b of a
// page byte is the pixel at row page*8 + b.
type FrameBuffer struct {
	Buffer
}

// NewFrameBuffer allocates a cleared frame buffer of w by h pixels.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	pages := (h + PageHeight - 1) / PageHeight
	return &FrameBuffer{
		Buffer: makeBuffer(w, h, w, pages*w),
	}
}

// Pages is the number of 8-row pages.
func (p *FrameBuffer) Pages() int {
	if p.Stride == 0 {
		return 0
	}
	return len(p.Pix) / p.Stride
}

func (p *FrameBuffer) ColorModel() color.Model {
	return MonoModel
}

// PixOffset returns the byte index and the bit mask of the pixel at (x, y). The caller must
// ensure (x, y) is within bounds.
func (p *FrameBuffer) PixOffset(x, y int) (int, byte) {
	return (y/PageHeight)*p.Stride + x, byte(1) << uint(y%PageHeight)
}

func (p *FrameBuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Mono{On: p.Bit(x, y)}
}

// Bit reports if the pixel at (x, y) is lit. Pixels out of bounds are never lit.
func (p *FrameBuffer) Bit(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return false
	}
	pos, bit := p.PixOffset(x, y)
	return p.Pix[pos]&bit != 0
}

func (p *FrameBuffer) Set(x, y int, c color.Color) {
	p.SetBit(x, y, monoModel(c).(Mono).On)
}

// SetBit lights (on) or clears the pixel at (x, y). It is a no-op if (x, y) falls outside
// the frame buffer.
func (p *FrameBuffer) SetBit(x, y int, on bool) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	pos, bit := p.PixOffset(x, y)
	if on {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *FrameBuffer) Fill(c color.Color) {
	p.fill(monoModel(c).(Mono).On)
}

// Bitmap is a 1-bit per pixel monochrome image with each row packed MSB first into
// ceil(width/8) bytes.
//
// A Bitmap may wrap a caller supplied slice that is shorter than its geometry requires;
// pixels without backing bytes read as Off and ignore writes.
type Bitmap struct {
	Buffer
}

// BitmapStride is the number of bytes one packed row of w pixels occupies.
func BitmapStride(w int) int {
	if w <= 0 {
		return 0
	}
	return w/8 + (w%8+7)/8
}

// NewBitmap allocates a cleared w by h bitmap.
func NewBitmap(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := BitmapStride(w)
	return &Bitmap{
		Buffer: makeBuffer(w, h, stride, stride*h),
	}
}

// WrapBitmap returns a w by h Bitmap view on pix without copying it.
func WrapBitmap(pix []byte, w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    pix,
			Stride: BitmapStride(w),
		},
	}
}

func (p *Bitmap) ColorModel() color.Model {
	return MonoModel
}

func (p *Bitmap) pixOffset(x, y int) (int, byte, bool) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) || p.Stride <= 0 {
		return 0, 0, false
	}
	// row y starts at y*Stride; rows past the backing slice are never multiplied out
	if y > len(p.Pix)/p.Stride {
		return 0, 0, false
	}
	pos := y*p.Stride + x/8
	if pos >= len(p.Pix) {
		return 0, 0, false
	}
	return pos, byte(0x80) >> uint(x%8), true
}

func (p *Bitmap) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Mono{On: p.Bit(x, y)}
}

// Bit reports if the source pixel at (x, y) is set.
func (p *Bitmap) Bit(x, y int) bool {
	pos, bit, ok := p.pixOffset(x, y)
	return ok && p.Pix[pos]&bit != 0
}

func (p *Bitmap) Set(x, y int, c color.Color) {
	p.SetBit(x, y, monoModel(c).(Mono).On)
}

func (p *Bitmap) SetBit(x, y int, on bool) {
	pos, bit, ok := p.pixOffset(x, y)
	if !ok {
		return
	}
	if on {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *Bitmap) Fill(c color.Color) {
	p.fill(monoModel(c).(Mono).On)
}

// Interface checks.
var (
	_ Image = (*FrameBuffer)(nil)
	_ Image = (*Bitmap)(nil)
)
