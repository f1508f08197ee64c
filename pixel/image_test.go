package pixel

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func TestMono(t *testing.T) {
	for _, test := range []struct {
		c    Mono
		want uint32
	}{
		{Off, 0x0000},
		{On, 0xffff},
	} {
		t.Run(test.c.String(), func(it *testing.T) {
			r, g, b, a := test.c.RGBA()
			if r != test.want {
				it.Errorf("expected red to be %#04x, got %#04x", test.want, r)
			}
			if g != test.want {
				it.Errorf("expected green to be %#04x, got %#04x", test.want, g)
			}
			if b != test.want {
				it.Errorf("expected blue to be %#04x, got %#04x", test.want, b)
			}
			if a != 0xffff {
				it.Errorf("expected alpha to be 0xffff, got %#04x", a)
			}
		})
	}
}

func TestMonoModel(t *testing.T) {
	tests := []struct {
		c    color.Color
		want Mono
	}{
		{color.White, On},
		{color.Black, Off},
		{color.Transparent, Off},
		{color.Gray{Y: 0x7f}, Off},
		{color.Gray{Y: 0x80}, On},
		{On, On},
	}
	for _, test := range tests {
		if v := MonoModel.Convert(test.c); v != test.want {
			t.Errorf("expected %v to convert to %v, got %v", test.c, test.want, v)
		}
	}
}

func TestFrameBuffer(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewFrameBuffer(size.X, size.Y)
	})
}

func TestBitmap(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewBitmap(size.X, size.Y)
	})
}

func TestFrameBufferLayout(t *testing.T) {
	p := NewFrameBuffer(128, 64)
	if len(p.Pix) != 1024 {
		t.Fatalf("expected 1024 bytes, got %d", len(p.Pix))
	}
	if v := p.Pages(); v != 8 {
		t.Errorf("expected 8 pages, got %d", v)
	}

	p.SetBit(5, 10, true)
	if v := p.Pix[1*128+5]; v != 1<<2 {
		t.Errorf("expected byte 133 to be %#02x, got %#02x", 1<<2, v)
	}
	p.SetBit(127, 63, true)
	if v := p.Pix[1023]; v != 0x80 {
		t.Errorf("expected byte 1023 to be 0x80, got %#02x", v)
	}
	p.SetBit(5, 10, false)
	if v := p.Pix[133]; v != 0 {
		t.Errorf("expected byte 133 to be cleared, got %#02x", v)
	}
}

func TestFrameBufferNoCrossTalk(t *testing.T) {
	p := NewFrameBuffer(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if (x+y)%3 == 0 {
				p.SetBit(x, y, true)
			}
		}
	}
	before := append([]byte(nil), p.Pix...)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			was := p.Bit(x, y)
			p.SetBit(x, y, true)
			p.SetBit(x, y, false)
			if p.Bit(x, y) {
				t.Fatalf("pixel (%d,%d) still lit after clearing", x, y)
			}
			p.SetBit(x, y, was)
		}
	}
	if !bytes.Equal(before, p.Pix) {
		t.Errorf("toggling pixels changed other pixels")
	}
}

func TestFrameBufferOutOfBounds(t *testing.T) {
	p := NewFrameBuffer(128, 64)
	p.Fill(On)
	p.Pix[17] = 0x5a
	want := append([]byte(nil), p.Pix...)
	for _, pt := range []image.Point{{-1, 0}, {0, -1}, {128, 0}, {0, 64}, {-500, 900}, {128, 63}} {
		p.SetBit(pt.X, pt.Y, false)
		p.SetBit(pt.X, pt.Y, true)
	}
	if !bytes.Equal(want, p.Pix) {
		t.Errorf("out of bounds writes modified the buffer")
	}
}

func TestBitmapLayout(t *testing.T) {
	p := WrapBitmap([]byte{0x80, 0x01, 0x40, 0x00}, 9, 2)
	if v := p.Stride; v != 2 {
		t.Fatalf("expected stride 2, got %d", v)
	}
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{1, 0, false},
		{7, 0, false},
		{15, 0, false}, // padding, out of bounds
		{1, 1, true},
		{8, 1, false},
	}
	for _, test := range tests {
		if v := p.Bit(test.x, test.y); v != test.want {
			t.Errorf("pixel (%d,%d): expected %t, got %t", test.x, test.y, test.want, v)
		}
	}
	if v := p.Bit(7, 0); v {
		t.Errorf("expected bit 0x01 of byte 1 to be pixel (15,0), got it at (7,0)")
	}
}

func TestWrapBitmapShort(t *testing.T) {
	p := WrapBitmap([]byte{0xff}, 16, 4)
	if !p.Bit(7, 0) {
		t.Errorf("expected (7,0) to be lit")
	}
	if p.Bit(8, 0) || p.Bit(0, 3) {
		t.Errorf("expected pixels without backing bytes to be off")
	}
	p.SetBit(0, 3, true)
	if len(p.Pix) != 1 {
		t.Errorf("expected wrapped slice to keep length 1, got %d", len(p.Pix))
	}

	for _, size := range []image.Point{{1 << 62, 64}, {math.MaxInt, math.MaxInt}, {64, math.MaxInt}} {
		p = WrapBitmap(bytes.Repeat([]byte{0xff}, 16), size.X, size.Y)
		if !p.Bit(0, 0) {
			t.Errorf("%dx%d: expected (0,0) to be lit", size.X, size.Y)
		}
		for _, pt := range []image.Point{{0, 63}, {1 << 40, 2}, {size.X - 1, size.Y - 1}, {7, size.Y - 1}} {
			if p.Bit(pt.X, pt.Y) {
				t.Errorf("%dx%d: expected pixel %s without backing bytes to be off", size.X, size.Y, pt)
			}
			p.SetBit(pt.X, pt.Y, true)
		}
	}
	if v := BitmapStride(math.MaxInt); v != math.MaxInt/8+1 {
		t.Errorf("expected stride %d, got %d", math.MaxInt/8+1, v)
	}
}

func TestDither(t *testing.T) {
	white := image.NewGray(image.Rect(0, 0, 16, 8))
	for i := range white.Pix {
		white.Pix[i] = 0xff
	}
	b := Dither(white, 16, 8)
	for _, v := range b.Pix {
		if v != 0xff {
			t.Fatalf("expected white image to dither to all on, got %#02x", v)
		}
	}

	black := image.NewGray(image.Rect(0, 0, 16, 8))
	b = Dither(black, 16, 8)
	for _, v := range b.Pix {
		if v != 0x00 {
			t.Fatalf("expected black image to dither to all off, got %#02x", v)
		}
	}

	if b = Dither(nil, 8, 8); len(b.Pix) != 8 {
		t.Errorf("expected empty 8x8 bitmap for nil source, got %d bytes", len(b.Pix))
	}
}

func testImage(t *testing.T, f func(image.Point) Image) {
	t.Helper()
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(9, 13),
		image.Pt(128, 32),
		image.Pt(128, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != MonoModel {
				it.Errorf("expected color model %T, got %T", MonoModel, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				i.Fill(On)
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if v := i.At(x, y); v != On {
							itt.Fatalf("pixel (%d,%d) is %v after fill, expected on", x, y, v)
						}
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if v := i.At(x, y); v != Off {
							itt.Fatalf("pixel (%d,%d) is %v after clear, expected off", x, y, v)
						}
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
