package font

import (
	"image"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
)

// TrueType renders scalable font text onto a monochrome image. Anti-aliased edges are
// thresholded by the destination's color model.
type TrueType struct {
	font *truetype.Font
	size float64
}

// ParseTrueType parses a TrueType font for rendering at size points (72 DPI, so points are pixels).
func ParseTrueType(ttf []byte, size float64) (*TrueType, error) {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, err
	}
	return &TrueType{
		font: f,
		size: size,
	}, nil
}

// Face returns a font face for t, suitable for Rasterize or an x/image font.Drawer.
func (t *TrueType) Face() xfont.Face {
	return truetype.NewFace(t.font, &truetype.Options{
		Size:    t.size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
}

// Height is the line height in pixels.
func (t *TrueType) Height() int {
	face := t.Face()
	defer face.Close()
	return face.Metrics().Height.Ceil()
}

// DrawString draws s with its top left corner at (x, y). Pixels outside of dst are clipped.
// It returns the x coordinate following the last glyph.
func (t *TrueType) DrawString(dst draw.Image, x, y int, s string) (int, error) {
	face := t.Face()
	ascent := face.Metrics().Ascent.Ceil()
	_ = face.Close()

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(t.font)
	ctx.SetFontSize(t.size)
	ctx.SetHinting(xfont.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.White)

	end, err := ctx.DrawString(s, freetype.Pt(x, y+ascent))
	if err != nil {
		return x, err
	}
	return end.X.Round(), nil
}
