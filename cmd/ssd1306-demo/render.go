package main

import (
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"

	"github.com/BeatGlow/ssd1306/draw"
	"github.com/BeatGlow/ssd1306/font"
	"github.com/BeatGlow/ssd1306/pixel"
)

// testPattern is the bitmap shown when no image is given.
func testPattern(w, h int) *pixel.Bitmap {
	b := pixel.NewBitmap(w, h)
	draw.RoundedRectangle(b, b.Bounds(), 6, pixel.On)
	draw.Line(b, image.Pt(0, 0), image.Pt(w-1, h-1), pixel.On)
	draw.Line(b, image.Pt(0, h-1), image.Pt(w-1, 0), pixel.On)
	draw.Box(b, image.Rect(w/2-8, h/2-8, w/2+8, h/2+8), pixel.On)
	return b
}

// loadImage decodes an image file and dithers it to the panel size.
func loadImage(path string, w, h int) (*pixel.Bitmap, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return pixel.Dither(img, w, h), nil
}

// banner renders wrapped text centered on the panel.
func banner(text string, w, h int, size float64) (*pixel.Bitmap, error) {
	face, err := bannerFace(size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	ctx := gg.NewContextForImage(imaging.New(w, h, color.Black))
	ctx.SetFontFace(face)
	ctx.SetRGB(1, 1, 1)
	ctx.DrawStringWrapped(text, float64(w)/2, float64(h)/2, 0.5, 0.5, float64(w-4), 1.0, gg.AlignCenter)
	return pixel.Dither(ctx.Image(), w, h), nil
}

func bannerFace(size float64) (xfont.Face, error) {
	f, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
}

// title renders s in a scalable font, for text that is larger than the glyph table.
func title(s string, w, h int, size float64) (*pixel.Bitmap, error) {
	tt, err := font.ParseTrueType(gomono.TTF, size)
	if err != nil {
		return nil, err
	}
	b := pixel.NewBitmap(w, h)
	if _, err = tt.DrawString(b, 2, (h-tt.Height())/2, s); err != nil {
		return nil, err
	}
	return b, nil
}

// glyphs returns the glyph table from path, or one rasterized from Go Mono.
func glyphs(path string) (font.Face, error) {
	if path != "" {
		return loadFont(path)
	}
	tt, err := font.ParseTrueType(gomono.TTF, 8)
	if err != nil {
		return nil, err
	}
	face := tt.Face()
	defer face.Close()
	return font.Rasterize(face), nil
}

func loadFont(path string) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return font.Load(f)
}

// wrap splits s into lines of at most cols bytes.
func wrap(s string, cols int) []string {
	var lines []string
	for len(s) > cols {
		lines = append(lines, s[:cols])
		s = s[cols:]
	}
	if len(s) > 0 {
		lines = append(lines, s)
	}
	return lines
}
