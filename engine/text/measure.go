// Package text measures and rasterizes UI labels with golang.org/x/image faces.
package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/thicket/engine/colors"
)

// Face measures and draws labels with a single font.Face. Its nominal size
// is SizePx; Measure scales linearly for other sizes.
type Face struct {
	face   font.Face
	SizePx float32
	close  func() error
}

// Basic returns the built-in 7x13 bitmap face. It needs no font files.
func Basic() *Face {
	return &Face{face: basicfont.Face7x13, SizePx: 13}
}

// GoRegular returns the Go Regular TTF face at sizePx.
func GoRegular(sizePx float32) (*Face, error) {
	return parse(goregular.TTF, sizePx)
}

// LoadTTF parses a TrueType/OpenType file at sizePx.
func LoadTTF(path string, sizePx float32) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return parse(data, sizePx)
}

func parse(data []byte, sizePx float32) (*Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return &Face{face: face, SizePx: sizePx, close: face.Close}, nil
}

func (f *Face) Close() error {
	if f == nil || f.close == nil {
		return nil
	}
	err := f.close()
	f.close = nil
	return err
}

// LineHeight is the baseline-to-baseline distance at the nominal size.
func (f *Face) LineHeight() float32 {
	return float32(f.face.Metrics().Height.Ceil())
}

// Measure returns the width of the widest line and the total height of s
// at size pixels. A zero size means the nominal size.
func (f *Face) Measure(s string, size float32) (w, h float32) {
	if s == "" {
		return 0, 0
	}
	var widest fixed.Int26_6
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if adv := font.MeasureString(f.face, line); adv > widest {
			widest = adv
		}
	}
	scale := float32(1)
	if size > 0 && f.SizePx > 0 {
		scale = size / f.SizePx
	}
	w = float32(widest.Ceil()) * scale
	h = f.LineHeight() * float32(len(lines)) * scale
	return w, h
}

// Rasterize draws s in c onto a transparent image sized by Measure at the
// nominal size. Used by renderers that upload labels as textures.
func (f *Face) Rasterize(s string, c colors.Color) *image.RGBA {
	w, h := f.Measure(s, 0)
	dst := image.NewRGBA(image.Rect(0, 0, max(int(w), 1), max(int(h), 1)))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(toRGBA(c)),
		Face: f.face,
	}
	ascent := f.face.Metrics().Ascent.Ceil()
	lineH := int(f.LineHeight())
	for i, line := range strings.Split(s, "\n") {
		d.Dot = fixed.P(0, ascent+i*lineH)
		d.DrawString(line)
	}
	return dst
}

func toRGBA(c colors.Color) color.NRGBA {
	to8 := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}
