package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// LoadPNG decodes a PNG file into a tightly packed RGBA image (stride == 4*w,
// top-left origin) ready for texture upload.
func LoadPNG(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", path, err)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts img to a tightly packed RGBA image anchored at (0,0).
// Images that already qualify are returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) && m.Stride == m.Rect.Dx()*4 {
		return m
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Checkerboard builds a w×h RGBA test pattern with cell-sized squares.
func Checkerboard(w, h, cell int, a, b [4]uint8) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := a
			if cell > 0 && (x/cell+y/cell)%2 == 1 {
				c = b
			}
			i := dst.PixOffset(x, y)
			copy(dst.Pix[i:i+4], c[:])
		}
	}
	return dst
}
