package colors

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a straight RGBA color with components in [0..1].
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{0, 0, 0, 0}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	LightGray   = Color{0.78, 0.78, 0.78, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Yellow      = Color{1, 1, 0, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scale multiplies the RGB channels by f, leaving alpha untouched.
func (c Color) Scale(f float32) Color {
	for i := 0; i < 3; i++ {
		c[i] = clamp01(c[i] * f)
	}
	return c
}

func (c Color) IsZero() bool { return c == Color{} }

// Hex formats the color as #RRGGBBAA.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c[0]), to8(c[1]), to8(c[2]), to8(c[3]))
}

// ParseHex accepts #RGB, #RRGGBB and #RRGGBBAA.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("colors: %q: missing '#'", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("colors: %q: want 3, 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: %q: %w", s, err)
	}
	return Color{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

func to8(f float32) uint8 { return uint8(clamp01(f)*255 + 0.5) }

func clamp01(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
