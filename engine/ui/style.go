package ui

import "github.com/hubastard/thicket/engine/colors"

// TextMeasurer measures a label at a font size, in pixels.
type TextMeasurer interface {
	Measure(text string, size float32) (w, h float32)
}

// Style is the theme lookup every widget consumes. Colors are chosen from
// interaction state; scalars are fixed per theme.
type Style interface {
	Background(focused bool) Color
	WindowBorder(focused bool) Color
	Title(focused bool) Color
	Text(focused bool) Color
	ButtonBackground(focused, hovered, pressed bool) Color
	TabbarBackground(focused, selected, hovered, pressed bool) Color
	Scrollbar(focused bool) Color

	Margin() float32
	MarginButton() float32
	TitleHeight() float32
	FontSize() float32
}

// Color is re-exported so widget code can stay within this package's vocabulary.
type Color = colors.Color
