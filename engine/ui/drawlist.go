package ui

import "github.com/hubastard/thicket/engine/colors"

type CommandKind uint8

const (
	CmdRect CommandKind = iota
	CmdLabel
	CmdLine
	CmdTexture
	CmdClip
)

func (k CommandKind) String() string {
	switch k {
	case CmdRect:
		return "rect"
	case CmdLabel:
		return "label"
	case CmdLine:
		return "line"
	case CmdTexture:
		return "texture"
	case CmdClip:
		return "clip"
	}
	return "unknown"
}

type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// Command is one opaque drawing instruction. Which fields are meaningful
// depends on Kind:
//
//	CmdRect:    Rect, Border (alpha 0 = none), Color (fill)
//	CmdLabel:   Text, Pos (top-left, alignment already applied), Color, FontSize
//	CmdLine:    Pos, To, Color
//	CmdTexture: Rect, Texture
//	CmdClip:    Rect, Clipped (false = clipping off)
type Command struct {
	Kind     CommandKind
	Rect     Rect
	Pos, To  Vec2
	Color    colors.Color
	Border   colors.Color
	Text     string
	FontSize float32
	Texture  uint32
	Clipped  bool
}

// DrawList is the ordered command buffer of one window.
type DrawList struct {
	cmds     []Command
	measurer TextMeasurer
	fontSize float32
}

func (d *DrawList) reset(m TextMeasurer, fontSize float32) {
	d.cmds = d.cmds[:0]
	d.measurer = m
	d.fontSize = fontSize
}

// Commands returns the recorded commands in submission order.
func (d *DrawList) Commands() []Command { return d.cmds }

func (d *DrawList) Len() int { return len(d.cmds) }

// LabelSize measures text with the list's font.
func (d *DrawList) LabelSize(text string) Vec2 {
	if d.measurer == nil {
		return Vec2{}
	}
	w, h := d.measurer.Measure(text, d.fontSize)
	return Vec2{w, h}
}

func (d *DrawList) DrawRect(r Rect, border, fill colors.Color) {
	d.cmds = append(d.cmds, Command{Kind: CmdRect, Rect: r, Border: border, Color: fill})
}

func (d *DrawList) DrawLabel(text string, pos Vec2, color colors.Color) {
	d.DrawLabelAligned(text, pos, color, AlignLeft)
}

// DrawLabelAligned draws text; with AlignCenter pos names the horizontal center.
func (d *DrawList) DrawLabelAligned(text string, pos Vec2, color colors.Color, align Align) {
	if align == AlignCenter {
		pos.X -= d.LabelSize(text).X / 2
	}
	d.cmds = append(d.cmds, Command{Kind: CmdLabel, Text: text, Pos: pos, Color: color, FontSize: d.fontSize})
}

func (d *DrawList) DrawLine(p0, p1 Vec2, color colors.Color) {
	d.cmds = append(d.cmds, Command{Kind: CmdLine, Pos: p0, To: p1, Color: color})
}

func (d *DrawList) DrawRawTexture(r Rect, texture uint32) {
	d.cmds = append(d.cmds, Command{Kind: CmdTexture, Rect: r, Texture: texture})
}

// Clip restricts following commands to r.
func (d *DrawList) Clip(r Rect) {
	d.cmds = append(d.cmds, Command{Kind: CmdClip, Rect: r, Clipped: true})
}

// Unclip turns clipping off for following commands.
func (d *DrawList) Unclip() {
	d.cmds = append(d.cmds, Command{Kind: CmdClip})
}
