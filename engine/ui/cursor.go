package ui

// Layout selects how Cursor.Fit places a widget.
type Layout struct {
	free bool
	pos  Vec2
}

// Vertical flows widgets downward, one per row, honoring indentation.
var Vertical = Layout{}

// Free places a widget at pos relative to the content origin without
// touching the vertical flow.
func Free(pos Vec2) Layout { return Layout{free: true, pos: pos} }

// LayoutFor returns Free(*pos) when pos is set and Vertical otherwise.
func LayoutFor(pos *Vec2) Layout {
	if pos == nil {
		return Vertical
	}
	return Free(*pos)
}

func (l Layout) IsFree() bool { return l.free }

// Cursor is the per-window layout head.
type Cursor struct {
	area   Rect
	scroll Vec2
	margin float32

	y      float32
	ident  float32
	extent Vec2 // furthest point reached, in content coordinates
}

// Reset starts a new pass over area, keeping nothing from the previous frame.
func (c *Cursor) Reset(area Rect, scroll Vec2, margin float32) {
	*c = Cursor{area: area, scroll: scroll, margin: margin, y: margin}
}

// Fit consumes layout space for a widget of the given size and returns its
// top-left corner in screen coordinates. Sizes are never clamped.
func (c *Cursor) Fit(size Vec2, layout Layout) Vec2 {
	var local Vec2
	if layout.free {
		local = layout.pos
	} else {
		local = Vec2{c.margin + c.ident, c.y}
		c.y += size.Y + c.margin
	}
	c.grow(local.Add(size))
	return c.area.Point().Add(local).Sub(c.scroll)
}

func (c *Cursor) grow(p Vec2) {
	c.extent.X = maxf(c.extent.X, p.X)
	c.extent.Y = maxf(c.extent.Y, p.Y)
}

// Indent shifts subsequent vertical placements right by d.
func (c *Cursor) Indent(d float32) { c.ident += d }

// Unindent reverses a matching Indent.
func (c *Cursor) Unindent(d float32) { c.ident -= d }

func (c *Cursor) Ident() float32 { return c.ident }

// Offset is the vertical flow position relative to the content origin.
func (c *Cursor) Offset() float32 { return c.y }

func (c *Cursor) Area() Rect   { return c.area }
func (c *Cursor) Scroll() Vec2 { return c.scroll }

// ContentSize is the extent of everything placed so far, including the
// trailing margin of the vertical flow.
func (c *Cursor) ContentSize() Vec2 {
	return Vec2{c.extent.X + c.margin, maxf(c.extent.Y+c.margin, c.y)}
}
