package ui

const (
	scrollStep     = 20
	scrollbarWidth = 4
)

// WindowContext is what a widget sees of the UI for one call: the input
// snapshot, the style, the active window (cursor and draw list), the
// persistent storage and whether the window has focus.
type WindowContext struct {
	Input   *Input
	Style   Style
	Window  *Window
	Storage *Storage
	Focused bool

	// no other window covers the pointer
	pointer bool
}

func (c WindowContext) Cursor() *Cursor { return &c.Window.cursor }
func (c WindowContext) Draw() *DrawList { return &c.Window.draw }

// Hovered reports whether the pointer is over r and no window above the
// active one covers it. Callers combine it with Focused.
func (c WindowContext) Hovered(r Rect) bool {
	return c.pointer && r.Contains(c.Input.MousePosition())
}

// Close marks the active window as wanting to close; EndWindow reports it.
func (c WindowContext) Close() {
	c.Window.wantClose = true
	uiLogger.Debug("window close requested", "id", c.Window.id)
}

// ScrollArea applies this frame's wheel delta to the window's vertical scroll,
// clamps it to last frame's content height and restarts the cursor at the
// scrolled content origin. A scrollbar is drawn when the content overflows.
func (c WindowContext) ScrollArea() {
	w := c.Window
	content := w.ContentRect()
	if wheel := c.Input.Wheel(); c.Focused && wheel.Y != 0 && c.Hovered(content) {
		w.scroll.Y -= wheel.Y * scrollStep
	}
	limit := w.maxScroll()
	w.scroll.Y = clamp(w.scroll.Y, 0, limit)
	w.cursor.Reset(content, w.scroll, c.Style.Margin())

	if limit <= 0 || content.H <= 0 {
		return
	}
	visible := content.H / w.contentHeight
	bar := Rect{
		X: content.X + content.W - scrollbarWidth,
		Y: content.Y + content.H*(w.scroll.Y/w.contentHeight),
		W: scrollbarWidth,
		H: content.H * visible,
	}
	w.draw.DrawRect(bar, Color{}, c.Style.Scrollbar(c.Focused))
}
