package ui

// Window is a persistent, ID-addressed surface. Position, size and scroll
// survive across frames; the cursor and draw list are rebuilt every frame.
type Window struct {
	id          ID
	position    Vec2
	size        Vec2
	titleHeight float32
	movable     bool
	enabled     bool

	cursor Cursor
	draw   DrawList
	scroll Vec2
	// content height measured at the end of the previous frame
	contentHeight float32

	active    bool // referenced this frame
	wasActive bool // referenced last frame
	wantClose bool

	dragging bool
	dragLast Vec2
}

func (w *Window) ID() ID               { return w.id }
func (w *Window) Position() Vec2       { return w.position }
func (w *Window) Size() Vec2           { return w.size }
func (w *Window) Rect() Rect           { return NewRect(w.position, w.size) }
func (w *Window) Cursor() *Cursor      { return &w.cursor }
func (w *Window) Draw() *DrawList      { return &w.draw }
func (w *Window) Scroll() Vec2         { return w.scroll }
func (w *Window) WasActive() bool      { return w.wasActive }
func (w *Window) WantClose() bool      { return w.wantClose }
func (w *Window) Dragging() bool       { return w.dragging }
func (w *Window) Enabled() bool        { return w.enabled }
func (w *Window) Movable() bool        { return w.movable }
func (w *Window) TitleHeight() float32 { return w.titleHeight }

// TitleRect is the strip above the content; zero height without a title bar.
func (w *Window) TitleRect() Rect {
	return Rect{w.position.X, w.position.Y, w.size.X, w.titleHeight}
}

// ContentRect is the window rect minus the title strip.
func (w *Window) ContentRect() Rect {
	return Rect{
		X: w.position.X,
		Y: w.position.Y + w.titleHeight,
		W: w.size.X,
		H: w.size.Y - w.titleHeight,
	}
}

// visible reports whether the window was drawn this frame or the last.
func (w *Window) visible() bool { return w.active || w.wasActive }

// maxScroll is how far the content can scroll given last frame's height.
func (w *Window) maxScroll() float32 {
	return maxf(0, w.contentHeight-w.ContentRect().H)
}

// drag moves a movable window by the pointer delta while the button is held.
// A drag starts on a click-down in the title strip of the focused window.
func (w *Window) drag(in *Input, focused bool) {
	mouse := in.MousePosition()
	if w.dragging {
		if !in.IsMouseDown() || in.ClickUp() {
			w.dragging = false
			uiLogger.Debug("window drag end", "id", w.id, "pos", w.position)
			return
		}
		w.position = w.position.Add(mouse.Sub(w.dragLast))
		w.dragLast = mouse
		return
	}
	if w.movable && focused && w.titleHeight > 0 && in.ClickDown() && w.TitleRect().Contains(mouse) {
		w.dragging = true
		w.dragLast = mouse
		uiLogger.Debug("window drag start", "id", w.id)
	}
}
