package widgets

import "github.com/hubastard/thicket/engine/ui"

const closeButtonSize = 20

// Window is the builder for a top-level window. It is movable, enabled and
// has a title bar by default.
type Window struct {
	id          ui.ID
	position    ui.Vec2
	size        ui.Vec2
	closeButton bool
	enabled     bool
	movable     bool
	titlebar    bool
	label       string
}

func NewWindow(id ui.ID, position, size ui.Vec2) Window {
	return Window{
		id:       id,
		position: position,
		size:     size,
		enabled:  true,
		movable:  true,
		titlebar: true,
	}
}

func (w Window) Label(label string) Window     { w.label = label; return w }
func (w Window) Movable(movable bool) Window   { w.movable = movable; return w }
func (w Window) CloseButton(show bool) Window  { w.closeButton = show; return w }
func (w Window) Titlebar(titlebar bool) Window { w.titlebar = titlebar; return w }
func (w Window) Enabled(enabled bool) Window   { w.enabled = enabled; return w }

// UI draws the window around f and reports whether it is still open.
func (w Window) UI(u *ui.UI, f func(u *ui.UI)) bool {
	tok := w.Begin(u)
	f(u)
	return tok.End(u)
}

// Begin activates the window, draws its frame and opens the clipped
// scroll region for nested widgets. The token's End must follow.
func (w Window) Begin(u *ui.UI) *WindowToken {
	var titleHeight float32
	if w.titlebar {
		titleHeight = u.Style().TitleHeight()
	}
	u.BeginWindow(w.id, ui.WindowParams{
		Position:    w.position,
		Size:        w.size,
		TitleHeight: titleHeight,
		Movable:     w.movable,
		Enabled:     w.enabled,
	})

	ctx := u.ActiveWindowContext()
	w.drawFrame(ctx)
	if w.closeButton && w.drawCloseButton(ctx) {
		ctx.Close()
	}

	clip := ctx.Window.ContentRect()
	ctx.ScrollArea()
	ctx.Draw().Clip(clip)

	return &WindowToken{guard: u.Acquire()}
}

func (w Window) drawCloseButton(ctx ui.WindowContext) bool {
	pos, size := ctx.Window.Position(), ctx.Window.Size()
	target := ui.NewRect(pos.Add(ui.V(size.X-15, 0)), ui.V(closeButtonSize, closeButtonSize))
	ctx.Draw().DrawLabel("X", pos.Add(ui.V(size.X-10, 3)), ctx.Style.Title(ctx.Focused))
	return ctx.Focused && ctx.Hovered(target) && ctx.Input.ClickUp()
}

func (w Window) drawFrame(ctx ui.WindowContext) {
	style := ctx.Style
	focused := ctx.Focused
	pos, size := ctx.Window.Position(), ctx.Window.Size()

	ctx.Draw().DrawRect(ui.NewRect(pos, size), style.WindowBorder(focused), style.Background(focused))
	if !w.titlebar {
		return
	}
	if w.label != "" {
		ctx.Draw().DrawLabel(w.label, pos.Add(ui.V(style.Margin(), style.Margin())), style.Title(focused))
	}
	ctx.Draw().DrawLine(
		pos.Add(ui.V(0, style.TitleHeight())),
		pos.Add(ui.V(size.X, style.TitleHeight())),
		style.WindowBorder(focused),
	)
}

// WindowToken closes a window opened by Window.Begin.
type WindowToken struct {
	guard *ui.Guard
}

// End turns clipping off, closes the window and reports whether it is still
// open. It returns false exactly once per close request.
func (tok *WindowToken) End(u *ui.UI) bool {
	tok.guard.Release()
	u.ActiveWindowContext().Draw().Unclip()
	return u.EndWindow()
}

func DrawWindow(u *ui.UI, id ui.ID, position, size ui.Vec2, f func(u *ui.UI)) bool {
	return NewWindow(id, position, size).UI(u, f)
}
