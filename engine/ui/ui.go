package ui

import "fmt"

// UI is the per-application immediate-mode context. It owns the input
// snapshot, the ID-keyed storage and the window stack. One goroutine drives
// it: BeginFrame, any number of BeginWindow/EndWindow pairs with widget calls
// in between, then EndFrame.
type UI struct {
	input    Input
	style    Style
	measurer TextMeasurer
	storage  *Storage

	// z-order, last element on top
	windows []*Window
	byID    map[ID]*Window
	active  *Window

	openGuards int
	inFrame    bool
	frame      uint64

	out     []*DrawList
	scratch []*Window
}

// New creates a context drawing with style and measuring labels with m.
func New(style Style, m TextMeasurer) *UI {
	return &UI{
		style:    style,
		measurer: m,
		storage:  NewStorage(),
		windows:  make([]*Window, 0, 16),
		byID:     make(map[ID]*Window, 16),
		out:      make([]*DrawList, 0, 16),
	}
}

func (u *UI) Input() *Input      { return &u.input }
func (u *UI) Style() Style       { return u.style }
func (u *UI) Storage() *Storage  { return u.storage }
func (u *UI) Frame() uint64      { return u.frame }
func (u *UI) SetStyle(s Style)   { u.style = s }
func (u *UI) ActiveWindow() bool { return u.active != nil }

// BeginFrame starts a frame over the input accumulated since the last
// EndFrame. A click-down over a visible window brings it to the front before
// any widget runs, so the click is handled in the same frame.
func (u *UI) BeginFrame() {
	if u.inFrame {
		panic("ui: BeginFrame called twice without EndFrame")
	}
	u.inFrame = true
	u.frame++
	u.storage.NextFrame()
	for _, w := range u.windows {
		w.wasActive = w.active
		w.active = false
	}

	if !u.input.ClickDown() {
		return
	}
	mouse := u.input.MousePosition()
	for i := len(u.windows) - 1; i >= 0; i-- {
		w := u.windows[i]
		if !w.wasActive || !w.Rect().Contains(mouse) {
			continue
		}
		if w.enabled {
			u.FocusWindow(w.id)
		}
		break
	}
}

// EndFrame finishes the frame, returns the draw lists of the windows drawn
// this frame bottom to top, and clears the transient input. The returned
// slice is reused by the next EndFrame.
func (u *UI) EndFrame() []*DrawList {
	if !u.inFrame {
		panic("ui: EndFrame without BeginFrame")
	}
	if u.active != nil {
		panic(fmt.Sprintf("ui: window %#x still open at EndFrame", uint64(u.active.id)))
	}
	if u.openGuards != 0 {
		panic(fmt.Sprintf("ui: %d begin/end scopes left open at EndFrame", u.openGuards))
	}
	u.inFrame = false

	u.out = u.out[:0]
	for _, w := range u.windows {
		if w.active {
			u.out = append(u.out, &w.draw)
		}
	}
	u.sinkHidden()
	u.input.Reset()
	return u.out
}

// sinkHidden moves windows not drawn this frame below the drawn ones,
// keeping relative order, so a closed window cannot hold focus.
func (u *UI) sinkHidden() {
	hidden := u.scratch[:0]
	n := 0
	for _, w := range u.windows {
		if w.active {
			u.windows[n] = w
			n++
		} else {
			hidden = append(hidden, w)
		}
	}
	if len(hidden) == 0 {
		return
	}
	copy(u.windows[len(hidden):], u.windows[:n])
	copy(u.windows, hidden)
	u.scratch = hidden[:0]
}

// WindowParams configures BeginWindow. Fields follow last-writer-wins
// semantics across frames except Position, which is only honored on
// creation for movable windows.
type WindowParams struct {
	Position    Vec2
	Size        Vec2
	TitleHeight float32
	Movable     bool
	Enabled     bool
}

// BeginWindow makes the window id active, creating it on first reference.
// A window that was not drawn last frame is brought to the front.
func (u *UI) BeginWindow(id ID, p WindowParams) *Window {
	if !u.inFrame {
		panic("ui: BeginWindow outside BeginFrame/EndFrame")
	}
	if u.active != nil {
		panic(fmt.Sprintf("ui: BeginWindow %#x while window %#x is active", uint64(id), uint64(u.active.id)))
	}

	w, ok := u.byID[id]
	if !ok {
		w = &Window{id: id, position: p.Position}
		u.byID[id] = w
		u.windows = append(u.windows, w)
		uiLogger.Debug("window created", "id", id, "pos", p.Position, "size", p.Size)
	}
	if !p.Movable {
		w.position = p.Position
	}
	w.size = p.Size
	w.titleHeight = p.TitleHeight
	w.movable = p.Movable
	w.enabled = p.Enabled
	w.active = true

	if !w.wasActive {
		u.FocusWindow(id)
	}

	w.drag(&u.input, u.Focused(id) && u.underPointer(w))

	w.draw.reset(u.measurer, u.style.FontSize())
	w.cursor.Reset(w.ContentRect(), w.scroll, u.style.Margin())
	u.active = w
	return w
}

// EndWindow closes the active window, records its content height for next
// frame's scroll range and reports whether the window stays open. A pending
// close request is consumed.
func (u *UI) EndWindow() bool {
	if u.active == nil {
		panic("ui: EndWindow without an active window")
	}
	w := u.active
	w.contentHeight = w.cursor.ContentSize().Y
	open := !w.wantClose
	w.wantClose = false
	u.active = nil
	return open
}

// RequestClose makes the next EndWindow of id report the window as closed.
func (u *UI) RequestClose(id ID) {
	if w, ok := u.byID[id]; ok {
		w.wantClose = true
		uiLogger.Debug("window close requested", "id", id)
	}
}

// FocusWindow moves the window to the top of the stack. Disabled and
// unknown windows are left alone.
func (u *UI) FocusWindow(id ID) {
	w, ok := u.byID[id]
	if !ok || !w.enabled {
		return
	}
	top := len(u.windows) - 1
	if u.windows[top] == w {
		return
	}
	for i, o := range u.windows {
		if o == w {
			copy(u.windows[i:], u.windows[i+1:])
			u.windows[top] = w
			break
		}
	}
	uiLogger.Debug("window focused", "id", id)
}

// Focused reports whether id is the topmost enabled window among those drawn
// this frame or the last. Disabled and hidden windows above it do not take
// focus away.
func (u *UI) Focused(id ID) bool {
	for i := len(u.windows) - 1; i >= 0; i-- {
		if w := u.windows[i]; w.enabled && w.visible() {
			return w.id == id
		}
	}
	return false
}

// underPointer reports whether w is the topmost visible window under the
// pointer. Windows above it absorb the pointer, disabled or not.
func (u *UI) underPointer(w *Window) bool {
	mouse := u.input.MousePosition()
	for i := len(u.windows) - 1; i >= 0; i-- {
		if o := u.windows[i]; o.visible() && o.Rect().Contains(mouse) {
			return o == w
		}
	}
	return false
}

// Window looks up a window by id.
func (u *UI) Window(id ID) (*Window, bool) {
	w, ok := u.byID[id]
	return w, ok
}

// Windows returns the window stack bottom to top. Callers must not modify it.
func (u *UI) Windows() []*Window { return u.windows }

// RemoveWindow forgets a window and its persistent position and scroll.
func (u *UI) RemoveWindow(id ID) {
	w, ok := u.byID[id]
	if !ok {
		return
	}
	if u.active == w {
		panic(fmt.Sprintf("ui: RemoveWindow %#x while it is active", uint64(id)))
	}
	delete(u.byID, id)
	for i, o := range u.windows {
		if o == w {
			u.windows = append(u.windows[:i], u.windows[i+1:]...)
			break
		}
	}
	uiLogger.Debug("window removed", "id", id)
}

// ActiveWindowContext returns the facade widgets draw through. It panics
// when no window is active.
func (u *UI) ActiveWindowContext() WindowContext {
	if u.active == nil {
		panic("ui: widget used outside BeginWindow/EndWindow")
	}
	return WindowContext{
		Input:   &u.input,
		Style:   u.style,
		Window:  u.active,
		Storage: u.storage,
		Focused: u.Focused(u.active.id),
		pointer: u.underPointer(u.active),
	}
}

// Guard pairs a begin with its end. Release must be called exactly once
// before the frame ends.
type Guard struct {
	u        *UI
	released bool
}

// Acquire opens a scope that EndFrame requires to be released.
func (u *UI) Acquire() *Guard {
	u.openGuards++
	return &Guard{u: u}
}

func (g *Guard) Release() {
	if g.released {
		panic("ui: scope ended twice")
	}
	g.released = true
	g.u.openGuards--
}
