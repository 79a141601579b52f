package ui

// KeyCode enumerates the non-character keys the UI cares about.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

// Key is either a typed character (Char != 0) or a key code.
type Key struct {
	Char rune
	Code KeyCode
}

// InputCharacter is one entry of the per-frame keyboard queue.
type InputCharacter struct {
	Key   Key
	Shift bool
	Ctrl  bool
}

// Input accumulates raw platform events for one frame.
//
// Edges (click down/up), wheel delta, the text queue and the modal flag are
// transient and cleared by Reset. Mouse position and the button level survive.
type Input struct {
	mousePos      Vec2
	mouseDown     bool
	clickDown     bool
	clickUp       bool
	wheel         Vec2
	chars         []InputCharacter
	cursorGrabbed bool
	modalActive   bool
}

// Reset clears per-frame state. The text queue keeps its backing array.
func (in *Input) Reset() {
	in.clickDown = false
	in.clickUp = false
	in.modalActive = false
	in.wheel = Vec2{}
	in.chars = in.chars[:0]
}

func (in *Input) blocked() bool { return in.cursorGrabbed || in.modalActive }

// IsMouseDown reports the button level, gated by grab and modal state.
func (in *Input) IsMouseDown() bool { return in.mouseDown && !in.blocked() }

// ClickDown reports a press edge this frame, gated by grab and modal state.
func (in *Input) ClickDown() bool { return in.clickDown && !in.blocked() }

// ClickUp reports a release edge this frame, gated by grab and modal state.
func (in *Input) ClickUp() bool { return in.clickUp && !in.blocked() }

func (in *Input) MousePosition() Vec2 { return in.mousePos }
func (in *Input) Wheel() Vec2         { return in.wheel }

// Chars returns the queued keyboard events. The slice is only valid until Reset.
func (in *Input) Chars() []InputCharacter { return in.chars }

func (in *Input) CursorGrabbed() bool { return in.cursorGrabbed }
func (in *Input) ModalActive() bool   { return in.modalActive }

// ----- platform feed -----

func (in *Input) MouseMove(x, y float32) { in.mousePos = Vec2{x, y} }

// MouseButton records a level change of the primary button and the matching edge.
func (in *Input) MouseButton(down bool) {
	if down && !in.mouseDown {
		in.clickDown = true
	}
	if !down && in.mouseDown {
		in.clickUp = true
	}
	in.mouseDown = down
}

func (in *Input) MouseWheel(dx, dy float32) {
	in.wheel.X += dx
	in.wheel.Y += dy
}

func (in *Input) Char(r rune, shift, ctrl bool) {
	in.chars = append(in.chars, InputCharacter{Key: Key{Char: r}, Shift: shift, Ctrl: ctrl})
}

func (in *Input) KeyDown(code KeyCode, shift, ctrl bool) {
	in.chars = append(in.chars, InputCharacter{Key: Key{Code: code}, Shift: shift, Ctrl: ctrl})
}

func (in *Input) SetCursorGrabbed(grabbed bool) { in.cursorGrabbed = grabbed }

// SetModalActive marks a modal surface as open for the rest of this frame.
func (in *Input) SetModalActive(active bool) { in.modalActive = active }
