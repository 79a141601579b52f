package core

import "github.com/hubastard/thicket/engine/ui"

// FeedInput forwards a platform event into the UI input accumulator.
// Events that carry no pointer or keyboard state are ignored.
func FeedInput(in *ui.Input, ev Event) {
	switch e := ev.(type) {
	case EventMouseMove:
		in.MouseMove(float32(e.X), float32(e.Y))
	case EventMouseButton:
		in.MouseButton(e.Down)
	case EventScroll:
		in.MouseWheel(float32(e.Xoff), float32(e.Yoff))
	case EventChar:
		in.Char(e.Char, e.Mods&ModShift != 0, e.Mods&ModCtrl != 0)
	case EventKey:
		if !e.Down {
			return
		}
		if code := uiKey(e.Key); code != ui.KeyUnknown {
			in.KeyDown(code, e.Mods&ModShift != 0, e.Mods&ModCtrl != 0)
		}
	}
}

func uiKey(k Key) ui.KeyCode {
	switch k {
	case KeyEscape:
		return ui.KeyEscape
	case KeyEnter:
		return ui.KeyEnter
	case KeyBackspace:
		return ui.KeyBackspace
	case KeyDelete:
		return ui.KeyDelete
	case KeyTab:
		return ui.KeyTab
	case KeyLeft:
		return ui.KeyLeft
	case KeyRight:
		return ui.KeyRight
	case KeyUp:
		return ui.KeyUp
	case KeyDown:
		return ui.KeyDown
	case KeyHome:
		return ui.KeyHome
	case KeyEnd:
		return ui.KeyEnd
	default:
		return ui.KeyUnknown
	}
}
