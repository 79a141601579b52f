package core

import (
	"time"

	"github.com/hubastard/thicket/engine/ui"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)           // called once after window/renderer init
	OnUI(e *Engine, u *ui.UI)    // called between BeginFrame and EndFrame
	OnEvent(e *Engine, ev Event) // platform events, after the UI input saw them
	OnShutdown(e *Engine)        // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	UI       *ui.UI
	Layers   LayerStack
	Config   Config
	start    time.Time
	frames   uint64
	quit     bool
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }
func (e *Engine) Frames() uint64        { return e.frames }

// Quit ends the main loop after the current frame.
func (e *Engine) Quit() { e.quit = true }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer consumes the draw lists of one UI frame.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Render(lists []*ui.DrawList)
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventChar struct {
	Char rune
	Mods Mod
}

func (EventChar) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

// EventMouseButton reports the primary button; other buttons are not forwarded.
type EventMouseButton struct{ Down bool }

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key enumerates the keys the platform layer forwards.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyF1
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
