package core

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/thicket/engine/profiler"
	"github.com/hubastard/thicket/engine/text"
	"github.com/hubastard/thicket/engine/theme"
	"github.com/hubastard/thicket/engine/ui"
)

// sweepEvery is how often, in frames, idle storage entries are collected.
const sweepEvery = 60

// WindowFactory opens the platform window.
type WindowFactory func(Config) (Window, error)

// RendererFactory creates the renderer once the window's context is current.
// Labels are rasterized with face.
type RendererFactory func(win Window, cfg Config, face *text.Face) (Renderer, error)

// Run wires the platform window, the renderer and the UI context and
// executes the main loop.
func Run(app App, cfg Config, newWindow WindowFactory, newRenderer RendererFactory) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	style := theme.Default()
	var err error
	if cfg.ThemePath != "" {
		if style, err = theme.Load(cfg.ThemePath); err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
	}
	face := text.Basic()
	if cfg.FontPath != "" {
		if face, err = text.LoadTTF(cfg.FontPath, style.FontSize()); err != nil {
			return fmt.Errorf("load font: %w", err)
		}
	}
	defer face.Close()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	rend, err := newRenderer(win, cfg, face)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := NewEngine(win, rend, ui.New(style, face), cfg)
	win.SetEventCallback(func(ev Event) {
		eng.dispatch(app, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	app.OnStart(eng)
	coreLogger.Info("engine start", "title", cfg.Title, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))

	clear := cfg.ClearColor
	for !win.ShouldClose() && !eng.quit {
		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		lists := eng.Frame(app)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		rend.Render(lists)
		win.SwapBuffers()
	}

	for l, ok := eng.Layers.Pop(); ok; l, ok = eng.Layers.Pop() {
		l.OnDetach(eng)
	}
	app.OnShutdown(eng)
	coreLogger.Info("engine exit", "frames", eng.frames, "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}

func NewEngine(win Window, rend Renderer, u *ui.UI, cfg Config) *Engine {
	return &Engine{Window: win, Renderer: rend, UI: u, Config: cfg, start: time.Now()}
}

// PushLayer attaches l on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// dispatch feeds ev to the UI input, then to layers top-down, then to the app.
func (e *Engine) dispatch(app App, ev Event) {
	FeedInput(e.UI.Input(), ev)
	handled := false
	e.Layers.ForEachReverse(func(l Layer) bool {
		handled = l.OnEvent(e, ev)
		return handled
	})
	if !handled {
		app.OnEvent(e, ev)
	}
}

// Frame runs one UI frame over the input gathered since the last one and
// returns the draw lists to render, bottom window first.
func (e *Engine) Frame(app App) []*ui.DrawList {
	defer profiler.Start("ui.frame")()
	e.frames++
	e.UI.BeginFrame()
	e.Layers.ForEach(func(l Layer) { l.OnUI(e, e.UI) })
	app.OnUI(e, e.UI)
	lists := e.UI.EndFrame()

	if idle := e.Config.StorageMaxIdle; idle > 0 && e.frames%sweepEvery == 0 {
		if n := e.UI.Storage().Sweep(idle); n > 0 {
			coreLogger.Debug("storage swept", "removed", n, "remaining", e.UI.Storage().Len())
		}
	}
	return lists
}
