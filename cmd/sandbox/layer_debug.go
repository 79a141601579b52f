package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hubastard/thicket/engine/colors"
	"github.com/hubastard/thicket/engine/core"
	"github.com/hubastard/thicket/engine/profiler"
	"github.com/hubastard/thicket/engine/ui"
	"github.com/hubastard/thicket/engine/ui/widgets"
)

var stats = ui.HashID("stats")

// ------- Frame statistics overlay -------
type LayerDebug struct {
	visible       bool
	lastFrame     time.Time
	frameDuration float32
}

func (l *LayerDebug) OnAttach(e *core.Engine) { l.visible = true }
func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUI(e *core.Engine, u *ui.UI) {
	now := time.Now()
	if !l.lastFrame.IsZero() {
		l.frameDuration = float32(now.Sub(l.lastFrame).Seconds() * 1000.0)
	}
	l.lastFrame = now
	if !l.visible {
		return
	}

	l.visible = widgets.NewWindow(stats, ui.V(700, 40), ui.V(240, 200)).Label("Stats").CloseButton(true).UI(u, func(u *ui.UI) {
		ctx := u.ActiveWindowContext()
		line := func(color colors.Color, format string, args ...any) {
			pos := ctx.Cursor().Fit(ui.V(220, ctx.Style.FontSize()), ui.Vertical)
			ctx.Draw().DrawLabel(fmt.Sprintf(format, args...), pos, color)
		}
		text := ctx.Style.Text(ctx.Focused)
		rs := profiler.ReadStats()

		line(colors.Yellow, "Frame: %d", e.Frames())
		line(text, "  %2.3f ms", l.frameDuration)
		line(colors.Yellow, "UI")
		line(text, "  Windows: %d", len(u.Windows()))
		line(text, "  Storage: %d", u.Storage().Len())
		line(colors.Yellow, "Memory")
		line(text, "  Heap: %.3f MB", float32(rs.HeapAlloc)/(1<<20))
		line(text, "  Allocs: %d", rs.Mallocs)
		line(text, "  Goroutines: %d", rs.Goroutines)
		if profiler.Enabled {
			line(text, "F1: dump profile")
		}
	})
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down || k.Key != core.KeyF1 {
		return false
	}
	if !l.visible {
		l.visible = true
		return true
	}
	if path, err := profiler.Dump(os.TempDir()); err == nil && path != "" {
		core.Logger().Info("speedscope dump", "path", path)
	} else if err != nil {
		core.Logger().Warn("profiler dump", "err", err)
	}
	return true
}
