package main

import (
	"fmt"

	"github.com/hubastard/thicket/engine/core"
	"github.com/hubastard/thicket/engine/ui"
	"github.com/hubastard/thicket/engine/ui/widgets"
)

var (
	gallery = ui.HashID("gallery")
	about   = ui.HashID("about")
	palette = ui.HashID("palette")
)

// ------- Widget gallery -------
type LayerWidgets struct {
	texture   uint32
	clicks    int
	texClicks int
	showAbout bool
	items     int
}

func (l *LayerWidgets) OnAttach(e *core.Engine) { l.items = 3 }
func (l *LayerWidgets) OnDetach(e *core.Engine) {}

func (l *LayerWidgets) OnUI(e *core.Engine, u *ui.UI) {
	widgets.NewWindow(gallery, ui.V(40, 40), ui.V(340, 320)).Label("Gallery").UI(u, func(u *ui.UI) {
		tab := widgets.DrawTabbar(u, gallery.With("tabs"), ui.V(0, 0), ui.V(336, 20), []string{"Buttons", "Tree", "Texture"})
		// keep vertical flow below the tabbar
		ctx := u.ActiveWindowContext()
		ctx.Cursor().Fit(ui.V(0, 20), ui.Vertical)

		switch tab {
		case 0:
			l.buttons(u)
		case 1:
			l.tree(u)
		case 2:
			if widgets.DrawTexture(u, l.texture, 128, 128) {
				l.texClicks++
			}
			ctx.Draw().DrawLabel(fmt.Sprintf("texture clicks: %d", l.texClicks), ctx.Cursor().Fit(ui.V(200, 14), ui.Vertical), ctx.Style.Text(ctx.Focused))
		}
	})

	if l.showAbout {
		l.showAbout = widgets.NewWindow(about, ui.V(420, 60), ui.V(220, 90)).
			Label("About").
			CloseButton(true).
			UI(u, func(u *ui.UI) {
				ctx := u.ActiveWindowContext()
				ctx.Draw().DrawLabel("thicket immediate-mode UI", ctx.Cursor().Fit(ui.V(200, 14), ui.Vertical), ctx.Style.Text(ctx.Focused))
			})
	}

	widgets.NewWindow(palette, ui.V(420, 180), ui.V(160, 60)).
		Movable(false).
		Titlebar(false).
		UI(u, func(u *ui.UI) {
			if widgets.NewButton("About").Position(ui.V(8, 8)).UI(u) {
				l.showAbout = true
			}
		})
}

func (l *LayerWidgets) buttons(u *ui.UI) {
	if widgets.DrawButton(u, fmt.Sprintf("Clicked %d times", l.clicks)) {
		l.clicks++
	}
	if widgets.DrawButton(u, "Add item") {
		l.items++
	}
	if l.items > 0 && widgets.DrawButton(u, "Remove item") {
		l.items--
	}
	for i := 0; i < l.items; i++ {
		widgets.NewButton(fmt.Sprintf("Item %d", i)).Size(ui.V(120, 18)).UI(u)
	}
}

func (l *LayerWidgets) tree(u *ui.UI) {
	widgets.NewTreeNode(gallery.With("root"), "Root").InitUnfolded().UI(u, func(u *ui.UI) {
		for i := 0; i < 3; i++ {
			id := gallery.With(fmt.Sprintf("child%d", i))
			widgets.DrawTreeNode(u, id, fmt.Sprintf("Child %d", i), func(u *ui.UI) {
				widgets.DrawButton(u, "Leaf")
			})
		}
	})
}

func (l *LayerWidgets) OnEvent(e *core.Engine, ev core.Event) bool { return false }
