package widgets

import (
	"testing"

	"github.com/hubastard/thicket/engine/text"
	"github.com/hubastard/thicket/engine/theme"
	"github.com/hubastard/thicket/engine/ui"
)

var (
	winID  = ui.HashID("main")
	winPos = ui.V(0, 0)
	winSz  = ui.V(300, 300)
)

type harness struct {
	u *ui.UI
}

func newHarness() *harness {
	return &harness{u: ui.New(theme.Default(), text.Basic())}
}

// frame draws the main window with body inside and returns whether the
// window stayed open.
func (h *harness) frame(body func(u *ui.UI)) bool {
	h.u.BeginFrame()
	open := NewWindow(winID, winPos, winSz).UI(h.u, body)
	h.u.EndFrame()
	return open
}

func (h *harness) move(x, y float32) { h.u.Input().MouseMove(x, y) }
func (h *harness) press()            { h.u.Input().MouseButton(true) }
func (h *harness) release()          { h.u.Input().MouseButton(false) }

// The default theme has margin 2 and a 14px title bar, so the first
// vertical widget of the main window sits at (2,16).

func TestButtonClickOnRelease(t *testing.T) {
	h := newHarness()
	var clicked bool
	button := func(u *ui.UI) { clicked = NewButton("OK").UI(u) }

	h.frame(button)
	if clicked {
		t.Fatal("click without input")
	}

	h.move(5, 20)
	h.frame(button)
	if clicked {
		t.Error("hover alone reported a click")
	}

	h.press()
	h.frame(button)
	if clicked {
		t.Error("click-down reported a click")
	}

	h.release()
	h.frame(button)
	if !clicked {
		t.Error("release over a hovered button in a focused window was not a click")
	}

	h.frame(button)
	if clicked {
		t.Error("click reported on the frame after release")
	}
}

func TestButtonReleaseOutside(t *testing.T) {
	h := newHarness()
	var clicked bool
	button := func(u *ui.UI) { clicked = NewButton("OK").UI(u) }

	h.move(5, 20)
	h.press()
	h.frame(button)
	h.move(200, 200)
	h.release()
	h.frame(button)
	if clicked {
		t.Error("release away from the button reported a click")
	}
}

func TestButtonIgnoredWhenUnfocused(t *testing.T) {
	h := newHarness()
	other := ui.HashID("other")
	var clicked bool
	draw := func() {
		h.u.BeginFrame()
		NewWindow(winID, winPos, winSz).UI(h.u, func(u *ui.UI) { clicked = NewButton("OK").UI(u) })
		NewWindow(other, ui.V(400, 0), ui.V(100, 100)).UI(h.u, func(*ui.UI) {})
		h.u.EndFrame()
	}
	draw()
	if h.u.Focused(winID) {
		t.Fatal("main window should be behind the newer one")
	}

	// press on empty space, release over the button
	h.move(350, 350)
	h.press()
	draw()
	h.move(5, 20)
	h.release()
	draw()
	if clicked {
		t.Error("button in a background window reported a click")
	}
}

func TestButtonFreePositionAndSize(t *testing.T) {
	h := newHarness()
	var clicked bool
	button := func(u *ui.UI) {
		clicked = NewButton("wide").Position(ui.V(100, 100)).Size(ui.V(50, 10)).UI(u)
	}

	// free positions are relative to the content origin (0,14)
	h.move(120, 118)
	h.press()
	h.frame(button)
	h.release()
	h.frame(button)
	if !clicked {
		t.Error("click inside the freely positioned button was missed")
	}
}

func TestWindowDrawCommands(t *testing.T) {
	h := newHarness()
	h.u.BeginFrame()
	NewWindow(winID, winPos, winSz).Label("Main").UI(h.u, func(u *ui.UI) {
		NewButton("OK").UI(u)
	})
	lists := h.u.EndFrame()

	if len(lists) != 1 {
		t.Fatalf("EndFrame() returned %d lists, want 1", len(lists))
	}
	want := []ui.CommandKind{
		ui.CmdRect, ui.CmdLabel, ui.CmdLine, ui.CmdClip, // frame, title, separator, content clip
		ui.CmdRect, ui.CmdLabel, // button
		ui.CmdClip, // clip off
	}
	cmds := lists[0].Commands()
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d: %v", len(cmds), len(want), cmds)
	}
	for i, k := range want {
		if cmds[i].Kind != k {
			t.Errorf("command %d = %v, want %v", i, cmds[i].Kind, k)
		}
	}
	if clip := cmds[3]; !clip.Clipped || clip.Rect != (ui.Rect{X: 0, Y: 14, W: 300, H: 286}) {
		t.Errorf("content clip = %+v, want (0,14,300,286)", clip.Rect)
	}
	if cmds[6].Clipped {
		t.Error("final clip command should turn clipping off")
	}
}

func TestWindowCloseButtonRoundTrip(t *testing.T) {
	h := newHarness()
	win := NewWindow(winID, winPos, winSz).CloseButton(true)
	frame := func() bool {
		h.u.BeginFrame()
		open := win.UI(h.u, func(*ui.UI) {})
		h.u.EndFrame()
		return open
	}

	if !frame() {
		t.Fatal("window closed without input")
	}
	h.move(290, 5)
	h.press()
	if !frame() {
		t.Error("window closed on click-down")
	}
	h.release()
	if frame() {
		t.Error("release on the close target did not close the window")
	}
	if !frame() {
		t.Error("close reported more than once for one click")
	}
}

func TestWindowWithoutTitlebar(t *testing.T) {
	h := newHarness()
	h.u.BeginFrame()
	NewWindow(winID, winPos, winSz).Titlebar(false).UI(h.u, func(u *ui.UI) {
		ctx := u.ActiveWindowContext()
		if got := ctx.Window.ContentRect(); got != ui.NewRect(winPos, winSz) {
			t.Errorf("ContentRect() = %v, want full window", got)
		}
	})
	h.u.EndFrame()
}

func TestTabbarSelection(t *testing.T) {
	h := newHarness()
	id := ui.HashID("tabs")
	tabs := []string{"one", "two", "three"}
	var sel uint32
	tabbar := func(u *ui.UI) { sel = NewTabbar(id, ui.V(0, 0), ui.V(300, 20), tabs).UI(u) }

	h.frame(tabbar)
	if sel != 0 {
		t.Fatalf("initial selection = %d, want 0", sel)
	}

	// tab 1 spans x 101..199 at y 14..34
	h.move(150, 20)
	h.press()
	h.frame(tabbar)
	if sel != 1 {
		t.Errorf("selection after click-down = %d, want 1", sel)
	}

	h.release()
	h.frame(tabbar)
	h.frame(tabbar)
	if sel != 1 {
		t.Errorf("selection without clicks = %d, want stable 1", sel)
	}

	h.move(250, 20)
	h.press()
	h.frame(tabbar)
	if sel != 2 {
		t.Errorf("selection after second click = %d, want 2", sel)
	}
}

func TestTabbarEmpty(t *testing.T) {
	h := newHarness()
	h.frame(func(u *ui.UI) {
		if got := NewTabbar(ui.HashID("none"), ui.V(0, 0), ui.V(100, 20), nil).UI(u); got != 0 {
			t.Errorf("empty tabbar = %d, want 0", got)
		}
	})
}

func TestTreeNodeToggle(t *testing.T) {
	h := newHarness()
	id := ui.HashID("node")
	ran := 0
	var clicked bool
	tree := func(u *ui.UI) {
		clicked = NewTreeNode(id, "node").UI(u, func(*ui.UI) { ran++ })
	}

	h.frame(tree)
	if ran != 0 {
		t.Fatal("folded node ran its content")
	}

	// header at (2,16) sized 300x14
	h.move(10, 20)
	h.press()
	h.frame(tree)
	if ran != 1 {
		t.Errorf("content runs = %d after unfolding click, want 1", ran)
	}
	if !clicked {
		t.Error("UI did not report the unfolding click")
	}

	h.release()
	h.frame(tree)
	if ran != 2 || clicked {
		t.Errorf("unfolded frame: runs=%d clicked=%v, want 2 false", ran, clicked)
	}

	h.press()
	h.frame(tree)
	if ran != 2 {
		t.Errorf("content ran after folding click (runs=%d)", ran)
	}
}

func TestTreeNodeInitUnfoldedAndIndent(t *testing.T) {
	h := newHarness()
	var inner, after ui.Vec2
	h.frame(func(u *ui.UI) {
		tok := NewTreeNode(ui.HashID("root"), "root").InitUnfolded().Begin(u)
		if tok == nil {
			t.Fatal("InitUnfolded node started folded")
		}
		inner = u.ActiveWindowContext().Cursor().Fit(ui.V(10, 10), ui.Vertical)
		tok.End(u)
		after = u.ActiveWindowContext().Cursor().Fit(ui.V(10, 10), ui.Vertical)
	})
	if inner.X != 7 {
		t.Errorf("nested X = %v, want 7 (margin 2 + indent 5)", inner.X)
	}
	if after.X != 2 {
		t.Errorf("X after End = %v, want 2", after.X)
	}
}

func TestTreeNodeTokenEndTwicePanics(t *testing.T) {
	h := newHarness()
	h.u.BeginFrame()
	NewWindow(winID, winPos, winSz).UI(h.u, func(u *ui.UI) {
		tok := NewTreeNode(ui.HashID("n"), "n").InitUnfolded().Begin(u)
		tok.End(u)
		defer func() {
			if recover() == nil {
				t.Error("second End did not panic")
			}
		}()
		tok.End(u)
	})
	h.u.EndFrame()
}

func TestTextureClick(t *testing.T) {
	h := newHarness()
	var clicked bool
	var cmds []ui.Command
	tex := func(u *ui.UI) {
		clicked = NewTexture(42).UI(u)
		cmds = u.ActiveWindowContext().Draw().Commands()
	}

	h.move(90, 100)
	h.press()
	h.frame(tex)
	if clicked {
		t.Error("texture reported a click on press")
	}
	h.release()
	h.frame(tex)
	if !clicked {
		t.Error("texture click on release was missed")
	}

	last := cmds[len(cmds)-1]
	if last.Kind != ui.CmdTexture || last.Texture != 42 || last.Rect != (ui.Rect{X: 2, Y: 16, W: 100, H: 100}) {
		t.Errorf("texture command = %+v, want texture 42 at (2,16,100,100)", last)
	}
}

func TestTabbarIgnoresClickOnCoveringWindow(t *testing.T) {
	h := newHarness()
	id := ui.HashID("tabs")
	cover := ui.HashID("cover")
	var sel uint32
	draw := func() {
		h.u.BeginFrame()
		NewWindow(winID, winPos, winSz).UI(h.u, func(u *ui.UI) {
			sel = NewTabbar(id, ui.V(0, 0), ui.V(300, 20), []string{"one", "two", "three"}).UI(u)
		})
		NewWindow(cover, ui.V(120, 10), ui.V(60, 60)).Enabled(false).UI(h.u, func(*ui.UI) {})
		h.u.EndFrame()
	}
	draw()
	if !h.u.Focused(winID) {
		t.Fatal("disabled window took focus")
	}

	// (150,20) is on tab 1 and inside the disabled window
	h.move(150, 20)
	h.press()
	draw()
	if sel != 0 {
		t.Errorf("selection = %d after a click on the covering window, want 0", sel)
	}

	h.release()
	draw()
	h.move(250, 20)
	h.press()
	draw()
	if sel != 2 {
		t.Errorf("selection = %d after a click on an uncovered tab, want 2", sel)
	}
}
