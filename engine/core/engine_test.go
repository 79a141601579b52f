package core

import (
	"testing"

	"github.com/hubastard/thicket/engine/text"
	"github.com/hubastard/thicket/engine/theme"
	"github.com/hubastard/thicket/engine/ui"
	"github.com/hubastard/thicket/engine/ui/widgets"
)

type recorder struct {
	name    string
	log     *[]string
	consume bool
	clicked *bool
}

func (r *recorder) OnAttach(*Engine) { *r.log = append(*r.log, r.name+":attach") }
func (r *recorder) OnDetach(*Engine) { *r.log = append(*r.log, r.name+":detach") }

func (r *recorder) OnUI(_ *Engine, u *ui.UI) {
	*r.log = append(*r.log, r.name+":ui")
	widgets.NewWindow(ui.HashID(r.name), ui.V(0, 0), ui.V(200, 200)).UI(u, func(u *ui.UI) {
		if r.clicked != nil && widgets.NewButton("go").UI(u) {
			*r.clicked = true
		}
	})
}

func (r *recorder) OnEvent(*Engine, Event) bool {
	*r.log = append(*r.log, r.name+":event")
	return r.consume
}

type nopApp struct{ events int }

func (*nopApp) OnStart(*Engine)          {}
func (*nopApp) OnUI(*Engine, *ui.UI)     {}
func (a *nopApp) OnEvent(*Engine, Event) { a.events++ }
func (*nopApp) OnShutdown(*Engine)       {}

func newTestEngine() *Engine {
	return NewEngine(nil, nil, ui.New(theme.Default(), text.Basic()), DefaultConfig())
}

func TestLayerOrder(t *testing.T) {
	e := newTestEngine()
	var log []string
	e.PushLayer(&recorder{name: "a", log: &log})
	e.PushLayer(&recorder{name: "b", log: &log, consume: true})
	app := &nopApp{}

	lists := e.Frame(app)
	e.dispatch(app, EventMouseMove{X: 1, Y: 1})

	want := []string{"a:attach", "b:attach", "a:ui", "b:ui", "b:event"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if app.events != 0 {
		t.Error("app saw an event a layer consumed")
	}
	if len(lists) != 2 {
		t.Errorf("Frame returned %d draw lists, want 2", len(lists))
	}
	if got := e.UI.Input().MousePosition(); got != ui.V(1, 1) {
		t.Errorf("consumed event did not reach the UI input: pointer %v", got)
	}
}

func TestEventsDriveWidgets(t *testing.T) {
	e := newTestEngine()
	var log []string
	var clicked bool
	e.PushLayer(&recorder{name: "main", log: &log, clicked: &clicked})
	app := &nopApp{}

	e.Frame(app)
	// the button sits at (2,16) under the default 14px title
	for _, ev := range []Event{EventMouseMove{X: 6, Y: 20}, EventMouseButton{Down: true}} {
		e.dispatch(app, ev)
	}
	e.Frame(app)
	if clicked {
		t.Fatal("button clicked on press")
	}
	e.dispatch(app, EventMouseButton{Down: false})
	e.Frame(app)
	if !clicked {
		t.Error("button click through dispatched events was missed")
	}
	if app.events != 3 {
		t.Errorf("app saw %d events, want 3", app.events)
	}
}

func TestFrameSweepsIdleStorage(t *testing.T) {
	e := newTestEngine()
	e.Config.StorageMaxIdle = 10
	e.UI.Storage().GetOrInsert(ui.HashID("stale"), ui.Uint(1))
	app := &nopApp{}
	for i := 0; i < sweepEvery; i++ {
		e.Frame(app)
	}
	if _, ok := e.UI.Storage().Lookup(ui.HashID("stale")); ok {
		t.Error("idle storage entry survived the sweep")
	}
}

func TestFeedInput(t *testing.T) {
	var in ui.Input
	FeedInput(&in, EventMouseMove{X: 3.5, Y: 4})
	FeedInput(&in, EventMouseButton{Down: true})
	FeedInput(&in, EventScroll{Yoff: -1})
	FeedInput(&in, EventChar{Char: 'A', Mods: ModShift})
	FeedInput(&in, EventKey{Key: KeyBackspace, Down: true, Mods: ModCtrl})
	FeedInput(&in, EventKey{Key: KeyBackspace, Down: false})
	FeedInput(&in, EventKey{Key: KeyF1, Down: true})

	if got := in.MousePosition(); got != ui.V(3.5, 4) {
		t.Errorf("MousePosition() = %v, want (3.5,4)", got)
	}
	if !in.ClickDown() || !in.IsMouseDown() {
		t.Error("button press not recorded")
	}
	if got := in.Wheel(); got.Y != -1 {
		t.Errorf("Wheel().Y = %v, want -1", got.Y)
	}
	chars := in.Chars()
	if len(chars) != 2 {
		t.Fatalf("Chars() has %d entries, want 2: %+v", len(chars), chars)
	}
	if c := chars[0]; c.Key.Char != 'A' || !c.Shift || c.Ctrl {
		t.Errorf("chars[0] = %+v, want shifted 'A'", c)
	}
	if c := chars[1]; c.Key.Code != ui.KeyBackspace || !c.Ctrl {
		t.Errorf("chars[1] = %+v, want ctrl+backspace", c)
	}
}

func TestLayerStackPop(t *testing.T) {
	var ls LayerStack
	if _, ok := ls.Pop(); ok {
		t.Fatal("Pop on empty stack succeeded")
	}
	var log []string
	a, b := &recorder{name: "a", log: &log}, &recorder{name: "b", log: &log}
	ls.Push(a)
	ls.Push(b)
	if l, _ := ls.Pop(); l != b {
		t.Error("Pop did not return the top layer")
	}
	if ls.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ls.Len())
	}
}

type foldApp struct {
	show bool
	open bool
}

func (*foldApp) OnStart(*Engine)        {}
func (*foldApp) OnEvent(*Engine, Event) {}
func (*foldApp) OnShutdown(*Engine)     {}

func (a *foldApp) OnUI(_ *Engine, u *ui.UI) {
	widgets.NewWindow(ui.HashID("tree"), ui.V(0, 0), ui.V(200, 200)).UI(u, func(u *ui.UI) {
		if !a.show {
			return
		}
		a.open = false
		widgets.NewTreeNode(ui.HashID("node"), "node").UI(u, func(*ui.UI) { a.open = true })
	})
}

func TestFoldStateSurvivesHiddenFrames(t *testing.T) {
	e := newTestEngine()
	app := &foldApp{show: true}
	e.Frame(app)

	// unfold the node (header at (2,16))
	e.dispatch(app, EventMouseMove{X: 10, Y: 20})
	e.dispatch(app, EventMouseButton{Down: true})
	e.Frame(app)
	e.dispatch(app, EventMouseButton{Down: false})
	e.Frame(app)
	if !app.open {
		t.Fatal("node did not unfold")
	}

	app.show = false
	for i := 0; i < 100*sweepEvery; i++ {
		e.Frame(app)
	}
	app.show = true
	e.Frame(app)
	if !app.open {
		t.Error("fold state lost after the node was hidden under the default config")
	}
}
