package ui

import "testing"

func TestInputResetClearsTransientState(t *testing.T) {
	var in Input
	in.MouseMove(10, 20)
	in.MouseButton(true)
	in.MouseWheel(0, 3)
	in.Char('a', false, false)
	in.KeyDown(KeyEnter, true, false)
	in.SetModalActive(true)

	in.Reset()

	if in.ClickDown() || in.ClickUp() {
		t.Errorf("edges survived Reset: down=%v up=%v", in.ClickDown(), in.ClickUp())
	}
	if w := in.Wheel(); w != (Vec2{}) {
		t.Errorf("Wheel() = %v after Reset, want zero", w)
	}
	if n := len(in.Chars()); n != 0 {
		t.Errorf("len(Chars()) = %d after Reset, want 0", n)
	}
	if in.ModalActive() {
		t.Error("modal flag survived Reset")
	}
	if !in.IsMouseDown() {
		t.Error("button level cleared by Reset")
	}
	if p := in.MousePosition(); p != V(10, 20) {
		t.Errorf("MousePosition() = %v after Reset, want (10,20)", p)
	}
}

func TestInputEdges(t *testing.T) {
	var in Input
	in.MouseButton(true)
	if !in.ClickDown() || in.ClickUp() {
		t.Fatalf("press: down=%v up=%v, want true false", in.ClickDown(), in.ClickUp())
	}
	in.Reset()
	in.MouseButton(true) // repeated level does not re-fire
	if in.ClickDown() {
		t.Error("repeated press produced a second click-down edge")
	}
	in.MouseButton(false)
	if !in.ClickUp() || in.IsMouseDown() {
		t.Errorf("release: up=%v down=%v, want true false", in.ClickUp(), in.IsMouseDown())
	}
}

func TestInputGating(t *testing.T) {
	tests := []struct {
		name          string
		grabbed, modal bool
		open          bool
	}{
		{"free", false, false, true},
		{"grabbed", true, false, false},
		{"modal", false, true, false},
		{"grabbed and modal", true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in Input
			in.MouseButton(true)
			in.MouseButton(false)
			in.MouseButton(true)
			in.SetCursorGrabbed(tt.grabbed)
			in.SetModalActive(tt.modal)

			if got := in.IsMouseDown(); got != tt.open {
				t.Errorf("IsMouseDown() = %v, want %v", got, tt.open)
			}
			if got := in.ClickDown(); got != tt.open {
				t.Errorf("ClickDown() = %v, want %v", got, tt.open)
			}
			if got := in.ClickUp(); got != tt.open {
				t.Errorf("ClickUp() = %v, want %v", got, tt.open)
			}
		})
	}
}

func TestInputCharQueue(t *testing.T) {
	var in Input
	in.Char('x', true, false)
	in.KeyDown(KeyBackspace, false, true)

	got := in.Chars()
	if len(got) != 2 {
		t.Fatalf("len(Chars()) = %d, want 2", len(got))
	}
	if got[0].Key.Char != 'x' || !got[0].Shift {
		t.Errorf("Chars()[0] = %+v, want shifted 'x'", got[0])
	}
	if got[1].Key.Code != KeyBackspace || !got[1].Ctrl {
		t.Errorf("Chars()[1] = %+v, want ctrl+backspace", got[1])
	}
}
