package widgets

import "github.com/hubastard/thicket/engine/ui"

// Button is a labeled push button. It reports a click on release.
type Button struct {
	position *ui.Vec2
	size     *ui.Vec2
	label    string
}

func NewButton(label string) Button { return Button{label: label} }

// Position places the button freely inside the window content instead of
// in the vertical flow.
func (b Button) Position(p ui.Vec2) Button { b.position = &p; return b }

// Size overrides the measured size.
func (b Button) Size(s ui.Vec2) Button { b.size = &s; return b }

// UI draws the button and reports whether it was clicked this frame.
func (b Button) UI(u *ui.UI) bool {
	ctx := u.ActiveWindowContext()
	margin := ctx.Style.MarginButton()

	var size ui.Vec2
	if b.size != nil {
		size = *b.size
	} else {
		size = ctx.Draw().LabelSize(b.label).Add(ui.V(2*margin, margin))
	}

	pos := ctx.Cursor().Fit(size, ui.LayoutFor(b.position))
	rect := ui.NewRect(pos, size)
	hovered := ctx.Hovered(rect)

	ctx.Draw().DrawRect(rect, ui.Color{}, ctx.Style.ButtonBackground(ctx.Focused, hovered, hovered && ctx.Input.IsMouseDown()))
	ctx.Draw().DrawLabel(b.label, pos.Add(ui.V(margin, margin)), ctx.Style.Text(ctx.Focused))

	return ctx.Focused && hovered && ctx.Input.ClickUp()
}

// DrawButton is shorthand for a button in the vertical flow.
func DrawButton(u *ui.UI, label string) bool {
	return NewButton(label).UI(u)
}
