package widgets

import (
	"github.com/hubastard/thicket/engine/colors"
	"github.com/hubastard/thicket/engine/ui"
)

// Tabbar splits its width evenly between fixed labels. The selected index
// lives in storage under the tabbar's ID and changes on click-down.
type Tabbar struct {
	id       ui.ID
	position ui.Vec2
	size     ui.Vec2
	tabs     []string
}

func NewTabbar(id ui.ID, position, size ui.Vec2, tabs []string) Tabbar {
	return Tabbar{id: id, position: position, size: size, tabs: tabs}
}

// UI draws the tabs and returns the current selection, every frame.
func (t Tabbar) UI(u *ui.UI) uint32 {
	ctx := u.ActiveWindowContext()
	pos := ctx.Cursor().Fit(t.size, ui.Free(t.position))

	slot := ctx.Storage.GetOrInsert(t.id, ui.Uint(0))
	if len(t.tabs) == 0 {
		return slot.Uint()
	}

	width := t.size.X / float32(len(t.tabs))
	selected := slot.Uint()
	for n, label := range t.tabs {
		rect := ui.NewRect(pos.Add(ui.V(width*float32(n)+1, 0)), ui.V(width-2, t.size.Y))
		hovered := ctx.Hovered(rect)
		isSelected := uint32(n) == selected

		if ctx.Focused && hovered && ctx.Input.ClickDown() {
			slot.SetUint(uint32(n))
		}
		ctx.Draw().DrawRect(rect, ui.Color{}, ctx.Style.TabbarBackground(ctx.Focused, isSelected, hovered, hovered && ctx.Input.IsMouseDown()))

		color := ctx.Style.Text(ctx.Focused)
		if isSelected {
			color = colors.White
		}
		ctx.Draw().DrawLabelAligned(label,
			pos.Add(ui.V(width*float32(n)+width/2, ctx.Style.MarginButton()+2)),
			color, ui.AlignCenter)
	}
	return slot.Uint()
}

func DrawTabbar(u *ui.UI, id ui.ID, position, size ui.Vec2, tabs []string) uint32 {
	return NewTabbar(id, position, size, tabs).UI(u)
}
