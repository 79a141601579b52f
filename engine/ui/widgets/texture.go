package widgets

import "github.com/hubastard/thicket/engine/ui"

// Texture draws an externally loaded texture handle and reports clicks on
// release, like Button.
type Texture struct {
	position *ui.Vec2
	w, h     float32
	texture  uint32
}

func NewTexture(texture uint32) Texture {
	return Texture{w: 100, h: 100, texture: texture}
}

func (t Texture) Size(w, h float32) Texture { t.w, t.h = w, h; return t }

func (t Texture) Position(p ui.Vec2) Texture { t.position = &p; return t }

func (t Texture) UI(u *ui.UI) bool {
	ctx := u.ActiveWindowContext()
	size := ui.V(t.w, t.h)

	pos := ctx.Cursor().Fit(size, ui.LayoutFor(t.position))
	rect := ui.NewRect(pos, size)
	ctx.Draw().DrawRawTexture(rect, t.texture)

	return ctx.Focused && ctx.Hovered(rect) && ctx.Input.ClickUp()
}

func DrawTexture(u *ui.UI, texture uint32, w, h float32) bool {
	return NewTexture(texture).Size(w, h).UI(u)
}
