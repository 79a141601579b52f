package glbackend

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/thicket/engine/colors"
	"github.com/hubastard/thicket/engine/ui"
)

// floats per vertex: x, y, u, v, r, g, b, a
const vertexFloats = 8

// labelSource turns a label into a texture. w and h are the on-screen size
// at the requested font size.
type labelSource interface {
	Label(text string, c colors.Color, size float32) (tex uint32, w, h float32)
}

// drawBatch is a run of triangles sharing one texture and one clip state.
type drawBatch struct {
	texture uint32
	clip    ui.Rect
	clipped bool
	first   int32 // vertex index
	count   int32
}

// batcher flattens draw lists into one vertex stream split at texture and
// clip changes. Solid geometry samples the white texture.
type batcher struct {
	white  uint32
	labels labelSource

	verts   []float32
	batches []drawBatch

	clip    ui.Rect
	clipped bool
}

func (b *batcher) build(lists []*ui.DrawList) {
	b.verts = b.verts[:0]
	b.batches = b.batches[:0]
	for _, l := range lists {
		// every window starts unclipped
		b.clipped = false
		b.clip = ui.Rect{}
		for _, c := range l.Commands() {
			b.command(c)
		}
	}
}

func (b *batcher) command(c ui.Command) {
	switch c.Kind {
	case ui.CmdRect:
		b.rect(c.Rect, c.Color)
		if c.Border[3] > 0 {
			r := c.Rect
			b.rect(ui.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, c.Border)
			b.rect(ui.Rect{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1}, c.Border)
			b.rect(ui.Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c.Border)
			b.rect(ui.Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, c.Border)
		}
	case ui.CmdLine:
		b.line(c.Pos, c.To, c.Color)
	case ui.CmdLabel:
		if c.Text == "" || b.labels == nil {
			return
		}
		tex, w, h := b.labels.Label(c.Text, c.Color, c.FontSize)
		b.quad(ui.Rect{X: c.Pos.X, Y: c.Pos.Y, W: w, H: h}, tex, colors.White)
	case ui.CmdTexture:
		b.quad(c.Rect, c.Texture, colors.White)
	case ui.CmdClip:
		b.clipped = c.Clipped
		b.clip = c.Rect
	}
}

func (b *batcher) rect(r ui.Rect, c colors.Color) {
	if c[3] <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	b.quad(r, b.white, c)
}

func (b *batcher) quad(r ui.Rect, tex uint32, c colors.Color) {
	b.polygon(tex, c,
		[4]ui.Vec2{{X: r.X, Y: r.Y}, {X: r.X + r.W, Y: r.Y}, {X: r.X + r.W, Y: r.Y + r.H}, {X: r.X, Y: r.Y + r.H}},
	)
}

// line draws a one pixel wide segment as a thin quad.
func (b *batcher) line(p0, p1 ui.Vec2, c colors.Color) {
	d := p1.Sub(p0)
	l := math32.Sqrt(d.X*d.X + d.Y*d.Y)
	if l == 0 || c[3] <= 0 {
		return
	}
	n := ui.V(-d.Y/l*0.5, d.X/l*0.5)
	b.polygon(b.white, c, [4]ui.Vec2{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)})
}

var quadUV = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// polygon emits corners p[0..3] (clockwise from top-left) as two triangles.
func (b *batcher) polygon(tex uint32, c colors.Color, p [4]ui.Vec2) {
	b.use(tex)
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		b.verts = append(b.verts, p[i].X, p[i].Y, quadUV[i][0], quadUV[i][1], c[0], c[1], c[2], c[3])
	}
	b.batches[len(b.batches)-1].count += 6
}

// use makes sure the last batch matches the texture and clip state.
func (b *batcher) use(tex uint32) {
	if n := len(b.batches); n > 0 {
		last := b.batches[n-1]
		if last.texture == tex && last.clipped == b.clipped && (!b.clipped || last.clip == b.clip) {
			return
		}
	}
	b.batches = append(b.batches, drawBatch{
		texture: tex,
		clip:    b.clip,
		clipped: b.clipped,
		first:   int32(len(b.verts) / vertexFloats),
	})
}
