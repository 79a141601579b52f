package ui

import "hash/fnv"

// ID names a widget or window across frames. Callers own uniqueness.
type ID uint64

// HashID derives an ID from a literal label.
func HashID(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// With composes a child ID from this scope and a local name.
func (id ID) With(name string) ID {
	h := fnv.New64a()
	var b [8]byte
	for i := range b {
		b[i] = byte(id >> (8 * i))
	}
	h.Write(b[:])
	h.Write([]byte(name))
	return ID(h.Sum64())
}

// Vec2 is a point or size in screen pixels.
type Vec2 struct{ X, Y float32 }

// V is shorthand for Vec2{x, y}.
func V(x, y float32) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float32) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Rect is an axis-aligned rectangle in screen pixels, Y down.
type Rect struct {
	X, Y, W, H float32
}

// NewRect builds a rect from its top-left corner and size.
func NewRect(pos, size Vec2) Rect { return Rect{pos.X, pos.Y, size.X, size.Y} }

// Point is the top-left corner.
func (r Rect) Point() Vec2 { return Vec2{r.X, r.Y} }

// Size is the width and height.
func (r Rect) Size() Vec2 { return Vec2{r.W, r.H} }

// Contains is half-open: the left/top edges are inside, the right/bottom are not.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect returns the overlap of r and o; the result has zero size when they do not touch.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := maxf(r.X, o.X), maxf(r.Y, o.Y)
	x1, y1 := minf(r.X+r.W, o.X+o.W), minf(r.Y+r.H, o.Y+o.H)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
