package widgets

import "github.com/hubastard/thicket/engine/ui"

const (
	treeIndent = 5
	treeLabelX = 10
)

var treeHeaderSize = ui.V(300, 14)

// TreeNode is a foldable header. Its open state is stored under its ID and
// toggles on click-down.
type TreeNode struct {
	id           ui.ID
	label        string
	initUnfolded bool
}

func NewTreeNode(id ui.ID, label string) TreeNode {
	return TreeNode{id: id, label: label}
}

// InitUnfolded makes the node start open the first time its ID is seen.
func (t TreeNode) InitUnfolded() TreeNode { t.initUnfolded = true; return t }

// UI draws the header and runs f only while the node is unfolded. It
// reports whether the header was clicked this frame, which is only
// observable while unfolded.
func (t TreeNode) UI(u *ui.UI, f func(u *ui.UI)) bool {
	tok := t.Begin(u)
	if tok == nil {
		return false
	}
	f(u)
	return tok.End(u)
}

// Begin draws the header. When the node is unfolded it indents the cursor
// and returns a token whose End must be called after the nested content;
// when folded it returns nil and the content must be skipped.
func (t TreeNode) Begin(u *ui.UI) *TreeNodeToken {
	ctx := u.ActiveWindowContext()
	color := ctx.Style.Text(ctx.Focused)

	pos := ctx.Cursor().Fit(treeHeaderSize, ui.Vertical)
	hovered := ctx.Hovered(ui.NewRect(pos, treeHeaderSize))
	clicked := ctx.Focused && hovered && ctx.Input.ClickDown()

	opened := ctx.Storage.GetOrInsert(t.id, ui.Bool(t.initUnfolded))
	if clicked {
		opened.SetUint(opened.Uint() ^ 1)
	}

	glyph := "+"
	if opened.Bool() {
		glyph = "-"
	}
	ctx.Draw().DrawLabel(glyph, pos, color)
	ctx.Draw().DrawLabel(t.label, pos.Add(ui.V(treeLabelX, 0)), color)

	if !opened.Bool() {
		return nil
	}
	ctx.Cursor().Indent(treeIndent)
	return &TreeNodeToken{guard: u.Acquire(), clicked: clicked}
}

// TreeNodeToken closes an unfolded TreeNode.
type TreeNodeToken struct {
	guard   *ui.Guard
	clicked bool
}

// End restores the indentation and reports whether this header was the
// one clicked this frame. Calling End twice panics.
func (tok *TreeNodeToken) End(u *ui.UI) bool {
	tok.guard.Release()
	u.ActiveWindowContext().Cursor().Unindent(treeIndent)
	return tok.clicked
}

func DrawTreeNode(u *ui.UI, id ui.ID, label string, f func(u *ui.UI)) bool {
	return NewTreeNode(id, label).UI(u, f)
}
