package widget

import (
	"image"
	"image/color"
	"testing"
)

type testNode struct {
	ENode
	paints int
}

func newTestNode() *testNode {
	n := &testNode{}
	n.SetWrapperForRoot(n)
	return n
}

func (n *testNode) Paint() {
	n.paints++
}

type rowLayout struct {
	testNode
}

func (l *rowLayout) Layout() {
	x := l.Bounds.Min.X
	l.IterateWrappers2(func(c Node) {
		ce := c.Embed()
		ce.Bounds = image.Rect(x, l.Bounds.Min.Y, x+10, l.Bounds.Max.Y)
		x += 10
	})
}

func TestMarkNeedsPaintPropagates(t *testing.T) {
	root := &rowLayout{}
	root.SetWrapperForRoot(root)
	root.Bounds = image.Rect(0, 0, 100, 20)
	c1, c2 := newTestNode(), newTestNode()
	root.Append(c1, c2)

	root.LayoutMarked()
	if c2.Bounds != image.Rect(10, 0, 20, 20) {
		t.Fatal(c2.Bounds)
	}
	r := root.PaintMarked()
	if r != root.Bounds || c1.paints != 1 || c2.paints != 1 {
		t.Fatal(r, c1.paints, c2.paints)
	}
	if root.TreeNeedsPaint() {
		t.Fatal("marks not cleared")
	}

	c2.MarkNeedsPaint()
	if !root.HasAnyMarks(MarkChildNeedsPaint) {
		t.Fatal("parent not marked")
	}
	r = root.PaintMarked()
	if r != c2.Bounds || c1.paints != 1 || c2.paints != 2 {
		t.Fatal(r, c1.paints, c2.paints)
	}
}

func TestNotPaintable(t *testing.T) {
	n := newTestNode()
	n.Bounds = image.Rect(0, 0, 5, 5)
	n.AddMarks(MarkNotPaintable | MarkNeedsPaint)
	if r := n.PaintMarked(); !r.Empty() || n.paints != 0 {
		t.Fatal(r, n.paints)
	}
	n.RemoveMarks(MarkNotPaintable)
	n.MarkNeedsPaint()
	if r := n.PaintMarked(); r != n.Bounds {
		t.Fatal(r)
	}
}

func TestTreeThemePaletteColor(t *testing.T) {
	root := newTestNode()
	c := newTestNode()
	root.Append(c)
	if got := c.TreeThemePaletteColor("tint"); got != DefaultPalette["tint"] {
		t.Fatal(got)
	}
	red := color.RGBA{255, 0, 0, 255}
	root.SetThemePaletteColor("tint", red)
	if got := c.TreeThemePaletteColor("tint"); got != red {
		t.Fatal(got)
	}
	if !c.HasAnyMarks(MarkNeedsPaint) && !root.HasAnyMarks(MarkNeedsPaint) {
		t.Fatal("theme change should mark paint")
	}
}

func TestAppend(t *testing.T) {
	root := newTestNode()
	c1, c2 := newTestNode(), newTestNode()
	root.Append(c1, c2)

	var u []Node
	root.IterateWrappers2(func(n Node) { u = append(u, n) })
	if len(u) != 2 || u[0] != c1 || u[1] != c2 {
		t.Fatal(u)
	}
	if c1.Parent != &root.EmbedNode || c2.Wrapper != c2 {
		t.Fatal("parent/wrapper not set")
	}
	if !root.TreeNeedsLayout() {
		t.Fatal("expecting layout mark")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expecting panic on a second parent")
		}
	}()
	newTestNode().Append(c1)
}
