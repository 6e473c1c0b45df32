package mapview

import (
	"image"
	"image/draw"
	"testing"
	"time"

	"github.com/jmigpin/mapscalebar/util/uiutil/event"
	"github.com/jmigpin/mapscalebar/util/uiutil/widget"
)

type testCtx struct {
	img draw.Image
	fns chan func()
}

func (ctx *testCtx) Image() draw.Image      { return ctx.img }
func (ctx *testCtx) RunOnUIThread(f func()) { ctx.fns <- f }

type testOverlay struct {
	widget.ENode
}

func (o *testOverlay) Measure(hint image.Point) image.Point {
	return image.Point{50, 20}
}

func newTestLayer() (*Layer, *testCtx, *recDelegate) {
	ctx := &testCtx{
		img: image.NewRGBA(image.Rect(0, 0, 320, 240)),
		fns: make(chan func(), 4),
	}
	v := newTestView(0, 0, 3)
	d := &recDelegate{}
	v.SetDelegate(d)
	l := NewLayer(ctx, v)
	l.SetWrapperForRoot(l)
	l.Bounds = ctx.img.Bounds()
	return l, ctx, d
}

//----------

func TestLayerLayout(t *testing.T) {
	l, _, _ := newTestLayer()
	o := &testOverlay{}
	l.Append(o)
	l.LayoutMarked()

	if l.View.Bounds != l.Bounds {
		t.Fatal(l.View.Bounds)
	}
	want := image.Rect(OverlayMargin, OverlayMargin, OverlayMargin+50, OverlayMargin+20)
	if o.Bounds != want {
		t.Fatal(o.Bounds)
	}
}

func TestLayerPaint(t *testing.T) {
	l, ctx, _ := newTestLayer()
	l.LayoutTree()
	l.PaintTree()

	img := ctx.img.(*image.RGBA)
	b := img.Bounds()
	for _, p := range []image.Point{b.Min, b.Max.Sub(image.Point{1, 1}), {100, 37}} {
		if c := img.RGBAAt(p.X, p.Y); c.A != 0xff {
			t.Fatalf("%v: %v", p, c)
		}
	}
}

func TestLayerDragPans(t *testing.T) {
	l, _, d := newTestLayer()
	l.LayoutTree()
	ae := widget.NewApplyEvent(nil)

	p := image.Point{100, 100}
	before := l.View.Coordinate(p)

	ae.Apply(l, &event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	if d.will != 1 || l.Cursor != event.MoveCursor {
		t.Fatal(d, l.Cursor)
	}
	p2 := p.Add(image.Point{30, 10})
	ae.Apply(l, &event.MouseMove{Point: p2, Buttons: event.MouseButtons(event.ButtonLeft)}, p2)
	// outside the layer, still captured
	p3 := image.Point{-20, 500}
	ae.Apply(l, &event.MouseMove{Point: p3, Buttons: event.MouseButtons(event.ButtonLeft)}, p3)
	ae.Apply(l, &event.MouseUp{Point: p3, Button: event.ButtonLeft}, p3)

	if d.will != 1 || d.did != 1 {
		t.Fatal(d)
	}
	if l.Cursor != event.DefaultCursor {
		t.Fatal(l.Cursor)
	}
	after := l.View.Coordinate(p3)
	if !near(before[0], after[0], 1e-9) || !near(before[1], after[1], 1e-9) {
		t.Fatal(before, after)
	}
}

func TestLayerWheelZooms(t *testing.T) {
	l, ctx, d := newTestLayer()
	l.LayoutTree()
	ae := widget.NewApplyEvent(nil)

	p := image.Point{10, 20}
	ae.Apply(l, &event.MouseDown{Point: p, Button: event.ButtonWheelUp}, p)
	ae.Apply(l, &event.MouseDown{Point: p, Button: event.ButtonWheelUp}, p)
	if l.View.Zoom() != 3+2*WheelZoomStep {
		t.Fatal(l.View.Zoom())
	}
	if d.will != 1 || d.did != 0 {
		t.Fatal(d)
	}

	// only the last wheel event ends the change
	for i := 0; i < 2; i++ {
		select {
		case f := <-ctx.fns:
			f()
		case <-time.After(2 * time.Second):
			t.Fatal("timeout")
		}
	}
	if d.did != 1 || l.View.Changing() {
		t.Fatal(d)
	}
}
