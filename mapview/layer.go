package mapview

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/fogleman/gg"
	"github.com/jmigpin/mapscalebar/util/fontutil"
	"github.com/jmigpin/mapscalebar/util/imageutil"
	"github.com/jmigpin/mapscalebar/util/mathutil"
	"github.com/jmigpin/mapscalebar/util/uiutil/event"
	"github.com/jmigpin/mapscalebar/util/uiutil/widget"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

const (
	// overlays are laid out at the top-left corner with this margin
	OverlayMargin = 8

	WheelZoomStep = 0.25
	// a wheel gesture ends when no wheel event arrives within this time
	WheelIdle = 150 * time.Millisecond
)

type Context interface {
	widget.ImageContext
	RunOnUIThread(func())
}

//----------

// Layer paints the map backdrop and handles the pan/zoom gestures. Childs are overlays.
type Layer struct {
	widget.ENode
	View *View

	ctx Context
	img *image.RGBA // backdrop scratch, reused while the size is the same

	pan struct {
		on bool
		p  image.Point
	}
	wheelGen int
}

func NewLayer(ctx Context, v *View) *Layer {
	l := &Layer{ctx: ctx, View: v}
	l.Cursor = event.DefaultCursor
	return l
}

//----------

func (l *Layer) Layout() {
	l.View.Bounds = l.Bounds
	l.IterateWrappers2(func(child widget.Node) {
		m := child.Measure(l.Bounds.Size())
		min := l.Bounds.Min.Add(image.Point{OverlayMargin, OverlayMargin})
		b := image.Rectangle{min, min.Add(m)}
		child.Embed().Bounds = b.Intersect(l.Bounds)
	})
}

func (l *Layer) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	switch t := ev.(type) {
	case *event.MouseDown:
		switch {
		case t.Button == event.ButtonLeft:
			l.pan.on = true
			l.pan.p = t.Point
			l.Cursor = event.MoveCursor
			l.View.BeginChange()
			return true
		case t.Button == event.ButtonWheelUp:
			l.wheelZoom(t.Point, WheelZoomStep)
			return true
		case t.Button == event.ButtonWheelDown:
			l.wheelZoom(t.Point, -WheelZoomStep)
			return true
		}
	case *event.MouseMove:
		if l.pan.on {
			d := t.Point.Sub(l.pan.p)
			l.pan.p = t.Point
			if d != (image.Point{}) {
				l.View.Pan(d.X, d.Y)
				l.MarkNeedsPaint()
			}
			return true
		}
	case *event.MouseUp:
		if l.pan.on && t.Button == event.ButtonLeft {
			l.pan.on = false
			l.Cursor = event.DefaultCursor
			l.View.EndChange()
			return true
		}
	}
	return false
}

func (l *Layer) wheelZoom(p image.Point, dz float64) {
	l.View.BeginChange()
	l.View.ZoomAt(p, dz)
	l.MarkNeedsPaint()

	l.wheelGen++
	gen := l.wheelGen
	time.AfterFunc(WheelIdle, func() {
		l.ctx.RunOnUIThread(func() {
			if gen == l.wheelGen && !l.pan.on {
				l.View.EndChange()
			}
		})
	})
}

//----------

func (l *Layer) Paint() {
	r := l.Bounds
	if r.Empty() {
		return
	}
	if l.img == nil || l.img.Bounds().Size() != r.Size() {
		l.img = image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	}

	dc := gg.NewContextForRGBA(l.img)
	dc.SetColor(l.TreeThemePaletteColor("map_bg"))
	dc.Clear()
	l.paintTiles(dc)
	l.paintAxes(dc)

	dst := l.ctx.Image()
	r2 := r.Intersect(dst.Bounds())
	imageutil.DrawOver(dst, r2, l.img, r2.Min.Sub(r.Min))
}

// Tile grid at the integer zoom below the current one.
func (l *Layer) paintTiles(dc *gg.Context) {
	v := l.View
	z := int(math.Floor(v.Zoom()))
	n := 1 << uint(z)
	ts := 2 * mercatorMax / float64(n) // tile size in mercator meters
	res := v.Resolution()

	min := v.mercatorAt(float64(l.Bounds.Min.X), float64(l.Bounds.Min.Y))
	max := v.mercatorAt(float64(l.Bounds.Max.X), float64(l.Bounds.Max.Y))
	x0 := int(math.Floor((min[0] + mercatorMax) / ts))
	x1 := int(math.Floor((max[0] + mercatorMax) / ts))
	y0 := mathutil.Limit(int(math.Floor((mercatorMax-min[1])/ts)), 0, n-1)
	y1 := mathutil.Limit(int(math.Floor((mercatorMax-max[1])/ts)), 0, n-1)

	ff := fontutil.DefaultFontFace(10)
	dc.SetFontFace(ff.Face)
	dc.SetLineWidth(1)
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			wx := mathutil.ModInt(tx, n) // wrapped around the antimeridian
			t := maptile.New(uint32(wx), uint32(ty), maptile.Zoom(z))
			shift := float64(tx-wx) * ts / res

			x, y, w, h := l.boundRect(t.Bound())
			x += shift
			if (tx+ty)%2 == 0 {
				dc.SetColor(l.TreeThemePaletteColor("map_tile"))
				dc.DrawRectangle(x, y, w, h)
				dc.Fill()
			}
			dc.SetColor(l.TreeThemePaletteColor("map_grid"))
			dc.DrawRectangle(x+0.5, y+0.5, w, h)
			dc.Stroke()

			dc.SetColor(l.TreeThemePaletteColor("map_text"))
			s := fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y)
			dc.DrawString(s, x+4, y+4+float64(ff.LineHeightInt()))
		}
	}
}

// Equator and prime meridian.
func (l *Layer) paintAxes(dc *gg.Context) {
	v := l.View
	ox := float64(l.Bounds.Min.X)
	oy := float64(l.Bounds.Min.Y)
	x, y := v.PointF(orb.Point{0, 0})
	x, y = x-ox, y-oy
	w, h := float64(l.Bounds.Dx()), float64(l.Bounds.Dy())

	dc.SetColor(l.TreeThemePaletteColor("map_axis"))
	dc.SetLineWidth(1)
	dc.DrawLine(0, math.Floor(y)+0.5, w, math.Floor(y)+0.5)
	dc.DrawLine(math.Floor(x)+0.5, 0, math.Floor(x)+0.5, h)
	dc.Stroke()
}

// Rectangle of a lon/lat bound in layer local coordinates.
func (l *Layer) boundRect(b orb.Bound) (x, y, w, h float64) {
	// top-left is min lon, max lat
	x0, y0 := l.View.PointF(orb.Point{b.Min[0], b.Max[1]})
	x1, y1 := l.View.PointF(orb.Point{b.Max[0], b.Min[1]})
	ox := float64(l.Bounds.Min.X)
	oy := float64(l.Bounds.Min.Y)
	return x0 - ox, y0 - oy, x1 - x0, y1 - y0
}
