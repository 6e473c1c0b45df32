package core

import (
	"image"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/jmigpin/mapscalebar/driver"
	"github.com/jmigpin/mapscalebar/scalebar"
	"github.com/jmigpin/mapscalebar/util/fontutil"
	"github.com/jmigpin/mapscalebar/util/imageutil"
	"github.com/jmigpin/mapscalebar/util/uiutil/event"
	"github.com/jmigpin/mapscalebar/util/uiutil/widget"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var DefaultSize = image.Point{640, 480}

// RenderFrame paints one frame without a display.
func RenderFrame(opt *Options) (*image.RGBA, error) {
	c, win, err := newHeadless(opt)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	c.UI.Paint()
	return win.RGBA(), nil
}

func newHeadless(opt *Options) (*Controller, *driver.MemWindow, error) {
	size := opt.Size.Point
	if size == (image.Point{}) {
		size = DefaultSize
	}
	r := image.Rectangle{Max: size}
	win := driver.NewMemWindow(r)
	c, err := NewController(win, opt)
	if err != nil {
		return nil, nil, err
	}
	c.UI.HandleEvent(&event.WindowResize{Rect: r})
	return c, win, nil
}

func SavePNG(filename string, img image.Image) error {
	return gg.SavePNG(filename, img)
}

//----------

const (
	previewPad      = 8
	previewCaptionW = 150
	previewRowH     = 28
)

// RenderPreview paints every bar type and label option at the preview scale.
func RenderPreview(opt *Options) *image.RGBA {
	n := scalebar.NumBarTypes * scalebar.NumLabelOptions
	w := previewPad*2 + previewCaptionW + int(scalebar.MaxBarWidth) + 10
	h := previewPad*2 + n*previewRowH
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ctx := &imageCtx{img: img}

	root := &previewNode{ctx: ctx}
	root.SetWrapperForRoot(root)
	root.Bounds = img.Bounds()
	if c := opt.Scale.Tint.Color; c != nil {
		root.SetThemePaletteColor("tint", c)
	}

	m := previewMap{mpp: scalebar.PreviewMetersPerPixel}
	for t := scalebar.BarType(0); t < scalebar.NumBarTypes; t++ {
		for o := scalebar.LabelOption(0); o < scalebar.NumLabelOptions; o++ {
			row := &previewNode{ctx: ctx, row: true}
			caption := &captionNode{ctx: ctx, text: t.String() + " / " + o.String()}
			sb := scalebar.NewScaleBar(ctx)
			sb.SetConfig(scalebar.Config{BarType: t, LabelOption: o})
			sb.SetLang(opt.Scale.Lang)
			row.Append(caption, sb)
			root.Append(row)
			sb.SetMap(m)
		}
	}

	root.LayoutTree()
	root.PaintTree()
	return img
}

type imageCtx struct {
	img draw.Image
}

func (ctx *imageCtx) Image() draw.Image { return ctx.img }

// Constant meters per pixel.
type previewMap struct {
	mpp float64
}

func (m previewMap) MetersBetween(p0, p1 image.Point) float64 {
	d := p1.Sub(p0)
	if d.X < 0 {
		d.X = -d.X
	}
	return m.mpp * float64(d.X)
}

//----------

// Stacks childs vertically, or horizontally with a caption column if row is set.
type previewNode struct {
	widget.ENode
	ctx *imageCtx
	row bool
}

func (n *previewNode) Layout() {
	if n.row {
		x := n.Bounds.Min.X
		n.IterateWrappers2(func(child widget.Node) {
			r := n.Bounds
			r.Min.X = x
			if _, ok := child.(*captionNode); ok {
				r.Max.X = x + previewCaptionW
			}
			child.Embed().Bounds = r
			x = r.Max.X
		})
		return
	}
	y := n.Bounds.Min.Y + previewPad
	n.IterateWrappers2(func(child widget.Node) {
		r := image.Rect(n.Bounds.Min.X+previewPad, y, n.Bounds.Max.X-previewPad, y+previewRowH)
		child.Embed().Bounds = r
		y += previewRowH
	})
}

// The scale bar doesn't paint its background.
func (n *previewNode) Paint() {
	imageutil.FillRectangle(n.ctx.Image(), n.Bounds, n.TreeThemePaletteColor("bg"))
}

type captionNode struct {
	widget.ENode
	ctx  *imageCtx
	text string
}

func (cn *captionNode) Paint() {
	ff := fontutil.DefaultFontFace(11)
	d := &font.Drawer{
		Dst:  cn.ctx.Image(),
		Src:  image.NewUniform(cn.TreeThemePaletteColor("fg")),
		Face: ff.Face,
	}
	lh := fixed.I(cn.Bounds.Dy())
	d.Dot = fixed.Point26_6{X: fixed.I(cn.Bounds.Min.X), Y: fixed.I(cn.Bounds.Min.Y) + ff.BaseLineIn(lh)}
	d.DrawString(cn.text)
}
