package scalebar

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/jmigpin/mapscalebar/util/fontutil"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

const (
	labelTop           = 8
	labelHeight        = 10
	labelMaxLineHeight = 12
	LabelFontSize      = 10
)

// LabelText returns the label string. With edges, the left and right labels are separated by a tab.
func LabelText(st State, opt LabelOption, tag language.Tag) string {
	s := fmt.Sprintf("%d %s", st.Value, st.Unit.Symbol(tag))
	if opt == LabelCenter {
		return s
	}
	return "0\t" + s
}

// LabelRect is below the bar and has the same horizontal extent.
func LabelRect(r image.Rectangle, barWidth float64) image.Rectangle {
	y0 := r.Min.Y + labelTop
	if !(barWidth > 0) {
		return image.Rectangle{}
	}
	x0 := float64(r.Min.X) + (float64(r.Dx())-barWidth)/2
	x1 := x0 + barWidth
	return image.Rect(int(math.Floor(x0)), y0, int(math.Ceil(x1)), y0+labelHeight)
}

//----------

func (rd *Renderer) fontFace() *fontutil.FontFace {
	if rd.FontFace != nil {
		return rd.FontFace
	}
	return fontutil.DefaultFontFace(LabelFontSize)
}

func (rd *Renderer) paintLabel(img *image.RGBA, lr image.Rectangle, st State, opt LabelOption) {
	if lr.Empty() {
		return
	}
	ff := rd.fontFace()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(rd.fg()),
		Face: ff.Face,
	}
	baseline := fixed.I(lr.Min.Y) + ff.BaseLineIn(fixed.I(labelMaxLineHeight))

	minX, maxX := fixed.I(lr.Min.X), fixed.I(lr.Max.X)
	str := LabelText(st, opt, rd.Lang)
	if left, right, ok := strings.Cut(str, "\t"); ok {
		// left aligned, and right aligned at the tab stop on the right edge
		d.Dot = fixed.Point26_6{X: minX, Y: baseline}
		d.DrawString(left)
		d.Dot = fixed.Point26_6{X: maxX - d.MeasureString(right), Y: baseline}
		d.DrawString(right)
		return
	}
	w := d.MeasureString(str)
	d.Dot = fixed.Point26_6{X: minX + (maxX-minX-w)/2, Y: baseline}
	d.DrawString(str)
}
