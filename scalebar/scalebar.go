package scalebar

import (
	"image"

	"github.com/jmigpin/mapscalebar/util/uiutil/widget"
	"golang.org/x/text/language"
)

// MapView is the map a scale bar belongs to.
type MapView interface {
	// Ground distance in meters between two points in window coordinates.
	MetersBetween(p0, p1 image.Point) float64
}

//----------

// ScaleBar is a transparent overlay widget. It paints nothing until a map is set.
type ScaleBar struct {
	widget.ENode

	ctx   widget.ImageContext
	mapv  MapView
	cfg   Config
	lang  language.Tag
	state State
}

func NewScaleBar(ctx widget.ImageContext) *ScaleBar {
	sb := &ScaleBar{ctx: ctx}
	return sb
}

//----------

func (sb *ScaleBar) Map() MapView {
	return sb.mapv
}

// SetMap sets the map this scale bar belongs to and adjusts the scale.
func (sb *ScaleBar) SetMap(m MapView) {
	sb.mapv = m
	sb.AdjustScale()
	sb.markNeedsPaint()
}

func (sb *ScaleBar) State() State {
	return sb.state
}

func (sb *ScaleBar) Config() Config {
	return sb.cfg
}

func (sb *ScaleBar) SetConfig(cfg Config) {
	sb.cfg = cfg
	sb.markNeedsPaint()
}
func (sb *ScaleBar) SetBarType(t BarType) {
	sb.cfg.BarType = t
	sb.markNeedsPaint()
}
func (sb *ScaleBar) SetLabelOption(o LabelOption) {
	sb.cfg.LabelOption = o
	sb.markNeedsPaint()
}

func (sb *ScaleBar) SetLang(tag language.Tag) {
	sb.lang = tag
	sb.markNeedsPaint()
}

//----------

// AdjustScale recomputes the scale from the map. No-op without a map or if the map reports a zero distance.
func (sb *ScaleBar) AdjustScale() {
	if sb.mapv == nil {
		return
	}
	p0 := sb.Bounds.Min
	p1 := p0.Add(image.Point{SampleDistance, 0})
	mpp := sb.mapv.MetersBetween(p0, p1) / SampleDistance

	st, ok := ComputeScale(mpp)
	if !ok {
		return
	}
	sb.state = st
	sb.markNeedsPaint()
}

// The widget doesn't paint its background; the node below must repaint the area.
func (sb *ScaleBar) markNeedsPaint() {
	if sb.Parent != nil {
		sb.Parent.MarkNeedsPaint()
		return
	}
	sb.MarkNeedsPaint()
}

//----------

func (sb *ScaleBar) Measure(hint image.Point) image.Point {
	p := image.Point{int(MaxBarWidth) + 10, labelTop + labelMaxLineHeight}
	return p
}

func (sb *ScaleBar) Layout() {
	// bounds may have changed
	sb.AdjustScale()
}

func (sb *ScaleBar) Paint() {
	if sb.mapv == nil {
		return
	}
	rd := &Renderer{
		Tint:     sb.TreeThemePaletteColor("tint"),
		Fg:       sb.TreeThemePaletteColor("fg"),
		FontFace: sb.Theme().FontFace,
		Lang:     sb.lang,
	}
	rd.Render(sb.ctx.Image(), sb.Bounds, sb.state, sb.cfg)
}
