package scalebar

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"github.com/jmigpin/mapscalebar/util/fontutil"
	"github.com/jmigpin/mapscalebar/util/imageutil"
	"golang.org/x/text/language"
)

const (
	barTop      = 2
	barHeight   = 5
	numSegments = 5
)

// Renderer paints the bar and its label. The zero value paints with the default colors, font and language.
type Renderer struct {
	Tint     color.Color // bar
	Fg       color.Color // label text
	FontFace *fontutil.FontFace
	Lang     language.Tag
}

func (rd *Renderer) Render(dst draw.Image, r image.Rectangle, st State, cfg Config) {
	r2 := r.Intersect(dst.Bounds())
	if r2.Empty() {
		return
	}

	// paint in local coordinates on a transparent image, composite later
	img := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	lr := img.Bounds()

	bar := BarRect(lr, st.BarWidth)
	if !bar.Empty() {
		switch cfg.BarType {
		case Alternating:
			rd.paintAlternating(img, bar, st.BarWidth)
		case DoubleAlternating:
			rd.paintDoubleAlternating(img, bar, st.BarWidth)
		default:
			rd.paintSingleDivision(img, bar)
		}
	}

	rd.paintLabel(img, LabelRect(lr, st.BarWidth), st, cfg.LabelOption)

	imageutil.DrawOver(dst, r2, img, r2.Min.Sub(r.Min))
}

//----------

func (rd *Renderer) tint() color.Color {
	if rd.Tint == nil {
		return imageutil.RgbaFromInt(0x007aff)
	}
	return rd.Tint
}

func (rd *Renderer) fg() color.Color {
	if rd.Fg == nil {
		return color.Black
	}
	return rd.Fg
}

func (rd *Renderer) paintSingleDivision(img *image.RGBA, bar image.Rectangle) {
	// anti-aliased backing with a half pixel outset
	dc := gg.NewContextForRGBA(img)
	x, y := float64(bar.Min.X), float64(bar.Min.Y)
	w, h := float64(bar.Dx()), float64(bar.Dy())
	dc.DrawRectangle(x-0.5, y-0.5, w+1, h+1)
	dc.SetColor(imageutil.WhiteAlpha(0.5))
	dc.Fill()

	imageutil.BlendRectangle(img, bar, rd.tint())
}

func (rd *Renderer) paintAlternating(img *image.RGBA, bar image.Rectangle, barWidth float64) {
	tint := rd.tint()
	imageutil.BorderRectangle(img, bar.Inset(-1), imageutil.WhiteAlpha(0.5), 1)
	imageutil.BorderRectangle(img, bar, tint, 1)

	inner := bar.Inset(1)
	imageutil.BlendRectangle(img, inner, imageutil.WhiteAlpha(imageutil.Alpha(tint)))
	for i := 1; i < numSegments; i += 2 {
		sr := segmentRect(inner, barWidth, i)
		imageutil.BlendRectangle(img, sr.Intersect(inner), tint)
	}
}

func (rd *Renderer) paintDoubleAlternating(img *image.RGBA, bar image.Rectangle, barWidth float64) {
	tint := rd.tint()
	imageutil.BlendRectangle(img, bar.Inset(-1), imageutil.WhiteAlpha(imageutil.Alpha(tint)))
	imageutil.BorderRectangle(img, bar, tint, 1)

	inner := bar.Inset(1)
	midY := int(math.Round(float64(inner.Min.Y) + float64(inner.Dy())/2))
	for i := 0; i < numSegments; i++ {
		sr := segmentRect(inner, barWidth, i)
		if i%2 == 0 {
			sr.Max.Y = midY
		} else {
			sr.Min.Y = midY
		}
		imageutil.BlendRectangle(img, sr.Intersect(inner), tint)
	}
}

//----------

// BarRect returns the pixel aligned bar rectangle, horizontally centered in r.
func BarRect(r image.Rectangle, barWidth float64) image.Rectangle {
	y0 := r.Min.Y + barTop
	if !(barWidth > 0) {
		cx := r.Min.X + r.Dx()/2
		return image.Rect(cx, y0, cx, y0+barHeight)
	}
	x0 := float64(r.Min.X) + (float64(r.Dx())-barWidth)/2
	x1 := x0 + barWidth
	return image.Rect(int(math.Floor(x0)), y0, int(math.Ceil(x1)), y0+barHeight)
}

// Segment i of numSegments equal parts of the bar width, starting at the inner rect.
func segmentRect(inner image.Rectangle, barWidth float64, i int) image.Rectangle {
	sw := barWidth / numSegments
	x0 := float64(inner.Min.X) + sw*float64(i)
	x1 := x0 + sw
	return image.Rect(int(math.Round(x0)), inner.Min.Y, int(math.Round(x1)), inner.Max.Y)
}
