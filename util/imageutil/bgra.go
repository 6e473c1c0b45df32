package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// BGRA has the memory layout of the X server images (blue first). Colors
// going in and out are converted so callers keep working with RGBA.
type BGRA struct {
	image.RGBA
}

func NewBGRA(r image.Rectangle) *BGRA {
	u := image.NewRGBA(r)
	return &BGRA{*u}
}

func NewBGRAFromBuffer(buf []byte, r image.Rectangle) *BGRA {
	rgba := image.RGBA{Pix: buf, Stride: 4 * r.Dx(), Rect: r}
	return &BGRA{RGBA: rgba}
}

func BGRASize(r image.Rectangle) int {
	return r.Dx() * r.Dy() * 4
}

func (img *BGRA) ColorModel() color.Model {
	return color.RGBAModel
}

func (img *BGRA) Set(x, y int, c color.Color) {
	img.SetRGBA(x, y, RgbaColor(c))
}

func (img *BGRA) SetRGBA(x, y int, c color.RGBA) {
	c.R, c.B = c.B, c.R
	img.RGBA.SetRGBA(x, y, c)
}

func (img *BGRA) At(x, y int) color.Color {
	return img.RGBAAt(x, y)
}

func (img *BGRA) RGBAAt(x, y int) color.RGBA {
	c := img.RGBA.RGBAAt(x, y)
	c.R, c.B = c.B, c.R
	return c
}

func (img *BGRA) SubImage(r image.Rectangle) draw.Image {
	u := img.RGBA.SubImage(r).(*image.RGBA)
	return &BGRA{*u}
}

//----------

func BgraColor(c color.Color) color.RGBA {
	c2 := RgbaColor(c)
	c2.R, c2.B = c2.B, c2.R
	return c2
}

// Swaps the red and blue channels in place.
func swapRB(pix []uint8) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}
