package wimage

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/mapscalebar/util/imageutil"
)

// X max request length is (2^16)*4 bytes, images are sent in chunks of rows.
const (
	putImageReqHeader = 28
	maxReqSize        = (1 << 16) * 4
)

type CopyWImage struct {
	opt *Options
	img *imageutil.BGRA
}

func NewCopyWImage(opt *Options) (*CopyWImage, error) {
	wi := &CopyWImage{opt: opt}
	if err := wi.Resize(image.Rect(0, 0, 1, 1)); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *CopyWImage) Close() error {
	wi.img = nil
	return nil
}

func (wi *CopyWImage) Resize(r image.Rectangle) error {
	wi.img = imageutil.NewBGRA(r)
	return nil
}

func (wi *CopyWImage) Image() draw.Image {
	return wi.img
}

func (wi *CopyWImage) PutImage(r image.Rectangle) error {
	r = r.Intersect(wi.img.Bounds())
	if r.Empty() {
		return nil
	}
	for _, c := range chunks(r, maxChunkPixels()) {
		data := wi.rowsData(c)
		_ = xproto.PutImage( // unchecked, errors arrive in the event loop
			wi.opt.Conn,
			xproto.ImageFormatZPixmap,
			xproto.Drawable(wi.opt.Window),
			wi.opt.GCtx,
			uint16(c.Dx()), uint16(c.Dy()),
			int16(c.Min.X), int16(c.Min.Y),
			0, // left pad, must be 0 for ZPixmap format
			wi.opt.ScreenInfo.RootDepth,
			data)
	}
	return nil
}

func (wi *CopyWImage) rowsData(c image.Rectangle) []byte {
	w := c.Dx() * 4
	data := make([]byte, w*c.Dy())
	for y := c.Min.Y; y < c.Max.Y; y++ {
		i := (y - c.Min.Y) * w
		j := wi.img.PixOffset(c.Min.X, y)
		copy(data[i:i+w], wi.img.Pix[j:j+w])
	}
	return data
}

func (wi *CopyWImage) PutImageCompleted() {
	panic("copywimage: not expecting async put image completed")
}

//----------

func maxChunkPixels() int {
	return (maxReqSize - putImageReqHeader) / 4
}

// Splits r in horizontal bands with at most max pixels each.
func chunks(r image.Rectangle, max int) []image.Rectangle {
	if r.Dx() > max {
		panic(fmt.Sprintf("copywimage: dx>max, %v>%v", r.Dx(), max))
	}
	h := max / r.Dx()
	var u []image.Rectangle
	for y := r.Min.Y; y < r.Max.Y; y += h {
		c := image.Rect(r.Min.X, y, r.Max.X, y+h).Intersect(r)
		u = append(u, c)
	}
	return u
}
