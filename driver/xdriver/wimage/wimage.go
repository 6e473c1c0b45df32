// Package wimage keeps the window image and sends it to the X server.
package wimage

import (
	"image"
	"image/draw"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Window image for drawing.
type WImage interface {
	Image() draw.Image
	PutImage(image.Rectangle) error
	PutImageCompleted()
	Resize(image.Rectangle) error
	Close() error
}

type Options struct {
	Conn       *xgb.Conn
	Window     xproto.Window
	ScreenInfo *xproto.ScreenInfo
	GCtx       xproto.Gcontext
	Logger     *slog.Logger
}

func NewWImage(opt *Options) (WImage, error) {
	// image using shared memory (better performance)
	wimg, err := NewShmWImage(opt)
	if err == nil {
		return wimg, nil
	}
	opt.Logger.Warn("unable to use shm image", "err", err)

	// default method via copy to pixmap
	return NewCopyWImage(opt)
}
