// Package driver defines the window a ui draws into.
package driver

import (
	"image"
	"image/draw"

	"github.com/jmigpin/mapscalebar/util/uiutil/event"
)

type Window interface {
	NextEvent() interface{} // returns events from uiutil/event, or an error

	Close() error
	SetWindowName(string)

	Image() draw.Image
	PutImage(image.Rectangle) error
	ResizeImage(image.Rectangle) error

	SetCursor(event.Cursor)
}
