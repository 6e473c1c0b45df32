package driver

import (
	"image"

	"github.com/jmigpin/mapscalebar/driver/xdriver"
)

// NewWindow opens a window on the X server at $DISPLAY.
func NewWindow(size image.Point) (Window, error) {
	w, err := xdriver.NewWindow(size)
	if err != nil {
		return nil, err
	}
	return w, nil
}
