package driver

import (
	"image"
	"testing"

	"github.com/jmigpin/mapscalebar/util/uiutil/event"
)

var _ Window = (*MemWindow)(nil)

func TestMemWindowEvents(t *testing.T) {
	win := NewMemWindow(image.Rect(0, 0, 10, 10))
	win.Send(&event.WindowExpose{})
	if _, ok := win.NextEvent().(*event.WindowExpose); !ok {
		t.Fatal("expecting expose")
	}
	win.Close()
	win.Close()
	if _, ok := win.NextEvent().(*event.WindowClose); !ok {
		t.Fatal("expecting close")
	}
	win.Send(&event.WindowExpose{}) // doesn't block after close
}

func TestMemWindowImage(t *testing.T) {
	win := NewMemWindow(image.Rect(0, 0, 10, 10))
	r := image.Rect(0, 0, 30, 20)
	if err := win.ResizeImage(r); err != nil {
		t.Fatal(err)
	}
	if win.Image().Bounds() != r {
		t.Fatal(win.Image().Bounds())
	}
	_ = win.PutImage(image.Rect(0, 0, 5, 5))
	_ = win.PutImage(image.Rect(10, 10, 15, 15))
	n, u := win.Puts()
	if n != 2 || u != image.Rect(0, 0, 15, 15) {
		t.Fatal(n, u)
	}
}
