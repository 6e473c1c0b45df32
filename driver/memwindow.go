package driver

import (
	"image"
	"image/draw"
	"sync"

	"github.com/jmigpin/mapscalebar/util/uiutil/event"
)

// MemWindow is a window without a display. Events are injected with Send; PutImage only records the rectangle.
type MemWindow struct {
	Name   string
	Cursor event.Cursor

	img    *image.RGBA
	events chan interface{}

	mu        sync.Mutex
	puts      int
	putsUnion image.Rectangle

	closeOnce sync.Once
	closed    chan struct{}
}

func NewMemWindow(r image.Rectangle) *MemWindow {
	return &MemWindow{
		img:    image.NewRGBA(r),
		events: make(chan interface{}, 64),
		closed: make(chan struct{}),
	}
}

func (win *MemWindow) Send(ev interface{}) {
	select {
	case win.events <- ev:
	case <-win.closed:
	}
}

func (win *MemWindow) NextEvent() interface{} {
	select {
	case ev := <-win.events:
		return ev
	case <-win.closed:
		return &event.WindowClose{}
	}
}

func (win *MemWindow) Close() error {
	win.closeOnce.Do(func() { close(win.closed) })
	return nil
}

func (win *MemWindow) SetWindowName(s string) {
	win.Name = s
}

func (win *MemWindow) SetCursor(c event.Cursor) {
	win.Cursor = c
}

//----------

func (win *MemWindow) Image() draw.Image {
	return win.img
}

// RGBA returns the window image.
func (win *MemWindow) RGBA() *image.RGBA {
	return win.img
}

func (win *MemWindow) ResizeImage(r image.Rectangle) error {
	if !r.Eq(win.img.Bounds()) {
		win.img = image.NewRGBA(r)
	}
	return nil
}

func (win *MemWindow) PutImage(r image.Rectangle) error {
	win.mu.Lock()
	defer win.mu.Unlock()
	win.puts++
	win.putsUnion = win.putsUnion.Union(r)
	return nil
}

// Puts returns how many times PutImage was called and the union of the rectangles.
func (win *MemWindow) Puts() (int, image.Rectangle) {
	win.mu.Lock()
	defer win.mu.Unlock()
	return win.puts, win.putsUnion
}
