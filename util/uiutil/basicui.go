package uiutil

import (
	"image"
	"image/draw"
	"log/slog"
	"sync"
	"time"

	"github.com/jmigpin/mapscalebar/driver"
	"github.com/jmigpin/mapscalebar/util/uiutil/event"
	"github.com/jmigpin/mapscalebar/util/uiutil/widget"
)

// BasicUI runs the event loop of a window and paints a widget tree. All tree changes must happen on the event loop goroutine (see RunOnUIThread).
type BasicUI struct {
	DrawFrameRate int // frames per second
	RootNode      widget.Node
	Win           driver.Window
	Logger        *slog.Logger

	OnEvent func(ev interface{}) // events not handled by the ui

	events    chan interface{}
	lastPaint time.Time
	curCursor event.Cursor
	ae        *widget.ApplyEvent

	closeOnce sync.Once
	closed    chan struct{}
}

func NewBasicUI(win driver.Window, root widget.Node, logger *slog.Logger) *BasicUI {
	if logger == nil {
		logger = slog.Default()
	}
	ui := &BasicUI{
		DrawFrameRate: 60,
		RootNode:      root,
		Win:           win,
		Logger:        logger,
		OnEvent:       func(interface{}) {},
		events:        make(chan interface{}, 32),
		closed:        make(chan struct{}),
	}
	ui.ae = widget.NewApplyEvent(ui)

	// window events go through the mouse move filter
	winEvents := make(chan interface{}, cap(ui.events))
	go ui.readWindowEvents(winEvents)
	go MouseMoveFilterLoop(winEvents, ui.events, ui.closed, ui.DrawFrameRate)

	return ui
}

func (ui *BasicUI) readWindowEvents(out chan<- interface{}) {
	defer close(out)
	for {
		ev := ui.Win.NextEvent()
		select {
		case out <- ev:
		case <-ui.closed:
			return
		}
		if _, ok := ev.(*event.WindowClose); ok {
			return
		}
	}
}

func (ui *BasicUI) Close() {
	ui.closeOnce.Do(func() {
		close(ui.closed)
		if err := ui.Win.Close(); err != nil {
			ui.Logger.Error("window close", "err", err)
		}
	})
}

//----------

// EventLoop handles events until the window closes.
func (ui *BasicUI) EventLoop() {
	defer ui.Close()
	for {
		select {
		case <-ui.closed:
			return
		case ev, ok := <-ui.events:
			if !ok {
				return
			}
			if _, ok := ev.(*event.WindowClose); ok {
				return
			}
			ui.HandleEvent(ev)
			ui.PaintIfTime()
		}
	}
}

func (ui *BasicUI) HandleEvent(ev interface{}) {
	switch t := ev.(type) {
	case *event.WindowResize:
		ui.resize(t.Rect)
	case *event.WindowExpose:
		ui.RootNode.Embed().MarkNeedsPaint()
	case *event.WindowInput:
		ui.ae.Apply(ui.RootNode, t.Event, t.Point)
	case *UIRunFuncEvent:
		t.Func()
	case error:
		ui.Logger.Error("event", "err", t)
	case struct{}:
		// no op
	default:
		ui.OnEvent(ev)
	}
}

func (ui *BasicUI) resize(r image.Rectangle) {
	if err := ui.Win.ResizeImage(r); err != nil {
		ui.Logger.Error("resize", "err", err)
		return
	}
	en := ui.RootNode.Embed()
	ib := ui.Win.Image().Bounds()
	if !en.Bounds.Eq(ib) {
		en.Bounds = ib
		en.MarkNeedsLayoutAndPaint()
	}
}

//----------

// This function should be called in the event loop after every event.
func (ui *BasicUI) PaintIfTime() {
	now := time.Now()
	d := now.Sub(ui.lastPaint)
	canPaint := d > (time.Second / time.Duration(ui.DrawFrameRate))
	if canPaint {
		if ui.Paint() {
			ui.lastPaint = now
		}
		return
	}
	if len(ui.events) == 0 && ui.RootNode.Embed().TreeNeedsPaint() {
		// didn't paint to avoid a high fps, ensure the loop iterates again later
		time.AfterFunc(time.Second/time.Duration(ui.DrawFrameRate)-d, ui.EnqueueNoOpEvent)
	}
}

// Paint lays out and paints the marked nodes, and puts the painted area in the window.
func (ui *BasicUI) Paint() bool {
	ui.RootNode.LayoutMarked()
	r := ui.RootNode.PaintMarked()
	if r.Empty() {
		return false
	}
	if err := ui.Win.PutImage(r); err != nil {
		ui.Logger.Error("put image", "err", err)
	}
	return true
}

func (ui *BasicUI) EnqueueNoOpEvent() {
	select {
	case ui.events <- struct{}{}:
	case <-ui.closed:
	}
}

//----------

// Implements widget.ImageContext.
func (ui *BasicUI) Image() draw.Image {
	return ui.Win.Image()
}

// Implements widget.CursorContext.
func (ui *BasicUI) SetCursor(c event.Cursor) {
	if ui.curCursor == c {
		return
	}
	ui.curCursor = c
	ui.Win.SetCursor(c)
}

// RunOnUIThread can be called from any goroutine.
func (ui *BasicUI) RunOnUIThread(f func()) {
	select {
	case ui.events <- &UIRunFuncEvent{f}:
	case <-ui.closed:
	}
}

type UIRunFuncEvent struct {
	Func func()
}
