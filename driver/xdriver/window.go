// Package xdriver implements a window on an X server.
package xdriver

import (
	"encoding/binary"
	"image"
	"image/draw"
	"log/slog"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/mapscalebar/driver/xdriver/wimage"
	"github.com/jmigpin/mapscalebar/driver/xdriver/xcursors"
	"github.com/jmigpin/mapscalebar/driver/xdriver/xinput"
	"github.com/jmigpin/mapscalebar/util/uiutil/event"
	"github.com/pkg/errors"
)

// Logger for the driver. Replaced by the application.
var Logger = slog.Default()

type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	Cursors *xcursors.Cursors
	XInput  *xinput.XInput
	WImg    wimage.WImage

	atoms struct {
		netWMName, utf8String       xproto.Atom
		wmProtocols, wmDeleteWindow xproto.Atom
	}

	events    chan interface{}
	closeOnce sync.Once
}

// NewWindow opens a window with the given size on the X server at $DISPLAY.
func NewWindow(size image.Point) (*Window, error) {
	conn, err := xgb.NewConnDisplay(os.Getenv("DISPLAY"))
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}

	// early, before the event loop goroutine
	wimage.Init(conn)

	win := &Window{
		Conn:   conn,
		events: make(chan interface{}, 8),
	}
	if err := win.initialize(size); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}

	go win.eventLoop()

	return win, nil
}

func (win *Window) initialize(size image.Point) error {
	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskKeyPress |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwBackPixel | xproto.CwEventMask)
	values := []uint32{win.Screen.WhitePixel, evMask}

	c := xproto.CreateWindowChecked(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, uint16(size.X), uint16(size.Y),
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)
	if err := c.Check(); err != nil {
		return err
	}

	if err := win.loadAtoms(); err != nil {
		return err
	}
	if err := win.setupDeleteWindow(); err != nil {
		return err
	}

	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx
	c2 := xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), 0, nil)
	if err := c2.Check(); err != nil {
		return err
	}

	xi, err := xinput.NewXInput(win.Conn)
	if err != nil {
		return err
	}
	win.XInput = xi

	win.Cursors = xcursors.NewCursors(win.Conn, win.Window)

	opt := &wimage.Options{
		Conn:       win.Conn,
		Window:     win.Window,
		ScreenInfo: win.Screen,
		GCtx:       win.GCtx,
		Logger:     Logger,
	}
	img, err := wimage.NewWImage(opt)
	if err != nil {
		return err
	}
	win.WImg = img

	_ = xproto.MapWindow(win.Conn, window)
	return nil
}

//----------

func (win *Window) loadAtoms() error {
	names := []string{"_NET_WM_NAME", "UTF8_STRING", "WM_PROTOCOLS", "WM_DELETE_WINDOW"}
	dsts := []*xproto.Atom{
		&win.atoms.netWMName,
		&win.atoms.utf8String,
		&win.atoms.wmProtocols,
		&win.atoms.wmDeleteWindow,
	}
	cookies := make([]xproto.InternAtomCookie, len(names))
	for i, name := range names {
		cookies[i] = xproto.InternAtom(win.Conn, false, uint16(len(name)), name)
	}
	for i, c := range cookies {
		reply, err := c.Reply()
		if err != nil {
			return errors.Wrap(err, names[i])
		}
		*dsts[i] = reply.Atom
	}
	return nil
}

// https://tronche.com/gui/x/icccm/sec-4.html#s-4.2.8.1
func (win *Window) setupDeleteWindow() error {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(win.atoms.wmDeleteWindow))
	cookie := xproto.ChangePropertyChecked(
		win.Conn,
		xproto.PropModeAppend,
		win.Window,
		win.atoms.wmProtocols, // property
		xproto.AtomAtom,       // type
		32,                    // format
		uint32(len(data))/4,
		data)
	return cookie.Check()
}

func (win *Window) isDeleteWindow(ev *xproto.ClientMessageEvent) bool {
	if ev.Type != win.atoms.wmProtocols || ev.Format != 32 {
		return false
	}
	return xproto.Atom(ev.Data.Data32[0]) == win.atoms.wmDeleteWindow
}

//----------

func (win *Window) Close() error {
	var err error
	win.closeOnce.Do(func() {
		err = win.WImg.Close()
		win.Conn.Close()
	})
	return err
}

func (win *Window) NextEvent() interface{} {
	return <-win.events
}

func (win *Window) eventLoop() {
	for {
		ev, xerr := win.Conn.WaitForEvent()
		if ev == nil && xerr == nil {
			win.events <- &event.WindowClose{}
			return
		}
		if xerr != nil {
			win.events <- errors.Wrap(xerr, "x")
		}
		if ev != nil {
			win.handleEvent(ev)
		}
	}
}

func (win *Window) handleEvent(ev xgb.Event) {
	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
		r := image.Rect(0, 0, int(t.Width), int(t.Height)) // must use (0,0)
		win.events <- &event.WindowResize{Rect: r}
	case xproto.ExposeEvent: // region needs paint
		if t.Count == 0 {
			win.events <- &event.WindowExpose{}
		}
	case xproto.MapNotifyEvent, xproto.ReparentNotifyEvent:

	case shm.CompletionEvent:
		win.WImg.PutImageCompleted()

	case xproto.MappingNotifyEvent: // keyboard mapping
		if err := win.XInput.ReadMapTable(); err != nil {
			win.events <- err
		}

	case xproto.KeyPressEvent:
		win.events <- win.XInput.KeyPress(&t)
	case xproto.ButtonPressEvent:
		win.events <- win.XInput.ButtonPress(&t)
	case xproto.ButtonReleaseEvent:
		win.events <- win.XInput.ButtonRelease(&t)
	case xproto.MotionNotifyEvent:
		win.events <- win.XInput.MotionNotify(&t)

	case xproto.ClientMessageEvent:
		if win.isDeleteWindow(&t) {
			win.events <- &event.WindowClose{}
		}

	default:
		Logger.Debug("unhandled x event", "ev", ev.String())
	}
}

//----------

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,
		win.atoms.netWMName,  // property
		win.atoms.utf8String, // target
		8,                    // format
		uint32(len(b)),
		b)
}

func (win *Window) Image() draw.Image {
	return win.WImg.Image()
}

func (win *Window) PutImage(r image.Rectangle) error {
	return win.WImg.PutImage(r)
}

func (win *Window) ResizeImage(r image.Rectangle) error {
	if r.Eq(win.Image().Bounds()) {
		return nil
	}
	return win.WImg.Resize(r)
}

func (win *Window) SetCursor(c event.Cursor) {
	if err := win.Cursors.SetCursor(c); err != nil {
		Logger.Error("set cursor", "err", err)
	}
}
