package wimage

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/mapscalebar/util/imageutil"
	"github.com/pkg/errors"
)

// Waiting for the server completion event fails after this time.
const putCompletedTimeout = 500 * time.Millisecond

type ShmWImage struct {
	opt       *Options
	segId     shm.Seg
	buf       *shmBuf
	attached  bool
	completed chan struct{}

	// server side segment attach/detach
	attach func(shmId uintptr) error
	detach func()
}

func NewShmWImage(opt *Options) (*ShmWImage, error) {
	if initErr != nil {
		return nil, initErr
	}
	wi := &ShmWImage{opt: opt, completed: make(chan struct{}, 1)}

	segId, err := shm.NewSegId(opt.Conn)
	if err != nil {
		return nil, err
	}
	wi.segId = segId
	wi.attach = func(shmId uintptr) error {
		readOnly := false
		return shm.AttachChecked(opt.Conn, segId, uint32(shmId), readOnly).Check()
	}
	wi.detach = func() {
		_ = shm.Detach(opt.Conn, segId)
	}

	if err := wi.Resize(image.Rect(0, 0, 1, 1)); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *ShmWImage) Close() error {
	if wi.attached {
		wi.attached = false
		wi.detach()
	}
	if wi.buf == nil {
		return nil
	}
	err := wi.buf.close()
	wi.buf = nil
	return err
}

// The current image stays mapped until the new one is attached, so a failed resize never leaves Image() pointing at freed memory.
func (wi *ShmWImage) Resize(r image.Rectangle) error {
	buf, err := openShmBuf(r)
	if err != nil {
		return err
	}

	// need to detach to attach a new segment
	if wi.attached {
		wi.attached = false
		wi.detach()
	}
	if err := wi.attach(buf.shmId); err != nil {
		_ = buf.close()
		// puts fail until a resize succeeds
		return errors.Wrap(err, "shm attach")
	}
	wi.attached = true

	old := wi.buf
	wi.buf = buf
	if old != nil {
		return old.close()
	}
	return nil
}

func (wi *ShmWImage) Image() draw.Image {
	return wi.buf.img
}

func (wi *ShmWImage) PutImage(r image.Rectangle) error {
	if !wi.attached {
		return fmt.Errorf("shm putimage: segment not attached")
	}

	// drop a completion that arrived late
	select {
	case <-wi.completed:
	default:
	}

	b := wi.buf.img.Bounds()
	c := shm.PutImageChecked(
		wi.opt.Conn,
		xproto.Drawable(wi.opt.Window),
		wi.opt.GCtx,
		uint16(b.Dx()), uint16(b.Dy()), // total width/height
		uint16(r.Min.X), uint16(r.Min.Y), uint16(r.Dx()), uint16(r.Dy()), // src x,y,w,h
		int16(r.Min.X), int16(r.Min.Y), // dst x,y
		wi.opt.ScreenInfo.RootDepth,
		xproto.ImageFormatZPixmap,
		1, // send shm.CompletionEvent when done
		wi.segId,
		0) // offset
	if err := c.Check(); err != nil {
		return errors.Wrap(err, "shm putimage")
	}

	// the image can't be touched until the server is done with it
	select {
	case <-wi.completed:
		return nil
	case <-time.After(putCompletedTimeout):
		return fmt.Errorf("shm putimage: completion timeout")
	}
}

// Called from the event loop on shm.CompletionEvent.
func (wi *ShmWImage) PutImageCompleted() {
	select {
	case wi.completed <- struct{}{}:
	default:
	}
}

//----------

// Shared memory segment mapped as the window image.
type shmBuf struct {
	shmId, addr uintptr
	img         *imageutil.BGRA
}

// Replaced in tests.
var shmOpen, shmClose = ShmOpen, ShmClose

func openShmBuf(r image.Rectangle) (*shmBuf, error) {
	shmId, addr, b, err := shmOpen(imageutil.BGRASize(r))
	if err != nil {
		return nil, err
	}
	img := imageutil.NewBGRAFromBuffer(b, r)
	return &shmBuf{shmId: shmId, addr: addr, img: img}, nil
}

func (b *shmBuf) close() error {
	return shmClose(b.shmId, b.addr)
}

//----------

var initErr = fmt.Errorf("shm: not initialized")

// Init must be called early, before other goroutines use the connection (xgb extension map is not synced).
func Init(conn *xgb.Conn) {
	initErr = shm.Init(conn)
}
