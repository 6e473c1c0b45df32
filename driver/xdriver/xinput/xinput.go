package xinput

import (
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/mapscalebar/util/uiutil/event"
)

type XInput struct {
	km *KMap
}

func NewXInput(conn *xgb.Conn) (*XInput, error) {
	km, err := NewKMap(conn)
	if err != nil {
		return nil, err
	}
	return &XInput{km: km}, nil
}

func (xi *XInput) ReadMapTable() error {
	return xi.km.ReadTable()
}

//----------

func (xi *XInput) KeyPress(ev *xproto.KeyPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ru := xi.km.Lookup(ev.Detail, ev.State)
	ev2 := &event.KeyDown{Point: p, Rune: ru}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) ButtonPress(ev *xproto.ButtonPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButton(ev.Detail)
	bs := translateButtons(ev.State)
	ev2 := &event.MouseDown{Point: p, Button: b, Buttons: bs}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) ButtonRelease(ev *xproto.ButtonReleaseEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButton(ev.Detail)
	bs := translateButtons(ev.State)
	ev2 := &event.MouseUp{Point: p, Button: b, Buttons: bs}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) MotionNotify(ev *xproto.MotionNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	bs := translateButtons(ev.State)
	ev2 := &event.MouseMove{Point: p, Buttons: bs}
	return &event.WindowInput{Point: p, Event: ev2}
}

//----------

func translateButton(b xproto.Button) event.MouseButton {
	switch b {
	case 1:
		return event.ButtonLeft
	case 2:
		return event.ButtonMiddle
	case 3:
		return event.ButtonRight
	case 4:
		return event.ButtonWheelUp
	case 5:
		return event.ButtonWheelDown
	case 6:
		return event.ButtonWheelLeft
	case 7:
		return event.ButtonWheelRight
	}
	return event.ButtonNone
}

func translateButtons(state uint16) event.MouseButtons {
	var b event.MouseButton
	if state&xproto.KeyButMaskButton1 > 0 {
		b |= event.ButtonLeft
	}
	if state&xproto.KeyButMaskButton2 > 0 {
		b |= event.ButtonMiddle
	}
	if state&xproto.KeyButMaskButton3 > 0 {
		b |= event.ButtonRight
	}
	if state&xproto.KeyButMaskButton4 > 0 {
		b |= event.ButtonWheelUp
	}
	if state&xproto.KeyButMaskButton5 > 0 {
		b |= event.ButtonWheelDown
	}
	return event.MouseButtons(b)
}
