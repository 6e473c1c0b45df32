package event

import (
	"image"
)

// Events emitted by the drivers.

type WindowClose struct{}
type WindowExpose struct{}
type WindowResize struct{ Rect image.Rectangle }
type WindowInput struct {
	Point image.Point
	Event interface{}
}

//----------

type Handled bool

//----------

type MouseDown struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
}
type MouseUp struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
}

type KeyDown struct {
	Point image.Point
	Rune  rune
}

//----------

type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
	ButtonWheelLeft
	ButtonWheelRight
)

func (b MouseButton) IsWheel() bool {
	return b&(ButtonWheelUp|ButtonWheelDown|ButtonWheelLeft|ButtonWheelRight) != 0
}

type MouseButtons int32

func (mb MouseButtons) Has(b MouseButton) bool {
	return int32(mb)&int32(b) > 0
}

//----------

type Cursor int

const (
	NoneCursor Cursor = iota
	DefaultCursor
	MoveCursor
	WaitCursor
)
