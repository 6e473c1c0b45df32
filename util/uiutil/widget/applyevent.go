package widget

import (
	"image"

	"github.com/jmigpin/mapscalebar/util/uiutil/event"
)

type CursorContext interface {
	SetCursor(event.Cursor)
}

// ApplyEvent delivers input events to the tree. A node that handles a mouse down keeps receiving mouse events until the button is released.
type ApplyEvent struct {
	cctx CursorContext
	drag struct {
		node   Node
		button event.MouseButton
	}
}

func NewApplyEvent(cctx CursorContext) *ApplyEvent {
	return &ApplyEvent{cctx: cctx}
}

//----------

func (ae *ApplyEvent) Apply(node Node, ev interface{}, p image.Point) {
	switch evt := ev.(type) {
	case nil:
	case *event.MouseDown:
		if ae.drag.node != nil {
			ae.runEv(ae.drag.node, evt, p)
			break
		}
		ae.depthFirstEv(node, evt, p, func(n Node) {
			if !evt.Button.IsWheel() {
				ae.drag.node = n
				ae.drag.button = evt.Button
			}
		})
	case *event.MouseMove:
		if ae.drag.node != nil {
			ae.runEv(ae.drag.node, evt, p)
			break
		}
		ae.depthFirstEv(node, evt, p, nil)
	case *event.MouseUp:
		if ae.drag.node != nil {
			n := ae.drag.node
			if evt.Button == ae.drag.button {
				ae.drag.node = nil
			}
			ae.runEv(n, evt, p)
			break
		}
		ae.depthFirstEv(node, evt, p, nil)
	default:
		ae.depthFirstEv(node, evt, p, nil)
	}

	ae.setCursor(node, p)
}

//----------

func (ae *ApplyEvent) setCursor(node Node, p image.Point) {
	if ae.cctx == nil {
		return
	}
	var c event.Cursor
	if ae.drag.node != nil {
		c = ae.drag.node.Embed().Cursor
	} else {
		c = treeCursor(node, p)
	}
	if c == event.NoneCursor {
		c = event.DefaultCursor
	}
	ae.cctx.SetCursor(c)
}

func treeCursor(node Node, p image.Point) event.Cursor {
	ne := node.Embed()
	if !p.In(ne.Bounds) {
		return event.NoneCursor
	}
	var c event.Cursor
	ne.IterateWrappersReverse(func(child Node) bool {
		c = treeCursor(child, p)
		return c == event.NoneCursor // continue while no cursor was set
	})
	if c == event.NoneCursor {
		c = ne.Cursor
	}
	return c
}

//----------

// Depth first, later childs first since they are drawn over previous ones. The handled func is called with the node that handled the event.
func (ae *ApplyEvent) depthFirstEv(node Node, ev interface{}, p image.Point, handled func(Node)) event.Handled {
	if !p.In(node.Embed().Bounds) {
		return false
	}

	h := event.Handled(false)
	node.Embed().IterateWrappersReverse(func(c Node) bool {
		h = ae.depthFirstEv(c, ev, p, handled)
		return h == false // continue while not handled
	})

	if !h {
		h = ae.runEv(node, ev, p)
		if h && handled != nil {
			handled(node)
		}
	}
	return h
}

func (ae *ApplyEvent) runEv(node Node, ev interface{}, p image.Point) event.Handled {
	return node.OnInputEvent(ev, p)
}
