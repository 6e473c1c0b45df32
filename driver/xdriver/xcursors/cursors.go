// Package xcursors loads glyph cursors from the X cursor font.
package xcursors

import (
	"image/color"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/jmigpin/mapscalebar/util/imageutil"
	"github.com/jmigpin/mapscalebar/util/uiutil/event"
	"github.com/pkg/errors"
)

// https://tronche.com/gui/x/xlib/appendix/b/

type Cursors struct {
	conn *xgb.Conn
	win  xproto.Window
	m    map[uint16]xproto.Cursor
	cur  uint16
}

func NewCursors(conn *xgb.Conn, win xproto.Window) *Cursors {
	return &Cursors{
		conn: conn,
		win:  win,
		m:    map[uint16]xproto.Cursor{},
		cur:  parentCursor,
	}
}

func (cs *Cursors) SetCursor(c event.Cursor) error {
	g := Glyph(c)
	if g == cs.cur {
		return nil
	}
	xc, ok := cs.m[g]
	if !ok {
		xc2, err := cs.load(g, color.Black, color.White)
		if err != nil {
			return errors.Wrapf(err, "cursor %v", g)
		}
		cs.m[g] = xc2
		xc = xc2
	}
	cs.cur = g
	mask := uint32(xproto.CwCursor)
	values := []uint32{uint32(xc)}
	_ = xproto.ChangeWindowAttributes(cs.conn, cs.win, mask, values)
	return nil
}

func (cs *Cursors) load(g uint16, fg, bg color.Color) (xproto.Cursor, error) {
	if g == parentCursor {
		return 0, nil // none: use the parent window cursor
	}
	fontId, err := xproto.NewFontId(cs.conn)
	if err != nil {
		return 0, err
	}
	cursor, err := xproto.NewCursorId(cs.conn)
	if err != nil {
		return 0, err
	}
	name := "cursor"
	err = xproto.OpenFontChecked(cs.conn, fontId, uint16(len(name)), name).Check()
	if err != nil {
		return 0, err
	}
	defer xproto.CloseFont(cs.conn, fontId)

	ur, ug, ub, _ := imageutil.ColorUint16s(fg)
	vr, vg, vb, _ := imageutil.ColorUint16s(bg)

	// the mask glyph follows the cursor glyph in the font
	err = xproto.CreateGlyphCursorChecked(
		cs.conn, cursor,
		fontId, fontId,
		g, g+1,
		ur, ug, ub,
		vr, vg, vb).Check()
	if err != nil {
		return 0, err
	}
	return cursor, nil
}

//----------

// Value after the last glyph of the cursor font (152), used to reset to the parent window cursor.
const parentCursor = 200

// Glyph in the X cursor font for a cursor.
func Glyph(c event.Cursor) uint16 {
	switch c {
	case event.MoveCursor:
		return xcursor.Fleur
	case event.WaitCursor:
		return xcursor.Watch
	}
	return parentCursor
}
