package xinput

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// xproto.Keycode is a physical key.
// xproto.Keysym is the encoding of a symbol on the cap of a key.
// A list of keysyms is associated with each keycode.

// Keyboard mapping
type KMap struct {
	conn  *xgb.Conn
	min   xproto.Keycode
	reply *xproto.GetKeyboardMappingReply
}

func NewKMap(conn *xgb.Conn) (*KMap, error) {
	km := &KMap{conn: conn}
	if err := km.ReadTable(); err != nil {
		return nil, err
	}
	return km, nil
}

func (km *KMap) ReadTable() error {
	si := xproto.Setup(km.conn)
	count := byte(si.MaxKeycode - si.MinKeycode + 1)
	if count == 0 {
		return fmt.Errorf("bad keycode count: %v", count)
	}
	reply, err := xproto.GetKeyboardMapping(km.conn, si.MinKeycode, count).Reply()
	if err != nil {
		return err
	}
	if reply.KeysymsPerKeycode < 2 {
		return fmt.Errorf("keysyms per keycode < 2")
	}
	km.min = si.MinKeycode
	km.reply = reply
	return nil
}

func (km *KMap) keysym(kc xproto.Keycode, col int) xproto.Keysym {
	w := int(km.reply.KeysymsPerKeycode)
	i := int(kc-km.min)*w + col
	if i < 0 || i >= len(km.reply.Keysyms) {
		return 0
	}
	return km.reply.Keysyms[i]
}

// Lookup returns the rune of a keycode, using the shifted column if shift is on.
func (km *KMap) Lookup(kc xproto.Keycode, state uint16) rune {
	col := 0
	if state&xproto.ModMaskShift != 0 {
		col = 1
	}
	ks := km.keysym(kc, col)
	if ks == 0 && col == 1 {
		ks = km.keysym(kc, 0)
	}
	return keysymRune(ks)
}

//----------

func keysymRune(ks xproto.Keysym) rune {
	switch {
	case ks >= 0x20 && ks <= 0x7e, ks >= 0xa0 && ks <= 0xff: // latin-1
		return rune(ks)
	case ks&0xff000000 == 0x01000000: // unicode
		return rune(ks & 0x00ffffff)
	}
	switch ks {
	case 0xff1b: // XK_Escape
		return '\x1b'
	case 0xff0d, 0xff8d: // XK_Return, XK_KP_Enter
		return '\r'
	case 0xffab: // XK_KP_Add
		return '+'
	case 0xffad: // XK_KP_Subtract
		return '-'
	}
	return 0
}
