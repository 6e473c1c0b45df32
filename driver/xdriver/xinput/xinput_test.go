package xinput

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/mapscalebar/util/uiutil/event"
)

func TestKeysymRune(t *testing.T) {
	type test struct {
		ks xproto.Keysym
		r  rune
	}
	tests := []test{
		{0x71, 'q'},
		{0x2b, '+'},
		{0xe9, 'é'},
		{0x01000439, 'й'},
		{0xff1b, '\x1b'},
		{0xffab, '+'},
		{0xffe1, 0}, // shift
	}
	for _, tt := range tests {
		if r := keysymRune(tt.ks); r != tt.r {
			t.Errorf("%x: got %q, expecting %q", tt.ks, r, tt.r)
		}
	}
}

func TestTranslateButtons(t *testing.T) {
	if b := translateButton(4); !b.IsWheel() {
		t.Fatal(b)
	}
	if b := translateButton(1); b != event.ButtonLeft || b.IsWheel() {
		t.Fatal(b)
	}
	bs := translateButtons(xproto.KeyButMaskButton1 | xproto.KeyButMaskButton3)
	if !bs.Has(event.ButtonLeft) || !bs.Has(event.ButtonRight) || bs.Has(event.ButtonMiddle) {
		t.Fatal(bs)
	}
}
