package xcursors

import (
	"testing"

	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/jmigpin/mapscalebar/util/uiutil/event"
)

func TestGlyph(t *testing.T) {
	if g := Glyph(event.MoveCursor); g != xcursor.Fleur {
		t.Fatal(g)
	}
	if g := Glyph(event.WaitCursor); g != xcursor.Watch {
		t.Fatal(g)
	}
	for _, c := range []event.Cursor{event.NoneCursor, event.DefaultCursor} {
		if g := Glyph(c); g != parentCursor {
			t.Fatal(c, g)
		}
	}
}
