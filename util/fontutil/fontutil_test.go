package fontutil

import (
	"testing"
)

func TestFaceCache(t *testing.T) {
	ff1 := DefaultFontFace(10)
	ff2 := DefaultFontFace(10)
	if ff1 != ff2 {
		t.Fatal("expecting cached face")
	}
	if ff3 := DefaultFontFace(11); ff3 == ff1 {
		t.Fatal("expecting new face")
	}
}

func TestBaseLineIn(t *testing.T) {
	ff := DefaultFontFace(10)
	lh := Float64ToFixed266(12)
	bl := ff.BaseLineIn(lh)
	if bl <= 0 || bl > lh {
		t.Fatalf("baseline %v, line height %v", bl, lh)
	}
	if w := ff.MeasureString("10 km"); w <= 0 {
		t.Fatal(w)
	}
}
