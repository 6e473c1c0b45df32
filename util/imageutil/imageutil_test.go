package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	type in struct {
		s string
		c color.RGBA
	}
	ins := []in{
		{"#007aff", color.RGBA{0, 0x7a, 0xff, 0xff}},
		{"#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"#ff000080", color.RGBA{0x80, 0, 0, 0x80}},
		{"red", color.RGBA{0xff, 0, 0, 0xff}},
		{" Black ", color.RGBA{0, 0, 0, 0xff}},
	}
	for _, u := range ins {
		c, err := ParseColor(u.s)
		if err != nil {
			t.Fatal(err)
		}
		if got := RgbaColor(c); got != u.c {
			t.Fatalf("%q: got %v, expected %v", u.s, got, u.c)
		}
	}

	for _, s := range []string{"", "#12", "#gggggg", "nocolor"} {
		if _, err := ParseColor(s); err == nil {
			t.Fatalf("%q: expecting error", s)
		}
	}
}

func TestBGRASetAt(t *testing.T) {
	img := NewBGRA(image.Rect(0, 0, 2, 2))
	c := color.RGBA{1, 2, 3, 255}
	img.Set(1, 1, c)
	if got := img.At(1, 1); got != c {
		t.Fatal(got)
	}
	// memory layout is blue first
	i := img.PixOffset(1, 1)
	if img.Pix[i] != 3 || img.Pix[i+2] != 1 {
		t.Fatal(img.Pix[i : i+4])
	}
}

func TestDrawOverBGRA(t *testing.T) {
	r := image.Rect(0, 0, 4, 4)
	src := image.NewRGBA(r)
	FillRectangle(src, image.Rect(1, 1, 3, 3), color.RGBA{255, 0, 0, 255})

	dst := NewBGRA(r)
	FillRectangle(dst, r, color.RGBA{0, 0, 255, 255})
	DrawOver(dst, r, src, image.Point{})

	if got := RgbaColor(dst.At(1, 1)); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatal(got)
	}
	if got := RgbaColor(dst.At(0, 0)); got != (color.RGBA{0, 0, 255, 255}) {
		t.Fatal(got)
	}
}

func TestBorderRectangle(t *testing.T) {
	r := image.Rect(0, 0, 5, 5)
	img := image.NewRGBA(r)
	c := color.RGBA{0, 0, 0, 255}
	BorderRectangle(img, r, c, 1)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			edge := x == 0 || y == 0 || x == 4 || y == 4
			got := img.RGBAAt(x, y) == c
			if got != edge {
				t.Fatalf("(%v,%v): edge=%v painted=%v", x, y, edge, got)
			}
		}
	}
}

func TestWhiteAlpha(t *testing.T) {
	c := RgbaColor(WhiteAlpha(0.5))
	if c.A != 127 || c.R != c.A {
		t.Fatal(c)
	}
	if a := Alpha(WhiteAlpha(2)); a != 1 {
		t.Fatal(a)
	}
}

func BenchmarkFillRect(b *testing.B) {
	img := NewBGRA(image.Rect(0, 0, 400, 400))
	bounds := img.Bounds()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FillRectangle(img, bounds, color.White)
	}
}
