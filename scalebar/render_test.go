package scalebar

import (
	"image"
	"image/color"
	"testing"

	"github.com/jmigpin/mapscalebar/util/imageutil"
	"github.com/jmigpin/mapscalebar/util/testutil"
	"golang.org/x/text/language"
)

var (
	testTint  = color.RGBA{0, 0, 255, 255}
	testWhite = color.RGBA{255, 255, 255, 255}
	testRect  = image.Rect(0, 0, 200, 20)
)

func renderTest(t *testing.T, st State, cfg Config) *image.RGBA {
	t.Helper()
	img := image.NewRGBA(testRect)
	rd := &Renderer{Tint: testTint}
	rd.Render(img, testRect, st, cfg)
	return img
}

func TestBarRect(t *testing.T) {
	type in struct {
		w float64
		r image.Rectangle
	}
	ins := []in{
		{100, image.Rect(50, 2, 150, 7)},
		{100.4, image.Rect(49, 2, 151, 7)},
		{0, image.Rect(100, 2, 100, 7)},
	}
	for _, u := range ins {
		r := BarRect(testRect, u.w)
		if r != u.r {
			t.Fatalf("w=%v: got %v, expected %v", u.w, r, u.r)
		}
	}
	if !BarRect(testRect, 0).Empty() {
		t.Fatal("expecting empty bar")
	}
	// offset bounds
	r := BarRect(testRect.Add(image.Point{10, 30}), 100)
	if r != image.Rect(60, 32, 160, 37) {
		t.Fatal(r)
	}
}

func TestRenderZeroWidth(t *testing.T) {
	for _, bt := range []BarType{SingleDivision, Alternating, DoubleAlternating} {
		img := image.NewRGBA(testRect)
		testutil.ClearImg(img)
		img2 := image.NewRGBA(testRect)
		testutil.ClearImg(img2)

		rd := &Renderer{Tint: testTint}
		rd.Render(img, testRect, State{}, Config{BarType: bt})
		if err := testutil.CompareImgs(img, img2); err != nil {
			t.Fatalf("%v: %v", bt, err)
		}
	}
}

func TestRenderSingleDivision(t *testing.T) {
	st := State{Unit: Kilometers, Value: 10, BarWidth: 100}
	img := renderTest(t, st, Config{BarType: SingleDivision})

	for _, p := range []image.Point{{50, 2}, {100, 4}, {149, 6}} {
		if c := img.RGBAAt(p.X, p.Y); c != testTint {
			t.Fatalf("%v: %v", p, c)
		}
	}
	// anti-aliased halo
	if c := img.RGBAAt(49, 4); c.A == 0 || c.A == 255 {
		t.Fatalf("halo: %v", c)
	}
	if c := img.RGBAAt(47, 4); c.A != 0 {
		t.Fatalf("outside: %v", c)
	}
}

func TestRenderAlternating(t *testing.T) {
	st := State{Unit: Kilometers, Value: 10, BarWidth: 100}
	img := renderTest(t, st, Config{BarType: Alternating})

	// inner rect is (51,3)-(149,6), segments are 20px wide
	for i := 0; i < numSegments; i++ {
		x := 51 + 20*i + 10
		c := img.RGBAAt(x, 4)
		expect := testWhite
		if i%2 == 1 {
			expect = testTint
		}
		if c != expect {
			t.Fatalf("segment %v: got %v, expected %v", i, c, expect)
		}
	}
	// tint outline
	if c := img.RGBAAt(50, 4); c != testTint {
		t.Fatal(c)
	}
	// translucent ring
	if c := img.RGBAAt(49, 4); c != (color.RGBA{127, 127, 127, 127}) {
		t.Fatal(c)
	}
}

func TestRenderDoubleAlternating(t *testing.T) {
	st := State{Unit: Kilometers, Value: 10, BarWidth: 100}
	img := renderTest(t, st, Config{BarType: DoubleAlternating})

	// inner rect is (51,3)-(149,6); row 0 is y=3,4 and row 1 is y=5
	for i := 0; i < numSegments; i++ {
		x := 51 + 20*i + 10
		top, bottom := img.RGBAAt(x, 3), img.RGBAAt(x, 5)
		if i%2 == 0 {
			if top != testTint || bottom != testWhite {
				t.Fatalf("segment %v: %v %v", i, top, bottom)
			}
		} else {
			if top != testWhite || bottom != testTint {
				t.Fatalf("segment %v: %v %v", i, top, bottom)
			}
		}
	}
	// backing outset
	if c := img.RGBAAt(49, 1); c != testWhite {
		t.Fatal(c)
	}
}

func TestRenderLabel(t *testing.T) {
	st := State{Unit: Kilometers, Value: 10, BarWidth: 100}
	lr := LabelRect(testRect, st.BarWidth)
	if lr != image.Rect(50, 8, 150, 18) {
		t.Fatal(lr)
	}
	painted := func(img *image.RGBA, r image.Rectangle) int {
		n := 0
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if img.RGBAAt(x, y).A != 0 {
					n++
				}
			}
		}
		return n
	}
	left := image.Rect(lr.Min.X, 8, lr.Min.X+10, 20)
	right := image.Rect(lr.Max.X-10, 8, lr.Max.X, 20)
	mid := image.Rect(lr.Min.X+45, 8, lr.Min.X+55, 20)

	img := renderTest(t, st, Config{LabelOption: LabelEdges})
	if painted(img, left) == 0 || painted(img, right) == 0 || painted(img, mid) != 0 {
		t.Fatal("edges label")
	}

	img = renderTest(t, st, Config{LabelOption: LabelCenter})
	if painted(img, left) != 0 || painted(img, right) != 0 || painted(img, mid) == 0 {
		t.Fatal("center label")
	}
}

func TestLabelText(t *testing.T) {
	st := State{Unit: Meters, Value: 50}
	if s := LabelText(st, LabelEdges, language.Und); s != "0\t50 m" {
		t.Fatal(s)
	}
	st = State{Unit: Kilometers, Value: 2}
	if s := LabelText(st, LabelCenter, language.English); s != "2 km" {
		t.Fatal(s)
	}
}

func TestRenderBGRA(t *testing.T) {
	st := State{Unit: Meters, Value: 500, BarWidth: 120}
	for _, bt := range []BarType{SingleDivision, Alternating, DoubleAlternating} {
		cfg := Config{BarType: bt, LabelOption: LabelCenter}
		img1 := renderTest(t, st, cfg)

		r := testRect.Add(image.Point{5, 5})
		img2 := imageutil.NewBGRA(image.Rect(0, 0, 220, 40))
		rd := &Renderer{Tint: testTint}
		rd.Render(img2, r, st, cfg)

		sub := image.NewRGBA(testRect)
		for y := 0; y < testRect.Dy(); y++ {
			for x := 0; x < testRect.Dx(); x++ {
				sub.SetRGBA(x, y, img2.RGBAAt(x+5, y+5))
			}
		}
		if err := testutil.CompareImgs(img1, sub); err != nil {
			t.Fatalf("%v: %v", bt, err)
		}
	}
}

func TestRenderLabelColor(t *testing.T) {
	st := State{Unit: Kilometers, Value: 10, BarWidth: 100}
	lr := LabelRect(testRect, st.BarWidth)
	red := color.RGBA{255, 0, 0, 255}

	check := func(img *image.RGBA, ok func(c color.RGBA) bool) {
		t.Helper()
		n := 0
		for y := lr.Min.Y; y < testRect.Max.Y; y++ {
			for x := lr.Min.X; x < lr.Max.X; x++ {
				c := img.RGBAAt(x, y)
				if c.A == 0 {
					continue
				}
				n++
				if !ok(c) {
					t.Fatalf("(%v,%v): %v", x, y, c)
				}
			}
		}
		if n == 0 {
			t.Fatal("no label pixels")
		}
	}

	// default text color is black, not the tint
	img := renderTest(t, st, Config{LabelOption: LabelCenter})
	check(img, func(c color.RGBA) bool { return c.R == 0 && c.G == 0 && c.B == 0 })

	img = image.NewRGBA(testRect)
	rd := &Renderer{Tint: testTint, Fg: red}
	rd.Render(img, testRect, st, Config{LabelOption: LabelCenter})
	check(img, func(c color.RGBA) bool { return c.R == c.A && c.G == 0 && c.B == 0 })
}
