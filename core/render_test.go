package core

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/jmigpin/mapscalebar/scalebar"
	"github.com/jmigpin/mapscalebar/util/imageutil"
)

func TestRenderFrame(t *testing.T) {
	opt := testOptions()
	opt.Scale.Tint.Color = imageutil.RgbaFromInt(0xff0000)
	img, err := RenderFrame(opt)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Size() != opt.Size.Point {
		t.Fatal(img.Bounds())
	}

	// find the bar: red pixels in the top left overlay area
	found := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 200; x++ {
			c := img.RGBAAt(x, y)
			if c.R == 0xff && c.G == 0 && c.B == 0 {
				found++
			}
		}
	}
	if found == 0 {
		t.Fatal("bar not painted")
	}
}

func TestRenderPreview(t *testing.T) {
	img := RenderPreview(&Options{})
	rows := scalebar.NumBarTypes * scalebar.NumLabelOptions
	if img.Bounds().Dy() != previewPad*2+rows*previewRowH {
		t.Fatal(img.Bounds())
	}

	st, _ := scalebar.ComputeScale(scalebar.PreviewMetersPerPixel)
	tint := imageutil.RgbaFromInt(0x007aff)
	for i := 0; i < rows; i++ {
		r := image.Rect(previewPad+previewCaptionW, previewPad+i*previewRowH, img.Bounds().Max.X-previewPad, previewPad+(i+1)*previewRowH)
		bar := scalebar.BarRect(r, st.BarWidth)
		// the bar corner is tint in every style
		if c := img.RGBAAt(bar.Min.X, bar.Min.Y); c != tint {
			t.Fatalf("row %v: %v", i, c)
		}
		// background
		if c := img.RGBAAt(r.Max.X-1, r.Max.Y-1); c != imageutil.RgbaFromInt(0xffffff) {
			t.Fatalf("row %v: %v", i, c)
		}
	}

	fn := filepath.Join(t.TempDir(), "preview.png")
	if err := SavePNG(fn, img); err != nil {
		t.Fatal(err)
	}
}
