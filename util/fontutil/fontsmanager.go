package fontutil

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func DefaultFont() *Font {
	f, err := FontsMan.Font(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}

func DefaultFontFace(size float64) *FontFace {
	return DefaultFont().FontFace(truetype.Options{Size: size})
}

//----------

var FontsMan = NewFontsManager()

//----------

// Not safe for concurrent use; the ui thread owns it.
type FontsManager struct {
	fontsCache map[string]*Font
}

func NewFontsManager() *FontsManager {
	fm := &FontsManager{}
	fm.ClearFontsCache()
	return fm
}

func (fm *FontsManager) ClearFontsCache() {
	fm.fontsCache = map[string]*Font{}
}

func (fm *FontsManager) Font(ttf []byte) (*Font, error) {
	f, ok := fm.fontsCache[string(ttf)]
	if ok {
		return f, nil
	}
	f, err := NewFont(ttf)
	if err != nil {
		return nil, err
	}
	fm.fontsCache[string(ttf)] = f
	return f, nil
}

//----------

type Font struct {
	Font       *truetype.Font
	facesCache map[truetype.Options]*FontFace
}

func NewFont(ttf []byte) (*Font, error) {
	font, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	f := &Font{Font: font}
	f.ClearFacesCache()
	return f, nil
}

func (f *Font) ClearFacesCache() {
	f.facesCache = map[truetype.Options]*FontFace{}
}

func (f *Font) FontFace(opt truetype.Options) *FontFace {
	// avoid divide by zero; also ensure face metrics work
	if opt.Size == 0 {
		opt.Size = 12
	}
	if opt.DPI == 0 {
		opt.DPI = 72
	}
	if opt.Hinting == font.HintingNone {
		opt.Hinting = font.HintingFull
	}

	ff, ok := f.facesCache[opt]
	if ok {
		return ff
	}
	ff = NewFontFace(f, opt)
	f.facesCache[opt] = ff
	return ff
}

//----------

type FontFace struct {
	Font    *Font
	Face    font.Face
	Size    float64 // in points, readonly
	Metrics font.Metrics

	lineHeight fixed.Int26_6
}

func NewFontFace(f *Font, opt truetype.Options) *FontFace {
	face := truetype.NewFace(f.Font, &opt)
	ff := &FontFace{Font: f, Face: face, Size: opt.Size}
	ff.Metrics = face.Metrics()
	ff.lineHeight = max(ff.Metrics.Ascent+ff.Metrics.Descent, ff.Metrics.Height)
	return ff
}

func (ff *FontFace) LineHeight() fixed.Int26_6 {
	return ff.lineHeight
}

func (ff *FontFace) LineHeightInt() int {
	return ff.LineHeight().Ceil()
}

// Baseline offset from the top of a line box of height lh (the line height is capped to lh).
func (ff *FontFace) BaseLineIn(lh fixed.Int26_6) fixed.Int26_6 {
	h := min(ff.lineHeight, lh)
	return min(ff.Metrics.Ascent, h-ff.Metrics.Descent)
}

func (ff *FontFace) MeasureString(s string) fixed.Int26_6 {
	return font.MeasureString(ff.Face, s)
}
