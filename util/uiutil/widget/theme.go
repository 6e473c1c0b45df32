package widget

import (
	"image/color"

	"github.com/jmigpin/mapscalebar/util/fontutil"
	"github.com/jmigpin/mapscalebar/util/imageutil"
)

type Theme struct {
	Palette  Palette
	FontFace *fontutil.FontFace
}

func (t *Theme) SetPaletteColor(name string, c color.Color) {
	if t.Palette == nil {
		t.Palette = Palette{}
	}
	if c == nil {
		delete(t.Palette, name)
		return
	}
	t.Palette[name] = c
}

//----------

type Palette map[string]color.Color

func (pal Palette) Copy() Palette {
	pal2 := Palette{}
	for k, v := range pal {
		pal2[k] = v
	}
	return pal2
}

//----------

var DefaultPalette = Palette{
	"fg":   cint(0x000000),
	"bg":   cint(0xffffff),
	"tint": cint(0x007aff),

	"map_bg":   cint(0xf2efe9),
	"map_tile": cint(0xe9e5dc),
	"map_grid": cint(0xcdc6b8),
	"map_text": cint(0x9c9484),
	"map_axis": cint(0xd0876f),
}

func cint(c int) color.RGBA {
	return imageutil.RgbaFromInt(c)
}

//----------

func (en *EmbedNode) Theme() *Theme {
	return &en.theme
}

func (en *EmbedNode) SetThemePaletteColor(name string, c color.Color) {
	defer en.themeChangeCallback()
	defer en.MarkNeedsPaint()

	en.theme.SetPaletteColor(name, c)
}

func (en *EmbedNode) SetThemeFontFace(ff *fontutil.FontFace) {
	defer en.themeChangeCallback()
	defer en.MarkNeedsLayoutAndPaint()

	en.theme.FontFace = ff
}

func (en *EmbedNode) TreeThemePaletteColor(name string) color.Color {
	for n := en; n != nil; n = n.Parent {
		if c, ok := n.theme.Palette[name]; ok {
			return c
		}
	}
	if c, ok := DefaultPalette[name]; ok {
		return c
	}
	// last resort: a color that is not white/black to help debug
	return cint(0xff0000)
}

func (en *EmbedNode) TreeThemeFontFace() *fontutil.FontFace {
	for n := en; n != nil; n = n.Parent {
		if n.theme.FontFace != nil {
			return n.theme.FontFace
		}
	}
	return fontutil.DefaultFontFace(12)
}

//----------

func (en *EmbedNode) themeChangeCallback() {
	if en.Wrapper != nil {
		en.Wrapper.OnThemeChange()
	}
	en.Iterate2(func(c *EmbedNode) {
		c.themeChangeCallback()
	})
}

func (en *EmbedNode) OnThemeChange() {
}
