// Package config reads the options file and watches it for changes.
package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jmigpin/mapscalebar/scalebar"
	"github.com/jmigpin/mapscalebar/util/imageutil"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

type Options struct {
	BarType scalebar.BarType     `toml:"bartype"`
	Label   scalebar.LabelOption `toml:"label"`
	Tint    Color                `toml:"tint"`
	Lang    language.Tag         `toml:"lang"`
}

func (o *Options) Config() scalebar.Config {
	return scalebar.Config{BarType: o.BarType, LabelOption: o.Label}
}

//----------

// File holds the options of an options file and which keys it defines.
type File struct {
	Options Options
	defined map[string]bool
}

func Load(filename string) (*File, error) {
	f := &File{}
	md, err := toml.DecodeFile(filename, &f.Options)
	if err != nil {
		return nil, errors.Wrap(err, "options file")
	}
	if err := f.init(md); err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return f, nil
}

func Parse(data string) (*File, error) {
	f := &File{}
	md, err := toml.Decode(data, &f.Options)
	if err != nil {
		return nil, err
	}
	if err := f.init(md); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) init(md toml.MetaData) error {
	if u := md.Undecoded(); len(u) > 0 {
		var w []string
		for _, k := range u {
			w = append(w, k.String())
		}
		sort.Strings(w)
		return fmt.Errorf("unknown keys: %v", strings.Join(w, ", "))
	}
	f.defined = map[string]bool{}
	for _, k := range md.Keys() {
		f.defined[k.String()] = true
	}
	return nil
}

func (f *File) Defines(key string) bool {
	return f.defined[key]
}

// Apply overwrites the options that the file defines.
func (f *File) Apply(o *Options) {
	if f.Defines("bartype") {
		o.BarType = f.Options.BarType
	}
	if f.Defines("label") {
		o.Label = f.Options.Label
	}
	if f.Defines("tint") {
		o.Tint = f.Options.Tint
	}
	if f.Defines("lang") {
		o.Lang = f.Options.Lang
	}
}

//----------

// Color accepts the formats of imageutil.ParseColor. Implements flag.Value.
type Color struct {
	color.Color
}

func (c *Color) Set(s string) error {
	c2, err := imageutil.ParseColor(s)
	if err != nil {
		return err
	}
	c.Color = c2
	return nil
}

func (c Color) String() string {
	if c.Color == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func (c *Color) UnmarshalText(b []byte) error {
	return c.Set(string(b))
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
