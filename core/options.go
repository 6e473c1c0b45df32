package core

import (
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jmigpin/mapscalebar/config"
)

type Options struct {
	Lat, Lon float64
	Zoom     float64
	Size     SizeOpt

	Scale       config.Options // bar type, label, tint, lang
	OptionsFile string         // toml, watched for changes

	Logger *slog.Logger
}

func (opt *Options) logger() *slog.Logger {
	if opt.Logger == nil {
		return slog.Default()
	}
	return opt.Logger
}

//----------

// Window size as "WxH". Implements flag.Value.
type SizeOpt struct {
	image.Point
}

func (so *SizeOpt) Set(s string) error {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return fmt.Errorf("bad size: %q", s)
	}
	x, err := strconv.Atoi(w)
	if err != nil {
		return fmt.Errorf("bad size width: %w", err)
	}
	y, err := strconv.Atoi(h)
	if err != nil {
		return fmt.Errorf("bad size height: %w", err)
	}
	if x <= 0 || y <= 0 {
		return fmt.Errorf("bad size: %q", s)
	}
	so.Point = image.Point{x, y}
	return nil
}

func (so *SizeOpt) String() string {
	return fmt.Sprintf("%dx%d", so.X, so.Y)
}
