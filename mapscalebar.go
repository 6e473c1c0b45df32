// Map with a scale bar overlay.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jmigpin/mapscalebar/core"
	"github.com/jmigpin/mapscalebar/driver"
	"github.com/jmigpin/mapscalebar/driver/xdriver"
	"github.com/jmigpin/mapscalebar/scalebar"
	"github.com/lmittmann/tint"
)

func main() {
	if err := main2(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main2() error {
	opt := &core.Options{}
	opt.Size.Point = core.DefaultSize

	flag.Float64Var(&opt.Lat, "lat", 38.7223, "initial latitude")
	flag.Float64Var(&opt.Lon, "lon", -9.1393, "initial longitude")
	flag.Float64Var(&opt.Zoom, "zoom", 12, "initial zoom level")
	flag.Var(&opt.Size, "size", "window size (WxH)")
	flag.TextVar(&opt.Scale.BarType, "bartype", scalebar.SingleDivision, "bar type: single, alternating, double")
	flag.TextVar(&opt.Scale.Label, "label", scalebar.LabelEdges, "label option: edges, center")
	flag.Var(&opt.Scale.Tint, "tint", "tint color (#rrggbb[aa] or a color name)")
	flag.TextVar(&opt.Scale.Lang, "lang", opt.Scale.Lang, "language tag for the unit symbols")
	flag.StringVar(&opt.OptionsFile, "options", "", "toml options file, reloaded on change")
	pngFile := flag.String("png", "", "render one frame to a png file and exit")
	previewFile := flag.String("preview", "", "render all the bar types to a png file and exit")
	logLevel := flag.String("loglevel", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return err
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
	xdriver.Logger = logger
	opt.Logger = logger

	switch {
	case *previewFile != "":
		img := core.RenderPreview(opt)
		return core.SavePNG(*previewFile, img)
	case *pngFile != "":
		img, err := core.RenderFrame(opt)
		if err != nil {
			return err
		}
		return core.SavePNG(*pngFile, img)
	}

	win, err := driver.NewWindow(opt.Size.Point)
	if err != nil {
		return err
	}
	c, err := core.NewController(win, opt)
	if err != nil {
		return err
	}
	return c.Run()
}
