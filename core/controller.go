// Package core is the application: a map with a scale bar overlay.
package core

import (
	"image"
	"log/slog"

	"github.com/jmigpin/mapscalebar/config"
	"github.com/jmigpin/mapscalebar/driver"
	"github.com/jmigpin/mapscalebar/mapview"
	"github.com/jmigpin/mapscalebar/scalebar"
	"github.com/jmigpin/mapscalebar/util/uiutil"
	"github.com/jmigpin/mapscalebar/util/uiutil/displaylink"
	"github.com/jmigpin/mapscalebar/util/uiutil/event"
	"github.com/jmigpin/mapscalebar/util/uiutil/widget"
	"github.com/paulmach/orb"
)

const keyZoomStep = 1.0

type Controller struct {
	UI          *uiutil.BasicUI
	View        *mapview.View
	Layer       *mapview.Layer
	ScaleBar    *scalebar.ScaleBar
	DisplayLink *displaylink.DisplayLink
	Watcher     *config.Watcher

	opt    *Options
	logger *slog.Logger
	root   *rootNode
}

func NewController(win driver.Window, opt *Options) (*Controller, error) {
	c := &Controller{opt: opt, logger: opt.logger()}

	c.View = mapview.NewView(orb.Point{opt.Lon, opt.Lat}, opt.Zoom)
	c.View.SetDelegate(c)

	c.root = &rootNode{c: c}
	c.root.SetWrapperForRoot(c.root)
	c.UI = uiutil.NewBasicUI(win, c.root, c.logger)

	c.Layer = mapview.NewLayer(c.UI, c.View)
	c.ScaleBar = scalebar.NewScaleBar(c.UI)
	c.root.Append(c.Layer)
	c.Layer.Append(c.ScaleBar)

	scale := opt.Scale
	if opt.OptionsFile != "" {
		f, err := config.Load(opt.OptionsFile)
		if err != nil {
			c.UI.Close()
			return nil, err
		}
		f.Apply(&scale)
	}
	c.applyOptions(scale)

	c.ScaleBar.SetMap(c.View)

	// frames adjust the scale while the region changes
	c.DisplayLink = displaylink.New(c.UI.RunOnUIThread, c.ScaleBar.AdjustScale, c.UI.DrawFrameRate)

	return c, nil
}

// Run blocks until the window is closed.
func (c *Controller) Run() error {
	if c.opt.OptionsFile != "" {
		w, err := config.NewWatcher(c.opt.OptionsFile, func() {
			c.UI.RunOnUIThread(c.reloadOptionsFile)
		}, c.logger)
		if err != nil {
			return err
		}
		c.Watcher = w
		defer w.Close()
	}

	c.DisplayLink.Start()
	defer c.DisplayLink.Close()

	c.UI.Win.SetWindowName("mapscalebar")
	c.UI.EventLoop()
	return nil
}

func (c *Controller) Close() {
	c.DisplayLink.Close()
	c.UI.Close()
}

//----------

// Implements mapview.Delegate.
func (c *Controller) RegionWillChange(v *mapview.View) {
	c.DisplayLink.Resume()
}

// Implements mapview.Delegate.
func (c *Controller) RegionDidChange(v *mapview.View) {
	c.DisplayLink.Pause()
	// queued frames are dropped on pause, the final region still needs to be used
	c.ScaleBar.AdjustScale()
}

//----------

func (c *Controller) applyOptions(o config.Options) {
	c.ScaleBar.SetConfig(o.Config())
	c.ScaleBar.SetLang(o.Lang)
	c.ScaleBar.SetThemePaletteColor("tint", o.Tint.Color) // nil uses the default palette
}

// Applies the file options on top of the command line ones. Runs on the ui goroutine.
func (c *Controller) reloadOptionsFile() {
	f, err := config.Load(c.opt.OptionsFile)
	if err != nil {
		c.logger.Error("reload options", "err", err)
		return
	}
	scale := c.opt.Scale
	f.Apply(&scale)
	c.applyOptions(scale)
	c.logger.Info("options reloaded", "file", c.opt.OptionsFile)
}

//----------

func (c *Controller) onKeyDown(ev *event.KeyDown) event.Handled {
	switch ev.Rune {
	case '+', '=':
		c.zoomCenter(keyZoomStep)
	case '-':
		c.zoomCenter(-keyZoomStep)
	case 'b':
		t := c.ScaleBar.Config().BarType
		c.ScaleBar.SetBarType((t + 1) % scalebar.NumBarTypes)
	case 'l':
		o := c.ScaleBar.Config().LabelOption
		c.ScaleBar.SetLabelOption((o + 1) % scalebar.NumLabelOptions)
	case 'q', '\x1b':
		c.UI.Close()
	default:
		return false
	}
	return true
}

func (c *Controller) zoomCenter(dz float64) {
	b := c.Layer.Bounds
	p := b.Min.Add(b.Size().Div(2))
	c.View.ZoomAt(p, dz)
	c.Layer.MarkNeedsPaint()
}

//----------

type rootNode struct {
	widget.ENode
	c *Controller
}

func (n *rootNode) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	if t, ok := ev.(*event.KeyDown); ok {
		return n.c.onKeyDown(t)
	}
	return false
}
