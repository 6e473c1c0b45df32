// Package mapview is a slippy map view model in web mercator: it converts
// window points to coordinates and measures ground distances.
package mapview

import (
	"image"
	"math"

	"github.com/jmigpin/mapscalebar/util/mathutil"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/project"
)

const (
	TileSize = 256
	MinZoom  = 0.0
	MaxZoom  = 22.0

	earthRadius = 6378137.0
	// web mercator max extent in meters
	mercatorMax = math.Pi * earthRadius
)

// Delegate receives region changes. Calls are paired: a will-change is always followed by a did-change.
type Delegate interface {
	RegionWillChange(v *View)
	RegionDidChange(v *View)
}

type View struct {
	Bounds image.Rectangle // window rectangle of the map

	center   orb.Point // mercator meters
	zoom     float64
	changing bool
	delegate Delegate
}

func NewView(center orb.Point, zoom float64) *View {
	v := &View{}
	v.setCenter(center)
	v.setZoom(zoom)
	return v
}

func (v *View) SetDelegate(d Delegate) {
	v.delegate = d
}

//----------

func (v *View) Center() orb.Point {
	return project.Mercator.ToWGS84(v.center)
}

func (v *View) SetCenter(ll orb.Point) {
	v.change(func() { v.setCenter(ll) })
}

func (v *View) setCenter(ll orb.Point) {
	v.setMercatorCenter(project.WGS84.ToMercator(ll))
}

func (v *View) setMercatorCenter(p orb.Point) {
	// wrap longitude, clamp latitude
	p[0] = mathutil.Mod(p[0]+mercatorMax, 2*mercatorMax) - mercatorMax
	p[1] = mathutil.Limit(p[1], -mercatorMax, mercatorMax)
	v.center = p
}

func (v *View) Zoom() float64 {
	return v.zoom
}

func (v *View) SetZoom(z float64) {
	v.change(func() { v.setZoom(z) })
}

func (v *View) setZoom(z float64) {
	v.zoom = mathutil.Limit(z, MinZoom, MaxZoom)
}

//----------

// Mercator meters per pixel at the current zoom. Equals ground meters per pixel only at the equator.
func (v *View) Resolution() float64 {
	return 2 * mercatorMax / (TileSize * math.Exp2(v.zoom))
}

func (v *View) mid() (float64, float64) {
	x := float64(v.Bounds.Min.X) + float64(v.Bounds.Dx())/2
	y := float64(v.Bounds.Min.Y) + float64(v.Bounds.Dy())/2
	return x, y
}

func (v *View) mercatorAt(x, y float64) orb.Point {
	mx, my := v.mid()
	res := v.Resolution()
	return orb.Point{v.center[0] + (x-mx)*res, v.center[1] - (y-my)*res}
}

// Coordinate (lon, lat) at a window point.
func (v *View) Coordinate(p image.Point) orb.Point {
	return v.CoordinateF(float64(p.X), float64(p.Y))
}

func (v *View) CoordinateF(x, y float64) orb.Point {
	return project.Mercator.ToWGS84(v.mercatorAt(x, y))
}

// Window point of a coordinate.
func (v *View) PointF(ll orb.Point) (float64, float64) {
	m := project.WGS84.ToMercator(ll)
	mx, my := v.mid()
	res := v.Resolution()
	return mx + (m[0]-v.center[0])/res, my - (m[1]-v.center[1])/res
}

// Ground distance in meters between two window points.
func (v *View) MetersBetween(p0, p1 image.Point) float64 {
	return geo.Distance(v.Coordinate(p0), v.Coordinate(p1))
}

//----------

// Changing is true between a region will-change and did-change.
func (v *View) Changing() bool {
	return v.changing
}

func (v *View) BeginChange() {
	if v.changing {
		return
	}
	v.changing = true
	if v.delegate != nil {
		v.delegate.RegionWillChange(v)
	}
}

func (v *View) EndChange() {
	if !v.changing {
		return
	}
	v.changing = false
	if v.delegate != nil {
		v.delegate.RegionDidChange(v)
	}
}

// Runs fn inside a change, unless one is already in progress.
func (v *View) change(fn func()) {
	if v.changing {
		fn()
		return
	}
	v.BeginChange()
	fn()
	v.EndChange()
}

//----------

// Pan moves the map content by (dx,dy) pixels.
func (v *View) Pan(dx, dy int) {
	v.change(func() {
		res := v.Resolution()
		c := v.center
		c[0] -= float64(dx) * res
		c[1] += float64(dy) * res
		v.setMercatorCenter(c)
	})
}

// ZoomAt changes the zoom by dz keeping the coordinate under p at the same window point.
func (v *View) ZoomAt(p image.Point, dz float64) {
	v.change(func() {
		x, y := float64(p.X), float64(p.Y)
		before := v.mercatorAt(x, y)
		v.setZoom(v.zoom + dz)
		after := v.mercatorAt(x, y)
		c := v.center
		c[0] += before[0] - after[0]
		c[1] += before[1] - after[1]
		v.setMercatorCenter(c)
	})
}
