// Package scalebar implements a map overlay that shows a bar scale: a ruler
// with the real world distance that a fixed length on the map represents.
package scalebar

import (
	"math"
)

// Maximum bar width, in pixels. The selected scale value is the largest one whose bar stays strictly below it.
const MaxBarWidth = 150.0

// Horizontal distance, in pixels, between the two map points sampled to compute the meters per pixel.
const SampleDistance = 200

// Meters per pixel used when rendering previews without a map.
const PreviewMetersPerPixel = 440.0

const oneKilometerInMeters = 1000

// Possible scale values in meters, descending.
var scaleTable = [...]int{
	10_000_000, 5_000_000, 2_000_000,
	1_000_000, 500_000, 200_000,
	100_000, 50_000, 20_000,
	10_000, 5_000, 2_000,
	1_000, 500, 200,
	100, 50, 20,
	10, 5, 2,
}

// Returns a copy of the scale values table.
func ScaleTable() []int {
	u := make([]int, len(scaleTable))
	copy(u, scaleTable[:])
	return u
}

//----------

// State is the result of a scale computation. The zero value shows nothing.
type State struct {
	Unit     Unit
	Value    int     // in Unit
	BarWidth float64 // in pixels
}

// Value in meters.
func (st State) Meters() int {
	if st.Unit == Kilometers {
		return st.Value * oneKilometerInMeters
	}
	return st.Value
}

//----------

// ComputeScale selects the largest table value whose bar width is below MaxBarWidth.
// Returns false if metersPerPixel is zero, negative or not finite; the caller keeps its previous state.
// If no value fits, the state has a zero value and a zero bar width.
func ComputeScale(metersPerPixel float64) (State, bool) {
	if metersPerPixel == 0 ||
		metersPerPixel < 0 ||
		math.IsNaN(metersPerPixel) ||
		math.IsInf(metersPerPixel, 0) {
		return State{}, false
	}

	value, width := 0, 0.0
	for _, v := range scaleTable {
		w := float64(v) / metersPerPixel
		if w < MaxBarWidth {
			value, width = v, w
			break
		}
	}

	st := State{BarWidth: width}
	if value < oneKilometerInMeters {
		st.Unit = Meters
		st.Value = value
	} else {
		st.Unit = Kilometers
		st.Value = value / oneKilometerInMeters
	}
	return st, true
}
