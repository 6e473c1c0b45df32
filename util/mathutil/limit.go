package mathutil

import (
	"cmp"
	"math"
)

// Limit returns v bounded to [min,max].
func Limit[T cmp.Ordered](v, min, max T) T {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}

// Mod returns the remainder of x/y in [0,y), y>0.
func Mod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r < 0 {
		r += y
	}
	return r
}

// ModInt returns the remainder of x/y in [0,y), y>0.
func ModInt(x, y int) int {
	return ((x % y) + y) % y
}
