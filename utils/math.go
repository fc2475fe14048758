package utils

import (
	"math"
)

// POW is x^p for small integer powers by repeated squaring, falling back to
// math.Pow outside [-8, 8].
func POW(x float64, pp int) (y float64) {
	var (
		p = pp
	)
	if pp > 8 || pp < -8 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -p
	}
	y = 1
	for base := x; p > 0; p >>= 1 {
		if p&1 == 1 {
			y *= base
		}
		base *= base
	}
	if pp < 0 {
		y = 1. / y
	}
	return
}

// IsFinite is false for NaN and both infinities
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
