package thermo

import (
	"fmt"
	"math"
)

// fzero finds a root of f with the secant method. The second starting point
// is start/2; iterates are kept positive, which suits temperatures.
func fzero(f func(x float64) (y float64), start, tol float64, maxIter int) (x float64, err error) {
	var (
		xOld = start / 2
		res  = f(xOld)
	)
	x = start
	for iter := 0; iter < maxIter; iter++ {
		resNew := f(x)
		if math.Abs(resNew) <= tol {
			return
		}
		if resNew == res {
			break
		}
		xNew := math.Abs(x - resNew*(x-xOld)/(resNew-res))
		xOld, res = x, resNew
		x = xNew
	}
	err = fmt.Errorf("%w: root solve stalled near %g after %d iterations", ErrBackend, x, maxIter)
	return
}
