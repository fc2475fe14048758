package optim

import (
	"errors"
	"fmt"
	"math"
)

var ErrNotConverged = errors.New("optim: minimizer did not converge")

// Objective is a scalar function whose evaluation can fail. An error aborts
// the search.
type Objective func(x float64) (f float64, err error)

// Settings describe a bounded scalar minimization.
type Settings struct {
	Lower, Upper   float64
	X0             float64 // Initial guess, must lie strictly inside (Lower, Upper)
	XTol           float64 // Absolute tolerance on the argument
	MaxEvaluations int
}

func DefaultSettings(lower, upper, x0 float64) Settings {
	return Settings{
		Lower:          lower,
		Upper:          upper,
		X0:             x0,
		XTol:           1.e-5,
		MaxEvaluations: 500,
	}
}

func (s Settings) Validate() error {
	switch {
	case !(s.Lower < s.Upper):
		return fmt.Errorf("optim: empty interval [%g, %g]", s.Lower, s.Upper)
	case !(s.X0 > s.Lower && s.X0 < s.Upper):
		return fmt.Errorf("optim: initial guess %g outside (%g, %g)", s.X0, s.Lower, s.Upper)
	case !(s.XTol > 0):
		return fmt.Errorf("optim: tolerance %g must be positive", s.XTol)
	case s.MaxEvaluations < 2:
		return fmt.Errorf("optim: evaluation budget %d is too small", s.MaxEvaluations)
	}
	return nil
}

type Result struct {
	X, F        float64
	Evaluations int
	Converged   bool
}

type Method interface {
	Minimize(f Objective, s Settings) (Result, error)
}

// Brent is Brent's bounded minimization: parabolic interpolation safeguarded
// by golden section steps, started from the initial guess instead of the
// golden point.
type Brent struct{}

func (Brent) Minimize(f Objective, s Settings) (res Result, err error) {
	var (
		sqrtEps    = math.Sqrt(2.2e-16)
		goldenMean = 0.5 * (3 - math.Sqrt(5))
		a, b       = s.Lower, s.Upper
		rat, e     float64
		fx, fu     float64
	)
	if err = s.Validate(); err != nil {
		return
	}
	// xf is the best point, nfc the second best, fulc the previous nfc
	xf := s.X0
	if fx, err = f(xf); err != nil {
		return
	}
	res.Evaluations = 1
	nfc, fulc := xf, xf
	fnfc, ffulc := fx, fx
	xm := 0.5 * (a + b)
	tol1 := sqrtEps*math.Abs(xf) + s.XTol/3
	tol2 := 2 * tol1

	for math.Abs(xf-xm) > tol2-0.5*(b-a) {
		if res.Evaluations >= s.MaxEvaluations {
			res.X, res.F = xf, fx
			err = fmt.Errorf("%w: %d evaluations, bracket [%g, %g]", ErrNotConverged, res.Evaluations, a, b)
			return
		}
		golden := true
		if math.Abs(e) > tol1 {
			golden = false
			r := (xf - nfc) * (fx - ffulc)
			q := (xf - fulc) * (fx - fnfc)
			p := (xf-fulc)*q - (xf-nfc)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = rat
			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-xf) && p < q*(b-xf) {
				rat = p / q
				x := xf + rat
				if x-a < tol2 || b-x < tol2 {
					rat = tol1 * sign(xm-xf)
				}
			} else {
				golden = true
			}
		}
		if golden {
			if xf >= xm {
				e = a - xf
			} else {
				e = b - xf
			}
			rat = goldenMean * e
		}
		x := xf + sign(rat)*math.Max(math.Abs(rat), tol1)
		if fu, err = f(x); err != nil {
			return
		}
		res.Evaluations++
		if fu <= fx {
			if x >= xf {
				a = xf
			} else {
				b = xf
			}
			fulc, ffulc = nfc, fnfc
			nfc, fnfc = xf, fx
			xf, fx = x, fu
		} else {
			if x < xf {
				a = x
			} else {
				b = x
			}
			if fu <= fnfc || nfc == xf {
				fulc, ffulc = nfc, fnfc
				nfc, fnfc = x, fu
			} else if fu <= ffulc || fulc == xf || fulc == nfc {
				fulc, ffulc = x, fu
			}
		}
		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(xf) + s.XTol/3
		tol2 = 2 * tol1
	}
	res.X, res.F, res.Converged = xf, fx, true
	return
}

// sign is +1 for zero, so a zero step still moves
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// MethodByName maps "brent" (also the empty string) and "neldermead" to a Method
func MethodByName(name string) (Method, error) {
	switch name {
	case "", "brent":
		return Brent{}, nil
	case "neldermead":
		return NelderMead{}, nil
	}
	return nil, fmt.Errorf("optim: unknown method %q", name)
}
