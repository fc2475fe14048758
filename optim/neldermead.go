package optim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// NelderMead runs gonum's Nelder-Mead simplex on an unconstrained variable y
// mapped onto the interval by x = Lower + (Upper-Lower)*(1+tanh(y))/2.
type NelderMead struct{}

func (NelderMead) Minimize(f Objective, s Settings) (res Result, err error) {
	var (
		half    = 0.5 * (s.Upper - s.Lower)
		mid     = 0.5 * (s.Upper + s.Lower)
		fErr    error
		toX     = func(y float64) float64 { return mid + half*math.Tanh(y) }
		nEvals  int
		initial []float64
	)
	if err = s.Validate(); err != nil {
		return
	}
	initial = []float64{math.Atanh((s.X0 - mid) / half)}
	problem := optimize.Problem{
		Func: func(y []float64) float64 {
			nEvals++
			if fErr != nil {
				return math.Inf(1)
			}
			val, e := f(toX(y[0]))
			if e != nil {
				fErr = e
				return math.Inf(1)
			}
			return val
		},
	}
	settings := &optimize.Settings{
		FuncEvaluations: s.MaxEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   s.XTol,
			Relative:   s.XTol,
			Iterations: 50,
		},
	}
	result, mErr := optimize.Minimize(problem, initial, settings, &optimize.NelderMead{})
	res.Evaluations = nEvals
	if fErr != nil {
		err = fErr
		return
	}
	if result != nil {
		res.X, res.F = toX(result.X[0]), result.F
	}
	if mErr != nil || result == nil ||
		result.Status == optimize.FunctionEvaluationLimit || result.Status == optimize.IterationLimit {
		err = fmt.Errorf("%w: nelder-mead stopped after %d evaluations: %v", ErrNotConverged, nEvals, mErr)
		return
	}
	res.Converged = true
	return
}
