package stability

import (
	"errors"
	"fmt"

	"github.com/notargets/flamestab/optim"
)

const (
	MinWavenumber     = 7.
	MaxWavenumber     = 100.
	InitialWavenumber = 14.
)

type CriticalPoint struct {
	N, Pe       float64
	Evaluations int
}

// SearchSettings is the bounded search used for the critical point, n in
// [7, 100] from n = 14 unless changed.
func SearchSettings() optim.Settings {
	return optim.DefaultSettings(MinWavenumber, MaxWavenumber, InitialWavenumber)
}

// FindCritical minimizes Pe(n) over the search interval. An interval where
// the growth rate is not positive throughout is ErrDomain, and a search that
// runs out of evaluations returns ErrConvergence rather than its last iterate.
func FindCritical(d *Dispersion, method optim.Method, s optim.Settings) (cp CriticalPoint, err error) {
	var res optim.Result
	if method == nil {
		method = optim.Brent{}
	}
	if err = d.CheckGrowth(s.Lower, s.Upper); err != nil {
		return
	}
	res, err = method.Minimize(d.Pe, s)
	if err != nil {
		if errors.Is(err, optim.ErrNotConverged) {
			err = fmt.Errorf("%w: %v", ErrConvergence, err)
		}
		return
	}
	cp = CriticalPoint{
		N:           res.X,
		Pe:          res.F,
		Evaluations: res.Evaluations,
	}
	return
}
