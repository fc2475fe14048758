package stability

import (
	"fmt"
	"math"

	"github.com/notargets/flamestab/thermo"
	"github.com/notargets/flamestab/utils"
)

// Peclet evaluates the dispersion relation
// Pe = (Q1 - beta*(LeEff-1)/(sigma-1)*Q2 + Pr*Q3) / omega.
func Peclet(q Coefficients, sigma, beta, leEff, pr float64) (pe float64, err error) {
	if sigma == 1 {
		err = fmt.Errorf("%w: undefined dispersion value, density ratio is one", ErrDomain)
		return
	}
	if !(q.Omega > 0) {
		err = fmt.Errorf("%w: undefined dispersion value, growth rate %g is not positive", ErrDomain, q.Omega)
		return
	}
	leTerm := beta * (leEff - 1) / (sigma - 1)
	pe = (q.Q1 - leTerm*q.Q2 + pr*q.Q3) / q.Omega
	if !utils.IsFinite(pe) {
		err = fmt.Errorf("%w: non-finite Peclet number %g", ErrDomain, pe)
	}
	return
}

// Dispersion is Pe(n) for one mixture. The transport integrals and the burned
// gas conductivity do not depend on the wavenumber and are evaluated once, so
// Pe holds no reference to the property backend.
type Dispersion struct {
	Sigma, Beta float64
	LeEff, Pr   float64
	LambdaB     float64
	Transport   TransportIntegrals
}

// NewDispersion builds the dispersion relation for the unburned mixture the
// backend currently holds. The backend is left as it was found.
func NewDispersion(gas thermo.Backend, sigma, beta, leEff, pr float64) (d *Dispersion, err error) {
	var (
		lambdaB float64
		g       TransportIntegrals
	)
	if !(sigma > 1) {
		err = fmt.Errorf("%w: density ratio %g must exceed one", ErrDomain, sigma)
		return
	}
	if lambdaB, err = BurnedConductivity(gas); err != nil {
		return
	}
	if g, err = EvaluateTransportIntegrals(gas, sigma); err != nil {
		return
	}
	d = &Dispersion{
		Sigma:     sigma,
		Beta:      beta,
		LeEff:     leEff,
		Pr:        pr,
		LambdaB:   lambdaB,
		Transport: g,
	}
	return
}

func (d *Dispersion) Coefficients(n float64) (q Coefficients, err error) {
	var omega float64
	if omega, err = Omega(n, d.Sigma); err != nil {
		return
	}
	return AssembleCoefficients(n, d.Sigma, omega, d.LambdaB, d.Transport)
}

func (d *Dispersion) Pe(n float64) (pe float64, err error) {
	var q Coefficients
	if q, err = d.Coefficients(n); err != nil {
		return
	}
	return Peclet(q, d.Sigma, d.Beta, d.LeEff, d.Pr)
}

// Sample evaluates Pe at each wavenumber in ns. Entries where the relation is
// undefined are NaN; the first such error is returned alongside the samples.
func (d *Dispersion) Sample(ns []float64) (pe []float64, err error) {
	pe = make([]float64, len(ns))
	for i, n := range ns {
		var e error
		if pe[i], e = d.Pe(n); e != nil {
			pe[i] = math.NaN()
			if err == nil {
				err = e
			}
		}
	}
	return
}

// CheckGrowth verifies that the growth rate is positive over [lower, upper],
// so Pe(n) has no pole there. For sigma > 1 the growth rate changes sign at
// most once, at the marginal wavenumber, and is positive above it.
func (d *Dispersion) CheckGrowth(lower, upper float64) (err error) {
	var wLower, wUpper float64
	if wLower, err = Omega(lower, d.Sigma); err != nil {
		return
	}
	if wUpper, err = Omega(upper, d.Sigma); err != nil {
		return
	}
	switch {
	case wLower > 0 && wUpper > 0:
		return nil
	case !(wUpper > 0):
		return fmt.Errorf("%w: growth rate is not positive on [%g, %g] at sigma = %g",
			ErrDomain, lower, upper, d.Sigma)
	}
	n0 := marginalWavenumber(lower, upper, d.Sigma)
	return fmt.Errorf("%w: growth rate changes sign at n = %.4g, Pe(n) has a pole inside [%g, %g] at sigma = %g",
		ErrDomain, n0, lower, upper, d.Sigma)
}

// marginalWavenumber bisects for the zero of the growth rate, which must be
// non-positive at lo and positive at hi.
func marginalWavenumber(lo, hi, sigma float64) float64 {
	for i := 0; i < 60 && hi-lo > 1.e-10*hi; i++ {
		mid := 0.5 * (lo + hi)
		if w, err := Omega(mid, sigma); err == nil && w > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return 0.5 * (lo + hi)
}
