package stability

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/notargets/flamestab/thermo"
)

const (
	// MinSamplingRatio is the lowest temperature ratio sampled by the
	// transport integrals. Both 1/(x-1) and ln(1/(r-1)) are singular at a
	// ratio of one.
	MinSamplingRatio = 1.001
	// TransportSamples is the number of equally spaced conductivity samples
	TransportSamples = 50
)

// TransportIntegrals are the conductivity-weighted integrals over the
// temperature ratio range [1, sigma], with conductivity normalized by its
// unburned value.
type TransportIntegrals struct {
	Gamma1, Gamma2, Gamma3 float64
}

// EvaluateTransportIntegrals samples the normalized conductivity of the
// backend's current mixture between MinSamplingRatio and x times its current
// temperature, pressure and composition held, and integrates with the
// trapezoid rule. The backend state is restored before returning, errors
// included.
func EvaluateTransportIntegrals(gas thermo.Backend, x float64) (g TransportIntegrals, err error) {
	var (
		ratios  = make([]float64, TransportSamples)
		lambdas = make([]float64, TransportSamples)
		f       = make([]float64, TransportSamples)
	)
	if !(x > MinSamplingRatio) || math.IsInf(x, 0) {
		err = fmt.Errorf("%w: invalid density ratio %g, must exceed %g", ErrDomain, x, MinSamplingRatio)
		return
	}
	T0, P0, X0 := gas.TPX()
	lambda0 := gas.ThermalConductivity()
	defer func() {
		if rErr := gas.SetTPX(T0, P0, X0); rErr != nil && err == nil {
			err = fmt.Errorf("restoring backend state: %w", rErr)
		}
	}()

	floats.Span(ratios, MinSamplingRatio, x)
	for i, r := range ratios {
		if err = gas.SetTPX(T0*r, P0, X0); err != nil {
			err = fmt.Errorf("sampling conductivity at ratio %g: %w", r, err)
			return
		}
		lambdas[i] = gas.ThermalConductivity() / lambda0
	}

	for i, r := range ratios {
		f[i] = lambdas[i] / r
	}
	g.Gamma1 = integrate.Trapezoidal(ratios, f) * x / (x - 1)

	var rValid, fValid []float64
	for i, r := range ratios {
		if r > MinSamplingRatio {
			rValid = append(rValid, r)
			fValid = append(fValid, lambdas[i]*math.Log(1/(r-1))/r)
		}
	}
	g.Gamma2 = integrate.Trapezoidal(rValid, fValid) / (x - 1)

	g.Gamma3 = integrate.Trapezoidal(ratios, lambdas) / (x - 1)
	return
}

// BurnedConductivity returns the conductivity of the adiabatic equilibrium
// products of the backend's current mixture relative to the conductivity of
// the mixture itself. The backend state is restored before returning.
func BurnedConductivity(gas thermo.Backend) (lambdaB float64, err error) {
	T0, P0, X0 := gas.TPX()
	lambdaU := gas.ThermalConductivity()
	defer func() {
		if rErr := gas.SetTPX(T0, P0, X0); rErr != nil && err == nil {
			err = fmt.Errorf("restoring backend state: %w", rErr)
		}
	}()
	if err = gas.EquilibrateHP(); err != nil {
		return
	}
	lambdaB = gas.ThermalConductivity() / lambdaU
	return
}
