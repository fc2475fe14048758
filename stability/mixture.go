package stability

import (
	"fmt"

	"github.com/notargets/flamestab/thermo"
	"github.com/notargets/flamestab/utils"
)

const DefaultActivationEnergy = 350000. // J/mol

// MixtureState is the unburned/burned pair of one equivalence ratio.
type MixtureState struct {
	Phi    float64
	T, P   float64 // Unburned temperature (K) and pressure (Pa)
	TB     float64 // Adiabatic burned temperature, K
	Sigma  float64 // Unburned to burned density ratio
	Beta   float64 // Zel'dovich number
	Ea     float64 // Activation energy used for Beta, J/mol
	RhoU   float64
	RhoB   float64
	Lambda float64 // Unburned thermal conductivity, W/(m K)
}

// ActivationEnergy supplies Ea for the Zel'dovich number. The backend holds
// the unburned mixture when called and must hold it again on return.
type ActivationEnergy interface {
	Estimate(gas thermo.Backend) (Ea float64, err error)
}

// FixedActivationEnergy is a constant Ea in J/mol
type FixedActivationEnergy float64

func (ea FixedActivationEnergy) Estimate(thermo.Backend) (float64, error) {
	if !(ea > 0) {
		return 0, fmt.Errorf("%w: activation energy %g must be positive", ErrDomain, float64(ea))
	}
	return float64(ea), nil
}

// DensityDerivativeActivationEnergy estimates Ea = -2R (drho/dT) T^2 / rho
// with a centered difference over +/- DT at fixed pressure and composition.
type DensityDerivativeActivationEnergy struct {
	DT float64
}

func (dd DensityDerivativeActivationEnergy) Estimate(gas thermo.Backend) (Ea float64, err error) {
	var (
		rho     = gas.Density()
		rhoPM   [2]float64
		T, P, X = gas.TPX()
	)
	if !(dd.DT > 0 && dd.DT < T) {
		err = fmt.Errorf("%w: temperature step %g K invalid at T = %g K", ErrDomain, dd.DT, T)
		return
	}
	defer func() {
		if rErr := gas.SetTPX(T, P, X); rErr != nil && err == nil {
			err = fmt.Errorf("restoring backend state: %w", rErr)
		}
	}()
	for i, sgn := range []float64{-1, 1} {
		if err = gas.SetTPX(T+sgn*dd.DT, P, X); err != nil {
			return
		}
		rhoPM[i] = gas.Density()
	}
	dRhodT := (rhoPM[1] - rhoPM[0]) / (2 * dd.DT)
	Ea = -2 * thermo.GasConstant * dRhodT * T * T / rho
	return
}

// MixtureSampler derives the density ratio and Zel'dovich number of a fuel and
// oxidizer pair at a given equivalence ratio.
type MixtureSampler struct {
	Fuel, Oxidizer thermo.Composition
	Activation     ActivationEnergy
}

func NewMixtureSampler(fuel, oxidizer thermo.Composition, ea ActivationEnergy) *MixtureSampler {
	if ea == nil {
		ea = FixedActivationEnergy(DefaultActivationEnergy)
	}
	return &MixtureSampler{
		Fuel:       fuel,
		Oxidizer:   oxidizer,
		Activation: ea,
	}
}

// Sample leaves the backend holding the unburned mixture at (phi, T, P).
func (ms *MixtureSampler) Sample(gas thermo.Backend, phi, T, P float64) (mix MixtureState, err error) {
	mix = MixtureState{Phi: phi, T: T, P: P}
	if err = gas.SetTPX(T, P, ms.Oxidizer); err != nil {
		return
	}
	if err = gas.SetEquivalenceRatio(phi, ms.Fuel, ms.Oxidizer); err != nil {
		return
	}
	mix.RhoU = gas.Density()
	mix.Lambda = gas.ThermalConductivity()
	if mix.Ea, err = ms.Activation.Estimate(gas); err != nil {
		return
	}

	Tu, Pu, Xu := gas.TPX()
	if err = gas.EquilibrateHP(); err != nil {
		return
	}
	mix.TB = gas.Temperature()
	mix.RhoB = gas.Density()
	if err = gas.SetTPX(Tu, Pu, Xu); err != nil {
		return
	}

	mix.Sigma = mix.RhoU / mix.RhoB
	mix.Beta = mix.Ea * (mix.TB - T) / (thermo.GasConstant * mix.TB * T)
	if !utils.IsFinite(mix.Sigma) || !utils.IsFinite(mix.Beta) {
		err = fmt.Errorf("%w: undefined mixture state at phi = %g", ErrDomain, phi)
	}
	return
}
