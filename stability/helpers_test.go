package stability

import (
	"fmt"

	"github.com/notargets/flamestab/thermo"
)

var (
	blendFuel = thermo.Composition{"C3H8": 0.5, "NH3": 0.5}
	air       = thermo.Composition{"O2": 0.21, "N2": 0.79}
)

// stoichiometricBlend is the C3H8/NH3 blend at phi = 1, 300 K and 5 bar
func stoichiometricBlend() (gas *thermo.IdealGas, mix MixtureState, err error) {
	gas = thermo.NewIdealGas(thermo.ReferenceMechanism())
	mix, err = NewMixtureSampler(blendFuel, air, nil).Sample(gas, 1, 300, 5.e5)
	return
}

// fakeGas is a Backend with a prescribed conductivity law. SetTPX fails on
// call number failOn (counting from one) when failOn is positive.
type fakeGas struct {
	T, P      float64
	X         thermo.Composition
	lambda    func(T float64) float64
	burnRatio float64
	calls     int
	failOn    int
}

func newFakeGas(lambda func(T float64) float64) *fakeGas {
	return &fakeGas{
		T:         300,
		P:         thermo.OneAtm,
		X:         thermo.Composition{"N2": 1},
		lambda:    lambda,
		burnRatio: 6,
	}
}

func (fg *fakeGas) SetTPX(T, P float64, X thermo.Composition) error {
	fg.calls++
	if fg.calls == fg.failOn {
		return fmt.Errorf("%w: injected failure", thermo.ErrBackend)
	}
	fg.T, fg.P, fg.X = T, P, X
	return nil
}

func (fg *fakeGas) TPX() (T, P float64, X thermo.Composition) { return fg.T, fg.P, fg.X }

func (fg *fakeGas) SetEquivalenceRatio(float64, thermo.Composition, thermo.Composition) error {
	return nil
}

func (fg *fakeGas) Temperature() float64 { return fg.T }
func (fg *fakeGas) Density() float64 { return fg.P / fg.T }
func (fg *fakeGas) ThermalConductivity() float64 { return fg.lambda(fg.T) }

func (fg *fakeGas) EquilibrateHP() error {
	fg.T *= fg.burnRatio
	return nil
}

func (fg *fakeGas) Clone() thermo.Backend {
	c := *fg
	return &c
}
