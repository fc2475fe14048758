package thermo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var air = Composition{"O2": 0.21, "N2": 0.79}

func TestParseComposition(t *testing.T) {
	X, err := ParseComposition("C3H8:0.5, NH3:0.5")
	require.NoError(t, err)
	assert.Equal(t, Composition{"C3H8": 0.5, "NH3": 0.5}, X)
	assert.Equal(t, "C3H8:0.5,NH3:0.5", X.String())

	// repeated species accumulate
	X, err = ParseComposition("O2:1,N2:3.76,O2:1")
	require.NoError(t, err)
	assert.Equal(t, 2., X["O2"])

	for _, bad := range []string{"", "O2", "O2:x", "O2:-1", "O2:1:2", ",,", "O2:0,N2:0"} {
		_, err = ParseComposition(bad)
		assert.Truef(t, errors.Is(err, ErrBackend), "input %q", bad)
	}
}

func TestMechanism(t *testing.T) {
	mech := ReferenceMechanism()
	assert.Equal(t, len(ReferenceSpecies), mech.NSpecies())
	i, ok := mech.Index("H2O")
	assert.True(t, ok)
	assert.Equal(t, "H2O", mech.Species[i].Name)
	_, ok = mech.Index("AR")
	assert.False(t, ok)

	_, err := NewMechanism("dup", []Species{ReferenceSpecies[0], ReferenceSpecies[0]})
	assert.Error(t, err)
	// no products
	_, err = NewMechanism("fuel only", ReferenceSpecies[:2])
	assert.Error(t, err)

	o2 := ReferenceSpecies[4]
	assert.Equal(t, -1., o2.O2Demand())
	assert.InDelta(t, 0, o2.Enthalpy(TRef), 1.e-9)
	assert.InDelta(t, o2.Lambda300, o2.Conductivity(300), 1.e-15)
}

func TestIdealGasState(t *testing.T) {
	g := NewIdealGas(ReferenceMechanism())
	{ // Air at 300 K, 1 atm
		assert.Equal(t, 300., g.Temperature())
		_, P, _ := g.TPX()
		assert.Equal(t, OneAtm, P)
		assert.InDelta(t, 1.17197888, g.Density(), 1.e-7)
		assert.InDelta(t, 0.02604546348, g.ThermalConductivity(), 1.e-10)
	}
	{ // State round trip is exact
		require.NoError(t, g.SetTPX(812.5, 5.e5, Composition{"CH4": 0.1, "O2": 0.2, "N2": 0.7}))
		T, P, X := g.TPX()
		rho, lambda := g.Density(), g.ThermalConductivity()
		require.NoError(t, g.SetTPX(1500, 2.e5, air))
		require.NoError(t, g.SetTPX(T, P, X))
		T2, P2, X2 := g.TPX()
		assert.Equal(t, T, T2)
		assert.Equal(t, P, P2)
		assert.Equal(t, X, X2)
		assert.Equal(t, rho, g.Density())
		assert.Equal(t, lambda, g.ThermalConductivity())
	}
	{ // Unnormalized input is normalized
		require.NoError(t, g.SetTPX(300, OneAtm, Composition{"O2": 1, "N2": 3}))
		_, _, X := g.TPX()
		assert.InDelta(t, 0.25, X["O2"], 1.e-15)
		assert.InDelta(t, 1., X.Sum(), 1.e-15)
	}
	{ // Invalid states are rejected and leave the backend untouched
		require.NoError(t, g.SetTPX(300, OneAtm, air))
		for _, tc := range []struct {
			T, P float64
			X    Composition
		}{
			{-1, OneAtm, air},
			{300, -OneAtm, air},
			{300, 0, air},
			{math.NaN(), OneAtm, air},
			{300, OneAtm, Composition{"AR": 1}},
			{300, OneAtm, Composition{"O2": -0.1, "N2": 1}},
			{300, OneAtm, Composition{}},
		} {
			err := g.SetTPX(tc.T, tc.P, tc.X)
			assert.Truef(t, errors.Is(err, ErrBackend), "state %v", tc)
		}
		T, P, X := g.TPX()
		assert.Equal(t, 300., T)
		assert.Equal(t, OneAtm, P)
		assert.Equal(t, air, X)
	}
}

func TestSetEquivalenceRatio(t *testing.T) {
	g := NewIdealGas(ReferenceMechanism())
	require.NoError(t, g.SetEquivalenceRatio(1, Composition{"CH4": 1}, air))
	_, _, X := g.TPX()
	// CH4 + 2 O2: 0.105 mol fuel per mol of air
	assert.InDelta(t, 0.09502262443438914, X["CH4"], 1.e-15)
	assert.InDelta(t, 0.19004524886877827, X["O2"], 1.e-15)
	assert.InDelta(t, 0.7149321266968326, X["N2"], 1.e-15)

	assert.Error(t, g.SetEquivalenceRatio(0, Composition{"CH4": 1}, air))
	assert.Error(t, g.SetEquivalenceRatio(-1, Composition{"CH4": 1}, air))
	// oxidizer with no oxygen
	assert.Error(t, g.SetEquivalenceRatio(1, Composition{"CH4": 1}, Composition{"N2": 1}))
	assert.Error(t, g.SetEquivalenceRatio(1, Composition{"XX": 1}, air))
}

func TestEquilibrateHP(t *testing.T) {
	mech := ReferenceMechanism()
	{ // Stoichiometric methane, one mole of products per mole of reactants
		g := NewIdealGas(mech)
		require.NoError(t, g.SetEquivalenceRatio(1, Composition{"CH4": 1}, air))
		h0 := g.Enthalpy()
		require.NoError(t, g.EquilibrateHP())
		assert.InDelta(t, 2361.090041, g.Temperature(), 1.e-5)
		assert.InDelta(t, h0, g.Enthalpy(), 1.e-5)
		_, P, X := g.TPX()
		assert.Equal(t, OneAtm, P)
		assert.InDelta(t, 0.09502262443438914, X["CO2"], 1.e-12)
		assert.InDelta(t, 0.19004524886877827, X["H2O"], 1.e-12)
		assert.Zero(t, X["CH4"])
		assert.Zero(t, X["O2"])

		// Repeating the equilibration does not move the state
		Tb := g.Temperature()
		require.NoError(t, g.EquilibrateHP())
		_, _, X2 := g.TPX()
		assert.InDelta(t, Tb, g.Temperature(), 1.e-6)
		for name, v := range X {
			assert.InDelta(t, v, X2[name], 1.e-12)
		}
	}
	{ // Rich methane leaves CO and H2 and no O2
		g := NewIdealGas(mech)
		require.NoError(t, g.SetEquivalenceRatio(1.5, Composition{"CH4": 1}, air))
		require.NoError(t, g.EquilibrateHP())
		assert.InDelta(t, 1901.166468, g.Temperature(), 1.e-5)
		_, _, X := g.TPX()
		assert.InDelta(t, 0.12475247524752474, X["CO"], 1.e-12)
		assert.InDelta(t, 0.04158415841584159, X["H2"], 1.e-12)
		assert.Zero(t, X["O2"])
	}
	{ // Lean propane/ammonia at 5 bar burns hot and expands
		g := NewIdealGas(mech)
		require.NoError(t, g.SetTPX(300, 5.e5, air))
		require.NoError(t, g.SetEquivalenceRatio(0.7, Composition{"C3H8": 0.5, "NH3": 0.5}, air))
		rhoU := g.Density()
		require.NoError(t, g.EquilibrateHP())
		assert.InDelta(t, 1908.534, g.Temperature(), 1.e-3)
		assert.Greater(t, rhoU/g.Density(), 1.)
		_, _, X := g.TPX()
		assert.Greater(t, X["O2"], 0.)
	}
	{ // Carbon that cannot be gasified is an error
		g := NewIdealGas(mech)
		require.NoError(t, g.SetTPX(300, OneAtm, Composition{"CH4": 1, "N2": 1}))
		assert.True(t, errors.Is(g.EquilibrateHP(), ErrBackend))
	}
}

func TestClone(t *testing.T) {
	g := NewIdealGas(ReferenceMechanism())
	require.NoError(t, g.SetEquivalenceRatio(1, Composition{"H2": 1}, air))
	c := g.Clone()
	T, P, X := g.TPX()
	require.NoError(t, c.EquilibrateHP())
	T2, P2, X2 := g.TPX()
	assert.Equal(t, T, T2)
	assert.Equal(t, P, P2)
	assert.Equal(t, X, X2)
	assert.Greater(t, c.Temperature(), T)
}

func TestFzero(t *testing.T) {
	x, err := fzero(func(x float64) float64 { return x*x - 2 }, 1, 1.e-12, 100)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1.e-10)

	_, err = fzero(func(x float64) float64 { return x*x + 1 }, 1, 1.e-12, 20)
	assert.True(t, errors.Is(err, ErrBackend))
}
