package stability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/flamestab/thermo"
)

func TestMixtureSampler(t *testing.T) {
	gas, mix, err := stoichiometricBlend()
	require.NoError(t, err)
	assert.Equal(t, 1., mix.Phi)
	assert.InEpsilon(t, 8.280291322, mix.Sigma, 1.e-9)
	assert.InEpsilon(t, 122.6507389, mix.Beta, 1.e-9)
	assert.InDelta(t, 2382.708078, mix.TB, 1.e-5)
	assert.InEpsilon(t, 5.806642333247581, mix.RhoU, 1.e-12)
	assert.InEpsilon(t, 0.025678881234451258, mix.Lambda, 1.e-12)
	assert.Equal(t, DefaultActivationEnergy, mix.Ea)
	assert.InEpsilon(t, mix.RhoU/mix.RhoB, mix.Sigma, 1.e-15)

	// Left at the unburned state
	T, P, X := gas.TPX()
	assert.Equal(t, 300., T)
	assert.Equal(t, 5.e5, P)
	assert.Greater(t, X["C3H8"], 0.)
	assert.Zero(t, X["CO2"])

	{ // Lean and rich mixtures burn cooler than stoichiometric
		ms := NewMixtureSampler(blendFuel, air, nil)
		for _, phi := range []float64{0.7, 1.5} {
			m, err := ms.Sample(gas, phi, 300, 5.e5)
			require.NoError(t, err)
			assert.Less(t, m.TB, mix.TB)
			assert.Greater(t, m.Sigma, 1.)
		}
		m, err := ms.Sample(gas, 0.7, 300, 5.e5)
		require.NoError(t, err)
		assert.InEpsilon(t, 6.555207, m.Sigma, 1.e-6)
		assert.InEpsilon(t, 118.261385, m.Beta, 1.e-6)
	}
	{ // Invalid inputs
		ms := NewMixtureSampler(blendFuel, air, nil)
		_, err = ms.Sample(gas, 0, 300, 5.e5)
		assert.True(t, errors.Is(err, thermo.ErrBackend))
		_, err = ms.Sample(gas, 1, 300, -1)
		assert.True(t, errors.Is(err, thermo.ErrBackend))
		ms.Activation = FixedActivationEnergy(-1)
		_, err = ms.Sample(gas, 1, 300, 5.e5)
		assert.True(t, errors.Is(err, ErrDomain))
	}
}

func TestDensityDerivativeActivationEnergy(t *testing.T) {
	var (
		R  = thermo.GasConstant
		T  = 300.
		dT = 5.
	)
	gas := thermo.NewIdealGas(thermo.ReferenceMechanism())
	require.NoError(t, gas.SetEquivalenceRatio(1, blendFuel, air))
	T0, P0, X0 := gas.TPX()

	// rho ~ 1/T for an ideal gas, so the centered difference gives 2R T^3/(T^2 - dT^2)
	Ea, err := DensityDerivativeActivationEnergy{DT: dT}.Estimate(gas)
	require.NoError(t, err)
	assert.InEpsilon(t, 2*R*T*T*T/(T*T-dT*dT), Ea, 1.e-9)

	T1, P1, X1 := gas.TPX()
	assert.Equal(t, T0, T1)
	assert.Equal(t, P0, P1)
	assert.Equal(t, X0, X1)

	for _, bad := range []float64{0, -1, T} {
		_, err = DensityDerivativeActivationEnergy{DT: bad}.Estimate(gas)
		assert.True(t, errors.Is(err, ErrDomain))
	}

	{ // Used through the sampler, beta scales with Ea
		ms := NewMixtureSampler(blendFuel, air, DensityDerivativeActivationEnergy{DT: dT})
		mix, err := ms.Sample(gas, 1, T, 5.e5)
		require.NoError(t, err)
		assert.InEpsilon(t, 2*R*T*T*T/(T*T-dT*dT), mix.Ea, 1.e-9)
		assert.InEpsilon(t, mix.Ea*(mix.TB-T)/(R*mix.TB*T), mix.Beta, 1.e-12)
	}
}
