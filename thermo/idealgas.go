package thermo

import (
	"errors"
	"fmt"
	"math"
)

var ErrBackend = errors.New("thermo: backend error")

// Backend is the property capability used by the stability analysis. Every
// setter mutates the instance in place, so an instance must not be shared
// between goroutines; use Clone to get an independent one.
type Backend interface {
	SetTPX(T, P float64, X Composition) error
	TPX() (T, P float64, X Composition)
	SetEquivalenceRatio(phi float64, fuel, oxidizer Composition) error
	Temperature() float64
	Density() float64
	ThermalConductivity() float64
	EquilibrateHP() error
	Clone() Backend
}

const (
	equilibriumTol     = 1.e-6 // J/mol
	equilibriumMaxIter = 100
	normalizationTol   = 1.e-12
)

// IdealGas is the reference Backend: an ideal-gas mixture over a Mechanism,
// Mathur-Saxena averaged conductivity and a constant enthalpy, constant
// pressure equilibrium built from complete-combustion products.
type IdealGas struct {
	Mech *Mechanism
	T, P float64
	X    []float64
}

func NewIdealGas(mech *Mechanism) (g *IdealGas) {
	g = &IdealGas{
		Mech: mech,
		T:    300,
		P:    OneAtm,
		X:    make([]float64, mech.NSpecies()),
	}
	if err := g.SetTPX(300, OneAtm, Composition{"O2": 0.21, "N2": 0.79}); err != nil {
		panic(err)
	}
	return
}

func (g *IdealGas) Clone() Backend {
	gg := &IdealGas{
		Mech: g.Mech,
		T:    g.T,
		P:    g.P,
		X:    make([]float64, len(g.X)),
	}
	copy(gg.X, g.X)
	return gg
}

func (g *IdealGas) SetTPX(T, P float64, X Composition) (err error) {
	var (
		x     []float64
		total float64
	)
	if !(T > 0) || math.IsInf(T, 0) {
		return fmt.Errorf("%w: temperature %g K is not physical", ErrBackend, T)
	}
	if !(P > 0) || math.IsInf(P, 0) {
		return fmt.Errorf("%w: pressure %g Pa is not physical", ErrBackend, P)
	}
	if x, err = g.moleFractions(X); err != nil {
		return
	}
	for _, v := range x {
		total += v
	}
	if math.Abs(total-1) > normalizationTol {
		for i := range x {
			x[i] /= total
		}
	}
	g.T, g.P, g.X = T, P, x
	return
}

func (g *IdealGas) moleFractions(X Composition) (x []float64, err error) {
	var total float64
	x = make([]float64, g.Mech.NSpecies())
	for name, val := range X {
		i, ok := g.Mech.Index(name)
		if !ok {
			return nil, fmt.Errorf("%w: species %s is not in mechanism %s", ErrBackend, name, g.Mech.Name)
		}
		if val < 0 || math.IsNaN(val) {
			return nil, fmt.Errorf("%w: mole fraction of %s is %g", ErrBackend, name, val)
		}
		x[i] = val
		total += val
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: composition has no species", ErrBackend)
	}
	return
}

func (g *IdealGas) TPX() (T, P float64, X Composition) {
	X = make(Composition)
	for i, v := range g.X {
		if v != 0 {
			X[g.Mech.Species[i].Name] = v
		}
	}
	return g.T, g.P, X
}

// SetEquivalenceRatio replaces the composition with the fuel/oxidizer blend at
// equivalence ratio phi, keeping temperature and pressure.
func (g *IdealGas) SetEquivalenceRatio(phi float64, fuel, oxidizer Composition) (err error) {
	var (
		xf, xo         []float64
		demandFuel     float64
		demandOxidizer float64
	)
	if !(phi > 0) || math.IsInf(phi, 0) {
		return fmt.Errorf("%w: equivalence ratio %g is not positive", ErrBackend, phi)
	}
	if xf, err = g.moleFractions(fuel); err != nil {
		return
	}
	if xo, err = g.moleFractions(oxidizer); err != nil {
		return
	}
	sf, so := sum(xf), sum(xo)
	for i, sp := range g.Mech.Species {
		xf[i] /= sf
		xo[i] /= so
		demandFuel += xf[i] * sp.O2Demand()
		demandOxidizer += xo[i] * sp.O2Demand()
	}
	if demandFuel <= 0 || demandOxidizer >= 0 {
		return fmt.Errorf("%w: fuel %v / oxidizer %v do not form a combustible pair", ErrBackend, fuel, oxidizer)
	}
	// moles of fuel blend per mole of oxidizer blend
	ratio := phi * (-demandOxidizer) / demandFuel
	X := make(Composition)
	for i, sp := range g.Mech.Species {
		if v := ratio*xf[i] + xo[i]; v != 0 {
			X[sp.Name] = v
		}
	}
	return g.SetTPX(g.T, g.P, X)
}

func (g *IdealGas) Temperature() float64 { return g.T }

// MeanMolarMass in kg/mol
func (g *IdealGas) MeanMolarMass() (W float64) {
	for i, sp := range g.Mech.Species {
		W += g.X[i] * sp.W
	}
	return
}

// Density in kg/m^3
func (g *IdealGas) Density() float64 {
	return g.P * g.MeanMolarMass() / (GasConstant * g.T)
}

// ThermalConductivity in W/(m K), the Mathur-Saxena average of the pure
// species values.
func (g *IdealGas) ThermalConductivity() float64 {
	var (
		lSum, lInvSum float64
	)
	for i, sp := range g.Mech.Species {
		if g.X[i] == 0 {
			continue
		}
		l := sp.Conductivity(g.T)
		lSum += g.X[i] * l
		lInvSum += g.X[i] / l
	}
	return 0.5 * (lSum + 1/lInvSum)
}

// Enthalpy is the mixture molar enthalpy in J/mol
func (g *IdealGas) Enthalpy() float64 {
	return enthalpy(g.Mech, g.X, g.T)
}

func enthalpy(mech *Mechanism, n []float64, T float64) (h float64) {
	for i, sp := range mech.Species {
		if n[i] != 0 {
			h += n[i] * sp.Enthalpy(T)
		}
	}
	return
}

// EquilibrateHP moves the mixture to its adiabatic, constant pressure burned
// state. Repeating the call leaves the state unchanged.
func (g *IdealGas) EquilibrateHP() (err error) {
	var (
		n  []float64
		Tb float64
		h0 = g.Enthalpy()
	)
	if n, err = g.products(); err != nil {
		return
	}
	residual := func(T float64) float64 {
		return enthalpy(g.Mech, n, T) - h0
	}
	if Tb, err = fzero(residual, math.Max(g.T, 1000), equilibriumTol, equilibriumMaxIter); err != nil {
		return fmt.Errorf("HP equilibrium from T = %g K: %w", g.T, err)
	}
	total := sum(n)
	for i := range n {
		n[i] /= total
	}
	g.T, g.X = Tb, n
	return
}

// products allocates the element inventory of one mole of the current mixture
// to N2, H2O, CO/CO2, H2 and O2. Oxygen goes to CO first, then to water, then
// to CO2; whatever is left is O2.
func (g *IdealGas) products() (n []float64, err error) {
	var (
		nC, nH, nO, nN float64
		mech           = g.Mech
	)
	for i, sp := range mech.Species {
		nC += g.X[i] * sp.NC
		nH += g.X[i] * sp.NH
		nO += g.X[i] * sp.NO
		nN += g.X[i] * sp.NN
	}
	if nO < nC {
		return nil, fmt.Errorf("%w: not enough oxygen (%g) to gasify carbon (%g)", ErrBackend, nO, nC)
	}
	var (
		oLeft = nO - nC
		h2o   = math.Min(oLeft, 0.5*nH)
	)
	oLeft -= h2o
	co2 := math.Min(oLeft, nC)
	oLeft -= co2
	amounts := map[string]float64{
		"N2":  0.5 * nN,
		"H2O": h2o,
		"H2":  0.5*nH - h2o,
		"CO2": co2,
		"CO":  nC - co2,
		"O2":  0.5 * oLeft,
	}
	n = make([]float64, mech.NSpecies())
	for name, v := range amounts {
		i, _ := mech.Index(name)
		n[i] = v
	}
	return
}

func sum(x []float64) (s float64) {
	for _, v := range x {
		s += v
	}
	return
}
