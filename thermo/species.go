package thermo

import (
	"fmt"
	"math"
)

const (
	GasConstant = 8.314462618 // J/(mol K)
	TRef        = 298.15      // K, reference temperature of the formation enthalpies
	OneAtm      = 101325.     // Pa
)

// Species holds the per-species data of the reference mechanism. Heat
// capacity is linear in temperature and conductivity is a power law anchored
// at 300 K, both fitted over roughly 300-2500 K.
type Species struct {
	Name           string
	W              float64 // Molar mass, kg/mol
	Hf             float64 // Formation enthalpy at TRef, J/mol
	CpA, CpB       float64 // Cp = CpA + CpB*T, J/(mol K)
	Lambda300      float64 // Thermal conductivity at 300 K, W/(m K)
	LambdaExp      float64 // Lambda = Lambda300 * (T/300)^LambdaExp
	NC, NH, NO, NN float64 // Atoms of carbon, hydrogen, oxygen, nitrogen
}

// Enthalpy returns the molar enthalpy at T in J/mol
func (sp Species) Enthalpy(T float64) float64 {
	return sp.Hf + sp.CpA*(T-TRef) + 0.5*sp.CpB*(T*T-TRef*TRef)
}

func (sp Species) Conductivity(T float64) float64 {
	return sp.Lambda300 * math.Pow(T/300., sp.LambdaExp)
}

// O2Demand is the moles of O2 needed to fully oxidize one mole of the species,
// negative for species that carry free oxygen.
func (sp Species) O2Demand() float64 {
	return sp.NC + 0.25*sp.NH - 0.5*sp.NO
}

type Mechanism struct {
	Name    string
	Species []Species
	index   map[string]int
}

func NewMechanism(name string, species []Species) (mech *Mechanism, err error) {
	mech = &Mechanism{
		Name:    name,
		Species: species,
		index:   make(map[string]int, len(species)),
	}
	for i, sp := range species {
		if _, present := mech.index[sp.Name]; present {
			err = fmt.Errorf("%w: duplicate species %s in mechanism %s", ErrBackend, sp.Name, name)
			return nil, err
		}
		if sp.W <= 0 || sp.Lambda300 <= 0 {
			err = fmt.Errorf("%w: species %s has non-positive molar mass or conductivity", ErrBackend, sp.Name)
			return nil, err
		}
		mech.index[sp.Name] = i
	}
	for _, name := range productSpecies {
		if _, present := mech.index[name]; !present {
			err = fmt.Errorf("%w: mechanism %s lacks product species %s", ErrBackend, mech.Name, name)
			return nil, err
		}
	}
	return
}

func (mech *Mechanism) NSpecies() int { return len(mech.Species) }

func (mech *Mechanism) Index(name string) (i int, ok bool) {
	i, ok = mech.index[name]
	return
}

var productSpecies = []string{"CO2", "H2O", "CO", "H2", "O2", "N2"}

// ReferenceSpecies is the species table of the default mechanism
var ReferenceSpecies = []Species{
	{Name: "CH4", W: 0.016043, Hf: -74873, CpA: 25.2, CpB: 0.0350, Lambda300: 0.0343, LambdaExp: 1.10, NC: 1, NH: 4},
	{Name: "C3H8", W: 0.044097, Hf: -104680, CpA: 32.3, CpB: 0.1377, Lambda300: 0.0183, LambdaExp: 1.30, NC: 3, NH: 8},
	{Name: "NH3", W: 0.017031, Hf: -45898, CpA: 28.5, CpB: 0.0237, Lambda300: 0.0246, LambdaExp: 1.10, NH: 3, NN: 1},
	{Name: "H2", W: 0.002016, Hf: 0, CpA: 27.8, CpB: 0.00324, Lambda300: 0.1830, LambdaExp: 0.72, NH: 2},
	{Name: "O2", W: 0.031999, Hf: 0, CpA: 27.9, CpB: 0.00494, Lambda300: 0.0266, LambdaExp: 0.78, NO: 2},
	{Name: "N2", W: 0.028014, Hf: 0, CpA: 27.3, CpB: 0.00440, Lambda300: 0.0259, LambdaExp: 0.75, NN: 2},
	{Name: "CO2", W: 0.044010, Hf: -393522, CpA: 33.1, CpB: 0.01365, Lambda300: 0.0166, LambdaExp: 1.05, NC: 1, NO: 2},
	{Name: "H2O", W: 0.018015, Hf: -241826, CpA: 30.5, CpB: 0.01035, Lambda300: 0.0186, LambdaExp: 1.20, NH: 2, NO: 1},
	{Name: "CO", W: 0.028010, Hf: -110527, CpA: 27.8, CpB: 0.00424, Lambda300: 0.0250, LambdaExp: 0.75, NC: 1, NO: 1},
}

func ReferenceMechanism() *Mechanism {
	mech, err := NewMechanism("reference", ReferenceSpecies)
	if err != nil {
		panic(err)
	}
	return mech
}
