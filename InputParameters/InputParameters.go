package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

type SearchParameters struct {
	Lower         float64 `yaml:"Lower"`
	Upper         float64 `yaml:"Upper"`
	InitialGuess  float64 `yaml:"InitialGuess"`
	Tolerance     float64 `yaml:"Tolerance"`
	MaxIterations int     `yaml:"MaxIterations"`
	Method        string  `yaml:"Method"` // "brent" or "neldermead"
}

// Parameters obtained from the YAML input file
type StabilityParameters struct {
	Title             string           `yaml:"Title"`
	Temperature       float64          `yaml:"Temperature"` // K
	Pressure          float64          `yaml:"Pressure"`    // Pa
	Prandtl           float64          `yaml:"Prandtl"`
	Fuel              string           `yaml:"Fuel"`
	Oxidizer          string           `yaml:"Oxidizer"`
	ActivationEnergy  float64          `yaml:"ActivationEnergy"`  // J/mol, used when DensityDerivative is unset
	DensityDerivative float64          `yaml:"DensityDerivative"` // K, temperature step of the finite difference Ea estimate
	EquivalenceRatios []float64        `yaml:"EquivalenceRatios"`
	LewisNumbers      []float64        `yaml:"LewisNumbers"`
	Search            SearchParameters `yaml:"Search"`
}

// NewStabilityParameters returns the C3H8/NH3 in air case at 5 bar
func NewStabilityParameters() *StabilityParameters {
	return &StabilityParameters{
		Title:             "C3H8/NH3 50/50 in air, 5 bar",
		Temperature:       300,
		Pressure:          5.e5,
		Prandtl:           0.7,
		Fuel:              "C3H8:0.5,NH3:0.5",
		Oxidizer:          "O2:0.21,N2:0.79",
		ActivationEnergy:  350000,
		EquivalenceRatios: []float64{0.7, 0.8, 0.9, 1.0, 1.1, 1.2, 1.3, 1.4, 1.5},
		LewisNumbers:      []float64{1.42, 1.38, 1.32, 1.25, 1.20, 1.135, 1.08, 1.06, 1.05},
		Search: SearchParameters{
			Lower:         7,
			Upper:         100,
			InitialGuess:  14,
			Tolerance:     1.e-5,
			MaxIterations: 500,
			Method:        "brent",
		},
	}
}

// Parse overlays the YAML onto the receiver, fields absent from the file keep
// their current values.
func (ip *StabilityParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	return ip.Validate()
}

func (ip *StabilityParameters) Validate() error {
	switch {
	case !(ip.Temperature > 0):
		return fmt.Errorf("temperature %g K must be positive", ip.Temperature)
	case !(ip.Pressure > 0):
		return fmt.Errorf("pressure %g Pa must be positive", ip.Pressure)
	case !(ip.Prandtl > 0):
		return fmt.Errorf("Prandtl number %g must be positive", ip.Prandtl)
	case len(ip.EquivalenceRatios) != len(ip.LewisNumbers):
		return fmt.Errorf("%d equivalence ratios but %d Lewis numbers",
			len(ip.EquivalenceRatios), len(ip.LewisNumbers))
	case len(ip.Fuel) == 0 || len(ip.Oxidizer) == 0:
		return fmt.Errorf("fuel and oxidizer must both be given")
	}
	switch ip.Search.Method {
	case "", "brent", "neldermead":
	default:
		return fmt.Errorf("unknown search method %q, want brent or neldermead", ip.Search.Method)
	}
	return nil
}

func (ip *StabilityParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.3f\t\t= Temperature [K]\n", ip.Temperature)
	fmt.Printf("%8.4g\t\t= Pressure [Pa]\n", ip.Pressure)
	fmt.Printf("%8.5f\t\t= Prandtl\n", ip.Prandtl)
	fmt.Printf("[%s]\t= Fuel\n", ip.Fuel)
	fmt.Printf("[%s]\t= Oxidizer\n", ip.Oxidizer)
	if ip.DensityDerivative > 0 {
		fmt.Printf("dT = %5.2f K\t\t= Activation Energy (density derivative)\n", ip.DensityDerivative)
	} else {
		fmt.Printf("%8.0f\t\t= Activation Energy [J/mol]\n", ip.ActivationEnergy)
	}
	fmt.Printf("[%g, %g] from %g, tol %g, %d its, %s\t= Search\n",
		ip.Search.Lower, ip.Search.Upper, ip.Search.InitialGuess,
		ip.Search.Tolerance, ip.Search.MaxIterations, ip.Search.Method)
	for i := range ip.EquivalenceRatios {
		fmt.Printf("phi = %5.2f, Le_eff = %6.3f\n", ip.EquivalenceRatios[i], ip.LewisNumbers[i])
	}
}
