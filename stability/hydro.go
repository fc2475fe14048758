package stability

import (
	"fmt"
	"math"
)

// hydroCoefficients returns the leading and linear coefficients of the
// hydrodynamic eigenvalue quadratic, a*omega^2 + b*omega + c = 0.
func hydroCoefficients(n, sigma float64) (a, b float64) {
	a = (sigma+1)*n + 1
	b = 2*n*n + (4+5*sigma)*n + 4
	return
}

// Omega is the Darrieus-Landau growth rate for wavenumber n and density ratio
// sigma, the root (-b + sqrt(b^2 - 4ac)) / 2a of the hydrodynamic quadratic.
func Omega(n, sigma float64) (omega float64, err error) {
	var (
		a, b = hydroCoefficients(n, sigma)
		c    float64
		disc float64
	)
	if !(sigma > 0) {
		err = fmt.Errorf("%w: density ratio %g must be positive", ErrDomain, sigma)
		return
	}
	if a == 0 {
		err = fmt.Errorf("%w: degenerate hydrodynamic quadratic at n = %g, sigma = %g", ErrDomain, n, sigma)
		return
	}
	c = -(sigma-1)/sigma*n*n*n + 2*n*n + (3*(sigma+1)-1/sigma)*n + 2
	disc = b*b - 4*a*c
	if disc < 0 || math.IsNaN(disc) {
		err = fmt.Errorf("%w: no real hydrodynamic eigenvalue at n = %g, sigma = %g (discriminant %g)",
			ErrDomain, n, sigma, disc)
		return
	}
	omega = (-b + math.Sqrt(disc)) / (2 * a)
	return
}
