package stability

import (
	"fmt"

	"github.com/notargets/flamestab/utils"
)

type Coefficients struct {
	Q1, Q2, Q3 float64
	Omega      float64
}

// AssembleCoefficients combines the growth rate, the burned gas conductivity
// lambdaB (relative to the unburned gas) and the transport integrals into the
// three stability coefficients of the dispersion relation.
func AssembleCoefficients(n, sigma, omega, lambdaB float64, g TransportIntegrals) (q Coefficients, err error) {
	var (
		a, b  = hydroCoefficients(n, sigma)
		delta = 2*a*omega + b - 2*a
		n2    = n * n
		n3    = utils.POW(n, 3)
		n4    = utils.POW(n, 4)
		s     = sigma
		s2    = s * s
		w     = omega
		w2    = w * w
	)
	if delta == 0 {
		err = fmt.Errorf("%w: zero coefficient denominator at n = %g, sigma = %g, omega = %g", ErrDomain, n, sigma, omega)
		return
	}
	if sigma == 0 {
		err = fmt.Errorf("%w: zero density ratio", ErrDomain)
		return
	}
	q.Omega = omega
	q.Q1 = (g.Gamma1 / (s * delta)) * (n4*(s+1) +
		s*n3*(2*w+5) +
		n2*(w*s-2*s2+s-1) +
		n*s*(s-7-3*w-s*w) -
		2*s*(1+w))
	q.Q1 += (g.Gamma3 / (s * delta)) * (n * (n2 - 1) * (n + 2) * (s - 1))

	q.Q2 = (g.Gamma2 * (s - 1) / (2 * delta)) * (2*n4 +
		n3*(2*w*s+2*w+10*s-3) +
		n2*(2*s*w2+(5*s-1)*w+3*s-2*s2-2) +
		n*(s*w2*(1-4*s)-(14*s2+1)*w+3-9*s-8*s2) -
		2*s*(w2+4*w+3))

	q.Q3 = (2 * n * (n2 - 1) * (s - 1) / (s * delta)) *
		((n+2)*(lambdaB-g.Gamma3) - 3*(lambdaB-1))
	return
}
