package stability

import "errors"

var (
	// ErrDomain marks a formula evaluated outside the set where it is defined:
	// density ratio at or below one, zero denominators, a negative
	// discriminant, a non-finite Peclet number.
	ErrDomain = errors.New("stability: domain error")

	// ErrConvergence marks a critical point search that ran out of iterations.
	ErrConvergence = errors.New("stability: optimization did not converge")
)
