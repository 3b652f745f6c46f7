package gf2

import "github.com/pkg/errors"

// A Source supplies uniformly distributed random 64-bit values.
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it.
type Source interface {
	Uint64() uint64
}

// Random returns a polynomial whose coefficients of x^0 through
// x^(maxDeg-1) are drawn independently and uniformly from src. If
// exact is set, the coefficient of x^maxDeg is 1, so the result has
// degree exactly maxDeg; otherwise it is also random. It fails with
// ErrInvalidDegree unless 0 <= maxDeg < Width[P]().
func Random[P Word](src Source, maxDeg int, exact bool) (P, error) {
	if maxDeg < 0 || maxDeg >= Width[P]() {
		return 0, errors.Wrapf(ErrInvalidDegree, "maximum degree %d with %d-bit words", maxDeg, Width[P]())
	}
	// For maxDeg == 63 the shift yields 0, and the mask all ones.
	mask := uint64(1)<<uint(maxDeg+1) - 1
	p := P(src.Uint64() & mask)
	if exact {
		p |= P(1) << uint(maxDeg)
	}
	return p, nil
}
