// Package lfsr implements linear-feedback shift registers in Galois
// form, driven by a tap polynomial over GF(2).
package lfsr

import (
	"github.com/pkg/errors"

	"github.com/akalin/gf2poly/gf2"
)

var (
	// ErrInvalidTap is returned for a tap polynomial of degree less
	// than 1 or with a zero constant term.
	ErrInvalidTap = errors.New("invalid tap polynomial")

	// ErrInvalidSeed is returned for a zero seed or one whose degree
	// is not below the tap's.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrPeriodLimit is returned when a period exceeds the requested
	// limit.
	ErrPeriodLimit = errors.New("period limit exceeded")
)

// A Register is a Galois LFSR. Its state is a nonzero polynomial of
// degree below that of its tap, and each step multiplies the state by
// x modulo the tap.
type Register struct {
	tap   gf2.Poly64
	n     int
	seed  gf2.Poly64
	state gf2.Poly64
}

// New returns a Register with the given tap polynomial, starting in
// the state seed.
func New(tap, seed gf2.Poly64) (*Register, error) {
	n := tap.Deg()
	if n < 1 || tap&1 == 0 {
		return nil, errors.Wrapf(ErrInvalidTap, "%v", tap)
	}
	if seed == 0 || seed.Deg() >= n {
		return nil, errors.Wrapf(ErrInvalidSeed, "%v with tap of degree %d", seed, n)
	}
	return &Register{tap, n, seed, seed}, nil
}

// Degree returns the degree of the tap polynomial, i.e. the number of
// bits of state.
func (r *Register) Degree() int {
	return r.n
}

// State returns the current state.
func (r *Register) State() gf2.Poly64 {
	return r.state
}

// Next advances the register by one step and returns the bit shifted
// out, which is the coefficient of x^(n-1) before the step.
func (r *Register) Next() uint {
	return r.step()
}

func (r *Register) step() uint {
	out := uint(r.state>>uint(r.n-1)) & 1
	// The shift can't overflow since n < 64.
	r.state <<= 1
	if out != 0 {
		r.state ^= r.tap
	}
	return out
}

// Read fills p with output bits, most significant bit of each byte
// first. It never fails.
func (r *Register) Read(p []byte) (int, error) {
	for i := range p {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | byte(r.step())
		}
		p[i] = b
	}
	return len(p), nil
}

// Reset returns the register to its seed state.
func (r *Register) Reset() {
	r.state = r.seed
}

// Period steps a copy of r until its current state recurs and returns
// the number of steps. Multiplying by x is invertible modulo a tap with
// a nonzero constant term, so every state lies on a cycle. It fails
// with ErrPeriodLimit if no repeat occurs within limit steps.
func (r *Register) Period(limit uint64) (uint64, error) {
	c := *r
	start := c.state
	for p := uint64(1); p <= limit; p++ {
		c.step()
		if c.state == start {
			return p, nil
		}
	}
	return 0, errors.Wrapf(ErrPeriodLimit, "no repeat within %d steps", limit)
}

// PeriodOf returns the period of every register with the given
// irreducible tap, which is the multiplicative order of x modulo tap.
// A primitive tap of degree n has the maximal period 2^n - 1.
func PeriodOf(tap gf2.Poly64) (uint64, error) {
	if tap.Deg() < 1 || tap&1 == 0 {
		return 0, errors.Wrapf(ErrInvalidTap, "%v", tap)
	}
	e, err := tap.Order()
	if err != nil {
		return 0, errors.Wrap(err, "period of tap")
	}
	return e, nil
}
