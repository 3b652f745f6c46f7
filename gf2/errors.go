package gf2

import "github.com/pkg/errors"

var (
	// ErrDivisionByZero is returned when dividing or reducing by the
	// zero polynomial.
	ErrDivisionByZero = errors.New("division by zero polynomial")

	// ErrDegreeOverflow is returned when the exact result of an
	// operation has a degree that does not fit in the word.
	ErrDegreeOverflow = errors.New("degree overflow")

	// ErrInvalidDegree is returned when a requested degree is negative
	// or too large for the word.
	ErrInvalidDegree = errors.New("invalid degree")

	// ErrNotIrreducible is returned by operations that are only
	// defined modulo an irreducible polynomial.
	ErrNotIrreducible = errors.New("polynomial is not irreducible")
)
