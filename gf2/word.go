package gf2

import "math/bits"

// Word is the set of unsigned machine words a polynomial can be stored
// in. Bit i of a Word holds the coefficient of x^i, so a Word of width
// W holds polynomials of degree at most W-1.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the number of coefficient bits of P.
func Width[P Word]() int {
	return bits.Len64(uint64(^P(0)))
}
