package gf2

import "math/bits"

var oddMask uint64 = 0xaaaaaaaaaaaaaaaa

// Derivative returns the formal derivative of p. Over GF(2) the terms
// of even degree vanish, and each odd term x^k becomes x^(k-1).
func Derivative[P Word](p P) P {
	return (p & P(oddMask)) >> 1
}

// Parity returns the sum of the coefficients of p mod 2, i.e. p
// evaluated at x = 1.
func Parity[P Word](p P) uint {
	return uint(bits.OnesCount64(uint64(p)) & 1)
}

// Reciprocal returns x^deg(p) * p(1/x), i.e. p with its deg(p) + 1
// lowest coefficients reversed. Factors of x are lost, so
// Reciprocal(Reciprocal(p)) == p only when p has a nonzero constant
// term.
func Reciprocal[P Word](p P) P {
	if p == 0 {
		return 0
	}
	return P(bits.Reverse64(uint64(p)) >> uint(63-Deg(p)))
}
