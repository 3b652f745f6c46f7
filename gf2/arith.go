package gf2

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Deg returns the degree of p, or -1 if p is the zero polynomial.
func Deg[P Word](p P) int {
	return bits.Len64(uint64(p)) - 1
}

// Plus returns the sum of p and q, which is just the bitwise xor of
// the two.
func Plus[P Word](p, q P) P {
	return p ^ q
}

// Shl returns p * x^k. It fails with ErrDegreeOverflow if the product
// doesn't fit in P. It panics if k is negative.
func Shl[P Word](p P, k int) (P, error) {
	if k < 0 {
		panic("negative shift")
	}
	if p == 0 {
		return 0, nil
	}
	if d := Deg(p) + k; d >= Width[P]() {
		return 0, errors.Wrapf(ErrDegreeOverflow, "shifting degree %d by %d", Deg(p), k)
	}
	return p << uint(k), nil
}

// Mul returns the product of p and q. Unlike MulMod, the product is
// not reduced, so it fails with ErrDegreeOverflow if deg(p) + deg(q)
// is at least the width of P.
func Mul[P Word](p, q P) (P, error) {
	return mul(p, q, hasCLMUL)
}

func mul[P Word](p, q P, useCLMUL bool) (P, error) {
	if p == 0 || q == 0 {
		return 0, nil
	}
	if d := Deg(p) + Deg(q); d >= Width[P]() {
		return 0, errors.Wrapf(ErrDegreeOverflow, "product of degree %d", d)
	}
	// The product fits in P, so the high half is zero.
	lo, _ := mulWide(uint64(p), uint64(q), useCLMUL)
	return P(lo), nil
}

// DivMod returns the quotient q and remainder r of a divided by b, so
// that a = b*q + r and either r == 0 or deg(r) < deg(b). It fails
// with ErrDivisionByZero if b == 0.
func DivMod[P Word](a, b P) (q, r P, err error) {
	if b == 0 {
		return 0, 0, errors.Wrapf(ErrDivisionByZero, "dividing %#x", uint64(a))
	}
	q, r = divMod(a, b)
	return q, r, nil
}

// divMod is DivMod for b != 0.
func divMod[P Word](a, b P) (q, r P) {
	db := Deg(b)
	r = a
	for dr := Deg(r); dr >= db; dr = Deg(r) {
		s := uint(dr - db)
		r ^= b << s
		q |= 1 << s
	}
	return q, r
}

// Mod returns the remainder of a divided by b. As a special case,
// Mod(a, 0) returns a.
func Mod[P Word](a, b P) P {
	if b == 0 {
		return a
	}
	_, r := divMod(a, b)
	return r
}

// GCD returns the greatest common divisor of a and b, using the
// binary GCD algorithm. GCD(a, 0) and GCD(0, a) return a.
func GCD[P Word](a, b P) P {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	var d uint
	for a&1 == 0 && b&1 == 0 {
		a >>= 1
		b >>= 1
		d++
	}

	// x divides at most one of a and b now, so it's not a factor of
	// the gcd.
	a = stripX(a)
	b = stripX(b)
	for a != b {
		// Both have constant term 1, so the sum has constant term 0
		// and stripping it lowers the total degree.
		if a > b {
			a = stripX(a ^ b)
		} else {
			b = stripX(b ^ a)
		}
	}
	return a << d
}

// stripX divides p != 0 by the highest power of x dividing it.
func stripX[P Word](p P) P {
	return p >> uint(bits.TrailingZeros64(uint64(p)))
}
