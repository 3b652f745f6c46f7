package gf2

import (
	"github.com/pkg/errors"

	"github.com/akalin/gf2poly/primes"
)

// Irreducible returns whether p is irreducible over GF(2), using
// Rabin's test: a p of degree n > 1 is irreducible iff
// x^(2^n) = x mod p, and gcd(x^(2^(n/q)) - x, p) = 1 for every prime
// q dividing n. Both polynomials of degree 1, x and x + 1, are
// irreducible.
func Irreducible[P Word](p P) (bool, error) {
	n := Deg(p)
	switch {
	case n < 1:
		// Zero and units have no factorization to speak of.
		return false, nil
	case n == 1:
		return true, nil
	case p&1 == 0:
		// Divisible by x.
		return false, nil
	case Parity(p) == 0:
		// Divisible by x + 1.
		return false, nil
	}

	const x = 2
	r, err := X2k(n, p)
	if err != nil {
		return false, errors.Wrapf(err, "computing x^(2^%d)", n)
	}
	if r^x != 0 {
		return false, nil
	}

	for _, q := range primes.Distinct(uint64(n)) {
		k := n / int(q)
		s, err := X2k(k, p)
		if err != nil {
			return false, errors.Wrapf(err, "computing x^(2^%d)", k)
		}
		if GCD(s^x, p) != 1 {
			return false, nil
		}
	}
	return true, nil
}

// Primitive returns whether p is primitive, i.e. irreducible of some
// degree n with x generating the multiplicative group of order
// 2^n - 1 of GF(2)[x]/(p).
func Primitive[P Word](p P) (bool, error) {
	ok, err := Irreducible(p)
	if err != nil || !ok {
		return false, err
	}
	if p == 2 {
		// x is irreducible, but x mod x is zero.
		return false, nil
	}

	m := groupOrder(p)
	for _, q := range primes.Distinct(m) {
		r, err := XPow(m/q, p)
		if err != nil {
			return false, errors.Wrapf(err, "computing x^%d", m/q)
		}
		if r == 1 {
			return false, nil
		}
	}
	return true, nil
}

// Order returns the multiplicative order of x modulo p, the least
// e > 0 with x^e = 1 mod p. It fails with ErrNotIrreducible unless p
// is irreducible and not x itself. The order divides 2^deg(p) - 1,
// with equality exactly when p is primitive.
func Order[P Word](p P) (uint64, error) {
	ok, err := Irreducible(p)
	if err != nil {
		return 0, err
	}
	if !ok || p == 2 {
		return 0, errors.Wrapf(ErrNotIrreducible, "order of x modulo %#x", uint64(p))
	}

	e := groupOrder(p)
	for _, q := range primes.Distinct(e) {
		for e%q == 0 {
			r, err := XPow(e/q, p)
			if err != nil {
				return 0, errors.Wrapf(err, "computing x^%d", e/q)
			}
			if r != 1 {
				break
			}
			e /= q
		}
	}
	return e, nil
}

// groupOrder returns 2^deg(p) - 1, which fits since deg(p) < 64.
func groupOrder[P Word](p P) uint64 {
	return uint64(1)<<uint(Deg(p)) - 1
}
