package gf2

import "github.com/pkg/errors"

// MulMod returns a*b mod m. It fails with ErrDivisionByZero if m == 0.
//
// The full product is formed in 128 bits, so it never overflows even
// when deg(m) is 63.
func MulMod[P Word](a, b, m P) (P, error) {
	return mulMod(a, b, m, hasCLMUL)
}

func mulMod[P Word](a, b, m P, useCLMUL bool) (P, error) {
	if m == 0 {
		return 0, errors.Wrap(ErrDivisionByZero, "reducing product")
	}
	lo, hi := mulWide(uint64(Mod(a, m)), uint64(Mod(b, m)), useCLMUL)
	return P(mod128(hi, lo, uint64(m))), nil
}

// X2k returns x^(2^k) mod m, by squaring x mod m k times. It fails
// with ErrDivisionByZero if m == 0.
func X2k[P Word](k int, m P) (P, error) {
	if m == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "computing x^(2^%d)", k)
	}
	r := Mod(P(2), m)
	for i := 0; i < k; i++ {
		var err error
		r, err = MulMod(r, r, m)
		if err != nil {
			return 0, errors.Wrapf(err, "squaring step %d", i)
		}
	}
	return r, nil
}

// PowMod returns base^n mod m, by repeated squaring. It fails with
// ErrDivisionByZero if m == 0.
func PowMod[P Word](base P, n uint64, m P) (P, error) {
	if m == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "computing power %d", n)
	}
	r := Mod(P(1), m)
	b := Mod(base, m)
	for ; n != 0; n >>= 1 {
		var err error
		if n&1 != 0 {
			r, err = MulMod(r, b, m)
			if err != nil {
				return 0, err
			}
		}
		b, err = MulMod(b, b, m)
		if err != nil {
			return 0, err
		}
	}
	return r, nil
}

// XPow returns x^n mod m.
func XPow[P Word](n uint64, m P) (P, error) {
	return PowMod(P(2), n, m)
}
