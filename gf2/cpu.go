package gf2

// mulWide returns the full 128-bit product of a and b as polynomials,
// split into its low and high 64 coefficients.
func mulWide(a, b uint64, useCLMUL bool) (lo, hi uint64) {
	if useCLMUL {
		return clmul(a, b)
	}
	return clmulGeneric(a, b)
}

func clmulGeneric(a, b uint64) (lo, hi uint64) {
	for i := uint(0); b != 0; i++ {
		if b&1 != 0 {
			lo ^= a << i
			// a >> 64 is zero, which is right for i == 0.
			hi ^= a >> (64 - i)
		}
		b >>= 1
	}
	return lo, hi
}

// mod128 returns (hi*x^64 + lo) mod m, for m != 0.
func mod128(hi, lo, m uint64) uint64 {
	dm := Deg(m)
	for hi != 0 {
		// Cancel the leading term with m*x^s.
		s := 64 + Deg(hi) - dm
		if s >= 64 {
			hi ^= m << uint(s-64)
		} else {
			hi ^= m >> uint(64-s)
			lo ^= m << uint(s)
		}
	}
	return Mod(lo, m)
}
