// Package primes factors machine-sized integers into primes.
package primes

import "math/big"

// Smallest returns the smallest prime factor of n. It panics if
// n < 2.
func Smallest(n uint64) uint64 {
	if n < 2 {
		panic("no prime factor")
	}
	if n%2 == 0 {
		return 2
	}
	if n%3 == 0 {
		return 3
	}
	// ProbablyPrime is exact below 2^64, and saves a trial division
	// up to sqrt(n) for a large prime like 2^61 - 1.
	if new(big.Int).SetUint64(n).ProbablyPrime(0) {
		return n
	}
	// n is composite, so some f <= sqrt(n) < 2^32 divides it and f*f
	// can't overflow.
	for f := uint64(5); f*f <= n; f += 6 {
		if n%f == 0 {
			return f
		}
		if n%(f+2) == 0 {
			return f + 2
		}
	}
	return n
}

// Distinct returns the distinct prime factors of n in increasing
// order. Distinct(0) and Distinct(1) return nil.
func Distinct(n uint64) []uint64 {
	var factors []uint64
	for n > 1 {
		p := Smallest(n)
		factors = append(factors, p)
		for n%p == 0 {
			n /= p
		}
	}
	return factors
}
