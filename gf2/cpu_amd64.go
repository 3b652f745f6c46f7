package gf2

import "github.com/klauspost/cpuid/v2"

var hasCLMUL bool

func init() {
	hasCLMUL = cpuid.CPU.Supports(cpuid.CLMUL)
}

// clmul returns the carry-less product of a and b using PCLMULQDQ,
// which must be supported.
func clmul(a, b uint64) (lo, hi uint64)
