//go:build !amd64

package gf2

var hasCLMUL = false

func clmul(a, b uint64) (lo, hi uint64) {
	return clmulGeneric(a, b)
}
