package gf2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type poly8 uint8

func TestWidth(t *testing.T) {
	require.Equal(t, 8, Width[uint8]())
	require.Equal(t, 8, Width[poly8]())
	require.Equal(t, 16, Width[uint16]())
	require.Equal(t, 32, Width[uint32]())
	require.Equal(t, 64, Width[Poly64]())
}

// Every pair of 8-bit polynomials is small enough to check
// exhaustively against the 64-bit engine.
func TestPoly8MatchesPoly64(t *testing.T) {
	for i := 0; i < 1<<8; i++ {
		a := poly8(i)
		require.Equal(t, Deg(Poly64(i)), Deg(a), "i=%d", i)
		require.Equal(t, Parity(Poly64(i)), Parity(a), "i=%d", i)
		require.Equal(t, Poly64(Derivative(a)), Derivative(Poly64(i)), "i=%d", i)
		require.Equal(t, Poly64(Reciprocal(a)), Reciprocal(Poly64(i)), "i=%d", i)

		ok8, err := Irreducible(a)
		require.NoError(t, err)
		ok64, err := Irreducible(Poly64(i))
		require.NoError(t, err)
		require.Equal(t, ok64, ok8, "i=%d", i)

		for j := 0; j < 1<<8; j++ {
			b := poly8(j)
			require.Equal(t, Poly64(GCD(a, b)), GCD(Poly64(i), Poly64(j)), "i=%d, j=%d", i, j)
			if j == 0 {
				continue
			}
			q8, r8, err := DivMod(a, b)
			require.NoError(t, err)
			q64, r64, err := DivMod(Poly64(i), Poly64(j))
			require.NoError(t, err)
			require.Equal(t, q64, Poly64(q8), "i=%d, j=%d", i, j)
			require.Equal(t, r64, Poly64(r8), "i=%d, j=%d", i, j)
		}
	}
}

func TestPoly8Overflow(t *testing.T) {
	// x^4 * x^4 needs bit 8.
	_, err := Mul(poly8(0x10), poly8(0x10))
	require.ErrorIs(t, err, ErrDegreeOverflow)
	p, err := Mul(poly8(0x10), poly8(0x8))
	require.NoError(t, err)
	require.Equal(t, poly8(0x80), p)

	_, err = Shl(poly8(0x81), 1)
	require.ErrorIs(t, err, ErrDegreeOverflow)

	// Reducing modulo a degree-7 polynomial never overflows.
	const m = poly8(0x83)
	for i := 0; i < 1<<7; i++ {
		r, err := MulMod(poly8(i), poly8(2), m)
		require.NoError(t, err)
		want := Poly64(i<<1) ^ Poly64(m)*Poly64(i>>6)
		require.Equal(t, want, Poly64(r), "i=%d", i)
	}
}

func TestPoly8Primitive(t *testing.T) {
	// x^7 + x + 1.
	ok, err := Primitive(poly8(0x83))
	require.NoError(t, err)
	require.True(t, ok)

	e, err := Order(uint8(0x83))
	require.NoError(t, err)
	require.Equal(t, uint64(127), e)
}
