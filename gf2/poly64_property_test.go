package gf2

import (
	"math/bits"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	return gopter.NewProperties(parameters)
}

// TestDivisionProperties checks the division algorithm on full-width
// polynomials.
func TestDivisionProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("a = b*q + r with deg(r) < deg(b)", prop.ForAll(
		func(a, b uint64) bool {
			if b == 0 {
				b = 1
			}
			q, r, err := DivMod(Poly64(a), Poly64(b))
			if err != nil {
				return false
			}
			bq, err := Mul(Poly64(b), q)
			if err != nil {
				return false
			}
			return bq^r == Poly64(a) && (r == 0 || r.Deg() < Poly64(b).Deg())
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("p mod p = 0 and p mod 1 = 0", prop.ForAll(
		func(p uint64) bool {
			return (p == 0 || Poly64(p).Mod(Poly64(p)) == 0) && Poly64(p).Mod(1) == 0
		},
		gen.UInt64(),
	))

	properties.Property("gcd divides both arguments", prop.ForAll(
		func(a, b uint64) bool {
			g := Poly64(a).GCD(Poly64(b))
			if a == 0 || b == 0 {
				return g == Poly64(a|b)
			}
			return Poly64(a).Mod(g) == 0 && Poly64(b).Mod(g) == 0
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("gcd of products keeps the common factor", prop.ForAll(
		func(a, b, c uint32) bool {
			// Keep all degrees below 21 so the products fit.
			pa, pb, pc := Poly64(a>>11), Poly64(b>>11), Poly64(c>>11)|1
			ca, err := Mul(pa, pc)
			if err != nil {
				return false
			}
			cb, err := Mul(pb, pc)
			if err != nil {
				return false
			}
			g := ca.GCD(cb)
			return g.Mod(pc) == 0
		},
		gen.UInt32(), gen.UInt32(), gen.UInt32(),
	))

	properties.TestingRun(t)
}

func TestModularProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("mulmod by 1 is the identity below deg(m)", prop.ForAll(
		func(a, m uint64) bool {
			m |= 1 << 63
			r, err := MulMod(Poly64(a)&^(1<<63), 1, Poly64(m))
			return err == nil && r == Poly64(a)&^(1<<63)
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("mulmod is commutative", prop.ForAll(
		func(a, b, m uint64) bool {
			if m == 0 {
				m = 1
			}
			ab, err1 := MulMod(Poly64(a), Poly64(b), Poly64(m))
			ba, err2 := MulMod(Poly64(b), Poly64(a), Poly64(m))
			return err1 == nil && err2 == nil && ab == ba
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("mulmod agrees with mul then mod", prop.ForAll(
		func(a, b, m uint32) bool {
			if m == 0 {
				m = 1
			}
			r, err := MulMod(Poly64(a), Poly64(b), Poly64(m))
			if err != nil {
				return false
			}
			prod, err := Mul(Poly64(a), Poly64(b))
			return err == nil && prod.Mod(Poly64(m)) == r
		},
		gen.UInt32(), gen.UInt32(), gen.UInt32(),
	))

	properties.Property("x^(a+b) = x^a * x^b", prop.ForAll(
		func(a, b uint32, m uint64) bool {
			m |= 1
			xa, err := XPow(uint64(a), Poly64(m))
			if err != nil {
				return false
			}
			xb, err := XPow(uint64(b), Poly64(m))
			if err != nil {
				return false
			}
			xab, err := XPow(uint64(a)+uint64(b), Poly64(m))
			if err != nil {
				return false
			}
			prod, err := MulMod(xa, xb, Poly64(m))
			return err == nil && prod == xab
		},
		gen.UInt32(), gen.UInt32(), gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestUnaryProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("parity is the popcount mod 2", prop.ForAll(
		func(p uint64) bool {
			return Poly64(p).Parity() == uint(bits.OnesCount64(p)%2) &&
				Poly64(p).Parity() == uint(Poly64(p).Mod(3))
		},
		gen.UInt64(),
	))

	properties.Property("reciprocal is an involution on odd polynomials", prop.ForAll(
		func(p uint64) bool {
			p |= 1
			return Poly64(p).Reciprocal().Reciprocal() == Poly64(p)
		},
		gen.UInt64(),
	))

	properties.Property("derivative obeys the product rule", prop.ForAll(
		func(a, b uint32) bool {
			pa, pb := Poly64(a), Poly64(b)
			ab, err := Mul(pa, pb)
			if err != nil {
				return false
			}
			l, err := Mul(pa.Derivative(), pb)
			if err != nil {
				return false
			}
			r, err := Mul(pa, pb.Derivative())
			if err != nil {
				return false
			}
			return ab.Derivative() == l^r
		},
		gen.UInt32(), gen.UInt32(),
	))

	properties.Property("the derivative of a square vanishes", prop.ForAll(
		func(a uint32) bool {
			sq, err := Mul(Poly64(a), Poly64(a))
			return err == nil && sq.Derivative() == 0
		},
		gen.UInt32(),
	))

	properties.TestingRun(t)
}

func TestIrreducibleProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("products are reducible", prop.ForAll(
		func(a, b uint32) bool {
			pa, pb := Poly64(a>>1)|2, Poly64(b>>1)|2
			prod, err := Mul(pa, pb)
			if err != nil {
				return false
			}
			ok, err := prod.Irreducible()
			return err == nil && !ok
		},
		gen.UInt32(), gen.UInt32(),
	))

	properties.Property("reciprocals of primitive polynomials are primitive", prop.ForAll(
		func(p uint16) bool {
			ok, err := Poly64(p).Primitive()
			if err != nil {
				return false
			}
			if !ok || p&1 == 0 {
				return true
			}
			rok, err := Poly64(p).Reciprocal().Primitive()
			return err == nil && rok
		},
		gen.UInt16(),
	))

	properties.TestingRun(t)
}
