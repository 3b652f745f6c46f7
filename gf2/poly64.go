package gf2

// A Poly64 is a polynomial over GF(2) of degree at most 63. Bit i
// holds the coefficient of x^i.
type Poly64 uint64

// Plus returns the sum of p and q as polynomials over GF(2), which is
// just the bitwise xor of the two.
func (p Poly64) Plus(q Poly64) Poly64 {
	return p ^ q
}

// Minus returns the difference of p and q as polynomials over GF(2),
// which is just the bitwise xor of the two.
func (p Poly64) Minus(q Poly64) Poly64 {
	return p ^ q
}

// Times returns the product of p and q as polynomials over GF(2). It
// fails with ErrDegreeOverflow if the product has degree 64 or more.
func (p Poly64) Times(q Poly64) (Poly64, error) {
	return Mul(p, q)
}

// Shl returns p * x^k.
func (p Poly64) Shl(k int) (Poly64, error) {
	return Shl(p, k)
}

// Deg returns the degree of p, or -1 if p is zero.
func (p Poly64) Deg() int {
	return Deg(p)
}

// DivMod returns the quotient and remainder of p divided by d.
func (p Poly64) DivMod(d Poly64) (q, r Poly64, err error) {
	return DivMod(p, d)
}

// Mod returns the remainder of p divided by d, or p if d is zero.
func (p Poly64) Mod(d Poly64) Poly64 {
	return Mod(p, d)
}

// GCD returns the greatest common divisor of p and q.
func (p Poly64) GCD(q Poly64) Poly64 {
	return GCD(p, q)
}

// MulMod returns p*q mod m.
func (p Poly64) MulMod(q, m Poly64) (Poly64, error) {
	return MulMod(p, q, m)
}

// PowMod returns p^n mod m.
func (p Poly64) PowMod(n uint64, m Poly64) (Poly64, error) {
	return PowMod(p, n, m)
}

// Derivative returns the formal derivative of p.
func (p Poly64) Derivative() Poly64 {
	return Derivative(p)
}

// Parity returns p evaluated at x = 1.
func (p Poly64) Parity() uint {
	return Parity(p)
}

// Reciprocal returns p with its coefficients reversed.
func (p Poly64) Reciprocal() Poly64 {
	return Reciprocal(p)
}

// Irreducible returns whether p is irreducible over GF(2).
func (p Poly64) Irreducible() (bool, error) {
	return Irreducible(p)
}

// Primitive returns whether p is a primitive polynomial.
func (p Poly64) Primitive() (bool, error) {
	return Primitive(p)
}

// Order returns the multiplicative order of x modulo p.
func (p Poly64) Order() (uint64, error) {
	return Order(p)
}

// Expand returns p as a sum of monomials in v.
func (p Poly64) Expand(v string) string {
	return Expand(p, v)
}

// String returns p as a sum of monomials in x.
func (p Poly64) String() string {
	return Expand(p, "x")
}

// RandomPoly64 returns a random Poly64 of degree at most maxDeg, or
// exactly maxDeg if exact is set.
func RandomPoly64(src Source, maxDeg int, exact bool) (Poly64, error) {
	return Random[Poly64](src, maxDeg, exact)
}
