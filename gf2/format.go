package gf2

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Expand returns p written as a sum of monomials in the variable v,
// from the highest degree down, e.g. "x^4 + x + 1" for p = 0x13. The
// zero polynomial expands to "0".
func Expand[P Word](p P, v string) string {
	if p == 0 {
		return "0"
	}
	var terms []string
	for i := Deg(p); i >= 0; i-- {
		if (p>>uint(i))&1 == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, v)
		default:
			terms = append(terms, v+"^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, " + ")
}

// Fprint writes the expansion of p in the variable v to w.
func Fprint[P Word](w io.Writer, p P, v string) error {
	_, err := io.WriteString(w, Expand(p, v))
	return errors.Wrap(err, "writing polynomial")
}

// Parse parses s as a polynomial. s may be an integer literal as
// accepted by strconv.ParseUint with base 0 (e.g. "0x13", "0b10011"
// or "19"), or a sum of monomials in a single-letter variable as
// produced by Expand (e.g. "x^4 + x + 1"). Repeated monomials cancel
// in pairs, as they do over GF(2).
func Parse(s string) (Poly64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty polynomial")
	}
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		return Poly64(n), nil
	}

	var p Poly64
	var v rune
	for _, term := range strings.Split(s, "+") {
		term = strings.TrimSpace(term)
		if term == "1" {
			p ^= 1
			continue
		}
		if term == "" || !unicode.IsLetter(rune(term[0])) {
			return 0, errors.Errorf("invalid term %q in %q", term, s)
		}
		if v == 0 {
			v = rune(term[0])
		} else if rune(term[0]) != v {
			return 0, errors.Errorf("mixed variables in %q", s)
		}

		k := 1
		if rest := term[1:]; rest != "" {
			if rest[0] != '^' {
				return 0, errors.Errorf("invalid term %q in %q", term, s)
			}
			var err error
			k, err = strconv.Atoi(strings.TrimSpace(rest[1:]))
			if err != nil {
				return 0, errors.Wrapf(err, "invalid exponent in %q", term)
			}
		}
		if k < 0 || k >= Width[Poly64]() {
			return 0, errors.Wrapf(ErrInvalidDegree, "term %q", term)
		}
		p ^= 1 << uint(k)
	}
	return p, nil
}
