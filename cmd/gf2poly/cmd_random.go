package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/akalin/gf2poly/gf2"
)

// maxTries bounds the search for a random irreducible polynomial. About
// 1 in n polynomials of degree n is irreducible, so this is only hit
// with a broken random source.
const maxTries = 1_000_000

type randomOptions struct {
	Degree      int
	Exact       bool
	Irreducible bool
	Primitive   bool
}

func newRandomCommand(opts *GlobalOptions) *cobra.Command {
	var ropts randomOptions
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random polynomial",
		Long: `
The "random" command draws a polynomial of degree at most --degree with
uniformly random coefficients. With --exact the degree is exactly --degree.
With --irreducible or --primitive, polynomials of exactly that degree are drawn
until one passes the test.
`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := runRandom(opts, ropts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%#x %v\n", uint64(p), p)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&ropts.Degree, "degree", "d", 8, "maximum `degree`")
	f.BoolVar(&ropts.Exact, "exact", false, "force the degree to be exactly --degree")
	f.BoolVar(&ropts.Irreducible, "irreducible", false, "draw until the polynomial is irreducible")
	f.BoolVar(&ropts.Primitive, "primitive", false, "draw until the polynomial is primitive")
	return cmd
}

func runRandom(opts *GlobalOptions, ropts randomOptions) (gf2.Poly64, error) {
	rnd, err := opts.newRand()
	if err != nil {
		return 0, err
	}

	test := func(p gf2.Poly64) (bool, error) { return true, nil }
	switch {
	case ropts.Primitive:
		test = gf2.Poly64.Primitive
	case ropts.Irreducible:
		test = gf2.Poly64.Irreducible
	}
	exact := ropts.Exact || ropts.Primitive || ropts.Irreducible

	for i := 0; i < maxTries; i++ {
		p, err := gf2.RandomPoly64(rnd, ropts.Degree, exact)
		if err != nil {
			return 0, err
		}
		ok, err := test(p)
		if err != nil {
			return 0, err
		}
		if ok {
			opts.log.Debug().Int("tries", i+1).Uint64("p", uint64(p)).Msg("found polynomial")
			return p, nil
		}
	}
	return 0, errors.Errorf("no polynomial found in %d tries", maxTries)
}
