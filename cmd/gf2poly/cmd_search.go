package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/akalin/gf2poly/gf2"
)

type searchOptions struct {
	Degree    int
	Primitive bool
	Limit     int
	Reverse   bool
}

func newSearchCommand(opts *GlobalOptions) *cobra.Command {
	var sopts searchOptions
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List irreducible or primitive polynomials of a degree",
		Long: `
The "search" command lists irreducible polynomials of exactly --degree in
increasing order, or decreasing with --reverse, stopping after --limit of them.
With --primitive only primitive polynomials are listed.
`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(opts, sopts, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.IntVarP(&sopts.Degree, "degree", "d", 8, "`degree` of the polynomials")
	f.BoolVar(&sopts.Primitive, "primitive", false, "only list primitive polynomials")
	f.IntVarP(&sopts.Limit, "limit", "n", 10, "stop after `count` polynomials, 0 for no limit")
	f.BoolVar(&sopts.Reverse, "reverse", false, "search from the largest polynomial down")
	return cmd
}

func runSearch(opts *GlobalOptions, sopts searchOptions, out io.Writer) error {
	n := sopts.Degree
	if n < 1 || n >= gf2.Width[gf2.Poly64]() {
		return errors.Wrapf(gf2.ErrInvalidDegree, "degree %d", n)
	}
	test := gf2.Poly64.Irreducible
	if sopts.Primitive {
		test = gf2.Poly64.Primitive
	}

	// Apart from x itself, a polynomial with no constant term is
	// divisible by x, so only odd candidates are tried.
	count := uint64(1) << uint(n-1)
	candidate := func(i uint64) gf2.Poly64 {
		return (gf2.Poly64(1)<<uint(n) | 1) + gf2.Poly64(2*i)
	}
	if n == 1 {
		count = 2
		candidate = func(i uint64) gf2.Poly64 { return gf2.Poly64(2 + i) }
	}

	found := 0
	for i := uint64(0); i < count; i++ {
		j := i
		if sopts.Reverse {
			j = count - 1 - i
		}
		p := candidate(j)
		ok, err := test(p)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		fmt.Fprintf(out, "%#x %v\n", uint64(p), p)
		found++
		if sopts.Limit > 0 && found >= sopts.Limit {
			break
		}
	}
	opts.log.Debug().Int("degree", n).Int("found", found).Msg("search done")
	return nil
}
