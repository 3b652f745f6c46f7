package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/akalin/gf2poly/gf2"
)

func newInfoCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info poly",
		Short: "Print the properties of a polynomial",
		Long: `
The "info" command prints the degree, parity, derivative and reciprocal of a
polynomial, and whether it is irreducible or primitive. For an irreducible
polynomial it also prints the multiplicative order of x, which is the period
of an LFSR using it as its tap polynomial.
`,
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoly(args[0])
			if err != nil {
				return err
			}
			return runInfo(opts, cmd.OutOrStdout(), p)
		},
	}
}

func runInfo(opts *GlobalOptions, out io.Writer, p gf2.Poly64) error {
	irreducible, err := p.Irreducible()
	if err != nil {
		return err
	}
	primitive, err := p.Primitive()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "polynomial:  %v\n", p)
	fmt.Fprintf(out, "hex:         %#x\n", uint64(p))
	fmt.Fprintf(out, "degree:      %d\n", p.Deg())
	fmt.Fprintf(out, "parity:      %d\n", p.Parity())
	fmt.Fprintf(out, "derivative:  %v\n", p.Derivative())
	fmt.Fprintf(out, "reciprocal:  %v\n", p.Reciprocal())
	fmt.Fprintf(out, "irreducible: %t\n", irreducible)
	fmt.Fprintf(out, "primitive:   %t\n", primitive)

	if irreducible && p != 2 {
		opts.log.Debug().Uint64("p", uint64(p)).Msg("computing order of x")
		e, err := p.Order()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "order:       %d\n", e)
	}
	return nil
}
