package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDivCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "div dividend divisor",
		Short:             "Divide two polynomials",
		Args:              cobra.ExactArgs(2),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := parsePolys(args)
			if err != nil {
				return err
			}
			q, r, err := ps[0].DivMod(ps[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "quotient:  %v (%#x)\n", q, uint64(q))
			fmt.Fprintf(out, "remainder: %v (%#x)\n", r, uint64(r))
			return nil
		},
	}
}

func newGCDCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "gcd a b",
		Short:             "Compute the greatest common divisor of two polynomials",
		Args:              cobra.ExactArgs(2),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := parsePolys(args)
			if err != nil {
				return err
			}
			g := ps[0].GCD(ps[1])
			fmt.Fprintf(cmd.OutOrStdout(), "%v (%#x)\n", g, uint64(g))
			return nil
		},
	}
}

func newMulModCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "mulmod a b modulus",
		Short:             "Multiply two polynomials modulo a third",
		Args:              cobra.ExactArgs(3),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := parsePolys(args)
			if err != nil {
				return err
			}
			r, err := ps[0].MulMod(ps[1], ps[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v (%#x)\n", r, uint64(r))
			return nil
		},
	}
}

func newPowCommand() *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "pow exponent modulus",
		Short: "Raise a polynomial to a power modulo another",
		Long: `
The "pow" command computes base^exponent mod modulus by repeated squaring. The
base defaults to x.
`,
		Args:              cobra.ExactArgs(2),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return errors.Wrapf(err, "parsing exponent %q", args[0])
			}
			ps, err := parsePolys([]string{base, args[1]})
			if err != nil {
				return err
			}
			r, err := ps[0].PowMod(n, ps[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v (%#x)\n", r, uint64(r))
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "x", "`polynomial` to raise to the power")
	return cmd
}
