package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/akalin/gf2poly/gf2"
	"github.com/akalin/gf2poly/lfsr"
)

// maxBrutePeriod bounds the steps taken to find the period of a
// register whose tap isn't irreducible.
const maxBrutePeriod = 1 << 24

type lfsrOptions struct {
	State string
	Bits  int
}

func newLFSRCommand(opts *GlobalOptions) *cobra.Command {
	var lopts lfsrOptions
	cmd := &cobra.Command{
		Use:   "lfsr tap",
		Short: "Run a linear-feedback shift register",
		Long: `
The "lfsr" command runs a Galois LFSR with the given tap polynomial, starting
from --state, and prints the first --bits output bits and the period of the
register.
`,
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tap, err := parsePoly(args[0])
			if err != nil {
				return err
			}
			return runLFSR(opts, lopts, tap, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&lopts.State, "state", "1", "initial `state` polynomial")
	f.IntVarP(&lopts.Bits, "bits", "n", 64, "number of output `bits` to print")
	return cmd
}

func runLFSR(opts *GlobalOptions, lopts lfsrOptions, tap gf2.Poly64, out io.Writer) error {
	state, err := parsePoly(lopts.State)
	if err != nil {
		return err
	}
	r, err := lfsr.New(tap, state)
	if err != nil {
		return err
	}

	var sb strings.Builder
	for i := 0; i < lopts.Bits; i++ {
		sb.WriteByte('0' + byte(r.Next()))
	}
	fmt.Fprintf(out, "bits:   %s\n", sb.String())
	r.Reset()

	period, err := lfsr.PeriodOf(tap)
	if errors.Is(err, gf2.ErrNotIrreducible) {
		opts.log.Debug().Uint64("tap", uint64(tap)).Msg("tap is reducible, stepping to find the period")
		period, err = r.Period(maxBrutePeriod)
	}
	if errors.Is(err, lfsr.ErrPeriodLimit) {
		fmt.Fprintf(out, "period: more than %d\n", maxBrutePeriod)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "period: %d\n", period)
	return nil
}
