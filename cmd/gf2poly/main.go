package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gf2poly",
		Short: "Polynomial arithmetic over GF(2)",
		Long: `
gf2poly computes with polynomials over GF(2) of degree at most 63: division,
gcds, modular powers, and irreducibility and primitivity tests. It also drives
LFSRs and CRCs from them.

Polynomials are given as integers ("0x13", "0b10011", "19") or as sums of
monomials ("x^4 + x + 1").
`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,

		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return opts.PreRun(c.Flags(), c.ErrOrStderr())
		},
	}

	opts.AddFlags(cmd.PersistentFlags())
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(
		newInfoCommand(opts),
		newDivCommand(),
		newGCDCommand(),
		newMulModCommand(),
		newPowCommand(),
		newRandomCommand(opts),
		newSearchCommand(opts),
		newLFSRCommand(opts),
		newCRCCommand(opts),
		newChunkPolCommand(opts),
		newChunkCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

func main() {
	opts := GlobalOptions{log: zerolog.Nop()}
	if err := newRootCommand(&opts).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}
