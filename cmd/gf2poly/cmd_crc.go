package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/akalin/gf2poly/crc"
)

type crcOptions struct {
	Preset string
	List   bool
}

func newCRCCommand(opts *GlobalOptions) *cobra.Command {
	var copts crcOptions
	cmd := &cobra.Command{
		Use:   "crc [file]",
		Short: "Compute the CRC of a file",
		Long: `
The "crc" command computes the CRC of a file, or of standard input if no file
is given, with one of the predefined CRCs. --list prints the predefined CRCs.
`,
		Args:              cobra.MaximumNArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if copts.List {
				listPresets(out)
				return nil
			}
			in := cmd.InOrStdin()
			name := "-"
			if len(args) == 1 {
				name = args[0]
				f, err := os.Open(name)
				if err != nil {
					return errors.Wrap(err, "opening input")
				}
				defer f.Close()
				in = f
			}
			return runCRC(opts, copts, in, name, out)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&copts.Preset, "preset", "p", "crc32", "predefined CRC `name`")
	f.BoolVar(&copts.List, "list", false, "list the predefined CRCs")
	return cmd
}

func listPresets(out io.Writer) {
	names := make([]string, 0, len(crc.Presets))
	for name := range crc.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p := crc.Presets[name]
		fmt.Fprintf(out, "%-18s %-20s width=%d poly=%#x check=%#x\n", name, p.Name, p.Width, p.Poly, p.Check)
	}
}

func runCRC(opts *GlobalOptions, copts crcOptions, in io.Reader, name string, out io.Writer) error {
	params, ok := crc.Presets[copts.Preset]
	if !ok {
		return errors.Errorf("unknown CRC %q", copts.Preset)
	}
	table, err := crc.NewTable(params)
	if err != nil {
		return err
	}
	h := crc.New(table)
	n, err := io.Copy(h, in)
	if err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	opts.log.Debug().Str("crc", params.Name).Int64("bytes", n).Msg("checksummed input")
	fmt.Fprintf(out, "%0*x  %s\n", (params.Width+3)/4, h.Sum64(), name)
	return nil
}
