package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/restic/chunker"
	"github.com/spf13/cobra"

	"github.com/akalin/gf2poly/gf2"
)

// chunkPolDegree is the degree of the fingerprinting polynomials the
// chunker works with.
const chunkPolDegree = 53

// defaultChunkPol is an irreducible polynomial of degree 53.
const defaultChunkPol = "0x3DA3358B4DC173"

func newChunkPolCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunkpol",
		Short: "Generate a polynomial for content-defined chunking",
		Long: `
The "chunkpol" command draws a random irreducible polynomial of degree 53,
suitable for the --pol flag of the "chunk" command.
`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := runChunkPol(opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%#x\n", uint64(p))
			return nil
		},
	}
	return cmd
}

func runChunkPol(opts *GlobalOptions) (gf2.Poly64, error) {
	rnd, err := opts.newRand()
	if err != nil {
		return 0, err
	}
	for i := 0; i < maxTries; i++ {
		p, err := gf2.RandomPoly64(rnd, chunkPolDegree, true)
		if err != nil {
			return 0, err
		}
		// Polynomials divisible by x are never irreducible.
		p |= 1
		ok, err := p.Irreducible()
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		if !chunker.Pol(p).Irreducible() {
			return 0, errors.Errorf("chunker rejects irreducible polynomial %#x", uint64(p))
		}
		opts.log.Debug().Int("tries", i+1).Msg("found chunker polynomial")
		return p, nil
	}
	return 0, errors.Errorf("no irreducible polynomial found in %d tries", maxTries)
}

type chunkOptions struct {
	Pol string
}

func newChunkCommand(opts *GlobalOptions) *cobra.Command {
	var copts chunkOptions
	cmd := &cobra.Command{
		Use:   "chunk file",
		Short: "Split a file into content-defined chunks",
		Long: `
The "chunk" command splits a file into content-defined chunks with a Rabin
fingerprint over the polynomial given by --pol, and prints the offset, length
and cut fingerprint of each chunk.
`,
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pol, err := parseChunkPol(copts.Pol)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "opening input")
			}
			defer f.Close()
			return runChunk(opts, pol, f, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&copts.Pol, "pol", defaultChunkPol, "irreducible fingerprinting `polynomial` of degree 53")
	return cmd
}

func parseChunkPol(s string) (chunker.Pol, error) {
	p, err := parsePoly(s)
	if err != nil {
		return 0, err
	}
	if d := p.Deg(); d != chunkPolDegree {
		return 0, errors.Wrapf(gf2.ErrInvalidDegree, "chunker polynomial has degree %d, want %d", d, chunkPolDegree)
	}
	ok, err := p.Irreducible()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.Wrapf(gf2.ErrNotIrreducible, "chunker polynomial %v", p)
	}
	return chunker.Pol(p), nil
}

func runChunk(opts *GlobalOptions, pol chunker.Pol, in io.Reader, out io.Writer) error {
	c := chunker.New(in, pol)
	buf := make([]byte, chunker.MaxSize)
	n := 0
	for {
		chunk, err := c.Next(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "chunking")
		}
		fmt.Fprintf(out, "%d\t%d\t%#014x\n", chunk.Start, chunk.Length, chunk.Cut)
		n++
	}
	opts.log.Debug().Int("chunks", n).Msg("chunking done")
	return nil
}
