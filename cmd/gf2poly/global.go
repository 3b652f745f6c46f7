package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/akalin/gf2poly/gf2"
)

// envPrefix prefixes the environment variables that override global
// flags which weren't set on the command line.
const envPrefix = "GF2POLY_"

const defaultLogLevel = "warn"

// GlobalOptions holds options shared by all commands.
type GlobalOptions struct {
	LogLevel string
	Verbose  bool
	Seed     uint64

	log zerolog.Logger
}

func (opts *GlobalOptions) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&opts.LogLevel, "log-level", defaultLogLevel, "log `level` (debug, info, warn, error) ($"+envPrefix+"LOG_LEVEL)")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")
	f.Uint64Var(&opts.Seed, "seed", 0, "`seed` for random generation, 0 picks one ($"+envPrefix+"SEED)")
}

// PreRun applies environment overrides and sets up logging to w.
func (opts *GlobalOptions) PreRun(f *pflag.FlagSet, w io.Writer) error {
	if v, ok := lookupEnv(f, "log-level", "LOG_LEVEL"); ok {
		opts.LogLevel = v
	}
	if v, ok := lookupEnv(f, "seed", "SEED"); ok {
		seed, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return errors.Wrapf(err, "parsing %sSEED", envPrefix)
		}
		opts.Seed = seed
	}

	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	opts.log = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).With().Timestamp().Logger()
	return nil
}

// lookupEnv returns the environment override for the named flag,
// unless the flag was given explicitly.
func lookupEnv(f *pflag.FlagSet, flag, key string) (string, bool) {
	if f.Changed(flag) {
		return "", false
	}
	v := os.Getenv(envPrefix + key)
	return v, v != ""
}

// newRand returns the random source for this run.
func (opts *GlobalOptions) newRand() (*rand.Rand, error) {
	seed := opts.Seed
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			return nil, errors.Wrap(err, "reading seed")
		}
		seed = binary.LittleEndian.Uint64(b[:])
	}
	opts.log.Debug().Uint64("seed", seed).Msg("seeded random source")
	return rand.New(rand.NewPCG(seed, ^seed)), nil
}

func parsePoly(s string) (gf2.Poly64, error) {
	p, err := gf2.Parse(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing polynomial %q", s)
	}
	return p, nil
}

func parsePolys(args []string) ([]gf2.Poly64, error) {
	ps := make([]gf2.Poly64, len(args))
	for i, arg := range args {
		p, err := parsePoly(arg)
		if err != nil {
			return nil, err
		}
		ps[i] = p
	}
	return ps, nil
}
