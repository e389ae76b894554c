// Package config provides the configuration of the golden-data generator.
// It defines the configuration structure, parses command-line flags with
// environment overrides, and validates the result.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/computil/internal/errors"
	"github.com/agbru/computil/internal/logging"
	"github.com/agbru/computil/pkg/prime"
)

// EnvPrefix is the prefix of every environment variable read by the
// generator.
const EnvPrefix = "COMPUTIL_"

// Default configuration values.
const (
	// DefaultOut is the repository root the golden files are written under.
	DefaultOut = "."
	// DefaultMax is the upper bound of the widest golden prime range.
	DefaultMax uint64 = 10_000_200
	// DefaultTimeout bounds a whole generator run.
	DefaultTimeout = 2 * time.Minute
	// DefaultLogLevel is the default zerolog level name.
	DefaultLogLevel = "info"
	// minMax keeps the widest range clear of the fixed small ranges.
	minMax uint64 = 1_000
)

// GeneratorConfig holds the settings of cmd/generate-golden.
type GeneratorConfig struct {
	// Out is the repository root; files go to <Out>/pkg/<package>/testdata.
	Out string
	// Max is the upper bound of the widest prime range; the range spans
	// [Max-200, Max].
	Max uint64
	// SegmentSize and Workers tune the segmented sieve. Zero means default.
	SegmentSize uint64
	Workers     int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet suppresses the spinner and informational logs.
	Quiet bool
	// LogLevel is a zerolog level name.
	LogLevel string
}

// ToSieveOptions converts the configuration into prime.Options.
func (c GeneratorConfig) ToSieveOptions() prime.Options {
	return prime.Options{
		Name:        "golden",
		MaxLimit:    c.Max,
		SegmentSize: c.SegmentSize,
		Workers:     c.Workers,
	}
}

// Validate checks the semantic consistency of the configuration. It
// returns an apperrors.ConfigError on failure.
func (c GeneratorConfig) Validate() error {
	if c.Out == "" {
		return apperrors.NewConfigError("output directory must not be empty")
	}
	if c.Max < minMax || c.Max > prime.InRangeLimit {
		return apperrors.NewConfigError("max must be between %d and %d, got %d", minMax, prime.InRangeLimit, c.Max)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("worker count cannot be negative: %d", c.Workers)
	}
	if err := c.ToSieveOptions().Validate(); err != nil {
		return apperrors.NewConfigError("invalid sieve options: %v", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseConfig parses args into a GeneratorConfig, applies environment
// overrides for flags not set explicitly (CLI > environment > defaults)
// and validates the result. Usage and errors are written to errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (GeneratorConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := GeneratorConfig{}
	fs.StringVar(&config.Out, "out", DefaultOut, "Repository root to write golden files under.")
	fs.Uint64Var(&config.Max, "max", DefaultMax, "Upper bound of the widest golden prime range.")
	fs.Uint64Var(&config.SegmentSize, "segment-size", 0, "Integers per sieve segment (0 for the default).")
	fs.IntVar(&config.Workers, "workers", 0, "Concurrent sieve segments (0 for GOMAXPROCS).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the run.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Suppress the spinner and informational output.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error or disabled.")
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags]\n\nRegenerates the JSON golden files used by package tests.\n\nFlags:\n", programName)
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEvery flag can also be set with %s<FLAG> (e.g. %sSEGMENT_SIZE).\n", EnvPrefix, EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return GeneratorConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return GeneratorConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return GeneratorConfig{}, err
	}
	return config, nil
}
