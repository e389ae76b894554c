package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/agbru/computil/internal/config"
	apperrors "github.com/agbru/computil/internal/errors"
	"github.com/agbru/computil/internal/logging"
	"github.com/agbru/computil/pkg/prime"
	"github.com/agbru/computil/pkg/progression"
)

// PrimeCase is one entry of pkg/prime/testdata/primes_golden.json.
type PrimeCase struct {
	Lower  uint64   `json:"lower"`
	Upper  uint64   `json:"upper"`
	Primes []uint64 `json:"primes"`
}

// ProgressionCase is one entry of
// pkg/progression/testdata/progression_golden.json.
type ProgressionCase struct {
	First int64   `json:"first"`
	Diff  int64   `json:"diff"`
	Count uint    `json:"count"`
	Sum   int64   `json:"sum"`
	Terms []int64 `json:"terms"`
}

// wideSpan is the width of the range ending at GeneratorConfig.Max.
const wideSpan = 200

// fixedRanges cover empty ranges, ranges around small primes and
// neighbourhoods of powers of two and ten.
var fixedRanges = [][2]uint64{
	{0, 0}, {0, 1}, {0, 2}, {0, 100}, {5, 25}, {14, 16}, {90, 110},
	{997, 1_009}, {7_900, 8_000}, {65_500, 65_600}, {999_900, 1_000_100},
}

var progressions = []struct {
	first, diff int64
	count       uint
}{
	{1, 1, 10}, {3, 2, 1}, {0, 0, 5}, {-5, 3, 8}, {100, -7, 12}, {2, 3, 0}, {10, 10, 20},
}

type generator struct {
	cfg     config.GeneratorConfig
	logger  *logging.ZerologAdapter
	spinner Spinner
}

func newGenerator(cfg config.GeneratorConfig, logger *logging.ZerologAdapter) *generator {
	return &generator{cfg: cfg, logger: logger}
}

// Run writes both golden files under cfg.Out.
func (g *generator) Run(ctx context.Context) error {
	g.logger.Info("generating golden files",
		logging.String("out", g.cfg.Out),
		logging.Uint64("max", g.cfg.Max),
		logging.Bool("spinner", g.spinner != nil),
	)
	if g.spinner != nil {
		g.spinner.Start()
		defer g.spinner.Stop()
	}

	primes, err := g.primeCases(ctx)
	if err != nil {
		return err
	}
	if err := g.write(filepath.Join("pkg", "prime", "testdata", "primes_golden.json"), primes); err != nil {
		return err
	}
	return g.write(filepath.Join("pkg", "progression", "testdata", "progression_golden.json"), progressionCases())
}

// primeRanges returns the fixed ranges that fit below limit plus
// [limit-wideSpan, limit].
func primeRanges(limit uint64) [][2]uint64 {
	ranges := make([][2]uint64, 0, len(fixedRanges)+1)
	for _, r := range fixedRanges {
		if r[1] < limit-wideSpan {
			ranges = append(ranges, r)
		}
	}
	return append(ranges, [2]uint64{limit - wideSpan, limit})
}

// primeCases enumerates each range with trial division and cross-checks
// the result against the segmented sieve.
func (g *generator) primeCases(ctx context.Context) ([]PrimeCase, error) {
	observers := []prime.ProgressObserver{prime.NewLoggingObserver(g.logger.Zerolog(), 0.5)}
	if g.spinner != nil {
		observers = append(observers, spinnerObserver{s: g.spinner, label: "primes"})
	}
	sieve, err := prime.NewSieve(g.cfg.ToSieveOptions(), observers...)
	if err != nil {
		return nil, apperrors.NewConfigError("invalid sieve options: %v", err)
	}

	ranges := primeRanges(g.cfg.Max)
	cases := make([]PrimeCase, 0, len(ranges))
	for _, r := range ranges {
		want := make([]uint64, 0)
		for n := r[0]; n <= r[1]; n++ {
			if prime.IsPrime(n) {
				want = append(want, n)
			}
		}
		got, err := sieve.Primes(ctx, r[0], r[1])
		if err != nil {
			return nil, err
		}
		if !slices.Equal(want, got) {
			return nil, fmt.Errorf("sieve disagrees with trial division on [%d, %d]: %v vs %v", r[0], r[1], got, want)
		}
		g.logger.Debug("generated prime range",
			logging.Uint64("lower", r[0]),
			logging.Uint64("upper", r[1]),
			logging.Int("primes", len(want)),
			logging.Float64("density", float64(len(want))/float64(r[1]-r[0]+1)),
		)
		cases = append(cases, PrimeCase{Lower: r[0], Upper: r[1], Primes: want})
	}
	return cases, nil
}

// progressionCases computes terms one by one and the sum in closed form.
func progressionCases() []ProgressionCase {
	cases := make([]ProgressionCase, 0, len(progressions))
	for _, p := range progressions {
		ap := progression.New(p.first, p.diff, p.count)
		terms := make([]int64, 0, p.count)
		for _, term := range ap.All() {
			terms = append(terms, term)
		}
		cases = append(cases, ProgressionCase{
			First: p.first, Diff: p.diff, Count: p.count,
			Sum: ap.Sum(), Terms: terms,
		})
	}
	return cases
}

func (g *generator) write(rel string, data any) error {
	filename := filepath.Join(g.cfg.Out, rel)
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return apperrors.WrapError(err, "creating output directory")
	}
	file, err := os.Create(filename)
	if err != nil {
		return apperrors.WrapError(err, "creating %s", filename)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return apperrors.WrapError(err, "encoding %s", filename)
	}
	g.logger.Info("wrote golden file", logging.String("path", filename))
	return file.Close()
}
