package prime

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/computil/internal/errors"
	"github.com/agbru/computil/pkg/numeric"
)

// Default Sieve configuration values.
const (
	// DefaultMaxLimit is the default largest upper bound a Sieve accepts.
	DefaultMaxLimit uint64 = 1 << 32
	// MaxSupportedLimit is the largest MaxLimit a Sieve can be configured
	// with. It equals maxSegments·MaxSegmentSize, so any accepted span
	// splits into at most maxSegments+1 segments of at most MaxSegmentSize
	// integers, and base primes up to its square root take 8 MiB.
	MaxSupportedLimit uint64 = maxSegments * MaxSegmentSize
	// DefaultSegmentSize is the default number of integers per segment.
	DefaultSegmentSize uint64 = 1 << 16
	// MaxSegmentSize is the largest accepted SegmentSize.
	MaxSegmentSize uint64 = 1 << 30
	// maxSegments caps the number of segments per call; larger spans get
	// proportionally larger segments.
	maxSegments uint64 = 1 << 16
	// DefaultName labels progress notifications of an unnamed Sieve.
	DefaultName = "sieve"
)

// Options configures a Sieve. Zero fields take their defaults.
type Options struct {
	// Name labels progress notifications and metrics.
	Name string
	// MaxLimit is the largest accepted upper bound.
	MaxLimit uint64
	// SegmentSize is the number of integers sieved per segment.
	SegmentSize uint64
	// Workers bounds the number of segments sieved concurrently.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int
}

// withDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) withDefaults() Options {
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.MaxLimit == 0 {
		o.MaxLimit = DefaultMaxLimit
	}
	if o.SegmentSize == 0 {
		o.SegmentSize = DefaultSegmentSize
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// Validate checks that the options describe a usable Sieve.
func (o Options) Validate() error {
	if o.MaxLimit > MaxSupportedLimit {
		return apperrors.NewValidationError("MaxLimit", "exceeds the supported limit 2^46", o.MaxLimit)
	}
	if o.SegmentSize == 1 || o.SegmentSize > MaxSegmentSize {
		return apperrors.NewValidationError("SegmentSize", "must be between 2 and 2^30", o.SegmentSize)
	}
	if o.Workers < 0 {
		return apperrors.NewValidationError("Workers", "cannot be negative", o.Workers)
	}
	return nil
}

// Sieve enumerates primes with a segmented sieve of Eratosthenes.
//
// Base primes up to sqrt(upper) are found once per call; the requested
// range is then split into segments that are sieved concurrently, bounded
// by Options.Workers. Spans that would need more than 65536 segments use
// wider segments, never wider than MaxSegmentSize. Working memory is
// O(sqrt(upper) + Workers·segment width) plus the result, where the
// segment width is at most max(SegmentSize, span/65536+1). A Sieve is
// safe for concurrent use.
type Sieve struct {
	opts    Options
	subject *ProgressSubject
}

// NewSieve creates a Sieve. It fails with a validation error when opts
// are invalid.
func NewSieve(opts Options, observers ...ProgressObserver) (*Sieve, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := &Sieve{opts: opts.withDefaults(), subject: NewProgressSubject()}
	for _, o := range observers {
		s.subject.Register(o)
	}
	return s, nil
}

// Options returns the effective options, defaults applied.
func (s *Sieve) Options() Options { return s.opts }

// Subject exposes the observer registry so observers can be added or
// removed after construction.
func (s *Sieve) Subject() *ProgressSubject { return s.subject }

// segment is an inclusive integer window.
type segment struct {
	lo, hi uint64
}

// Primes returns every prime p with lower <= p <= upper in ascending
// order. It applies the same bound rules as InRange, with Options.MaxLimit
// as the cap, and returns the context error if ctx is done before all
// segments complete.
func (s *Sieve) Primes(ctx context.Context, lower, upper uint64) ([]uint64, error) {
	parts, err := run(ctx, s, "prime.Sieve.Primes", lower, upper, func(seg segment, base []uint64) []uint64 {
		return sieveSegment(seg, base)
	})
	if err != nil {
		return nil, err
	}
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	primes := make([]uint64, 0, total)
	for _, p := range parts {
		primes = append(primes, p...)
	}
	return primes, nil
}

// Count returns the number of primes p with lower <= p <= upper without
// retaining them.
func (s *Sieve) Count(ctx context.Context, lower, upper uint64) (int, error) {
	counts, err := run(ctx, s, "prime.Sieve.Count", lower, upper, func(seg segment, base []uint64) int {
		return len(sieveSegment(seg, base))
	})
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// run validates the bounds, sieves each segment with fn on the worker
// pool and returns the per-segment results in segment order.
func run[R any](ctx context.Context, s *Sieve, op string, lower, upper uint64, fn func(segment, []uint64) R) ([]R, error) {
	if upper < lower {
		return nil, apperrors.OutOfRange(op, "upper bound %d is below lower bound %d", upper, lower)
	}
	if upper > s.opts.MaxLimit {
		return nil, apperrors.OutOfRange(op, "upper bound %d exceeds the sieve limit %d", upper, s.opts.MaxLimit)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := primesUpTo(numeric.Sqrt(upper))
	segments := split(lower, upper, s.opts.SegmentSize)
	results := make([]R, len(segments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	// Notifications are serialized so observers see monotonic progress.
	var (
		mu   sync.Mutex
		done int
	)
	for i, seg := range segments {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = fn(seg, base)
			mu.Lock()
			done++
			s.subject.Notify(s.opts.Name, float64(done)/float64(len(segments)))
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.WrapError(err, "%s [%d, %d]", op, lower, upper)
	}
	return results, nil
}

// split cuts [lower, upper] into consecutive windows of at most size
// integers, growing size when the span would need more than maxSegments.
// The width never exceeds MaxSegmentSize; spans wider than
// MaxSupportedLimit then get more than maxSegments windows.
func split(lower, upper, size uint64) []segment {
	if span := upper - lower; span/size >= maxSegments {
		size = min(span/maxSegments+1, MaxSegmentSize)
	}
	segments := make([]segment, 0, (upper-lower)/size+1)
	for lo := lower; ; lo += size {
		hi := lo + size - 1
		if hi >= upper || hi < lo {
			segments = append(segments, segment{lo: lo, hi: upper})
			return segments
		}
		segments = append(segments, segment{lo: lo, hi: hi})
	}
}

// sieveSegment returns the primes in seg. base must hold every prime up to
// at least sqrt(seg.hi), in ascending order.
func sieveSegment(seg segment, base []uint64) []uint64 {
	lo, hi := max(seg.lo, 2), seg.hi
	if hi < lo {
		return nil
	}
	composite := make([]bool, hi-lo+1)
	for _, p := range base {
		if p > hi/p {
			break
		}
		start := max(p*p, (lo+p-1)/p*p)
		for m := start; m <= hi; m += p {
			composite[m-lo] = true
		}
	}
	primes := make([]uint64, 0, len(composite)/8+1)
	for i, c := range composite {
		if !c {
			primes = append(primes, lo+uint64(i))
		}
	}
	return primes
}
