package juggl

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("workers must be greater than 0")

	// ErrInvalidRangeSize is returned when the scan range size is not positive.
	ErrInvalidRangeSize = errors.New("rangeSize must be greater than 0")

	// ErrInvalidStrategy is returned when the permutation strategy is unknown.
	ErrInvalidStrategy = errors.New("unknown permutation strategy")

	// ErrInvalidChunkCount is returned when a permutation is requested over
	// zero or fewer chunks.
	ErrInvalidChunkCount = errors.New("chunk count must be greater than 0")
)

// DefaultRangeSize is the default target size of one parallel scan range
// (1 MiB). Ranges this coarse amortize goroutine coordination overhead;
// the effective range size grows when the buffer is large enough that
// buffer length / workers exceeds it.
const DefaultRangeSize = 1 << 20

// Option is a function that configures a Shuffler or a standalone scan.
type Option func(*config) error

// config holds the configuration for scanning and permutation.
type config struct {
	workers   int
	rangeSize int
	seed      uint64
	hasSeed   bool
	strategy  PermutationStrategy
}

func defaultConfig() *config {
	return &config{
		workers:   runtime.GOMAXPROCS(0),
		rangeSize: DefaultRangeSize,
		strategy:  PermutationAuto,
	}
}

// validate checks that the configuration is valid.
func (c *config) validate() error {
	if c.workers <= 0 {
		return ErrInvalidWorkers
	}

	if c.rangeSize <= 0 {
		return ErrInvalidRangeSize
	}

	switch c.strategy {
	case PermutationAuto, PermutationMaterialized, PermutationLazy:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidStrategy, c.strategy)
	}

	return nil
}

// WithWorkers bounds the number of goroutines that scan ranges
// concurrently. The worker count never affects the offsets produced,
// only how fast they are found.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return ErrInvalidWorkers
		}

		c.workers = n

		return nil
	}
}

// WithRangeSize sets the target size in bytes of one parallel scan range.
// Mostly useful in tests; the default is right for real buffers.
func WithRangeSize(size int) Option {
	return func(c *config) error {
		if size <= 0 {
			return ErrInvalidRangeSize
		}

		c.rangeSize = size

		return nil
	}
}

// WithSeed fixes the permutation seed. Runs with the same seed over the
// same input produce byte-identical output. Without this option a seed is
// drawn from crypto/rand once per run.
func WithSeed(seed uint64) Option {
	return func(c *config) error {
		c.seed = seed
		c.hasSeed = true

		return nil
	}
}

// WithPermutationStrategy selects how the output permutation is realized.
// See PermutationStrategy for the trade-offs.
func WithPermutationStrategy(s PermutationStrategy) Option {
	return func(c *config) error {
		switch s {
		case PermutationAuto, PermutationMaterialized, PermutationLazy:
		default:
			return fmt.Errorf("%w: %d", ErrInvalidStrategy, s)
		}

		c.strategy = s

		return nil
	}
}
