package juggl

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// Shuffler splits a byte buffer into delimiter-separated records and
// writes them out in a seed-keyed random order. The buffer is borrowed,
// never copied or mutated; the record index is built once at construction
// and is immutable afterwards.
type Shuffler struct {
	cfg   config
	data  []byte
	delim []byte
	index []Interval
	perm  Permutation
	seed  uint64
}

// NewShuffler scans data for delimiter occurrences, builds the record
// index and fixes the permutation seed for this run. Scanning runs in
// parallel; see WithWorkers and WithRangeSize.
func NewShuffler(data, delimiter []byte, opts ...Option) (*Shuffler, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Shuffler{cfg: *cfg}
	if err := s.Reset(data, delimiter); err != nil {
		return nil, err
	}

	return s, nil
}

// Reset re-targets the shuffler at a new buffer and delimiter, reusing
// the index storage. Each reset is an independent run: without an
// explicit seed a fresh one is drawn, with WithSeed the configured seed
// is reused so repeated resets over the same input reproduce the same
// output.
func (s *Shuffler) Reset(data, delimiter []byte) error {
	s.data = data
	s.delim = delimiter
	s.perm = nil
	s.seed = 0

	offsets, err := scanOffsets(data, delimiter, &s.cfg)
	if err != nil {
		return err
	}

	s.index = appendIndex(s.index[:0], len(data), len(delimiter), offsets)
	if len(s.index) == 0 {
		// Zero records: nothing to permute, nothing to emit.
		return nil
	}

	seed := s.cfg.seed
	if !s.cfg.hasSeed {
		if seed, err = drawSeed(); err != nil {
			return err
		}
	}

	perm, err := NewPermutation(seed, len(s.index), s.cfg.strategy)
	if err != nil {
		return err
	}

	s.seed = seed
	s.perm = perm

	return nil
}

// drawSeed draws the once-per-run seed from the system entropy source.
func drawSeed() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// Len returns the number of records in the index.
func (s *Shuffler) Len() int { return len(s.index) }

// Seed returns the seed keying this run's output order. It is the
// configured seed, or the drawn one when no seed was supplied.
func (s *Shuffler) Seed() uint64 { return s.seed }

// WriteTo emits every record exactly once in permuted order. Consecutive
// non-empty records are separated by exactly one delimiter copy; empty
// records contribute no bytes, and any run of them collapses into that
// single separator, so the output never contains adjacent delimiters. No
// delimiter precedes the first record or follows the last.
//
// Emission is strictly sequential. A write failure aborts immediately and
// is returned as-is; the destination is then left mid-stream.
func (s *Shuffler) WriteTo(w io.Writer) (int64, error) {
	var written int64

	separate := false

	for k := 0; k < len(s.index); k++ {
		iv := s.index[s.perm.Index(k)]
		if iv.Empty() {
			continue
		}

		if separate {
			n, err := w.Write(s.delim)
			written += int64(n)

			if err != nil {
				return written, err
			}
		}

		n, err := w.Write(s.data[iv.Start:iv.End])
		written += int64(n)

		if err != nil {
			return written, err
		}

		separate = true
	}

	return written, nil
}
