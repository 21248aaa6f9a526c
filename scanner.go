package juggl

import (
	"bytes"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Matches reports whether delimiter occurs in data starting at offset.
// A zero-length delimiter never matches. No side effects, no allocation.
func Matches(data []byte, offset int, delimiter []byte) bool {
	if len(delimiter) == 0 || offset < 0 || offset+len(delimiter) > len(data) {
		return false
	}

	return bytes.Equal(data[offset:offset+len(delimiter)], delimiter)
}

// ScanOffsets locates every delimiter occurrence in data and returns the
// sorted, deduplicated set of record-start offsets. Offset 0 is always
// present. Occurrences are matched non-overlapping from the left: after a
// match at position i the next match may start at i+len(delimiter) at the
// earliest, so "aa" over "aaa" matches once, not twice.
//
// If the delimiter is empty, or data is shorter than the delimiter, the
// whole buffer is one record and the result is {0}.
//
// The result is identical for every worker count and range size;
// partitioning is purely a performance concern.
func ScanOffsets(data, delimiter []byte, opts ...Option) ([]int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return scanOffsets(data, delimiter, cfg)
}

func scanOffsets(data, delimiter []byte, cfg *config) ([]int, error) {
	if len(delimiter) == 0 || len(data) < len(delimiter) {
		return []int{0}, nil
	}

	rangeSize := cfg.rangeSize
	if byWorkers := len(data) / cfg.workers; byWorkers > rangeSize {
		rangeSize = byWorkers
	}

	numRanges := (len(data) + rangeSize - 1) / rangeSize

	// Fan-out: each worker owns one range and writes only its own slot, so
	// the parallel phase needs no locking. Wait is the merge barrier; any
	// range failure aborts the whole run rather than dropping offsets.
	locals := make([][]int, numRanges)

	var g errgroup.Group
	g.SetLimit(cfg.workers)

	for r := 0; r < numRanges; r++ {
		g.Go(func() error {
			locals[r] = scanRange(data, delimiter, r*rangeSize, rangeSize)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := slices.Concat(locals...)
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)

	// Non-overlapping selection happens globally, after the merge, so the
	// result cannot depend on where range boundaries fell.
	offsets := make([]int, 0, len(candidates)+1)
	offsets = append(offsets, 0)

	next := 0
	for _, p := range candidates {
		if p < next {
			continue
		}

		offsets = append(offsets, p+len(delimiter))
		next = p + len(delimiter)
	}

	return offsets, nil
}

// scanRange returns every match position p with start <= p < start+rangeSize.
// The comparison window extends len(delimiter)-1 bytes past the nominal end
// so a match whose bytes straddle the range boundary is still checked in
// full within this range.
func scanRange(data, delimiter []byte, start, rangeSize int) []int {
	limit := start + rangeSize
	if max := len(data) - len(delimiter) + 1; limit > max {
		limit = max
	}

	winEnd := start + rangeSize + len(delimiter) - 1
	if winEnd > len(data) {
		winEnd = len(data)
	}

	var local []int

	for p := start; p < limit; {
		j := bytes.Index(data[p:winEnd], delimiter)
		if j < 0 {
			break
		}

		p += j
		if p >= limit {
			break
		}

		local = append(local, p)
		p++
	}

	return local
}
