// Package juggl shuffles the delimiter-separated records of a byte buffer.
//
// # Overview
//
// juggl splits a buffer into records at every occurrence of a delimiter
// byte sequence, then emits the records in a randomized order with exactly
// one delimiter between consecutive records. The order is keyed by a
// 64-bit seed, so the same seed over the same input reproduces the same
// output on every run and every machine.
//
// This implementation offers:
//   - Parallel scanning: delimiter occurrences are located concurrently
//     across work ranges, with identical results for any worker count
//   - O(1) reordering memory: a lazy seed-keyed bijection can replace the
//     materialized permutation array when record counts are very large
//   - Dual API: a convenient Shuffler or the low-level ScanOffsets,
//     BuildIndex and NewPermutation building blocks
//
// # Quick Start
//
// Shuffle the comma-separated fields of a buffer:
//
//	s, _ := juggl.NewShuffler(data, []byte(","), juggl.WithSeed(42))
//	s.WriteTo(os.Stdout)
//
// Low-level building blocks, for callers that want the record index
// without emitting anything:
//
//	offsets, _ := juggl.ScanOffsets(data, delim)
//	index := juggl.BuildIndex(len(data), len(delim), offsets)
//
// # Records
//
// A record is a maximal delimiter-separated byte range. Records are
// delimiter-clean: a record never contains, starts with, or ends with a
// delimiter occurrence. Adjacent delimiters produce empty records, which
// survive in the index but contribute no bytes to the output. An empty
// buffer produces zero records and empty output.
//
// # Reproducibility
//
// When no seed is supplied, one is drawn from crypto/rand once per run
// and used for the remainder of that run. Supplying a seed with WithSeed
// makes runs bit-identical across invocations; both permutation
// strategies use platform-independent integer arithmetic only.
package juggl
