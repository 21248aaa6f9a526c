package juggl

// Interval is the half-open byte range [Start, End) of one record.
// Records are delimiter-clean: the delimiter bytes separating two records
// belong to neither interval. Start == End marks an empty record produced
// by adjacent delimiters or by a delimiter at the buffer's edge.
type Interval struct {
	Start int
	End   int
}

// Len returns the record length in bytes.
func (iv Interval) Len() int { return iv.End - iv.Start }

// Empty reports whether the record has no bytes.
func (iv Interval) Empty() bool { return iv.Start == iv.End }

// BuildIndex converts a record-start offset set (as produced by
// ScanOffsets) into the ordered record index for a buffer of the given
// size. delimLen is the length of the delimiter the offsets were scanned
// with.
//
// Concatenating the intervals in index order with the delimiter re-inserted
// between consecutive intervals reproduces the buffer exactly. An empty
// buffer yields an empty index: empty input means zero records, not one
// empty record. For a non-empty buffer the trailing record is always
// present, even when the buffer ends with a delimiter (the trailing
// interval is then empty).
func BuildIndex(size, delimLen int, offsets []int) []Interval {
	return appendIndex(nil, size, delimLen, offsets)
}

func appendIndex(dst []Interval, size, delimLen int, offsets []int) []Interval {
	if size == 0 || len(offsets) == 0 {
		return dst
	}

	// Every offset after the first is a match position plus delimLen, so
	// subtracting delimLen lands exactly on the preceding record's end.
	for i := 0; i+1 < len(offsets); i++ {
		dst = append(dst, Interval{Start: offsets[i], End: offsets[i+1] - delimLen})
	}

	dst = append(dst, Interval{Start: offsets[len(offsets)-1], End: size})

	return dst
}
