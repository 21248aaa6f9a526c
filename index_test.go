package juggl_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/jugglab/juggl"
)

func TestBuildIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		data  string
		delim string
		want  []juggl.Interval
	}{
		{
			name: "csv fields", data: "a,b,c,d", delim: ",",
			want: []juggl.Interval{{0, 1}, {2, 3}, {4, 5}, {6, 7}},
		},
		{
			name: "empty middle record", data: "a,,b", delim: ",",
			want: []juggl.Interval{{0, 1}, {2, 2}, {3, 4}},
		},
		{
			name: "leading delimiter", data: ",a,b", delim: ",",
			want: []juggl.Interval{{0, 0}, {1, 2}, {3, 4}},
		},
		{
			name: "trailing delimiter", data: "a,b,c,", delim: ",",
			want: []juggl.Interval{{0, 1}, {2, 3}, {4, 5}, {6, 6}},
		},
		{
			name: "only delimiters", data: ",,,", delim: ",",
			want: []juggl.Interval{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
		{
			name: "overlapping candidates", data: "aaa", delim: "aa",
			want: []juggl.Interval{{0, 0}, {2, 3}},
		},
		{
			name: "no delimiters", data: "hello", delim: ",",
			want: []juggl.Interval{{0, 5}},
		},
		{
			name: "empty buffer", data: "", delim: ",",
			want: nil,
		},
		{
			name: "empty delimiter", data: "hello", delim: "",
			want: []juggl.Interval{{0, 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offsets, err := juggl.ScanOffsets([]byte(tt.data), []byte(tt.delim))
			if err != nil {
				t.Fatal(err)
			}

			got := juggl.BuildIndex(len(tt.data), len(tt.delim), offsets)
			if !slices.Equal(got, tt.want) {
				t.Errorf("BuildIndex(%q, %q) = %v, want %v", tt.data, tt.delim, got, tt.want)
			}
		})
	}
}

// reassemble joins the indexed records with the delimiter re-inserted
// between consecutive intervals.
func reassemble(data, delim []byte, index []juggl.Interval) []byte {
	parts := make([][]byte, len(index))
	for i, iv := range index {
		parts[i] = data[iv.Start:iv.End]
	}

	return bytes.Join(parts, delim)
}

// TestIndexRoundTrip checks the round-trip law: concatenating the index's
// intervals in order with the delimiter between them reproduces the
// buffer exactly.
func TestIndexRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		data  string
		delim string
	}{
		{"a,b,c,d", ","},
		{"a,,b", ","},
		{",a,b,c,", ","},
		{",,,", ","},
		{"aaa", "aa"},
		{"aaaa", "aa"},
		{"foo::bar::baz", "::"},
		{"no delimiters", "|"},
		{"", ","},
		{"whole buffer", ""},
		{"x", "longer than data"},
	}

	for _, tc := range cases {
		data := []byte(tc.data)
		delim := []byte(tc.delim)

		for _, workers := range []int{1, 3, 8} {
			offsets, err := juggl.ScanOffsets(data, delim,
				juggl.WithWorkers(workers), juggl.WithRangeSize(2))
			if err != nil {
				t.Fatal(err)
			}

			index := juggl.BuildIndex(len(data), len(delim), offsets)

			if got := reassemble(data, delim, index); !bytes.Equal(got, data) {
				t.Errorf("round trip of (%q, %q) with %d workers = %q", tc.data, tc.delim, workers, got)
			}
		}
	}
}
