package juggl

import (
	"fmt"
	rand "math/rand/v2"
)

// PermutationStrategy selects how the seed-keyed bijection is realized.
type PermutationStrategy int

const (
	// PermutationAuto materializes the permutation for small record counts
	// and switches to the lazy bijection above MaterializedLimit.
	PermutationAuto PermutationStrategy = iota

	// PermutationMaterialized stores the fully shuffled index array:
	// O(n) memory, O(1) lookup.
	PermutationMaterialized

	// PermutationLazy computes each position on demand with a cycle-walking
	// Feistel network: O(1) memory beyond the keys, a few integer rounds
	// per lookup. Intended for very large record counts.
	PermutationLazy
)

// MaterializedLimit is the record count above which PermutationAuto stops
// materializing the permutation array.
const MaterializedLimit = 1 << 20

// Permutation is a bijection over [0, Len()) keyed by a seed: every source
// index appears exactly once as Index(k) over k = 0..Len()-1. For a fixed
// seed and length the mapping is identical across runs and machines.
type Permutation interface {
	Len() int
	Index(k int) int
}

// NewPermutation returns the bijection for the given seed and record
// count. n must be positive; a permutation over zero records is a
// parameter error, not an empty permutation.
func NewPermutation(seed uint64, n int, strategy PermutationStrategy) (Permutation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkCount, n)
	}

	switch strategy {
	case PermutationMaterialized:
		return newMaterialized(seed, n), nil
	case PermutationLazy:
		return newFeistel(seed, n), nil
	case PermutationAuto:
		if n <= MaterializedLimit {
			return newMaterialized(seed, n), nil
		}

		return newFeistel(seed, n), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrategy, strategy)
	}
}

const goldenRatio64 = 0x9e3779b97f4a7c15

// mix is the SplitMix64 finalizer. Both strategies derive their key
// material through it, keeping every lookup pure integer arithmetic and
// therefore bit-identical on every platform.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

type materialized struct {
	perm []int
}

func newMaterialized(seed uint64, n int) *materialized {
	r := rand.New(rand.NewPCG(mix(seed), mix(seed+goldenRatio64)))

	return &materialized{perm: r.Perm(n)}
}

func (m *materialized) Len() int { return len(m.perm) }

func (m *materialized) Index(k int) int { return m.perm[k] }

// feistel is a balanced Feistel network over the smallest power-of-two
// domain covering [0, n), restricted to [0, n) by cycle walking.
type feistel struct {
	n        int
	halfBits uint
	halfMask uint64
	keys     [4]uint64
}

func newFeistel(seed uint64, n int) *feistel {
	// 32 half-bits give a 2^64 domain, enough for any int n.
	halfBits := uint(1)
	for halfBits < 32 && uint64(1)<<(2*halfBits) < uint64(n) {
		halfBits++
	}

	f := &feistel{
		n:        n,
		halfBits: halfBits,
		halfMask: uint64(1)<<halfBits - 1,
	}

	state := seed
	for i := range f.keys {
		state += goldenRatio64
		f.keys[i] = mix(state)
	}

	return f
}

func (f *feistel) Len() int { return f.n }

// Index returns the source index for output position k. Values landing
// outside [0, n) are re-encrypted until they fall inside; the domain is
// smaller than 4n, so the expected walk is under four steps, and the walk
// always terminates because encrypt permutes the domain.
func (f *feistel) Index(k int) int {
	v := uint64(k)
	for {
		v = f.encrypt(v)
		if v < uint64(f.n) {
			return int(v)
		}
	}
}

func (f *feistel) encrypt(v uint64) uint64 {
	l := v >> f.halfBits
	r := v & f.halfMask

	for _, key := range f.keys {
		l, r = r, l^(mix(r^key)&f.halfMask)
	}

	return l<<f.halfBits | r
}
