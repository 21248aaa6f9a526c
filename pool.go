package juggl

import "sync"

// ShufflerPool is a pool of Shuffler instances for callers that shuffle
// many buffers with the same options. It recycles shufflers (and their
// index storage) instead of creating new ones.
type ShufflerPool struct {
	pool sync.Pool
	opts []Option
}

// NewShufflerPool creates a new ShufflerPool with the given options.
// All shufflers created from this pool will use these options.
func NewShufflerPool(opts ...Option) (*ShufflerPool, error) {
	// Validate options up front so Get cannot fail on them later.
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &ShufflerPool{opts: opts}, nil
}

// Get retrieves a Shuffler from the pool, or creates a new one if the
// pool is empty, and targets it at the given buffer and delimiter.
func (p *ShufflerPool) Get(data, delimiter []byte) (*Shuffler, error) {
	if v := p.pool.Get(); v != nil {
		s := v.(*Shuffler)
		if err := s.Reset(data, delimiter); err != nil {
			return nil, err
		}

		return s, nil
	}

	return NewShuffler(data, delimiter, p.opts...)
}

// Put returns a Shuffler to the pool for reuse.
// The shuffler should not be used after being returned to the pool.
func (p *ShufflerPool) Put(s *Shuffler) {
	// Drop buffer references so the pool does not pin caller memory.
	s.data = nil
	s.delim = nil
	p.pool.Put(s)
}
