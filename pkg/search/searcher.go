package search

import (
	"bytes"
	"fmt"
)

// Searcher looks for one needle in many haystacks. The needle is analysed
// once at construction. A Searcher is safe for concurrent use.
type Searcher struct {
	needle []byte
	r1, r2 int
	kernel Kernel
	index  kernelFunc
}

// NewSearcher returns a Searcher for needle. The needle is copied.
func NewSearcher(needle []byte, opts ...Option) (*Searcher, error) {
	if len(needle) == 0 {
		return nil, ErrEmptyNeedle
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	s := &Searcher{
		needle: bytes.Clone(needle),
		kernel: cfg.kernel.resolve(),
	}
	s.index = s.kernel.fn()

	switch {
	case cfg.position < 0:
		s.r1, s.r2 = rareNeedleBytes(s.needle)
	case cfg.position < len(needle):
		s.r1, s.r2 = 0, cfg.position
	default:
		return nil, fmt.Errorf("%w: position (%d), needle length (%d)", ErrInvalidPosition, cfg.position, len(needle))
	}

	return s, nil
}

// Needle returns the needle the Searcher looks for. It must not be modified.
func (s *Searcher) Needle() []byte {
	return s.needle
}

// Kernel returns the kernel the Searcher runs.
func (s *Searcher) Kernel() Kernel {
	return s.kernel
}

// Search returns the first position of the needle in haystack or NotFound.
func (s *Searcher) Search(haystack []byte) uint {
	return bounded(s.index(haystack, s.needle, s.r1, s.r2), len(haystack), len(s.needle))
}

// Index returns the first position of the needle in haystack or -1.
func (s *Searcher) Index(haystack []byte) int64 {
	return toInt64(s.Search(haystack))
}

// Contains reports whether the needle is within haystack.
func (s *Searcher) Contains(haystack []byte) bool {
	return s.Search(haystack) != NotFound
}
