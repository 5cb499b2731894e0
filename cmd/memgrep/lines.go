package main

import (
	"github.com/cloudflare/ahocorasick"
	"github.com/pkg/errors"

	"github.com/jeschkies/go-strstr/pkg/search"
)

var newline = mustSearcher([]byte{'\n'})

func mustSearcher(needle []byte) *search.Searcher {
	s, err := search.NewSearcher(needle)
	if err != nil {
		panic(err)
	}
	return s
}

type lineMatcher interface {
	Match(line []byte) bool
}

// newLineMatcher uses a Searcher for a single pattern and an Aho-Corasick
// automaton for several.
func newLineMatcher(patterns []string, kernel search.Kernel) (lineMatcher, error) {
	for i, p := range patterns {
		if p == "" {
			return nil, errors.Wrapf(search.ErrEmptyNeedle, "pattern %d", i)
		}
	}

	switch len(patterns) {
	case 0:
		return nil, errors.New("no patterns")
	case 1:
		s, err := search.NewSearcher([]byte(patterns[0]), search.WithKernel(kernel))
		if err != nil {
			return nil, err
		}
		return searcherMatcher{s}, nil
	}
	return ahoMatcher{ahocorasick.NewStringMatcher(patterns)}, nil
}

type searcherMatcher struct {
	s *search.Searcher
}

func (m searcherMatcher) Match(line []byte) bool {
	return m.s.Contains(line)
}

type ahoMatcher struct {
	m *ahocorasick.Matcher
}

func (m ahoMatcher) Match(line []byte) bool {
	return len(m.m.MatchThreadSafe(line)) > 0
}

// eachLine calls fn for every line of data without its line feed. A final
// line feed does not start an empty line.
//
// Lines are sub-slices of data and keep the rest of data as capacity.
func eachLine(data []byte, fn func(line []byte)) {
	for len(data) > 0 {
		i := newline.Index(data)
		if i < 0 {
			fn(data)
			return
		}
		fn(data[:i])
		data = data[i+1:]
	}
}
