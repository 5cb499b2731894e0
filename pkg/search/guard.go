package search

// Matcher finds the first occurrence of needle in haystack and returns its
// position or NotFound.
//
// A Matcher may be wrong about the end of the haystack, for example a
// matcher that treats its input as terminated by a zero byte, and report a
// position whose match does not fit inside len(haystack). Wrap such
// matchers with Guard before trusting their results. The kernels of this
// package never read past len(haystack), so haystacks that share a backing
// array can be searched concurrently while their neighbours are written.
type Matcher interface {
	Index(haystack, needle []byte) uint
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(haystack, needle []byte) uint

// Index calls f(haystack, needle).
func (f MatcherFunc) Index(haystack, needle []byte) uint {
	return f(haystack, needle)
}

// Guard wraps m so that every reported position p satisfies
// p+len(needle) <= len(haystack). Candidates that overrun the haystack are
// turned into NotFound; the search is not retried.
func Guard(m Matcher) Matcher {
	if g, ok := m.(guarded); ok {
		return g
	}
	return guarded{m: m}
}

type guarded struct {
	m Matcher
}

func (g guarded) Index(haystack, needle []byte) uint {
	return bounded(g.m.Index(haystack, needle), len(haystack), len(needle))
}

// bounded accepts result only if a needle of length k starting at result
// lies within a haystack of length n.
func bounded(result uint, n, k int) uint {
	un, uk := uint(n), uint(k)
	// uk > un would wrap un-uk around to a huge bound.
	if uk <= un && result <= un-uk {
		return result
	}
	return NotFound
}
