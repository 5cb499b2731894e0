// Package search finds byte strings in byte slices. Results never extend
// past len(haystack), whatever the matcher behind them reported.
package search

// NotFound is returned by Search when the needle does not occur within the
// bounds of the haystack.
const NotFound = ^uint(0)

var (
	index Matcher
)

func init() {
	index = Guard(kernelMatcher{kernel: detectKernel()})
}

// Search returns the first position the needle is in the haystack or
// NotFound. A returned position p always satisfies p+len(needle) <=
// len(haystack).
func Search(haystack []byte, needle []byte) uint {
	return index.Index(haystack, needle)
}

// Index returns the first position the needle is in the haystack or -1 if
// needle was not found.
func Index(haystack []byte, needle []byte) int64 {
	return toInt64(Search(haystack, needle))
}

func toInt64(p uint) int64 {
	if p == NotFound {
		return -1
	}
	return int64(p)
}
