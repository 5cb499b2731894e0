package search

import "bytes"

// indexGeneric never looks past len(haystack).
func indexGeneric(haystack, needle []byte, _, _ int) uint {
	var i int
	if len(needle) == 1 {
		i = bytes.IndexByte(haystack, needle[0])
	} else {
		i = bytes.Index(haystack, needle)
	}
	if i < 0 {
		return NotFound
	}
	return uint(i)
}
