package search

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

const (
	wordSize = 8
	lsbs     = 0x0101010101010101
	msbs     = 0x8080808080808080
)

// zeroMask sets the high bit of every zero byte in v. A byte directly above
// a zero byte may be flagged as well, so only the lowest flag is exact.
func zeroMask(v uint64) uint64 {
	return (v - lsbs) &^ v & msbs
}

func load(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i : i+wordSize])
}

// indexPacked filters candidates eight at a time on the needle bytes at r1
// and r2 and confirms them with a full compare. It never reads past
// len(haystack): once a word would cross the end, it falls back to a byte
// loop.
func indexPacked(haystack, needle []byte, r1, r2 int) uint {
	n, k := len(haystack), len(needle)
	switch {
	case k == 0:
		return 0
	case k == 1:
		return indexBytePacked(haystack, needle[0])
	case k > n:
		return NotFound
	}

	h1 := uint64(needle[r1]) * lsbs
	h2 := uint64(needle[r2]) * lsbs
	last := n - k

	i := 0
	for ; i <= last && i+r2+wordSize <= n; i += wordSize {
		mask := zeroMask(load(haystack, i+r1)^h1) & zeroMask(load(haystack, i+r2)^h2)
		for mask != 0 {
			p := i + bits.TrailingZeros64(mask)/8
			if p > last {
				break
			}
			if bytes.Equal(haystack[p:p+k], needle) {
				return uint(p)
			}
			mask &= mask - 1
		}
	}

	for ; i <= last; i++ {
		if haystack[i+r1] == needle[r1] && haystack[i+r2] == needle[r2] && bytes.Equal(haystack[i:i+k], needle) {
			return uint(i)
		}
	}
	return NotFound
}

func indexBytePacked(haystack []byte, c byte) uint {
	n := len(haystack)
	h := uint64(c) * lsbs

	i := 0
	for ; i+wordSize <= n; i += wordSize {
		if mask := zeroMask(load(haystack, i) ^ h); mask != 0 {
			return uint(i + bits.TrailingZeros64(mask)/8)
		}
	}

	for ; i < n; i++ {
		if haystack[i] == c {
			return uint(i)
		}
	}
	return NotFound
}
