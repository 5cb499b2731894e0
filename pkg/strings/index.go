package strings

import (
	"unsafe"

	"github.com/jeschkies/go-strstr/pkg/search"
)

// Index returns the index of the first instance of substr in s, or -1 if
// substr is not present in s.
func Index(s, substr string) int {
	return int(search.Index(bytesOf(s), bytesOf(substr)))
}

// Contains reports whether substr is within s.
func Contains(s, substr string) bool {
	return Index(s, substr) >= 0
}

// bytesOf aliases the bytes of s. The search kernels only read them.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
