package search

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/cpu"
)

// ErrUnknownKernel is returned by ParseKernel for names it does not know.
var ErrUnknownKernel = errors.New("unknown kernel")

// Kernel selects the matcher implementation behind a Searcher.
type Kernel int

const (
	// KernelAuto picks the best kernel for the running CPU.
	KernelAuto Kernel = iota
	// KernelPacked scans eight haystack bytes per step with a two byte hash
	// of the needle.
	KernelPacked
	// KernelGeneric uses the standard library.
	KernelGeneric
)

func (k Kernel) String() string {
	switch k {
	case KernelAuto:
		return "auto"
	case KernelPacked:
		return "packed"
	case KernelGeneric:
		return "generic"
	}
	return fmt.Sprintf("Kernel(%d)", int(k))
}

// ParseKernel is the inverse of Kernel.String. It is case insensitive.
func ParseKernel(s string) (Kernel, error) {
	for _, k := range []Kernel{KernelAuto, KernelPacked, KernelGeneric} {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return KernelAuto, fmt.Errorf("%w: %q", ErrUnknownKernel, s)
}

// detectKernel returns the packed kernel when the CPU counts trailing zeros
// in a single instruction. bytes.Index is assembly backed on every other
// platform that matters.
func detectKernel() Kernel {
	if cpu.X86.HasBMI1 || cpu.ARM64.HasASIMD {
		return KernelPacked
	}
	return KernelGeneric
}

func (k Kernel) resolve() Kernel {
	if k == KernelAuto {
		return detectKernel()
	}
	return k
}

// kernelFunc is an unguarded search. r1 <= r2 are the needle offsets of
// the hash bytes; kernels that do not filter on them ignore them.
type kernelFunc func(haystack, needle []byte, r1, r2 int) uint

func (k Kernel) fn() kernelFunc {
	if k.resolve() == KernelPacked {
		return indexPacked
	}
	return indexGeneric
}

// kernelMatcher runs a kernel with the rare bytes of each needle.
type kernelMatcher struct {
	kernel Kernel
}

func (m kernelMatcher) Index(haystack, needle []byte) uint {
	r1, r2 := rareNeedleBytes(needle)
	return m.kernel.fn()(haystack, needle, r1, r2)
}
