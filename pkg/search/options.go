package search

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyNeedle is returned when a Searcher is created for an empty needle.
	ErrEmptyNeedle = errors.New("needle must not be empty")

	// ErrInvalidPosition is returned when the hash position lies outside the needle.
	ErrInvalidPosition = errors.New("position must be within the needle")
)

// Option configures a Searcher.
type Option func(*config) error

type config struct {
	kernel   Kernel
	position int // -1 selects the rare bytes of the needle
}

func defaultConfig() config {
	return config{
		kernel:   KernelAuto,
		position: -1,
	}
}

// WithKernel forces the matcher implementation.
func WithKernel(k Kernel) Option {
	return func(c *config) error {
		if k < KernelAuto || k > KernelGeneric {
			return fmt.Errorf("%w: %v", ErrUnknownKernel, k)
		}
		c.kernel = k
		return nil
	}
}

// WithPosition hashes the needle on its first byte and the byte at position
// instead of its two rarest bytes. Picking a position by hand helps with
// needles whose rare bytes are common in a particular haystack.
func WithPosition(position int) Option {
	return func(c *config) error {
		if position < 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidPosition, position)
		}
		c.position = position
		return nil
	}
}
