// Package lis defines the shared strategy type, registry entries and sentinel errors.
package lis

import "errors"

var (
	// ErrUnknownAlgorithm is returned by Lookup for a name that is not registered.
	ErrUnknownAlgorithm = errors.New("lis: unknown algorithm")

	// ErrNotIncreasing indicates a candidate contains a step a[k] >= a[k+1].
	ErrNotIncreasing = errors.New("lis: subsequence is not strictly increasing")

	// ErrNotSubsequence indicates a candidate cannot be embedded, in order,
	// into the source sequence.
	ErrNotSubsequence = errors.New("lis: not a subsequence of the input")
)

// none marks "no predecessor" in back-pointer arrays.
const none = -1

// Func computes one longest strictly increasing subsequence of seq.
// Implementations must not modify seq and must return a non-nil slice.
type Func func(seq []int) []int

// Algorithm describes one registered LIS strategy.
type Algorithm struct {
	// Name is the stable identifier used by Lookup and the entry points.
	Name string

	// Func computes the subsequence.
	Func Func

	// Complexity is a human-readable time bound, e.g. "O(n log n)".
	Complexity string

	// PrintsSubsequence reports whether the entry point prints the witness
	// values by default, in addition to its length.
	PrintsSubsequence bool
}
