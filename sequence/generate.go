package sequence

import "fmt"

// Increasing returns [start, start+1, ..., start+n-1]. n <= 0 yields an
// empty, non-nil slice.
func Increasing(n, start int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}

	return out
}

// Decreasing returns [start, start-1, ..., start-n+1]. n <= 0 yields an
// empty, non-nil slice.
func Decreasing(n, start int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	for i := range out {
		out[i] = start - i
	}

	return out
}

// Random returns n values drawn uniformly from the configured inclusive
// range. Same options ⇒ same output.
//
// Errors: ErrBadSize when n < 0.
//
// Complexity: O(n).
func Random(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	cfg := newGenConfig(opts...)

	span := cfg.max - cfg.min + 1
	out := make([]int, n)
	for i := range out {
		out[i] = cfg.min + cfg.rng.Intn(span)
	}

	return out, nil
}
