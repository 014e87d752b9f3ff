package lis

import "fmt"

// Verify reports whether sub is a strictly increasing subsequence of seq.
// It does not check maximality.
//
// Steps:
//  1. Every adjacent pair of sub must satisfy sub[k] < sub[k+1].
//  2. Greedily match sub against seq left to right; the earliest match is
//     always safe, so a failure means no order-preserving embedding exists.
//
// Errors: ErrNotIncreasing, ErrNotSubsequence (wrapped with the position).
//
// Complexity: O(len(seq) + len(sub)) time, O(1) memory.
func Verify(seq, sub []int) error {
	var k int
	for k = 1; k < len(sub); k++ {
		if sub[k-1] >= sub[k] {
			return fmt.Errorf("%w: sub[%d]=%d, sub[%d]=%d",
				ErrNotIncreasing, k-1, sub[k-1], k, sub[k])
		}
	}

	k = 0
	for i := 0; i < len(seq) && k < len(sub); i++ {
		if seq[i] == sub[k] {
			k++
		}
	}
	if k < len(sub) {
		return fmt.Errorf("%w: sub[%d]=%d has no match", ErrNotSubsequence, k, sub[k])
	}

	return nil
}
