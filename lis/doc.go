// Package lis computes a Longest Increasing Subsequence (LIS) of an integer
// sequence with four interchangeable strategies of different asymptotic cost.
//
// What:
//
//   - Backtrack: exhaustive depth-first search over skip/take choices with
//     a "cannot beat the best" pruning rule.
//   - Recursive: exhaustive include/exclude recursion, no pruning and no
//     memoization. The brute-force reference.
//   - DP: O(n²) tabulation of "longest run ending at i" with back-pointers.
//   - Patience: O(n log n) tails array (patience sorting) with back-pointers,
//     positions located by LowerBound.
//
// Why:
//
//	All four return a real witness (the values, not just the length), so
//	they can be cross-checked against each other on the same data and
//	their running times compared as n grows.
//
// Contract (shared by every strategy):
//
//   - The input slice is never modified.
//   - The result is strictly increasing (equal values never extend a run)
//     and preserves the relative order of the input.
//   - The result length is a true LIS length; an empty input yields an
//     empty, non-nil slice.
//   - When several LIS exist, each strategy returns its own deterministic
//     pick (see Tie-breaks). The picks are NOT normalized.
//
// Tie-breaks:
//
//   - Backtrack: the first maximal subsequence reached by the
//     skip-before-take exploration order.
//   - Recursive: at every index, skipping wins over taking on equal length.
//   - DP: the subsequence ending at the lowest index of maximal length.
//   - Patience: the chain of back-pointers behind the final longest tail.
//
// On a strictly decreasing input DP returns the first element, the other
// three return the last one.
//
// Complexity:
//
//   - Backtrack: Time O(2ⁿ) worst case, Memory O(n)
//   - Recursive: Time O(2ⁿ), Memory O(n) stack + O(n²) transient slices
//   - DP:        Time O(n²), Memory O(n)
//   - Patience:  Time O(n log n), Memory O(n)
//
// Limitations:
//
//	Backtrack and Recursive recurse once per input element. Goroutine
//	stacks grow on demand, so depth is bounded by the runtime's maximum
//	stack size rather than a fixed frame budget; in practice exponential
//	running time makes inputs beyond a few dozen elements impractical long
//	before that bound matters.
//
// Errors:
//
//   - ErrUnknownAlgorithm  Lookup was given an unregistered name
//   - ErrNotIncreasing     Verify found a non-increasing step
//   - ErrNotSubsequence    Verify could not embed the result in the input
//
// Usage:
//
//	seq := []int{3, 1, 4, 1, 5, 9, 2, 6}
//	best := lis.Patience(seq) // [1 4 5 6]
//	if err := lis.Verify(seq, best); err != nil {
//		// unreachable for the strategies in this package
//	}
package lis
