package lis

// Recursive computes a longest strictly increasing subsequence of seq with
// the plain include/exclude recursion: no pruning, no memoization.
//
// State is (index, bound) where bound is the last value taken, or
// "unbounded" before anything has been taken. Unboundedness is carried as
// an explicit flag, so the smallest int is a legal element.
//
// Algorithm Outline (at index i):
//  1. i == n → empty run.
//  2. skip := best run from (i+1, bound).
//  3. if unbounded or seq[i] > bound:
//     take := seq[i] followed by the best run from (i+1, seq[i]).
//  4. Return take only if it is strictly longer than skip.
//
// Tie-break:
//
//	On equal length the skip branch wins at every level.
//
// Complexity:
//
//	Time   = O(2ⁿ): both branches are always expanded and no subproblem
//	         is reused.
//	Memory = O(n) recursion depth; each level allocates its own result.
func Recursive(seq []int) []int {
	return recursiveFrom(seq, 0, 0, false)
}

// recursiveFrom returns the best run of seq[index:] whose values all exceed
// bound (when bounded is true).
func recursiveFrom(seq []int, index, bound int, bounded bool) []int {
	if index == len(seq) {
		return []int{}
	}

	// Option 1: skip seq[index].
	excluded := recursiveFrom(seq, index+1, bound, bounded)

	// Option 2: take seq[index] when it stays above the bound.
	v := seq[index]
	if !bounded || v > bound {
		rest := recursiveFrom(seq, index+1, v, true)
		if len(rest)+1 > len(excluded) {
			included := make([]int, 0, len(rest)+1)
			included = append(included, v)

			return append(included, rest...)
		}
	}

	return excluded
}
