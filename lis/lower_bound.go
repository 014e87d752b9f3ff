package lis

// LowerBound returns the index of the first element of sorted that is
// greater than or equal to target, or len(sorted) when every element is
// smaller. The result is the insertion point that keeps sorted ordered.
//
// sorted must be in non-decreasing order; Patience only ever passes a
// strictly increasing tails slice.
//
// Edge cases:
//   - empty slice              → 0
//   - target <= sorted[0]      → 0
//   - target >  sorted[last]   → len(sorted)
//
// Complexity: O(log k) time, O(1) memory.
func LowerBound(sorted []int, target int) int {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) // avoids overflow of lo+hi
		if sorted[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}
