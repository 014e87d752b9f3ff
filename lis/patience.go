package lis

// Patience computes a longest strictly increasing subsequence of seq in
// O(n log n) with the tails array of patience sorting.
//
// State during the scan:
//
//	tailValue[k]       = smallest tail of any increasing run of length k+1
//	                     seen so far (strictly increasing in k at all times)
//	tailSourceIndex[k] = index in seq that currently provides tailValue[k]
//	predecessor[i]     = tailSourceIndex[pos-1] at the moment i was placed
//	                     at pos, or none when pos == 0
//
// Algorithm Outline:
//  1. For each i, v = seq[i]: pos = LowerBound(tailValue, v).
//  2. pos == len(tailValue) → append (v, i); otherwise overwrite slot pos.
//     Using the first slot >= v (not > v) keeps equal values from
//     extending a run.
//  3. Record predecessor[i].
//  4. LIS length = len(tailValue). Follow predecessor from the last
//     tailSourceIndex, then reverse.
//
// The returned values are a witnessed run rebuilt from back-pointers;
// tailValue itself only holds per-length lower bounds and is generally not
// a subsequence of seq.
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n)
func Patience(seq []int) []int {
	n := len(seq)
	if n == 0 {
		return []int{}
	}

	tailValue := make([]int, 0, n)
	tailSourceIndex := make([]int, 0, n)
	predecessor := make([]int, n)

	for i, v := range seq {
		pos := LowerBound(tailValue, v)
		if pos == len(tailValue) {
			tailValue = append(tailValue, v)
			tailSourceIndex = append(tailSourceIndex, i)
		} else {
			tailValue[pos] = v
			tailSourceIndex[pos] = i
		}

		if pos > 0 {
			predecessor[i] = tailSourceIndex[pos-1]
		} else {
			predecessor[i] = none
		}
	}

	size := len(tailSourceIndex)

	return reconstruct(seq, predecessor, tailSourceIndex[size-1], size)
}
