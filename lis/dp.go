package lis

// DP computes a longest strictly increasing subsequence of seq with the
// classic quadratic dynamic program and back-pointer reconstruction.
//
// Table:
//
//	length[i]      = length of the longest run ending exactly at i (>= 1)
//	predecessor[i] = index of the element before i in that run, or none
//	                 (predecessor[i] != none iff length[i] > 1)
//
// Algorithm Outline:
//  1. length[i] = 1, predecessor[i] = none for all i.
//  2. For i = 0..n-1, for j = 0..i-1:
//     if seq[j] < seq[i] and length[j]+1 > length[i]:
//     length[i] = length[j]+1, predecessor[i] = j
//  3. end = the lowest i with maximal length[i].
//  4. Follow predecessor from end back to none, then reverse.
//
// Tie-break:
//
//	The lowest ending index wins (strict ">" in step 3), and within the
//	scan the lowest j that reaches a given length wins (strict ">" in
//	step 2).
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n)
func DP(seq []int) []int {
	n := len(seq)
	if n == 0 {
		return []int{}
	}

	length := make([]int, n)
	predecessor := make([]int, n)
	for i := range length {
		length[i] = 1
		predecessor[i] = none
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			if seq[j] < seq[i] && length[j]+1 > length[i] {
				length[i] = length[j] + 1
				predecessor[i] = j
			}
		}
	}

	end := 0
	for i = 1; i < n; i++ {
		if length[i] > length[end] {
			end = i
		}
	}

	return reconstruct(seq, predecessor, end, length[end])
}

// reconstruct walks predecessor from end and returns the visited values in
// input order. size is the known run length, used to fill from the back.
//
// Complexity: O(size).
func reconstruct(seq, predecessor []int, end, size int) []int {
	out := make([]int, size)
	for k, at := size-1, end; k >= 0 && at != none; k, at = k-1, predecessor[at] {
		out[k] = seq[at]
	}

	return out
}
