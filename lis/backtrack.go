package lis

// Backtrack computes a longest strictly increasing subsequence of seq by
// exhaustive depth-first search with pruning.
//
// Algorithm Outline:
//  1. Walk the indices left to right. At index i explore two branches,
//     in this order:
//     a. skip seq[i];
//     b. take seq[i], only if the current run is empty or seq[i] exceeds
//     its last value.
//  2. Before doing anything at index i, abandon the branch when
//     len(current) + (n-i) <= len(best): even taking every remaining
//     element could not produce a strictly longer run.
//  3. At i == n, a run strictly longer than best replaces best (by value).
//
// Tie-break:
//
//	best is only replaced by a strictly longer run, so among all maximal
//	runs the first one reached in skip-before-take order wins. That is
//	the run which postpones taking elements for as long as possible.
//
// Complexity:
//
//	Time   = O(2ⁿ) in the worst case; pruning lowers the constant only.
//	Memory = O(n) for the two runs plus O(n) recursion depth.
func Backtrack(seq []int) []int {
	b := &backtracker{
		seq:     seq,
		current: make([]int, 0, len(seq)),
		best:    make([]int, 0, len(seq)),
	}
	b.explore(0)

	return b.best
}

// backtracker owns the run under construction and the best run found so far.
// Only one call chain touches them at a time.
type backtracker struct {
	seq     []int
	current []int
	best    []int
}

// explore visits every surviving skip/take decision from index onward.
func (b *backtracker) explore(index int) {
	remaining := len(b.seq) - index
	if len(b.current)+remaining <= len(b.best) {
		return
	}

	if index >= len(b.seq) {
		// Pruning above already guarantees len(current) > len(best) here.
		b.best = append(b.best[:0], b.current...)
		return
	}

	// Option 1: skip seq[index].
	b.explore(index + 1)

	// Option 2: take seq[index] if it keeps the run strictly increasing.
	v := b.seq[index]
	if n := len(b.current); n == 0 || v > b.current[n-1] {
		b.current = append(b.current, v)
		b.explore(index + 1)
		b.current = b.current[:len(b.current)-1]
	}
}
