// Command lis-backtrack prints the length of a longest increasing subsequence of
// data/sequence_<N>.json using exhaustive backtracking with pruning, O(2^n).
//
// Usage:
//
//	lis-backtrack <N> [--data-dir DIR] [--show] [--verify] [--log-level LEVEL]
package main

import (
	"github.com/pablofueros/lis-optimization/internal/cli"
	"github.com/pablofueros/lis-optimization/lis"
)

func main() {
	cli.Main(lis.NameBacktrack)
}
