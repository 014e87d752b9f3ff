// Command lis-dp prints the length of a longest increasing subsequence of
// data/sequence_<N>.json using the quadratic dynamic program, O(n^2).
//
// Usage:
//
//	lis-dp <N> [--data-dir DIR] [--show] [--verify] [--log-level LEVEL]
package main

import (
	"github.com/pablofueros/lis-optimization/internal/cli"
	"github.com/pablofueros/lis-optimization/lis"
)

func main() {
	cli.Main(lis.NameDP)
}
