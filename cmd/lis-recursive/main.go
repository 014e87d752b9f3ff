// Command lis-recursive prints a longest increasing subsequence of
// data/sequence_<N>.json, and its length, using plain include/exclude
// recursion, O(2^n). Pass --show=false to print the length only.
//
// Usage:
//
//	lis-recursive <N> [--data-dir DIR] [--show] [--verify] [--log-level LEVEL]
package main

import (
	"github.com/pablofueros/lis-optimization/internal/cli"
	"github.com/pablofueros/lis-optimization/lis"
)

func main() {
	cli.Main(lis.NameRecursive)
}
