// Command lis-patience prints the length of a longest increasing subsequence of
// data/sequence_<N>.json using patience sorting with back-pointers, O(n log n).
//
// Usage:
//
//	lis-patience <N> [--data-dir DIR] [--show] [--verify] [--log-level LEVEL]
package main

import (
	"github.com/pablofueros/lis-optimization/internal/cli"
	"github.com/pablofueros/lis-optimization/lis"
)

func main() {
	cli.Main(lis.NamePatience)
}
