package lis

import "fmt"

// Canonical strategy names, as accepted by Lookup.
const (
	NameBacktrack = "backtrack"
	NameRecursive = "recursive"
	NameDP        = "dp"
	NamePatience  = "patience"
)

// algorithms lists every strategy in dependency order (leaves first).
var algorithms = []Algorithm{
	{Name: NameBacktrack, Func: Backtrack, Complexity: "O(2^n), pruned"},
	{Name: NameRecursive, Func: Recursive, Complexity: "O(2^n)", PrintsSubsequence: true},
	{Name: NameDP, Func: DP, Complexity: "O(n^2)"},
	{Name: NamePatience, Func: Patience, Complexity: "O(n log n)"},
}

// Algorithms returns a fresh copy of the registered strategies.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)

	return out
}

// Lookup returns the strategy registered under name.
// Errors: ErrUnknownAlgorithm (wrapped with the offending name).
func Lookup(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if a.Name == name {
			return a, nil
		}
	}

	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
