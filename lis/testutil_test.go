// Package lis_test holds the shared fixtures and the brute-force oracle used
// across the *_test.go files of this package.
package lis_test

import (
	"testing"

	"github.com/pablofueros/lis-optimization/lis"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Fixtures - inputs with several maximal subsequences, so that each
// strategy's tie-break is observable.
// -----------------------------------------------------------------------------

var (
	// piDigits has LIS length 4 with witnesses [3 4 5 9], [3 4 5 6], [1 4 5 9], [1 4 5 6].
	piDigits = []int{3, 1, 4, 1, 5, 9, 2, 6}

	// twoEndings has LIS length 2: [1 3] ends first, [1 2] ends last.
	twoEndings = []int{1, 3, 2}

	// earlyBranch has LIS length 4: [2 5 7 8] and [2 3 7 8].
	earlyBranch = []int{2, 5, 3, 7, 1, 8}

	// classic has LIS length 4 with four witnesses.
	classic = []int{10, 9, 2, 5, 3, 7, 101, 18}
)

// witnessCase pins the exact subsequence a strategy must return.
type witnessCase struct {
	name string
	in   []int
	want []int
}

// runWitnessCases asserts f returns exactly want on every case, leaves the
// input untouched, and produces a valid subsequence.
func runWitnessCases(t *testing.T, f lis.Func, cases []witnessCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := make([]int, len(tc.in))
			copy(in, tc.in)
			got := f(in)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.in, in, "input must not be modified")
			require.NoError(t, lis.Verify(tc.in, got))
		})
	}
}

// oracleLength enumerates every index subset of seq and returns the size of
// the largest strictly increasing one. Exponential; keep n small.
func oracleLength(seq []int) int {
	n := len(seq)
	best := 0

	var mask, i int
	for mask = 0; mask < 1<<n; mask++ {
		size, last, ok := 0, 0, true
		for i = 0; i < n; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			if size > 0 && seq[i] <= last {
				ok = false
				break
			}
			last = seq[i]
			size++
		}
		if ok && size > best {
			best = size
		}
	}

	return best
}
