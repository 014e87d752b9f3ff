// Package lisoptimization compares four ways of computing a Longest
// Increasing Subsequence (LIS) on the same integer data.
//
// 🚀 What is inside?
//
//	lis/        — the algorithms: Backtrack, Recursive, DP, Patience,
//	              plus LowerBound, Verify and a small registry
//	sequence/   — the sequence source (sequence_<N>.json files or memory)
//	              and deterministic fixture generators
//	cmd/lis-*   — one binary per algorithm: lis-<name> <N>
//
// ✨ Why four?
//
//	They share one contract (strictly increasing, order-preserving, maximal
//	length) but span O(2ⁿ) to O(n log n), so running them side by side on
//	growing N makes the cost of each strategy visible. When several LIS
//	exist, each one keeps its own deterministic pick.
//
// Quick example:
//
//	seq := []int{3, 1, 4, 1, 5, 9, 2, 6}
//	lis.Patience(seq) // [1 4 5 6]
//	lis.DP(seq)       // [3 4 5 9]
//
//	go run ./cmd/lis-patience 10_000
package lisoptimization
