// Package knapsack solves the 0/1 knapsack problem three ways: exact
// memoized recursion, exact bottom-up tabulation, and a fully polynomial-time
// approximation scheme (FPTAS) with a caller-chosen accuracy bound.
//
// 🚀 What is the 0/1 knapsack problem?
//
//	Choose a subset of items — each usable at most once — maximizing total
//	value subject to a total weight capacity. It shows up everywhere:
//	  • Budget & portfolio allocation
//	  • Cargo loading & bin packing relaxations
//	  • Cutting stock and resource scheduling
//	  • CTF/interview classics
//
// ✨ Key features:
//   - MaxValue: memoized recursion, struct-keyed cache, O(n·W)
//   - MaxValueTabulated: two-row rolling DP, O(W) memory (same optimum)
//   - IncludedItems: deterministic backtracking over the memo table
//   - Approximate: value-scaling FPTAS, Value ≥ (1−ε)·OPT, runtime
//     polynomial in n and 1/ε, independent of weight magnitudes
//   - explicit Options (debug tracing via io.Writer) — no global state
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlpack/knapsack"
//
//	items := []knapsack.Item{
//	  {Value: 60, Weight: 5},
//	  {Value: 100, Weight: 4},
//	  {Value: 120, Weight: 6},
//	}
//	k, err := knapsack.New(10, items, knapsack.DefaultOptions())
//	if err != nil {
//	  // ErrNegativeCapacity / ErrNegativeValue / ErrNegativeWeight / ErrBadIndex
//	}
//
//	best := k.MaxValue()            // 220, exact
//	same := k.MaxValueTabulated()   // 220, cross-check
//	picked, _ := k.IncludedItems()  // [Item{#3/$120/6kg} Item{#2/$100/4kg}]
//	res, _ := k.Approximate(90)     // Value within 10% of optimal
//
// Ordering: MaxValue, MaxValueTabulated and Approximate may run in any
// order and any number of times on the same instance — the approximation
// scales a private copy of the values, never the canonical items.
// IncludedItems alone has a precondition: it reads the memo table that
// MaxValue populates, and returns ErrNotSolved before that.
//
// Performance:
//
//   - MaxValue:           O(n·W) time, O(n·W) memory
//   - MaxValueTabulated:  O(n·W) time, O(W) memory
//   - Approximate:        O(n·totalValue/ε) time
//
// Errors:
//
//   - ErrNegativeCapacity, ErrNegativeValue, ErrNegativeWeight, ErrBadIndex:
//     rejected at construction — solvers assume validated data.
//   - ErrNotSolved: reconstruction requested before a memoized solve.
//   - ErrAccuracyRange: accuracy percent outside (0, 100].
//
// See examples in example_test.go for full walkthroughs.
package knapsack
