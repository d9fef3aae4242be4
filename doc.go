// Package lvlpack is your in-memory toolkit for 0/1 knapsack optimization —
// exact dynamic-programming solvers, item-set reconstruction, and a tunable
// fully polynomial-time approximation scheme (FPTAS).
//
// 🚀 What is lvlpack?
//
//	A small, deterministic library that brings together:
//		• Exact solving: memoized recursion & two-row bottom-up tabulation
//		• Reconstruction: backtrack the memo table to list the chosen items
//		• Approximation: value-scaling FPTAS with a caller-chosen accuracy bound
//		• Loading: a strict parser for the classic "<capacity> <count>" dataset format
//
// ✨ Why choose lvlpack?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – cross-checked solvers, in-code docs & complexity notes
//   - Pure computation – no hidden I/O, no global state, explicit options
//
// Under the hood, everything is organized under two subpackages and a CLI:
//
//	knapsack/     — the Knapsack solver: exact (memo & tabulation), FPTAS, reconstruction
//	dataset/      — loader for whitespace-delimited "<value> <weight>" problem files
//	cmd/knapsack/ — command-line runner that reports all solvers on one or more datasets
//
// Quick sketch:
//
//	capacity 10,  items (value/weight): 60/5, 100/4, 120/6
//	optimal = 220 — items #2 and #3 fill the sack exactly.
//
// Dive into the knapsack package docs for algorithm outlines, complexity
// bounds, and the accuracy/runtime trade-off of the approximation solver.
//
//	go get github.com/katalvlaran/lvlpack/knapsack
package lvlpack
