package knapsack

// MaxValueTabulated — exact 0/1 knapsack via bottom-up tabulation.
//
// Description:
//
//	Computes the same optimum as MaxValue, but iterates items outward-in
//	instead of recursing, and keeps only two DP rows of length W+1 — the
//	rolling-array trick that drops memory from O(n·W) to O(W).
//
// Algorithm Outline:
//  1. prev[x] = best value using no items at capacity x (all zero).
//  2. For each item i = 1..n, for each capacity x = 0..W:
//     curr[x] = prev[x]                                   (exclude i)
//     curr[x] = max(curr[x], prev[x-weight(i)]+value(i))  when weight(i) ≤ x
//  3. Swap rows and continue; the final answer is the last written row at W.
//
// Invariant: for every (i, x) the tabulated entry equals the memoized
// solver's solve(i, x) on the same instance — the two exact solvers are
// interchangeable cross-checks of one another.
//
// The DP rows are private working state, discarded on return: tabulation
// never touches the memo table, so it cannot stand in for MaxValue as the
// precondition of IncludedItems.
//
// Complexity:
//
//	Time   = O(n·W)
//	Memory = O(W)
func (k *Knapsack) MaxValueTabulated() int {
	prev := make([]int, k.capacity+1)
	curr := make([]int, k.capacity+1)

	for i := 1; i < len(k.items); i++ {
		it := k.items[i]
		for x := 0; x <= k.capacity; x++ {
			curr[x] = prev[x] // exclude item i
			if it.Weight <= x {
				if with := prev[x-it.Weight] + it.Value; with > curr[x] {
					curr[x] = with
				}
			}
		}
		prev, curr = curr, prev // roll the rows
	}

	// After the final swap the freshly written row sits in prev.
	// With n == 0 the loop never runs and prev[W] is correctly zero.
	return prev[k.capacity]
}
