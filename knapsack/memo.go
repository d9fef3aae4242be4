package knapsack

// MaxValue — exact 0/1 knapsack via memoized recursion.
//
// Description:
//
//	Computes the maximum total value achievable with items 1..n under
//	capacity W, by recursing over (item index, residual capacity) states
//	and caching every state in a map keyed by the (w, i) pair.
//
// Algorithm Outline:
//  1. solve(i, w): answer from cache when the (w, i) state was seen before.
//  2. i < 1 ⇒ no items remain ⇒ value 0.
//  3. weight(i) > w ⇒ item i cannot fit ⇒ solve(i-1, w).
//  4. otherwise ⇒ max( solve(i-1, w), solve(i-1, w-weight(i)) + value(i) ).
//  5. Top-level answer is solve(n, W).
//
// Ties between including and excluding an item resolve toward exclusion
// (strict ">" in step 4), which makes IncludedItems deterministic: of two
// equal-value optimal sets, the one preferring lower-indexed items wins.
//
// MaxValue is idempotent — a second call answers straight from the cache
// and returns the identical value.
//
// Complexity:
//
//	Time   = O(n·W) states, O(1) per state
//	Memory = O(n·W) cache entries worst case
func (k *Knapsack) MaxValue() int {
	best := k.solve(len(k.items)-1, k.capacity)
	k.solved = true

	return best
}

// solve returns the best value for items 1..i under residual capacity w,
// memoizing every visited state. Preconditions (0 ≤ i ≤ n, 0 ≤ w ≤ W) are
// guaranteed by MaxValue and by the recursion itself.
func (k *Knapsack) solve(i, w int) int {
	key := memoKey{w: w, i: i}
	if v, ok := k.memo[key]; ok {
		k.debugf("memo hit (w=%d, i=%d) = %d\n", w, i, v)

		return v
	}

	// Base case: no items left to consider.
	if i < 1 {
		k.memo[key] = 0

		return 0
	}

	var best int
	if k.items[i].Weight > w {
		// Item i cannot fit; the best value carries over unchanged.
		best = k.solve(i-1, w)
	} else {
		best = k.solve(i-1, w) // exclude item i
		// Strict ">" keeps equal-value ties resolved toward exclusion;
		// IncludedItems relies on this when it compares memo entries.
		if with := k.solve(i-1, w-k.items[i].Weight) + k.items[i].Value; with > best {
			best = with
		}
	}
	k.memo[key] = best

	return best
}
