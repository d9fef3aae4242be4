package knapsack

// IncludedItems backtracks through the memo table and returns the items
// that make up the optimal solution found by MaxValue.
//
// Precondition: MaxValue must have run on this instance. Before that the
// memo table lacks the states the walk reads, so the call is rejected with
// ErrNotSolved rather than silently returning an empty set.
//
// Algorithm Outline:
//  1. Start at state (W, n) — the top-level answer.
//  2. For i = n..1 compare memo(w, i) with memo(w, i-1):
//     equal   ⇒ item i was excluded; keep w and step to i-1.
//     differs ⇒ item i was included; record it, shrink w by weight(i).
//
// Every state the walk visits was cached during the solve: both branches of
// solve(i, w) evaluate solve(i-1, w) first, so the comparison entry always
// exists.
//
// The result lists items in discovery order — descending index — which is
// stable across runs. Because the solver breaks ties toward exclusion, the
// returned set is deterministic; a different tie-break would pick another
// of the equal-value optimal sets (same total value, different members).
//
// Complexity: O(n) time, O(n) result memory.
func (k *Knapsack) IncludedItems() ([]Item, error) {
	if !k.solved {
		return nil, ErrNotSolved
	}

	n := len(k.items) - 1
	w := k.capacity
	picked := make([]Item, 0, n)

	for i := n; i >= 1; i-- {
		if k.memo[memoKey{w: w, i: i}] == k.memo[memoKey{w: w, i: i - 1}] {
			k.debugf("reconstruct: item %d excluded at w=%d\n", i, w)

			continue
		}
		k.debugf("reconstruct: item %d included at w=%d\n", i, w)
		picked = append(picked, k.items[i])
		w -= k.items[i].Weight
	}

	return picked, nil
}
