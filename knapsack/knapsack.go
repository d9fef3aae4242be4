// Package knapsack provides exact and approximate solvers for the 0/1
// knapsack problem. A Knapsack value wraps one immutable problem instance
// (items + capacity) and owns the private working state of its solvers.
package knapsack

import "fmt"

// Knapsack is one 0/1 knapsack problem instance.
//
// It moves through a small state machine:
//
//	Uninitialized → (New) → Loaded → (MaxValue) → Solved
//
// IncludedItems is valid only in the Solved state, because it backtracks
// through the memo table that MaxValue populates. MaxValueTabulated and
// Approximate are stateless with respect to that machine: they may run in
// any order, any number of times, without disturbing the instance.
type Knapsack struct {
	capacity int    // total weight capacity W
	items    []Item // items[0] is the zero sentinel; real items live at 1..n
	total    int    // sum of all item values; scaling input for the FPTAS

	memo   map[memoKey]int // (w, i) → best value with items 1..i, capacity ≤ w
	solved bool            // true once MaxValue has populated memo for (W, n)

	opts Options
}

// New constructs a Knapsack from a capacity and an item list.
//
// The input slice is deep-copied into an internal store with a zero-valued
// sentinel at index 0, so real items occupy positions 1..n and base-case
// lookups need no special casing. Items may arrive with Index == 0, in which
// case dense 1-based labels are assigned in input order; if any item carries
// an explicit label, the labels must together form a permutation of 1..n.
//
// Errors: ErrNegativeCapacity, ErrNegativeValue, ErrNegativeWeight, ErrBadIndex.
//
// Complexity: O(n) time and memory.
func New(capacity int, items []Item, opts Options) (*Knapsack, error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	n := len(items)
	store := make([]Item, n+1) // store[0] stays the zero sentinel
	seen := make([]bool, n+1)

	var total int
	for j, it := range items {
		if it.Value < 0 {
			return nil, ErrNegativeValue
		}
		if it.Weight < 0 {
			return nil, ErrNegativeWeight
		}
		idx := it.Index
		if idx == 0 {
			idx = j + 1 // assign a dense label on the caller's behalf
		}
		if idx < 1 || idx > n || seen[idx] {
			return nil, ErrBadIndex
		}
		seen[idx] = true
		it.Index = idx
		store[idx] = it
		total += it.Value
	}

	return &Knapsack{
		capacity: capacity,
		items:    store,
		total:    total,
		memo:     make(map[memoKey]int),
		opts:     opts,
	}, nil
}

// Capacity returns the total weight capacity W of the instance.
func (k *Knapsack) Capacity() int {
	return k.capacity
}

// Len returns the number of real items n (the sentinel is not counted).
func (k *Knapsack) Len() int {
	return len(k.items) - 1
}

// TotalValue returns the sum of all item values.
func (k *Knapsack) TotalValue() int {
	return k.total
}

// Items returns a copy of the real items, ordered by index 1..n.
// Mutating the returned slice does not affect the instance.
func (k *Knapsack) Items() []Item {
	out := make([]Item, len(k.items)-1)
	copy(out, k.items[1:])

	return out
}

// debugf writes a trace line to Options.DebugWriter; silent when nil.
func (k *Knapsack) debugf(format string, args ...any) {
	if k.opts.DebugWriter == nil {
		return
	}
	_, _ = fmt.Fprintf(k.opts.DebugWriter, format, args...)
}
