// Package knapsack defines core types, options, and sentinel errors
// for the knapsack subpackage of github.com/katalvlaran/lvlpack.
package knapsack

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for knapsack operations.
var (
	// ErrNegativeCapacity indicates the knapsack capacity is negative.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")
	// ErrNegativeValue indicates an item carries a negative value.
	ErrNegativeValue = errors.New("knapsack: item values must be non-negative")
	// ErrNegativeWeight indicates an item carries a negative weight.
	ErrNegativeWeight = errors.New("knapsack: item weights must be non-negative")
	// ErrBadIndex indicates item indices are not dense, unique and 1-based.
	ErrBadIndex = errors.New("knapsack: item indices must be dense, unique and 1-based")
	// ErrNotSolved indicates IncludedItems was called before MaxValue populated the memo table.
	ErrNotSolved = errors.New("knapsack: reconstruction requires a completed memoized solve")
	// ErrAccuracyRange indicates the requested approximation accuracy lies outside (0, 100].
	ErrAccuracyRange = errors.New("knapsack: accuracy percent must lie in (0, 100]")
)

// Item is one selectable record: a dense 1-based label plus its value and weight.
// Items are immutable once handed to New; every solver works from the same
// canonical copy (the approximation solver scales values on a private slice).
type Item struct {
	Index  int // 1-based, unique, dense label
	Value  int // non-negative
	Weight int // non-negative
}

// String renders the item as Item{#label/$value/weightkg}.
func (it Item) String() string {
	return fmt.Sprintf("Item{#%d/$%d/%dkg}", it.Index, it.Value, it.Weight)
}

// Options configures a Knapsack instance.
//
// Fields:
//   - DebugWriter — destination for verbose per-step solver traces.
//     nil (the default) keeps every solver completely silent.
//
// Debug tracing is instance-scoped configuration, not process-wide state:
// two Knapsack values may trace to different writers concurrently.
//
// Example:
//
//	opts := knapsack.DefaultOptions()
//	opts.DebugWriter = os.Stderr // watch memo hits and scaling decisions
//	k, err := knapsack.New(capacity, items, opts)
type Options struct {
	DebugWriter io.Writer
}

// DefaultOptions returns Options with default settings: no debug tracing.
func DefaultOptions() Options {
	return Options{}
}

// ApproxResult holds the outcome of the FPTAS approximation solver.
type ApproxResult struct {
	// Value is the approximate optimal total value, rescaled to the
	// original value units (never exceeds the true optimum).
	Value int

	// ScalingDivisor is the divisor m used to coarsen item values.
	// m == 1 means values were effectively not coarsened.
	ScalingDivisor int

	// BoundGuaranteed reports whether the (1-ε)·OPT lower bound holds.
	// It is false when the computed divisor floored to zero and was
	// clamped to 1 — a soft warning, not an error: the returned Value
	// is still a valid feasible solution.
	BoundGuaranteed bool
}

// memoKey identifies one memoized subproblem: the best value achievable
// with items 1..i under residual capacity w. Struct keys compare by value,
// so equal (w, i) pairs always address the same cache slot.
type memoKey struct {
	w int // residual capacity
	i int // highest item index still considered
}
