package knapsack

import "math"

// unreachable marks an approximation-table entry no item subset can attain.
const unreachable = math.MaxInt

// Approximate — fully polynomial-time approximation scheme (FPTAS) for the
// 0/1 knapsack problem.
//
// Description:
//
//	Trades accuracy for runtime: item values are coarsened by a divisor m
//	derived from the requested accuracy, then a value-indexed DP finds the
//	minimum weight needed to reach each coarsened value. The best coarsened
//	value whose weight fits the capacity is rescaled and returned.
//
//	Unlike the exact solvers, the DP here is indexed by value, not weight —
//	weights only flow through min/compare steps, which is why the scheme
//	tolerates non-integer weights in principle (only values are discretized).
//
// Algorithm Outline:
//  1. ε = (100 − accuracyPercent) / 100.
//  2. m = ⌊ε · totalValue / n⌋; a zero m is clamped to 1 and flagged via
//     ApproxResult.BoundGuaranteed=false (the bound may no longer hold).
//  3. scaled(i) = ⌊value(i) / m⌋ on a PRIVATE copy — the canonical items
//     are never mutated, so solvers may run in any order.
//  4. A[i][x] = minimum weight achieving scaled value ≥ x with items 1..i;
//     row 0 is 0 at x=0 and unreachable elsewhere.
//  5. Fill rows 1..n: include item i when the predecessor state is
//     reachable, otherwise carry the row above forward.
//  6. Scan x downward from the scaled total; the first x with A[n][x] ≤ W
//     rescales to the answer x·m. x=0 always fits, so 0 is the floor.
//
// Guarantee: Value ≥ (1−ε)·OPT whenever BoundGuaranteed is true, and
// Value ≤ OPT always.
//
// Errors: ErrAccuracyRange when accuracyPercent lies outside (0, 100].
//
// Complexity:
//
//	Time   = O(n · totalValue / ε) — polynomial in n and 1/ε,
//	         independent of weight magnitudes
//	Memory = O(n · totalValue / (ε·n)) table entries
func (k *Knapsack) Approximate(accuracyPercent float64) (ApproxResult, error) {
	if accuracyPercent <= 0 || accuracyPercent > 100 {
		return ApproxResult{}, ErrAccuracyRange
	}

	n := len(k.items) - 1
	if n == 0 {
		// Nothing to pack; also guards the /n in the divisor computation.
		return ApproxResult{ScalingDivisor: 1, BoundGuaranteed: true}, nil
	}

	eps := (100 - accuracyPercent) / 100
	m := int(eps * float64(k.total) / float64(n))
	guaranteed := true
	if m == 0 {
		// ε (or the total value) is too small to coarsen by; dividing by
		// zero is not an option, so clamp and surface the soft warning.
		k.debugf("approx: divisor floored to 0, clamped to 1; bound not guaranteed\n")
		m = 1
		guaranteed = false
	}

	// Coarsen values on a private slice; k.items stays canonical.
	scaled := make([]int, n+1)
	var scaledTotal int
	for i := 1; i <= n; i++ {
		scaled[i] = k.items[i].Value / m
		scaledTotal += scaled[i]
	}

	// A[i][x] = min weight achieving scaled value ≥ x using items 1..i.
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, scaledTotal+1)
	}
	for x := 1; x <= scaledTotal; x++ {
		table[0][x] = unreachable // only value 0 is free
	}

	for i := 1; i <= n; i++ {
		for x := 0; x <= scaledTotal; x++ {
			prevNeeded := 0
			if x-scaled[i] >= 0 {
				prevNeeded = table[i-1][x-scaled[i]]
			}
			if prevNeeded == unreachable {
				// Item i cannot complete value x via inclusion.
				table[i][x] = table[i-1][x]
			} else if with := k.items[i].Weight + prevNeeded; with < table[i-1][x] {
				table[i][x] = with
			} else {
				table[i][x] = table[i-1][x]
			}
		}
	}

	// Highest reachable scaled value that fits the capacity wins.
	for x := scaledTotal; x >= 0; x-- {
		if table[n][x] <= k.capacity {
			k.debugf("approx: best scaled value %d (m=%d) at weight %d\n", x, m, table[n][x])

			return ApproxResult{Value: x * m, ScalingDivisor: m, BoundGuaranteed: guaranteed}, nil
		}
	}

	// Unreachable in practice: x=0 always satisfies A[n][0]=0 ≤ W.
	return ApproxResult{ScalingDivisor: m, BoundGuaranteed: guaranteed}, nil
}
