package knapsack_test

import (
	"math/rand"

	"github.com/katalvlaran/lvlpack/knapsack"
)

// randomInstance builds a deterministic pseudo-random instance: n items with
// values in [0,300) and weights in [1,40], returned with the given capacity.
// The same seed always produces the same instance.
func randomInstance(seed int64, n, capacity int) ([]knapsack.Item, int) {
	rng := rand.New(rand.NewSource(seed))
	items := make([]knapsack.Item, n)
	for i := range items {
		items[i] = knapsack.Item{
			Value:  rng.Intn(300),
			Weight: 1 + rng.Intn(40),
		}
	}

	return items, capacity
}
