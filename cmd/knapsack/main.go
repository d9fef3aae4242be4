// Command knapsack loads one or more problem files in the classic
// "<capacity> <itemCount>" format, runs all three solvers on each, and
// prints a report: both exact optima, the approximate value at the
// requested accuracy, and the reconstructed item set.
//
// Configuration comes from flags, overridable through LVLPACK_* environment
// variables (LVLPACK_ACCURACY, LVLPACK_DEBUG, LVLPACK_EXPECTED):
//
//	knapsack --accuracy 90 testdata/knapsack_small.txt
//	knapsack --expected 2493893 knapsack_Q1.txt
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlpack/dataset"
	"github.com/katalvlaran/lvlpack/knapsack"
)

func main() {
	pflag.Float64("accuracy", 90, "approximation accuracy percent in (0, 100]")
	pflag.Bool("debug", false, "trace solver steps to stderr")
	pflag.Int("expected", -1, "expected optimal value; -1 disables the check")
	pflag.Usage = usage
	pflag.Parse()

	v := viper.New()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "knapsack: %v\n", err)
		os.Exit(2)
	}
	v.SetEnvPrefix("lvlpack")
	v.AutomaticEnv()

	paths := pflag.Args()
	if len(paths) == 0 {
		usage()
		os.Exit(2)
	}

	exit := 0
	for _, path := range paths {
		if err := run(path, v); err != nil {
			fmt.Fprintf(os.Stderr, "knapsack: %v\n", err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: knapsack [flags] <dataset-file>...\n")
	pflag.PrintDefaults()
}

// run solves one dataset and prints the report the flags ask for.
func run(path string, v *viper.Viper) error {
	ds, err := dataset.Load(path)
	if err != nil {
		return err
	}

	opts := knapsack.DefaultOptions()
	if v.GetBool("debug") {
		opts.DebugWriter = os.Stderr
	}
	k, err := knapsack.New(ds.Capacity, ds.Items, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Println("================================================================")
	fmt.Printf("%s: capacity=%d items=%d\n", path, k.Capacity(), k.Len())

	accuracy := v.GetFloat64("accuracy")
	start := time.Now()
	memo := k.MaxValue()
	tab := k.MaxValueTabulated()
	approx, err := k.Approximate(accuracy)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	elapsed := time.Since(start)

	fmt.Printf("exact (memoized recursion): %d\n", memo)
	fmt.Printf("exact (two-row tabulation): %d\n", tab)
	fmt.Printf("approx (%.4g%% accuracy):   %d (divisor m=%d)\n", accuracy, approx.Value, approx.ScalingDivisor)
	if !approx.BoundGuaranteed {
		fmt.Println("note: scaling divisor clamped to 1; the accuracy bound may not be met")
	}
	fmt.Printf("elapsed: %s\n", elapsed)

	picked, err := k.IncludedItems()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	var sumValue, sumWeight int
	for _, it := range picked {
		sumValue += it.Value
		sumWeight += it.Weight
	}
	fmt.Printf("included items (%d): %v\n", len(picked), picked)
	fmt.Printf("included value=%d weight=%d/%d\n", sumValue, sumWeight, k.Capacity())

	if want := v.GetInt("expected"); want >= 0 && want != memo {
		return fmt.Errorf("%s: expected optimal value %d, got %d", path, want, memo)
	}

	return nil
}
