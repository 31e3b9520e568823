// Command gointerp exercises the interpolation search library from the
// command line: it builds seeded sorted samples and reports how many
// element comparisons interpolation and bisection spend on them.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Johniel/gointerp/isearch"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gointerp",
		Short: "Measure interpolation search against binary search",
	}

	rootCmd.AddCommand(
		compareCmd(),
		searchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func compareCmd() *cobra.Command {
	var (
		size     int
		seed     int64
		searches int
		maxValue int
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare average comparison counts over a random sorted sample",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 || searches <= 0 || maxValue <= 0 {
				return fmt.Errorf("size, searches and max-value must be positive")
			}

			rng := rand.New(rand.NewSource(seed))
			a := make([]int, size)
			for i := range a {
				a[i] = rng.Intn(maxValue)
			}
			sort.Ints(a)

			interpTotal := 0
			bisectTotal := 0
			for i := 0; i < searches; i++ {
				target := rng.Intn(maxValue)
				interpTotal += countComparisons(a, target, true)
				bisectTotal += countComparisons(a, target, false)
			}

			fmt.Printf("size=%d seed=%d searches=%d\n", size, seed, searches)
			fmt.Printf("binary search:        avg %.2f comparisons\n", float64(bisectTotal)/float64(searches))
			fmt.Printf("interpolation search: avg %.2f comparisons\n", float64(interpTotal)/float64(searches))
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 1_000_000, "number of elements in the sample")
	cmd.Flags().Int64Var(&seed, "seed", 5, "seed for the sample and the targets")
	cmd.Flags().IntVar(&searches, "searches", 1000, "number of searches to average over")
	cmd.Flags().IntVar(&maxValue, "max-value", 100_000_000, "elements are drawn uniformly from [0, max-value)")
	return cmd
}

func searchCmd() *cobra.Command {
	var (
		size     int
		seed     int64
		maxValue int
	)

	cmd := &cobra.Command{
		Use:   "search <target>",
		Short: "Search a random sorted sample for one target value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target int
			if _, err := fmt.Sscanf(args[0], "%d", &target); err != nil {
				return fmt.Errorf("invalid target %q: %w", args[0], err)
			}
			if size <= 0 || maxValue <= 0 {
				return fmt.Errorf("size and max-value must be positive")
			}

			rng := rand.New(rand.NewSource(seed))
			a := make([]int, size)
			for i := range a {
				a[i] = rng.Intn(maxValue)
			}
			sort.Ints(a)

			idx, err := isearch.SearchOrdered(a, target)
			if err != nil {
				fmt.Printf("target %d not found, insertion point %d\n", target, idx)
				return nil
			}
			fmt.Printf("target %d found at index %d\n", target, idx)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 1000, "number of elements in the sample")
	cmd.Flags().Int64Var(&seed, "seed", 5, "seed for the sample")
	cmd.Flags().IntVar(&maxValue, "max-value", 100_000, "elements are drawn uniformly from [0, max-value)")
	return cmd
}

func countComparisons(a []int, target int, interpolate bool) int {
	comparisons := 0
	cmp := func(i int) int {
		comparisons++
		if a[i] < target {
			return -1
		} else if a[i] > target {
			return 1
		}
		return 0
	}

	if !interpolate {
		_, _ = isearch.BisectBy(len(a), cmp)
		return comparisons
	}
	_, _ = isearch.SearchBy(len(a), cmp, func(low, high int) float64 {
		total := float64(a[high] - a[low])
		if total == 0 {
			return 0.5
		}
		return float64(target-a[low]) / total
	})
	return comparisons
}
