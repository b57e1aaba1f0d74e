// Package workload provides named functions of known complexity for the
// bigo command: scans, searches and sorts over integer slices.
package workload

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/alexshd/bigo"
)

// Workload is a measurable function with its input generator.
type Workload struct {
	Name        string
	Description string
	Expected    bigo.Kind

	// Suggested size range; large enough to dominate call overhead,
	// small enough to finish in seconds.
	MinN int
	MaxN int

	// Generate builds an input of n integers from r.
	Generate func(r *rand.Rand, n int) []int
	Run      bigo.Operation[[]int]
}

// Generator binds w.Generate to r.
func (w Workload) Generator(r *rand.Rand) bigo.Generator[[]int] {
	return func(n int) []int { return w.Generate(r, n) }
}

var registry = []Workload{
	{
		Name:        "constant",
		Description: "read the first element",
		Expected:    bigo.Constant,
		MinN:        1000,
		MaxN:        100000,
		Generate:    random,
		Run:         First,
	},
	{
		Name:        "binary-search",
		Description: "binary search for a missing value in a sorted slice",
		Expected:    bigo.Logarithmic,
		MinN:        1000,
		MaxN:        1000000,
		Generate:    sorted,
		Run:         func(data []int) error { _ = BinarySearch(data, -1); return nil },
	},
	{
		Name:        "sum",
		Description: "sum every element",
		Expected:    bigo.Linear,
		MinN:        10000,
		MaxN:        1000000,
		Generate:    random,
		Run:         func(data []int) error { _ = Sum(data); return nil },
	},
	{
		Name:        "linear-search",
		Description: "scan for a missing value",
		Expected:    bigo.Linear,
		MinN:        10000,
		MaxN:        1000000,
		Generate:    random,
		Run:         func(data []int) error { _ = LinearSearch(data, -1); return nil },
	},
	{
		Name:        "quicksort",
		Description: "quicksort a copy of random integers",
		Expected:    bigo.Linearithmic,
		MinN:        10000,
		MaxN:        500000,
		Generate:    random,
		Run:         func(data []int) error { Quicksort(slices.Clone(data)); return nil },
	},
	{
		Name:        "selection-sort",
		Description: "selection sort a copy of random integers",
		Expected:    bigo.Quadratic,
		MinN:        100,
		MaxN:        5000,
		Generate:    random,
		Run:         func(data []int) error { SelectionSort(slices.Clone(data)); return nil },
	},
	{
		Name:        "pairs",
		Description: "count pairs summing to zero",
		Expected:    bigo.Quadratic,
		MinN:        100,
		MaxN:        5000,
		Generate:    signed,
		Run:         func(data []int) error { _ = ZeroPairs(data); return nil },
	},
	{
		Name:        "triples",
		Description: "count triples summing to zero",
		Expected:    bigo.Cubic,
		MinN:        20,
		MaxN:        400,
		Generate:    signed,
		Run:         func(data []int) error { _ = ZeroTriples(data); return nil },
	},
}

// All returns every workload sorted by name.
func All() []Workload {
	out := slices.Clone(registry)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the workload called name.
func Lookup(name string) (Workload, error) {
	for _, w := range registry {
		if w.Name == name {
			return w, nil
		}
	}
	return Workload{}, fmt.Errorf("unknown workload %q", name)
}

func random(r *rand.Rand, n int) []int {
	return bigo.Integers(r, n, 0, 1<<30)
}

func signed(r *rand.Rand, n int) []int {
	return bigo.LargeIntegers(r, n)
}

func sorted(r *rand.Rand, n int) []int {
	data := random(r, n)
	slices.Sort(data)
	return data
}
