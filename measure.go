package bigo

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Operation is the function under measurement. It receives the input
// built by a Generator; a returned error aborts the whole measurement.
type Operation[T any] func(data T) error

// Generator builds one input of "length" n for an Operation.
type Generator[T any] func(n int) T

// Samples holds the measured execution time for each input size.
type Samples struct {
	Measures []int        // Input sizes, ascending
	Times    []float64    // Fastest round at each size, in seconds
	Rounds   []RoundStats // Spread of the timing rounds at each size
}

// Sizes returns Measures as float64 for fitting.
func (s *Samples) Sizes() []float64 {
	out := make([]float64, len(s.Measures))
	for i, n := range s.Measures {
		out[i] = float64(n)
	}
	return out
}

// RoundStats summarises the timing rounds at one size.
type RoundStats struct {
	N      int
	Rounds int
	Min    time.Duration
	Median time.Duration
	Mean   time.Duration
	Max    time.Duration
	Stddev time.Duration
}

// Linspace returns count sizes evenly spaced between lo and hi, both
// included, truncated toward zero. Neighbouring sizes may collide when
// count exceeds hi−lo+1.
func Linspace(lo, hi, count int) []int {
	if count <= 0 {
		return nil
	}
	ns := make([]int, count)
	if count == 1 {
		ns[0] = lo
		return ns
	}
	step := float64(hi-lo) / float64(count-1)
	for i := 0; i < count-1; i++ {
		ns[i] = int(float64(lo) + float64(i)*step)
	}
	ns[count-1] = hi
	return ns
}

// Measure times op at cfg.Measures sizes between cfg.MinN and cfg.MaxN.
//
// For each size one input is generated, then op is called cfg.Repeats
// times per round over cfg.Timings rounds. The fastest round is kept:
// interference from the rest of the system only ever adds time.
//
// The first error returned by op aborts the run; no partial samples are
// returned.
func Measure[T any](op Operation[T], gen Generator[T], cfg Config) (*Samples, error) {
	if err := cfg.validate(measureFields); err != nil {
		return nil, err
	}

	clock := cfg.clock()
	log := cfg.logger()

	ns := Linspace(cfg.MinN, cfg.MaxN, cfg.Measures)
	samples := &Samples{
		Measures: ns,
		Times:    make([]float64, len(ns)),
		Rounds:   make([]RoundStats, len(ns)),
	}

	for i, n := range ns {
		stats, err := measureAt(op, gen(n), n, cfg.Repeats, cfg.Timings, clock)
		if err != nil {
			return nil, fmt.Errorf("failed at N=%d: %w", n, err)
		}

		samples.Times[i] = stats.Min.Seconds()
		samples.Rounds[i] = stats

		log.Debug("measured execution time",
			"n", n,
			"seconds", samples.Times[i],
			"median", stats.Median,
			"stddev", stats.Stddev)
	}

	return samples, nil
}

// measureAt runs the timing rounds for one generated input.
func measureAt[T any](op Operation[T], data T, n, repeats, timings int, clock Clock) (RoundStats, error) {
	rounds := make([]time.Duration, timings)

	for r := 0; r < timings; r++ {
		start := clock.Now()
		for k := 0; k < repeats; k++ {
			if err := op(data); err != nil {
				return RoundStats{}, err
			}
		}
		rounds[r] = clock.Now().Sub(start)
	}

	return CalculateRoundStats(n, rounds), nil
}

// CalculateRoundStats computes min, median, mean, max and standard
// deviation of the timing rounds measured at size n.
func CalculateRoundStats(n int, rounds []time.Duration) RoundStats {
	if len(rounds) == 0 {
		return RoundStats{N: n}
	}

	sorted := make([]time.Duration, len(rounds))
	copy(sorted, rounds)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	mean := sum / time.Duration(len(sorted))

	var variance float64
	for _, d := range sorted {
		diff := float64(d - mean)
		variance += diff * diff
	}
	stddev := time.Duration(math.Sqrt(variance / float64(len(sorted))))

	return RoundStats{
		N:      n,
		Rounds: len(sorted),
		Min:    sorted[0],
		Median: sorted[len(sorted)/2],
		Mean:   mean,
		Max:    sorted[len(sorted)-1],
		Stddev: stddev,
	}
}
