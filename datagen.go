package bigo

import (
	"math/rand/v2"
	"strings"
)

// Data generators for Measure and Estimate. The random generators take an
// explicit *rand.Rand so a run can be reproduced from its seed.

// ASCIILetters is the default alphabet for Strings.
const ASCIILetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// N returns n itself.
func N(n int) int { return n }

// Range returns [start, start+1, ..., start+n-1].
func Range(n, start int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// Integers returns n random integers in [lo, hi].
func Integers(r *rand.Rand, n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + r.IntN(hi-lo+1)
	}
	return out
}

// LargeIntegers returns n random integers spread over ±50 million.
func LargeIntegers(r *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = (r.IntN(101)-50)*1000000 + r.IntN(10001)
	}
	return out
}

// Strings returns a random string of n characters drawn from chars.
func Strings(r *rand.Rand, n int, chars string) string {
	alphabet := []rune(chars)
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteRune(alphabet[r.IntN(len(alphabet))])
	}
	return b.String()
}

// RangeGenerator adapts Range to a Generator starting at zero.
func RangeGenerator(n int) []int { return Range(n, 0) }

// IntegersGenerator returns a Generator of n random integers in [lo, hi].
func IntegersGenerator(r *rand.Rand, lo, hi int) Generator[[]int] {
	return func(n int) []int { return Integers(r, n, lo, hi) }
}
