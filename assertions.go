package bigo

import (
	"testing"
)

// AssertionConfig contains thresholds for complexity assertions.
type AssertionConfig struct {
	// Maximum residual (seconds²) for the fit to be trusted.
	// Noisy machines produce large residuals and unreliable classes.
	MaxResidual float64

	// Classes accepted in addition to the expected one. Linear and
	// Linearithmic are hard to separate over short size ranges.
	Tolerate []Kind
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MaxResidual: 5e-4,
	}
}

// AssertComplexity verifies that best is of kind want, or of one of
// cfg.Tolerate, and that its residual is reliable.
func AssertComplexity(t testing.TB, best *Class, table *FitTable, want Kind, cfg AssertionConfig) {
	t.Helper()

	if best == nil {
		t.Fatalf("No complexity class selected (want %s)", want)
	}

	residual, ok := table.Residual(best.Kind())
	if !ok {
		t.Fatalf("Best class %s missing from fit table", best.Kind())
	}

	if residual > cfg.MaxResidual {
		t.Errorf("Fit residual too high to be reliable: %g (max: %g)\n"+
			"Timing is likely disturbed by other processes.",
			residual, cfg.MaxResidual)
	}

	if best.Kind() == want {
		t.Logf("✓ %s (r=%g)", best, residual)
		return
	}
	for _, k := range cfg.Tolerate {
		if best.Kind() == k {
			t.Logf("✓ %s tolerated in place of %s (r=%g)", best, want, residual)
			return
		}
	}

	wantResidual, _ := table.Residual(want)
	t.Errorf("Best matched complexity is %s (r=%g) when %s (r=%g) was expected",
		best, residual, want, wantResidual)
}

// AssertNotSlowerThan verifies that best is no more complex than limit,
// comparing simplicity ranks.
func AssertNotSlowerThan(t testing.TB, best *Class, limit Kind) {
	t.Helper()

	if best == nil {
		t.Fatalf("No complexity class selected (limit %s)", limit)
	}
	if best.Order() > limit.Order() {
		t.Errorf("Complexity %s exceeds limit %s", best, limit)
		return
	}
	t.Logf("✓ %s within %s", best.Kind(), limit)
}

// PrintAnalysis outputs the fit table and predictions to the test log.
func PrintAnalysis(t testing.TB, best *Class, table *FitTable) {
	t.Helper()

	t.Logf("\n=== Complexity Analysis ===")
	t.Logf("Best: %s", best)

	t.Logf("\nCandidates:")
	t.Logf("  Class          Order  Residual      Formula")
	t.Logf("  -------------  -----  ------------  -------")
	for _, e := range table.Entries() {
		marker := " "
		if e.Class == best {
			marker = "*"
		}
		t.Logf("%s %-13s  %5d  %12.4G  %s",
			marker, e.Class.Kind(), e.Class.Order(), e.Residual, e.Class.Formula())
	}

	if !table.HasRawData() || best == nil {
		return
	}

	pred, err := best.Compute(table.Measures)
	if err != nil {
		t.Fatalf("Failed to compute predictions: %v", err)
	}
	t.Logf("\nMeasured vs Predicted:")
	t.Logf("  N           Measured (s)  Predicted (s)")
	for i, n := range table.Measures {
		t.Logf("  %-10.0f  %12.4G  %13.4G", n, table.Times[i], pred[i])
	}
}
