// Package bigo estimates the time complexity of a function empirically.
//
// # Overview
//
// bigo times a function over increasing input sizes, fits several growth
// models to the measurements by least squares, and reports the model that
// explains them best:
//
//	Constant      time = a
//	Logarithmic   time = a + b·log(n)
//	Linear        time = a + b·n
//	Linearithmic  time = a + b·n·log(n)
//	Quadratic     time = a + b·n²
//	Cubic         time = a + b·n³
//	Polynomial    time = a·n^b      (fit as log(time) = log(a) + b·log(n))
//	Exponential   time = a·b^n      (fit as log(time) = log(a) + n·log(b))
//
// # Quick Start
//
//	sum := func(data []int) error {
//	    total := 0
//	    for _, v := range data {
//	        total += v
//	    }
//	    _ = total
//	    return nil
//	}
//
//	cfg := bigo.DefaultConfig()
//	cfg.MinN, cfg.MaxN = 1000, 100000
//	cfg.Timings = 5
//
//	best, table, err := bigo.Estimate(sum, bigo.RangeGenerator, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(bigo.Report(best, table))
//
// Output (timings vary):
//
//	Best : Linear: time = 2.1E-06 + 3.2E-10*n (sec)
//	Constant: time = 1.6E-05 (sec)                                      (res: 1.8E-09)
//	Linear: time = 2.1E-06 + 3.2E-10*n (sec)                            (res: 4.5E-13)
//	...
//
// # Measurement
//
// Measure generates Config.Measures sizes evenly spaced between MinN and
// MaxN. At each size it builds one input, then times Config.Repeats calls
// in a row, Config.Timings times. The fastest round is kept: other
// processes only ever add time to a measurement.
//
// Timing uses a Clock (SystemClock by default). Tests inject a fake clock
// to make measurements deterministic.
//
// # Selection
//
// Infer fits each candidate in Config.Kinds, in order, and keeps the
// first one whose residual is not beaten by more than Config.SimplicityBias:
//
//	residual < bestResidual − bias
//
// AllKinds lists simple classes first, so near-ties resolve toward the
// simpler explanation. Kind.Order is reported but never consulted.
//
// Residuals are sums of squared errors in seconds². Polynomial and
// Exponential are fit in log-time space; their residuals are recomputed
// in seconds so all candidates compare in the same units.
//
// # Errors
//
// Coefficients and Compute on an unfitted Class return ErrNotFitted.
// A design matrix that cannot be solved (fewer distinct sizes than
// coefficients) returns ErrDegenerateFit. An error from the measured
// Operation aborts the run and is returned wrapped; nothing is retried.
//
// # Testing
//
// Use assertions to pin the complexity of your own code:
//
//	func TestLookupIsLogarithmic(t *testing.T) {
//	    best, table, err := bigo.Estimate(lookup, gen, cfg)
//	    require.NoError(t, err)
//
//	    bigo.AssertComplexity(t, best, table, bigo.Logarithmic, bigo.DefaultAssertionConfig())
//	    bigo.PrintAnalysis(t, best, table)
//	}
//
// Wall-clock tests are sensitive to machine load; AssertComplexity fails
// when the best residual is too high to be trusted.
package bigo
