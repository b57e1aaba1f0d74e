package bigo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linspace returns count floats evenly spaced over [lo, hi].
func linspace(lo, hi float64, count int) []float64 {
	out := make([]float64, count)
	step := (hi - lo) / float64(count-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[count-1] = hi
	return out
}

func apply(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// TestInfer_RecoversSyntheticClasses fits noise-free data generated from
// each model and checks both the selected class and its internal coefficients.
func TestInfer_RecoversSyntheticClasses(t *testing.T) {
	x := linspace(10, 100, 100)

	tests := []struct {
		f     func(float64) float64
		kind  Kind
		coeff []float64
	}{
		{func(float64) float64 { return 2 }, Constant, []float64{2}},
		{func(x float64) float64 { return 4 * x }, Linear, []float64{0, 4}},
		{func(x float64) float64 { return 3 * x * x }, Quadratic, []float64{0, 3}},
		{func(x float64) float64 { return 2.5*x*x*x + 2 }, Cubic, []float64{2, 2.5}},
		{func(x float64) float64 { return 2 * math.Pow(x, 4) }, Polynomial, []float64{math.Log(2), 4}},
		{func(x float64) float64 { return 1.5 * math.Log(x) }, Logarithmic, []float64{0, 1.5}},
		{func(x float64) float64 { return x * math.Log(x) }, Linearithmic, []float64{0, 1}},
		{func(x float64) float64 { return math.Pow(0.6, x) }, Exponential, []float64{0, math.Log(0.6)}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			best, table, err := Infer(x, apply(x, tt.f), DefaultConfig())
			require.NoError(t, err)
			require.Equal(t, tt.kind, best.Kind(), "best: %s", best)
			require.Len(t, best.coeff, len(tt.coeff))
			for i := range tt.coeff {
				assert.InDelta(t, tt.coeff[i], best.coeff[i], 1e-2, "coefficient %d", i)
			}
			assert.Equal(t, len(AllKinds()), table.Len())
		})
	}
}

// TestFit_ComputeMatchesAndResidual checks that Compute reproduces the
// data and that Fit's residual equals Σ(compute − t)² for every kind.
func TestFit_ComputeMatchesAndResidual(t *testing.T) {
	x := linspace(10, 100, 100)

	tests := []struct {
		kind Kind
		f    func(float64) float64
	}{
		{Constant, func(float64) float64 { return 2 }},
		{Linear, func(x float64) float64 { return 5*x + 3 }},
		{Quadratic, func(x float64) float64 { return 8.1*x*x + 0.9 }},
		{Cubic, func(x float64) float64 { return x*x*x + 11 }},
		{Polynomial, func(x float64) float64 { return 5.2 * math.Pow(x, 2.5) }},
		{Logarithmic, func(x float64) float64 { return 8.5*math.Log(x) + 99 }},
		{Linearithmic, func(x float64) float64 { return 1.7*x*math.Log(x) + 2.74 }},
		{Exponential, func(x float64) float64 { return math.Pow(3.14, x) }},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			y := apply(x, tt.f)
			c := NewClass(tt.kind)

			residual, err := c.Fit(x, y)
			require.NoError(t, err)

			pred, err := c.Compute(x)
			require.NoError(t, err)

			var want float64
			for i := range y {
				assert.InEpsilon(t, y[i], pred[i], 1e-6, "x=%g", x[i])
				d := y[i] - pred[i]
				want += d * d
			}
			assert.InDelta(t, want, residual, 1e-8+1e-7*math.Abs(want))
		})
	}
}

func TestFit_SpecLinearExample(t *testing.T) {
	ns := linspace(100, 1000, 10)
	ts := apply(ns, func(n float64) float64 { return 0.01 + 0.0005*n })

	best, table, err := Infer(ns, ts, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, Linear, best.Kind())

	coeff, err := best.Coefficients()
	require.NoError(t, err)
	assert.InDelta(t, 0.01, coeff[0], 1e-12)
	assert.InDelta(t, 0.0005, coeff[1], 1e-15)

	residual, ok := table.Residual(Linear)
	require.True(t, ok)
	assert.Less(t, residual, 1e-20)
}

func TestCoefficients_StandardForm(t *testing.T) {
	x := linspace(10, 100, 50)

	poly := NewClass(Polynomial)
	_, err := poly.Fit(x, apply(x, func(x float64) float64 { return 2 * math.Pow(x, 3) }))
	require.NoError(t, err)
	coeff, err := poly.Coefficients()
	require.NoError(t, err)
	assert.InDelta(t, 2, coeff[0], 1e-9)
	assert.InDelta(t, 3, coeff[1], 1e-9)

	exp := NewClass(Exponential)
	_, err = exp.Fit(x, apply(x, func(x float64) float64 { return 0.5 * math.Pow(1.1, x) }))
	require.NoError(t, err)
	coeff, err = exp.Coefficients()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, coeff[0], 1e-9)
	assert.InDelta(t, 1.1, coeff[1], 1e-9)

	// Internal parameterisation is untouched.
	assert.InDelta(t, math.Log(0.5), exp.coeff[0], 1e-9)
	assert.InDelta(t, math.Log(1.1), exp.coeff[1], 1e-9)
}

func TestNotFitted_EveryKind(t *testing.T) {
	for _, k := range AllKinds() {
		c := NewClass(k)
		assert.False(t, c.Fitted())

		_, err := c.Compute([]float64{100})
		assert.ErrorIs(t, err, ErrNotFitted, k.String())

		_, err = c.Coefficients()
		assert.ErrorIs(t, err, ErrNotFitted, k.String())

		assert.Equal(t, k.String()+": not yet fitted", c.String())
	}
}

func TestString_IncludesUnitsAndIsStable(t *testing.T) {
	x := linspace(10, 100, 100)
	c := NewClass(Linear)
	_, err := c.Fit(x, apply(x, func(x float64) float64 { return 3*x + 2 }))
	require.NoError(t, err)

	s := c.String()
	assert.Equal(t, "Linear: time = 2 + 3*n (sec)", s)
	assert.Equal(t, s, c.String())
	assert.Equal(t, s, c.String())
}

func TestCompute_MonotonicAfterIncreasingFit(t *testing.T) {
	x := linspace(10, 1000, 30)
	y := apply(x, func(x float64) float64 { return 1e-3 + 1e-6*x*math.Log(x) })

	for _, k := range AllKinds() {
		c := NewClass(k)
		_, err := c.Fit(x, y)
		require.NoError(t, err, k.String())

		pred, err := c.Compute([]float64{100, 1000})
		require.NoError(t, err)
		assert.LessOrEqual(t, pred[0], pred[1]+1e-15, k.String())
	}
}

func TestFit_Errors(t *testing.T) {
	t.Run("AlreadyFitted", func(t *testing.T) {
		c := NewClass(Constant)
		_, err := c.Fit([]float64{1, 2}, []float64{1, 1})
		require.NoError(t, err)
		_, err = c.Fit([]float64{1, 2}, []float64{1, 1})
		assert.ErrorIs(t, err, ErrAlreadyFitted)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := NewClass(Linear).Fit(nil, nil)
		assert.ErrorIs(t, err, ErrEmptySamples)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := NewClass(Linear).Fit([]float64{1, 2}, []float64{1})
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("NonPositiveSize", func(t *testing.T) {
		_, err := NewClass(Linear).Fit([]float64{0, 2}, []float64{1, 2})
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("NegativeTime", func(t *testing.T) {
		_, err := NewClass(Linear).Fit([]float64{1, 2}, []float64{1, -2})
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("ZeroTimeInLogSpace", func(t *testing.T) {
		c := NewClass(Exponential)
		_, err := c.Fit([]float64{1, 2, 3}, []float64{1, 0, 2})
		assert.ErrorIs(t, err, ErrInvalidTime)
		assert.False(t, c.Fitted())

		// Linear-time kinds accept zero.
		_, err = NewClass(Linear).Fit([]float64{1, 2, 3}, []float64{1, 0, 2})
		assert.NoError(t, err)
	})

	t.Run("DegenerateSizes", func(t *testing.T) {
		c := NewClass(Linear)
		_, err := c.Fit([]float64{50, 50, 50}, []float64{1, 2, 3})
		assert.ErrorIs(t, err, ErrDegenerateFit)
		assert.False(t, c.Fitted())

		_, err = c.Compute([]float64{50})
		assert.ErrorIs(t, err, ErrNotFitted)
	})

	t.Run("SingleSampleConstant", func(t *testing.T) {
		c := NewClass(Constant)
		residual, err := c.Fit([]float64{10}, []float64{0.5})
		require.NoError(t, err)
		assert.InDelta(t, 0, residual, 1e-30)
	})
}

func TestFit_WideCubicRange(t *testing.T) {
	x := linspace(100, 100000, 10)
	y := apply(x, func(x float64) float64 { return 1e-3 + 1e-16*x*x*x })

	c := NewClass(Cubic)
	_, err := c.Fit(x, y)
	require.NoError(t, err)

	coeff, err := c.Coefficients()
	require.NoError(t, err)
	assert.InEpsilon(t, 1e-3, coeff[0], 1e-6)
	assert.InEpsilon(t, 1e-16, coeff[1], 1e-6)
}
