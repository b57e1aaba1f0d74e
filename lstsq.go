package bigo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// designMatrix builds the feature matrix for sizes ns: one row per size,
// columns [1] or [1, basis(n)].
func designMatrix(m *model, ns []float64) *mat.Dense {
	cols := 1
	if m.basis != nil {
		cols = 2
	}
	x := mat.NewDense(len(ns), cols, nil)
	for i, n := range ns {
		x.Set(i, 0, 1)
		if m.basis != nil {
			x.Set(i, 1, m.basis(n))
		}
	}
	return x
}

// leastSquares solves min ‖x·c − y‖² and returns c with the residual sum
// of squares.
//
// Columns are scaled to unit max-norm before the QR factorisation; the
// cubic column alone can span 15 orders of magnitude. A singular system
// reports a gonum Condition error, surfaced as ErrDegenerateFit.
func leastSquares(x *mat.Dense, y []float64) ([]float64, float64, error) {
	rows, cols := x.Dims()
	if distinct := distinctRows(x); distinct < cols {
		return nil, 0, fmt.Errorf("%w: %d distinct sizes for %d coefficients",
			ErrDegenerateFit, distinct, cols)
	}

	scale := make([]float64, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			scale[j] = math.Max(scale[j], math.Abs(x.At(i, j)))
		}
		if scale[j] == 0 || math.IsInf(scale[j], 0) || math.IsNaN(scale[j]) {
			return nil, 0, fmt.Errorf("%w: column %d has scale %g", ErrDegenerateFit, j, scale[j])
		}
	}

	var scaled mat.Dense
	scaled.Apply(func(_, j int, v float64) float64 { return v / scale[j] }, x)

	var qr mat.QR
	qr.Factorize(&scaled)

	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, mat.NewVecDense(rows, y)); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrDegenerateFit, err)
	}

	coeff := make([]float64, cols)
	for j := range coeff {
		coeff[j] = sol.AtVec(j) / scale[j]
	}

	var residual float64
	for i := 0; i < rows; i++ {
		var pred float64
		for j := 0; j < cols; j++ {
			pred += coeff[j] * x.At(i, j)
		}
		d := pred - y[i]
		residual += d * d
	}

	return coeff, residual, nil
}

// distinctRows counts distinct rows of x. Rows come from sizes, so this is
// the number of distinct sizes the regression sees.
func distinctRows(x *mat.Dense) int {
	rows, _ := x.Dims()
	seen := make(map[[2]float64]struct{}, rows)
	for i := 0; i < rows; i++ {
		var key [2]float64
		copy(key[:], x.RawRowView(i))
		seen[key] = struct{}{}
	}
	return len(seen)
}
