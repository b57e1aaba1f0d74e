package bigo

import (
	"fmt"
	"math"
)

type fitState int

const (
	unfitted fitState = iota
	fitted
)

// Class is one complexity-class candidate. It is created unfitted, fitted
// once, and read-only afterwards.
type Class struct {
	kind  Kind
	state fitState
	coeff []float64 // internal parameterisation, set by Fit
}

// NewClass returns an unfitted candidate of kind k.
// It panics if k is not a defined kind.
func NewClass(k Kind) *Class {
	_ = k.model()
	return &Class{kind: k}
}

// Kind returns the growth-rate hypothesis of c.
func (c *Class) Kind() Kind { return c.kind }

// Order returns the simplicity rank of c's kind.
func (c *Class) Order() int { return c.kind.Order() }

// Fitted reports whether Fit has completed successfully.
func (c *Class) Fitted() bool { return c.state == fitted }

// Fit fits the class to timing data and returns the sum of squared errors.
//
// ns are input sizes, ts the execution time in seconds for each size.
// For Polynomial and Exponential the regression runs on log(t), and the
// returned residual is recomputed in seconds:
//
//	residual = Σ (Compute(n_i) − t_i)²
//
// On error c stays unfitted.
func (c *Class) Fit(ns, ts []float64) (float64, error) {
	if c.state == fitted {
		return 0, fmt.Errorf("%s: %w", c.kind, ErrAlreadyFitted)
	}
	if len(ns) == 0 {
		return 0, ErrEmptySamples
	}
	if len(ns) != len(ts) {
		return 0, fmt.Errorf("%w: %d sizes, %d times", ErrLengthMismatch, len(ns), len(ts))
	}

	m := c.kind.model()

	for i, n := range ns {
		if !(n > 0) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%w: ns[%d] = %g", ErrInvalidSize, i, n)
		}
	}

	y := make([]float64, len(ts))
	for i, t := range ts {
		if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, fmt.Errorf("%w: ts[%d] = %g", ErrInvalidTime, i, t)
		}
		if m.logTime {
			if t == 0 {
				return 0, fmt.Errorf("%w: %s fits log(time), ts[%d] = 0", ErrInvalidTime, c.kind, i)
			}
			y[i] = math.Log(t)
		} else {
			y[i] = t
		}
	}

	coeff, residual, err := leastSquares(designMatrix(m, ns), y)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c.kind, err)
	}

	c.coeff = coeff
	c.state = fitted

	if m.recompute {
		pred := c.compute(ns)
		residual = 0
		for i := range pred {
			d := pred[i] - ts[i]
			residual += d * d
		}
	}

	return residual, nil
}

// Compute evaluates the fitted function at each size in ns.
func (c *Class) Compute(ns []float64) ([]float64, error) {
	if c.state != fitted {
		return nil, fmt.Errorf("%s: %w", c.kind, ErrNotFitted)
	}
	return c.compute(ns), nil
}

func (c *Class) compute(ns []float64) []float64 {
	m := c.kind.model()
	out := make([]float64, len(ns))
	for i, n := range ns {
		v := c.coeff[0]
		if m.basis != nil {
			v += c.coeff[1] * m.basis(n)
		}
		if m.logTime {
			v = math.Exp(v)
		}
		out[i] = v
	}
	return out
}

// Coefficients returns the fitted coefficients in standard form:
//
//	Polynomial:  time = a·n^b  → (a, b)
//	Exponential: time = a·b^n  → (a, b)
//
// Every other kind returns its linear-combination coefficients unchanged.
func (c *Class) Coefficients() ([]float64, error) {
	if c.state != fitted {
		return nil, fmt.Errorf("%s: %w", c.kind, ErrNotFitted)
	}
	if std := c.kind.model().standard; std != nil {
		return std(c.coeff), nil
	}
	out := make([]float64, len(c.coeff))
	copy(out, c.coeff)
	return out, nil
}

// Formula renders the fitted function, e.g. "time = 0.01 + 0.0005*n".
func (c *Class) Formula() string {
	if c.state != fitted {
		return "not yet fitted"
	}
	std, _ := c.Coefficients()
	args := make([]any, len(std))
	for i, v := range std {
		args[i] = v
	}
	return fmt.Sprintf(c.kind.model().format, args...)
}

// String describes c as "Linear: time = 0.01 + 0.0005*n (sec)", or
// "Linear: not yet fitted" before Fit.
func (c *Class) String() string {
	if c.state != fitted {
		return c.kind.String() + ": not yet fitted"
	}
	return c.kind.String() + ": " + c.Formula() + " (sec)"
}
