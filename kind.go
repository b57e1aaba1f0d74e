package bigo

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies one growth-rate hypothesis.
type Kind int

const (
	Constant Kind = iota
	Logarithmic
	Linear
	Linearithmic
	Quadratic
	Cubic
	Polynomial
	Exponential
)

// AllKinds returns every kind in the default evaluation order.
//
// The order matters: Infer keeps the earlier candidate when a later one
// improves the residual by less than the simplicity bias, so simple
// classes come first.
func AllKinds() []Kind {
	return []Kind{
		Constant,
		Linear,
		Quadratic,
		Cubic,
		Polynomial,
		Logarithmic,
		Linearithmic,
		Exponential,
	}
}

// model is the per-kind hook table used by the shared fit/compute code.
//
//	time ≈ c0 + c1·basis(n)           (linear-time kinds)
//	log(time) ≈ c0 + c1·basis(n)      (logTime kinds)
type model struct {
	name  string
	order int

	// basis is nil for Constant, whose only feature is 1.
	basis func(n float64) float64

	// logTime fits log(time) and maps predictions back with exp.
	logTime bool

	// recompute replaces the solver residual with the squared error in
	// seconds, so log-time kinds compare against the others in the same units.
	recompute bool

	format string

	// standard converts internal coefficients to conventional notation.
	// nil means the internal form is already standard.
	standard func(c []float64) []float64
}

var models = [...]model{
	Constant: {
		name:   "Constant",
		order:  10,
		format: "time = %.2G",
	},
	Logarithmic: {
		name:   "Logarithmic",
		order:  20,
		basis:  math.Log,
		format: "time = %.2G + %.2G*log(n)",
	},
	Linear: {
		name:   "Linear",
		order:  30,
		basis:  func(n float64) float64 { return n },
		format: "time = %.2G + %.2G*n",
	},
	Linearithmic: {
		name:   "Linearithmic",
		order:  40,
		basis:  func(n float64) float64 { return n * math.Log(n) },
		format: "time = %.2G + %.2G*n*log(n)",
	},
	Quadratic: {
		name:   "Quadratic",
		order:  50,
		basis:  func(n float64) float64 { return n * n },
		format: "time = %.2G + %.2G*n^2",
	},
	Cubic: {
		name:   "Cubic",
		order:  60,
		basis:  func(n float64) float64 { return n * n * n },
		format: "time = %.2G + %.2G*n^3",
	},
	Polynomial: {
		name:      "Polynomial",
		order:     70,
		basis:     math.Log,
		logTime:   true,
		recompute: true,
		format:    "time = %.2G * n^%.2G",
		// exp(a + b·log n) = exp(a)·n^b
		standard: func(c []float64) []float64 {
			return []float64{math.Exp(c[0]), c[1]}
		},
	},
	Exponential: {
		name:      "Exponential",
		order:     80,
		basis:     func(n float64) float64 { return n },
		logTime:   true,
		recompute: true,
		format:    "time = %.2G * %.2G^n",
		// exp(a + b·n) = exp(a)·exp(b)^n
		standard: func(c []float64) []float64 {
			return []float64{math.Exp(c[0]), math.Exp(c[1])}
		},
	},
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= Constant && k <= Exponential
}

func (k Kind) model() *model {
	if !k.Valid() {
		panic(fmt.Sprintf("bigo: invalid kind %d", int(k)))
	}
	return &models[k]
}

// String returns the class name, e.g. "Linearithmic".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return models[k].name
}

// Order is the fixed simplicity rank of the kind (lower is simpler).
// It is informational; selection relies on evaluation order instead.
func (k Kind) Order() int {
	return k.model().order
}

// NumCoefficients is the width of the kind's design matrix.
func (k Kind) NumCoefficients() int {
	if k.model().basis == nil {
		return 1
	}
	return 2
}

// ParseKind parses a class name case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSpace(s)
	for k := Constant; k <= Exponential; k++ {
		if strings.EqualFold(models[k].name, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParseKinds parses a list of class names, preserving order.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
