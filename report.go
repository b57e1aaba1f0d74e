package bigo

import (
	"fmt"
	"strings"
)

// FitEntry pairs a fitted class with its residual.
type FitEntry struct {
	Class    *Class
	Residual float64
}

// FitTable records every candidate fitted by Infer, in evaluation order.
type FitTable struct {
	entries []FitEntry

	// Measures and Times are the samples Infer fitted. They are set only
	// when Config.ReturnRawData is true, so callers can re-fit or plot
	// without measuring again.
	Measures []float64
	Times    []float64
}

// Entries returns the fitted candidates in evaluation order.
func (t *FitTable) Entries() []FitEntry {
	out := make([]FitEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of fitted candidates.
func (t *FitTable) Len() int { return len(t.entries) }

// Lookup returns the first entry of kind k.
func (t *FitTable) Lookup(k Kind) (FitEntry, bool) {
	for _, e := range t.entries {
		if e.Class.Kind() == k {
			return e, true
		}
	}
	return FitEntry{}, false
}

// Residual returns the residual recorded for kind k.
func (t *FitTable) Residual(k Kind) (float64, bool) {
	e, ok := t.Lookup(k)
	return e.Residual, ok
}

// HasRawData reports whether the samples were retained.
func (t *FitTable) HasRawData() bool {
	return t.Measures != nil && t.Times != nil
}

// Report renders best and the fit table in the classic big_O layout:
//
//	Best : Linear: time = 0.01 + 0.0005*n (sec)
//	Constant: time = 0.26 (sec)                                     (res: 0.082)
//	...
func Report(best *Class, table *FitTable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Best : %-60s \n", best)
	for _, e := range table.entries {
		fmt.Fprintf(&b, "%-60s    (res: %.2G)\n", e.Class, e.Residual)
	}
	return b.String()
}

// Summary is a serialisable view of an inference result.
type Summary struct {
	Best     string         `json:"best" yaml:"best"`
	Formula  string         `json:"formula" yaml:"formula"`
	Classes  []ClassSummary `json:"classes" yaml:"classes"`
	Measures []float64      `json:"measures,omitempty" yaml:"measures,omitempty"`
	Times    []float64      `json:"times,omitempty" yaml:"times,omitempty"`
}

// ClassSummary describes one fitted candidate.
type ClassSummary struct {
	Kind         string    `json:"kind" yaml:"kind"`
	Order        int       `json:"order" yaml:"order"`
	Formula      string    `json:"formula" yaml:"formula"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Residual     float64   `json:"residual" yaml:"residual"`
}

// Summarize builds the Summary of best and t.
func (t *FitTable) Summarize(best *Class) Summary {
	s := Summary{
		Classes:  make([]ClassSummary, 0, len(t.entries)),
		Measures: t.Measures,
		Times:    t.Times,
	}
	if best != nil {
		s.Best = best.Kind().String()
		s.Formula = best.Formula()
	}
	for _, e := range t.entries {
		coeff, _ := e.Class.Coefficients()
		s.Classes = append(s.Classes, ClassSummary{
			Kind:         e.Class.Kind().String(),
			Order:        e.Class.Order(),
			Formula:      e.Class.Formula(),
			Coefficients: coeff,
			Residual:     e.Residual,
		})
	}
	return s
}
