package bigo

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// Infer fits every kind in cfg.Kinds to the samples and selects the best.
//
// Candidates are evaluated in order. A candidate becomes the best only if
//
//	residual < bestResidual − cfg.SimplicityBias
//
// so among near-ties the one evaluated first wins. Kind.Order is not
// consulted; with the default order that favours the simpler class.
//
// Any fit error aborts inference and is returned wrapped.
func Infer(ns, ts []float64, cfg Config) (*Class, *FitTable, error) {
	if err := cfg.validate(inferFields); err != nil {
		return nil, nil, err
	}

	log := cfg.logger()
	level := slog.LevelDebug
	if cfg.Verbose {
		level = slog.LevelInfo
	}

	table := &FitTable{entries: make([]FitEntry, 0, len(cfg.Kinds))}
	for _, k := range cfg.Kinds {
		class := NewClass(k)
		residual, err := class.Fit(ns, ts)
		if err != nil {
			return nil, nil, fmt.Errorf("fit %s: %w", k, err)
		}
		table.entries = append(table.entries, FitEntry{Class: class, Residual: residual})

		log.Log(context.Background(), level, "fitted complexity class",
			"kind", k.String(),
			"formula", class.Formula(),
			"residual", residual)
	}

	if cfg.ReturnRawData {
		table.Measures = slices.Clone(ns)
		table.Times = slices.Clone(ts)
	}

	best := pickBest(table.entries, cfg.SimplicityBias)
	if best < 0 {
		return nil, table, ErrNoBestFit
	}
	return table.entries[best].Class, table, nil
}

// pickBest returns the index of the selected entry, or -1 when no
// residual beats +Inf.
func pickBest(entries []FitEntry, bias float64) int {
	best := -1
	bestResidual := math.Inf(1)
	for i, e := range entries {
		if e.Residual < bestResidual-bias {
			bestResidual = e.Residual
			best = i
		}
	}
	return best
}

// Estimate measures op over cfg's size range and infers its complexity
// class. It is Measure followed by Infer.
func Estimate[T any](op Operation[T], gen Generator[T], cfg Config) (*Class, *FitTable, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	samples, err := Measure(op, gen, cfg)
	if err != nil {
		return nil, nil, err
	}

	return Infer(samples.Sizes(), samples.Times, cfg)
}
