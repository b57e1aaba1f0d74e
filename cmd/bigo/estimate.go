package main

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexshd/bigo"
	"github.com/alexshd/bigo/internal/workload"
)

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Measure a workload and infer its complexity class",
		Args:  cobra.NoArgs,
		RunE:  runEstimate,
	}

	d := bigo.DefaultConfig()
	f := cmd.Flags()
	f.String("workload", "", "workload to measure (see 'bigo list')")
	f.Int("min-n", d.MinN, "smallest input size")
	f.Int("max-n", d.MaxN, "largest input size (included)")
	f.Int("measures", d.Measures, "number of sizes measured")
	f.Int("repeats", d.Repeats, "calls per timing round")
	f.Int("timings", d.Timings, "timing rounds per size; the fastest is kept")
	f.StringSlice("classes", nil, "candidate classes in evaluation order (default all)")
	f.Float64("bias", d.SimplicityBias, "simplicity bias")
	f.Bool("verbose", false, "log every fitted class")
	f.Bool("raw", false, "include measured samples in the output")
	f.Uint64("seed", 0, "input generator seed (0 = random)")
	_ = cmd.MarkFlagRequired("workload")

	return cmd
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("workload")
	w, err := workload.Lookup(name)
	if err != nil {
		return err
	}

	bcfg, err := cfg.Estimate.BigO()
	if err != nil {
		return err
	}
	bcfg.Logger = logger

	// The workload's suggested range replaces the untouched defaults.
	if d := bigo.DefaultConfig(); bcfg.MinN == d.MinN && bcfg.MaxN == d.MaxN {
		bcfg.MinN, bcfg.MaxN = w.MinN, w.MaxN
	}

	seed := cfg.Estimate.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(seed, seed))

	logger.Info("estimating complexity",
		"workload", w.Name,
		"expected", w.Expected.String(),
		"min_n", bcfg.MinN,
		"max_n", bcfg.MaxN,
		"measures", bcfg.Measures,
		"seed", seed)

	start := time.Now()
	best, table, err := bigo.Estimate(w.Run, w.Generator(r), bcfg)
	if err != nil {
		return err
	}

	logger.Info("estimation complete",
		"best", best.Kind().String(),
		"expected", w.Expected.String(),
		"elapsed", time.Since(start))

	return writeResult(cmd.OutOrStdout(), cfg.Output.Format, best, table)
}
