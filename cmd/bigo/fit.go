package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexshd/bigo"
)

// sampleFile is the on-disk form of recorded samples. JSON files decode
// too, being valid YAML.
type sampleFile struct {
	Measures []float64 `yaml:"measures"`
	Times    []float64 `yaml:"times"`
}

func newFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit FILE",
		Short: "Infer the complexity class of recorded samples",
		Long: `Fit reads a YAML or JSON file with "measures" (input sizes) and
"times" (seconds) and infers the complexity class without measuring.
The output of 'bigo estimate --raw --format yaml' is a valid input.`,
		Args: cobra.ExactArgs(1),
		RunE: runFit,
	}

	d := bigo.DefaultConfig()
	f := cmd.Flags()
	f.StringSlice("classes", nil, "candidate classes in evaluation order (default all)")
	f.Float64("bias", d.SimplicityBias, "simplicity bias")
	f.Bool("verbose", false, "log every fitted class")
	f.Bool("raw", false, "include the samples in the output")

	return cmd
}

func runFit(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	samples, err := readSamples(args[0])
	if err != nil {
		return err
	}

	bcfg, err := cfg.Estimate.BigO()
	if err != nil {
		return err
	}
	bcfg.Logger = logger

	logger.Info("fitting recorded samples", "file", args[0], "points", len(samples.Measures))

	best, table, err := bigo.Infer(samples.Measures, samples.Times, bcfg)
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), cfg.Output.Format, best, table)
}

func readSamples(path string) (*sampleFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}

	var s sampleFile
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse samples %s: %w", path, err)
	}
	return &s, nil
}
