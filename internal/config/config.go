// Package config loads settings for the bigo command from defaults, an
// optional YAML file, BIGO_* environment variables and command-line flags.
package config

import (
	"github.com/alexshd/bigo"
)

// Config holds all command configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Estimate EstimateConfig `mapstructure:"estimate" validate:"required"`
	Output   OutputConfig   `mapstructure:"output" validate:"required"`
}

// LogConfig controls the stderr log handler.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// EstimateConfig mirrors bigo.Config with plain types.
type EstimateConfig struct {
	MinN           int      `mapstructure:"min_n" validate:"min=1"`
	MaxN           int      `mapstructure:"max_n" validate:"gtefield=MinN"`
	Measures       int      `mapstructure:"measures" validate:"min=1"`
	Repeats        int      `mapstructure:"repeats" validate:"min=1"`
	Timings        int      `mapstructure:"timings" validate:"min=1"`
	Classes        []string `mapstructure:"classes" validate:"min=1,dive,required"`
	SimplicityBias float64  `mapstructure:"simplicity_bias" validate:"gte=0"`
	Verbose        bool     `mapstructure:"verbose"`
	ReturnRawData  bool     `mapstructure:"return_raw_data"`

	// Seed for the input generators; 0 picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=text yaml json"`
}

// BigO converts the estimation settings to a bigo.Config.
func (c EstimateConfig) BigO() (bigo.Config, error) {
	kinds, err := bigo.ParseKinds(c.Classes)
	if err != nil {
		return bigo.Config{}, err
	}
	return bigo.Config{
		MinN:           c.MinN,
		MaxN:           c.MaxN,
		Measures:       c.Measures,
		Repeats:        c.Repeats,
		Timings:        c.Timings,
		Kinds:          kinds,
		SimplicityBias: c.SimplicityBias,
		Verbose:        c.Verbose,
		ReturnRawData:  c.ReturnRawData,
	}, nil
}
