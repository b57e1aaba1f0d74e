package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexshd/bigo"
)

// EnvPrefix prefixes every environment variable, e.g. BIGO_ESTIMATE_MIN_N.
const EnvPrefix = "BIGO"

// ErrValidation wraps every validation failure returned by Load.
var ErrValidation = errors.New("config validation failed")

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"min-n":     "estimate.min_n",
	"max-n":     "estimate.max_n",
	"measures":  "estimate.measures",
	"repeats":   "estimate.repeats",
	"timings":   "estimate.timings",
	"classes":   "estimate.classes",
	"bias":      "estimate.simplicity_bias",
	"verbose":   "estimate.verbose",
	"raw":       "estimate.return_raw_data",
	"seed":      "estimate.seed",
	"format":    "output.format",
}

// Load builds the configuration. Later sources override earlier ones:
// defaults, the YAML file at path (skipped when empty), environment
// variables, then flags that were set explicitly on the command line.
// flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := bigo.ParseKinds(cfg.Estimate.Classes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := bigo.DefaultConfig()

	classes := make([]string, len(d.Kinds))
	for i, k := range d.Kinds {
		classes[i] = k.String()
	}

	v.SetDefault("log.level", "info")
	v.SetDefault("estimate.min_n", d.MinN)
	v.SetDefault("estimate.max_n", d.MaxN)
	v.SetDefault("estimate.measures", d.Measures)
	v.SetDefault("estimate.repeats", d.Repeats)
	v.SetDefault("estimate.timings", d.Timings)
	v.SetDefault("estimate.classes", classes)
	v.SetDefault("estimate.simplicity_bias", d.SimplicityBias)
	v.SetDefault("estimate.verbose", d.Verbose)
	v.SetDefault("estimate.return_raw_data", d.ReturnRawData)
	v.SetDefault("estimate.seed", 0)
	v.SetDefault("output.format", "text")
}
