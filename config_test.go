package bigo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 100, cfg.MinN)
	assert.Equal(t, 100000, cfg.MaxN)
	assert.Equal(t, 10, cfg.Measures)
	assert.Equal(t, 1, cfg.Repeats)
	assert.Equal(t, 1, cfg.Timings)
	assert.Equal(t, AllKinds(), cfg.Kinds)
	assert.Equal(t, 1e-6, cfg.SimplicityBias)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.ReturnRawData)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, SystemClock, cfg.clock())
	assert.NotNil(t, cfg.logger())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		ok   bool
	}{
		{"SingleSize", func(c *Config) { c.MinN, c.MaxN = 50, 50 }, true},
		{"ZeroBias", func(c *Config) { c.SimplicityBias = 0 }, true},
		{"SubsetOfKinds", func(c *Config) { c.Kinds = []Kind{Exponential, Constant} }, true},
		{"NegativeMin", func(c *Config) { c.MinN = -1 }, false},
		{"MaxBelowMin", func(c *Config) { c.MaxN = 99 }, false},
		{"ZeroMeasures", func(c *Config) { c.Measures = 0 }, false},
		{"EmptyKinds", func(c *Config) { c.Kinds = []Kind{} }, false},
		{"InvalidKind", func(c *Config) { c.Kinds = []Kind{-1} }, false},
		{"NegativeBias", func(c *Config) { c.SimplicityBias = -1e-9 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
