package bigo

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
)

// Clock supplies the wall-clock readings Measure uses to time calls.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now returns time.Now, which carries a monotonic reading.
func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the default Clock.
var SystemClock Clock = systemClock{}

// Config controls measurement and class selection.
type Config struct {
	// Sizes: Measures points between MinN and MaxN, both included.
	MinN     int `validate:"min=1"`
	MaxN     int `validate:"gtefield=MinN"`
	Measures int `validate:"min=1"`

	// Repeats is the number of calls timed together in one round.
	// Timings is the number of rounds per size; the fastest round is kept.
	Repeats int `validate:"min=1"`
	Timings int `validate:"min=1"`

	// Kinds are the candidates, in evaluation order. A later candidate
	// replaces the current best only if its residual is lower by more
	// than SimplicityBias.
	Kinds          []Kind  `validate:"min=1,dive,kind"`
	SimplicityBias float64 `validate:"gte=0"`

	Verbose       bool // log each fit at Info instead of Debug
	ReturnRawData bool // attach the fitted samples to the FitTable

	Clock  Clock        `validate:"-"` // nil means SystemClock
	Logger *slog.Logger `validate:"-"` // nil means slog.Default()
}

// DefaultConfig returns the defaults of the classic big_O tool.
func DefaultConfig() Config {
	return Config{
		MinN:           100,
		MaxN:           100000,
		Measures:       10,
		Repeats:        1,
		Timings:        1,
		Kinds:          AllKinds(),
		SimplicityBias: 1e-6,
	}
}

var (
	measureFields = []string{"MinN", "MaxN", "Measures", "Repeats", "Timings"}
	inferFields   = []string{"Kinds", "SimplicityBias"}
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("kind", func(fl validator.FieldLevel) bool {
		return Kind(fl.Field().Int()).Valid()
	})
	return v
}

// Validate checks every field of cfg.
func (cfg Config) Validate() error {
	return cfg.validate(nil)
}

// validate checks only the named fields, or all fields when fields is nil.
func (cfg Config) validate(fields []string) error {
	var err error
	if fields == nil {
		err = validate.Struct(cfg)
	} else {
		err = validate.StructPartial(cfg, fields...)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (cfg Config) clock() Clock {
	if cfg.Clock == nil {
		return SystemClock
	}
	return cfg.Clock
}

func (cfg Config) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.Default()
	}
	return cfg.Logger
}
