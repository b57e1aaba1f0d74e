package bigo

import "errors"

// Sentinel errors. Callers match them with errors.Is; the package wraps
// them with context ("fit Linear: ...") but never replaces them.
var (
	// ErrNotFitted is returned when coefficients are read from a Class
	// that has not completed a successful Fit.
	ErrNotFitted = errors.New("bigo: complexity class not fitted")

	// ErrAlreadyFitted is returned when Fit is called twice on one Class.
	// Each estimation run creates fresh instances.
	ErrAlreadyFitted = errors.New("bigo: complexity class already fitted")

	// ErrDegenerateFit signals a design matrix that cannot be solved:
	// fewer distinct sizes than coefficients, or a singular system.
	ErrDegenerateFit = errors.New("bigo: degenerate fit input")

	// ErrEmptySamples is returned when no (size, time) pairs were supplied.
	ErrEmptySamples = errors.New("bigo: no samples")

	// ErrLengthMismatch is returned when sizes and times differ in length.
	ErrLengthMismatch = errors.New("bigo: sizes and times differ in length")

	// ErrInvalidSize is returned for sizes that are not positive finite numbers.
	ErrInvalidSize = errors.New("bigo: size must be positive and finite")

	// ErrInvalidTime is returned for negative or non-finite times, and for
	// zero times when the class fits in log-time space.
	ErrInvalidTime = errors.New("bigo: invalid execution time")

	// ErrUnknownKind is returned when parsing an unrecognised class name.
	ErrUnknownKind = errors.New("bigo: unknown complexity class")

	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("bigo: invalid config")

	// ErrNoBestFit is returned by Infer when no candidate produced a
	// comparable residual (every residual was NaN or +Inf).
	ErrNoBestFit = errors.New("bigo: no complexity class fitted the samples")
)
