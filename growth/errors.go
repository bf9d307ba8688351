package growth

import "errors"

// Domain errors for model construction, evaluation and fitting.
var (
	// ErrSignatureMismatch indicates parameter keys that do not match the
	// variant's fixed signature.
	ErrSignatureMismatch = errors.New("growth: parameter keys do not match signature")

	// ErrParamCount indicates an explicit parameter override whose length
	// differs from the signature length.
	ErrParamCount = errors.New("growth: explicit parameter count does not match signature")

	// ErrBoundsCount indicates a bounds slice whose length differs from the
	// signature length.
	ErrBoundsCount = errors.New("growth: bounds count does not match signature")

	// ErrInitialResponseUnset indicates evaluation of an initial-value model
	// before SetInitialResponse was called.
	ErrInitialResponseUnset = errors.New("growth: initial response not set")

	// ErrLengthMismatch indicates observation slices of unequal length.
	ErrLengthMismatch = errors.New("growth: t and y must have equal length")
)
