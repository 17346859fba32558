package chart

import "errors"

// Domain errors for chart rendering.
var (
	// ErrNoData indicates the input produced no usable values.
	ErrNoData = errors.New("no data to plot")

	// ErrNonPositiveTotal indicates pie values sum to zero or less.
	ErrNonPositiveTotal = errors.New("pie values must sum to a positive total")

	// ErrNegativeValue indicates a pie input contained a negative value.
	ErrNegativeValue = errors.New("pie values must not be negative")

	// ErrUnknownKind indicates an unsupported chart kind.
	ErrUnknownKind = errors.New("unknown chart kind")
)
