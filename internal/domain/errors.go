package domain

import "errors"

// Domain errors
var (
	// ErrInternalError covers aggregation failures that carry no
	// caller-actionable detail.
	ErrInternalError = errors.New("internal error")
)
