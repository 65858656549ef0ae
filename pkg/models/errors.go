package models

import (
	"errors"
	"fmt"
)

// InvalidInputError is the only hard failure the engine produces: the input is
// malformed (non-increasing dates, negative prices, empty required series) and
// no sensible computation is possible.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// InsufficientDataError signals too few observations for a statistical
// procedure (regression pairs below the minimum, too few dividend years).
// Callers can recover where a documented fallback exists.
type InsufficientDataError struct {
	Required int
	Got      int
	Context  string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s: need %d observations, got %d", e.Context, e.Required, e.Got)
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsInsufficientData reports whether err is (or wraps) an InsufficientDataError.
func IsInsufficientData(err error) bool {
	var target *InsufficientDataError
	return errors.As(err, &target)
}
