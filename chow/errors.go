package chow

import "errors"

// ErrSignificanceLevel is returned when the requested level is not one
// of the supported constants.
var ErrSignificanceLevel = errors.New("significance level must be 0.01, 0.05, or 0.10")
