package model

import "errors"

// ErrInvalidInput marks inputs that are malformed at the type level
// (negative month counts, non-finite prices, negative lengths).
var ErrInvalidInput = errors.New("invalid input")
