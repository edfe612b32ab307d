package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidCardNumber indicates that a card number failed the Luhn checksum
// (or contained non-digit characters). Wraps ErrValidation so callers can
// branch on either the specific or the general kind.
var ErrInvalidCardNumber = fmt.Errorf("%w: invalid card number", ErrValidation)

// ErrInvalidExpiry indicates that an expiry string could not be parsed.
var ErrInvalidExpiry = fmt.Errorf("%w: invalid expiry date", ErrValidation)
