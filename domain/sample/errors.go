package sample

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors - all terminal for the current request. Either the full
// sample parses, or nothing is returned.
var (
	ErrEmptyInput    = errors.New("input is empty or contains only whitespace")
	ErrNoTokens      = errors.New("input contains no tokens")
	ErrInvalidTokens = errors.New("input contains invalid tokens")
	ErrNoValidTokens = errors.New("no valid values remain after filtering")
)

// InvalidTokensError reports every offending literal from the raw input,
// in input order, not just the first.
type InvalidTokensError struct {
	Tokens []string
}

func (e *InvalidTokensError) Error() string {
	return fmt.Sprintf("invalid tokens: %s", strings.Join(e.Tokens, ", "))
}

func (e *InvalidTokensError) Unwrap() error {
	return ErrInvalidTokens
}

// NewInvalidTokensError builds the aggregate validation error
func NewInvalidTokensError(tokens []string) error {
	return &InvalidTokensError{Tokens: tokens}
}
