package sample

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseOptions controls domain-specific validation rules
type ParseOptions struct {
	// AllowNegative accepts tokens with a leading minus sign. When false,
	// well-formed negative integers are filtered out of the sample rather
	// than reported as invalid.
	AllowNegative bool
}

// DefaultParseOptions returns the standard parsing rules
func DefaultParseOptions() ParseOptions {
	return ParseOptions{AllowNegative: true}
}

// isDelimiter matches the token separators: comma, semicolon and any
// whitespace, in any mix or run.
func isDelimiter(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// Parse turns raw free-form text into a ValidatedSample or fails with one
// of the validation errors. Tokens must be exactly an optional sign
// followed by decimal digits; anything else ("3.0", "3abc", stray symbols)
// is collected and reported in a single InvalidTokensError.
func Parse(raw string, opts ParseOptions) (ValidatedSample, error) {
	if strings.TrimSpace(raw) == "" {
		return ValidatedSample{}, ErrEmptyInput
	}

	// FieldsFunc never yields empty tokens, so repeated or leading/trailing
	// delimiters are harmless.
	tokens := strings.FieldsFunc(raw, isDelimiter)
	if len(tokens) == 0 {
		return ValidatedSample{}, ErrNoTokens
	}

	values := make([]int64, 0, len(tokens))
	var invalid []string
	for _, token := range tokens {
		value, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			invalid = append(invalid, token)
			continue
		}
		if !opts.AllowNegative && value < 0 {
			continue
		}
		values = append(values, value)
	}

	if len(invalid) > 0 {
		return ValidatedSample{}, NewInvalidTokensError(invalid)
	}
	if len(values) == 0 {
		// Reachable only when the negative-number rule filtered everything.
		return ValidatedSample{}, ErrNoValidTokens
	}

	return ValidatedSample{values: values}, nil
}
