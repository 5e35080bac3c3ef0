package retail

import (
	"strconv"
	"strings"
)

// ParseInt parses an integer console field.
func ParseInt(field, value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, &InputError{Field: field, Value: value, Err: err}
	}
	return n, nil
}

// ParseFloat parses a decimal console field.
func ParseFloat(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &InputError{Field: field, Value: value, Err: err}
	}
	return f, nil
}
