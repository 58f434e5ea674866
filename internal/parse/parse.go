// Package parse turns free-form comma-separated text into validated
// floating-point parameter lists.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoValues indicates the input produced no usable numbers at all. That is
// fatal for a render cycle: callers abort before building a grid.
var ErrNoValues = errors.New("parse: no valid numeric values supplied")

// Numbers splits raw on commas and parses each non-empty token as a float.
// Empty tokens are dropped silently. A token that fails to parse yields one
// warning naming it and parsing continues; valid values keep input order.
func Numbers(raw string) ([]float64, []string) {
	var values []float64
	var warnings []string

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not interpret %q as a number; ignoring", part))
			continue
		}
		values = append(values, v)
	}

	return values, warnings
}

// Require wraps Numbers with the fatal empty-list check.
func Require(raw string) ([]float64, []string, error) {
	values, warnings := Numbers(raw)
	if len(values) == 0 {
		return nil, warnings, ErrNoValues
	}
	return values, warnings, nil
}
