package utils

import (
	"strconv"
	"strings"
)

// Query parameters are parse-or-default: malformed numeric input degrades to
// the default (or to no constraint) instead of failing the request.

// ParseIntOrDefault returns the parsed integer, or def when the value is
// empty or not an integer.
func ParseIntOrDefault(value string, def int) int {
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

// ParseFloatOrNil returns a pointer to the parsed number, or nil when the
// value is empty or not numeric (no constraint).
func ParseFloatOrNil(value string) *float64 {
	if value == "" {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &v
}

// SplitCSV splits a comma-separated list, trimming whitespace and dropping
// empty items.
func SplitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
