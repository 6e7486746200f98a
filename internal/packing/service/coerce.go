package service

import (
	"strconv"
	"strings"
)

// warehouse exports mix typed numbers, text-formatted numbers ("1,234"),
// NBSP padding and plain garbage; both parsers are total and never fail.
var cellNumCleaner = strings.NewReplacer(",", "", " ", "", "\t", "", "\u00a0", "", "\u202f", "")

// ParseFloat converts a cell to a float, returning def for anything that is
// not a number after stripping thousands separators and embedded spaces.
func ParseFloat(v string, def float64) float64 {
	s := cellNumCleaner.Replace(strings.TrimSpace(v))
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// ParseInt is ParseFloat narrowed to int, so decimal-formatted integers
// ("12.0") still coerce.
func ParseInt(v string, def int) int {
	s := cellNumCleaner.Replace(strings.TrimSpace(v))
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return int(f)
}
