package service

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	rxNonToken  = regexp.MustCompile(`[^a-z0-9]+`)
	rxEdgeUnder = regexp.MustCompile(`^_+|_+$`)
)

// unaccent strips combining marks after NFD decomposition: á→a, ñ→n, ü→u.
// A fresh transformer per call: chained transformers carry state and must not
// be shared between concurrent extractions.
func unaccent() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// NormalizeHeader canonicalizes a header cell for fuzzy comparison: trim,
// lowercase, fold Latin diacritics, collapse every run of non-alphanumerics
// into a single underscore. Total: any input yields a token, "" for blanks.
func NormalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if folded, _, err := transform.String(unaccent(), s); err == nil {
		s = folded
	}
	s = rxNonToken.ReplaceAllString(s, "_")
	return rxEdgeUnder.ReplaceAllString(s, "")
}
