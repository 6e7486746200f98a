package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   int
		want  int
	}{
		{name: "plain", input: "42", want: 42},
		{name: "thousands separator and padding", input: " 1,234 ", want: 1234},
		{name: "decimal formatted integer", input: "12.0", want: 12},
		{name: "internal spaces", input: "1 234", want: 1234},
		{name: "nbsp thousands separator", input: "1\u00a0234", want: 1234},
		{name: "empty uses default", input: "", def: 7, want: 7},
		{name: "whitespace only uses default", input: "   ", def: 7, want: 7},
		{name: "garbage uses default", input: "n/a", def: -1, want: -1},
		{name: "truncates decimals", input: "3.9", want: 3},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ParseInt(tc.input, tc.def))
		})
	}
}

func TestParseFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   float64
		want  float64
	}{
		{name: "plain", input: "2.5", want: 2.5},
		{name: "thousands separator", input: "1,234.5", want: 1234.5},
		{name: "empty uses default", input: "", def: 0.5, want: 0.5},
		{name: "garbage uses default", input: "x", def: 1.5, want: 1.5},
		{name: "negative", input: "-3.25", want: -3.25},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tc.want, ParseFloat(tc.input, tc.def), 1e-9)
		})
	}
}
