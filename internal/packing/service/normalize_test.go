package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "lowercase token", input: "cantidad", want: "cantidad"},
		{name: "punctuation collapses", input: "N. Lote", want: "n_lote"},
		{name: "already snake case", input: "n_lote", want: "n_lote"},
		{name: "accents fold", input: "Número de Pallet", want: "numero_de_pallet"},
		{name: "enye folds", input: "Año", want: "ano"},
		{name: "mixed diacritics", input: "Descripción (Über)", want: "descripcion_uber"},
		{name: "edge underscores trimmed", input: "  ...Lote!  ", want: "lote"},
		{name: "digits kept", input: "Caja 12", want: "caja_12"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, NormalizeHeader(tc.input))
		})
	}
}

// headers differing only in case or accenting normalize identically
func TestNormalizeHeaderEquivalence(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"N. Lote", "n_lote"},
		{"FECHA", "fecha"},
		{"Número de Pallet", "numero de pallet"},
	}
	for _, p := range pairs {
		require.Equal(t, NormalizeHeader(p[0]), NormalizeHeader(p[1]), "%q vs %q", p[0], p[1])
	}
}
