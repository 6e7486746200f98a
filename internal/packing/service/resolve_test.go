package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers []string
		aliases []string
		want    string
	}{
		{
			name:    "exact match",
			headers: []string{"Fecha", "Cantidad"},
			aliases: []string{"cantidad"},
			want:    "Cantidad",
		},
		{
			name:    "alias inside composite header",
			headers: []string{"Numero de Pallet ZF", "Cantidad"},
			aliases: []string{"pallet"},
			want:    "Numero de Pallet ZF",
		},
		{
			name:    "header inside longer alias",
			headers: []string{"Qty"},
			aliases: []string{"cantidad", "qty total"},
			want:    "Qty",
		},
		{
			name:    "abbreviated header matches via second alias",
			headers: []string{"Fecha", "N LOTE"},
			aliases: []string{"n. de lote", "lote"},
			want:    "N LOTE",
		},
		{
			name:    "column order wins over alias order",
			headers: []string{"Lote Cliente", "Lote"},
			aliases: []string{"lote"},
			want:    "Lote Cliente", // known sharp edge: first column wins
		},
		{
			name:    "no match",
			headers: []string{"Fecha", "Cantidad"},
			aliases: []string{"peso"},
			want:    "",
		},
		{
			name:    "empty aliases never match",
			headers: []string{"Fecha"},
			aliases: []string{"", "   "},
			want:    "",
		},
		{
			name:    "accented header matches plain alias",
			headers: []string{"Número de Pallet"},
			aliases: []string{"numero de pallet"},
			want:    "Número de Pallet",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FindColumn(tc.headers, tc.aliases)
			require.Equal(t, tc.want, got)
			// idempotent and order-stable
			require.Equal(t, got, FindColumn(tc.headers, tc.aliases))
		})
	}
}
