package service

import "strings"

// FindColumn maps one logical field to an actual sheet header. Both sides are
// normalized, then matched bidirectionally: alias-in-header covers composite
// headers ("Numero de Pallet ZF"), header-in-alias covers abbreviated ones
// ("Qty" vs alias "quantity"). First match wins, in column order then alias
// order, so callers put high-confidence aliases first. Returns "" when no
// column satisfies any alias.
//
// Known sharp edge: a short generic alias ("lote") also matches derived
// columns ("lote_cliente"); column order is the only tie-break.
func FindColumn(headers []string, aliases []string) string {
	norm := make([]string, len(aliases))
	for i, a := range aliases {
		norm[i] = NormalizeHeader(a)
	}
	for _, h := range headers {
		nh := NormalizeHeader(h)
		if nh == "" {
			continue
		}
		for _, na := range norm {
			if na == "" {
				continue
			}
			if strings.Contains(nh, na) || strings.Contains(na, nh) {
				return h
			}
		}
	}
	return ""
}
