package service

import (
	"fmt"
	"sort"
	"strconv"

	"packing-service/internal/packing/model"
)

// WeightFields names the two record fields summed per pallet. Zero values
// fall back to the standard warehouse export fields.
type WeightFields struct {
	Net   string // lot weight
	Gross string // cumulative weight
}

const (
	defaultNetField   = "peso_lote"
	defaultGrossField = "peso_acumulado"
)

// AggregatePallets groups records by pallet identifier and sums the two
// weight fields in record order. Malformed weight cells contribute zero.
// Records without a pallet identifier are excluded. Keys come out in numeric
// order with non-numeric identifiers first (rank 0), and the aligned display
// lists carry the sums formatted to two decimals.
func AggregatePallets(records []model.Record, fields WeightFields) model.PalletTotals {
	if fields.Net == "" {
		fields.Net = defaultNetField
	}
	if fields.Gross == "" {
		fields.Gross = defaultGrossField
	}

	sums := make(map[string]model.WeightSums)
	keys := make([]string, 0)
	for _, rec := range records {
		pallet := rec[model.FieldPallet]
		if pallet == "" {
			continue
		}
		s, ok := sums[pallet]
		if !ok {
			keys = append(keys, pallet)
		}
		s.Net += ParseFloat(rec[fields.Net], 0)
		s.Gross += ParseFloat(rec[fields.Gross], 0)
		sums[pallet] = s
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return palletRank(keys[i]) < palletRank(keys[j])
	})

	out := model.PalletTotals{
		Sums:  sums,
		Keys:  keys,
		Net:   make([]string, len(keys)),
		Gross: make([]string, len(keys)),
	}
	var netTotal, grossTotal float64
	for i, k := range keys {
		out.Net[i] = fmt.Sprintf("%.2f", sums[k].Net)
		out.Gross[i] = fmt.Sprintf("%.2f", sums[k].Gross)
		netTotal += sums[k].Net
		grossTotal += sums[k].Gross
	}
	out.NetTotal = fmt.Sprintf("%.2f", netTotal)
	out.GrossTotal = fmt.Sprintf("%.2f", grossTotal)
	return out
}

// palletRank orders pallet identifiers numerically; anything that is not a
// plain integer string ranks 0 and sorts ahead.
func palletRank(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return n
}
