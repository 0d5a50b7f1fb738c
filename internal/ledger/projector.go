package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/model"
)

// Order selects the presentation order of a projected series.
type Order string

// Presentation orders accepted by Project and the list endpoint.
const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

var one = decimal.NewFromInt(1)

// Project computes the read-time derived metrics for a series of entries:
// the running contribution total, the compounded cumulative inflation, and the
// inflation-deflated present value of each closing balance.
//
// The running totals are only meaningful in chronological order, so Project
// always computes over an ascending copy of the input and applies the requested
// presentation order to the finished views. Present values are rounded to two
// decimal places for presentation; the compounding itself stays exact.
//
// The pass is pure: it never reads or writes storage, and every call recomputes
// from scratch so displayed totals cannot drift from the underlying entries.
func Project(entries []model.LedgerEntry, order Order) []model.LedgerEntryView {
	ordered := make([]model.LedgerEntry, len(entries))
	copy(ordered, entries)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Month.Before(ordered[j].Month)
	})

	views := make([]model.LedgerEntryView, len(ordered))

	cumulativeContribution := decimal.Zero
	cumulativeInflation := decimal.Zero

	for i, entry := range ordered {
		cumulativeContribution = cumulativeContribution.Add(entry.Contribution)

		// (1 + prev) × (1 + rate/100) − 1, starting from 0 before the first entry.
		cumulativeInflation = one.Add(cumulativeInflation).
			Mul(one.Add(entry.InflationRate.Div(oneHundred))).
			Sub(one)

		views[i] = model.LedgerEntryView{
			LedgerEntry:            entry,
			CumulativeContribution: cumulativeContribution,
			CumulativeInflation:    cumulativeInflation,
			PresentValue:           entry.ClosingBalance.Div(one.Add(cumulativeInflation)).Round(2),
		}
	}

	if order == Descending {
		for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
			views[i], views[j] = views[j], views[i]
		}
	}

	return views
}
