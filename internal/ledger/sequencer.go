// Package ledger implements the pure calculation core of the investment-return
// ledger: month sequencing, balance compounding, and the read-time projection
// of derived metrics. Nothing in this package touches storage.
package ledger

import (
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/model"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/month"
)

// NextMonth decides the month a new entry belongs to: the month immediately
// following the latest existing entry, or the asset's starting month when the
// series is empty. Creation only ever appends; back-dating and gap-filling are
// not supported.
func NextMonth(startingMonth month.Month, latest *model.LedgerEntry) month.Month {
	if latest == nil {
		return startingMonth
	}
	return latest.Month.Next()
}
