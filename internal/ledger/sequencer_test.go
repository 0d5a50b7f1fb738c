package ledger_test

import (
	"testing"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/ledger"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/model"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/month"
)

// TestNextMonth tests the month assignment for new entries.
//
// WHY: The sequencer is the only source of entry months. It must start an
// empty series at the asset's starting month and always advance strictly
// forward from the latest entry, including across year boundaries.
func TestNextMonth(t *testing.T) {
	startingMonth := month.MustParse("2024-01")

	t.Run("empty series starts at starting month", func(t *testing.T) {
		got := ledger.NextMonth(startingMonth, nil)
		if got != startingMonth {
			t.Errorf("NextMonth = %s, want %s", got, startingMonth)
		}
	})

	t.Run("non-empty series advances from latest entry", func(t *testing.T) {
		latest := &model.LedgerEntry{Month: month.MustParse("2024-07")}

		got := ledger.NextMonth(startingMonth, latest)
		if want := month.MustParse("2024-08"); got != want {
			t.Errorf("NextMonth = %s, want %s", got, want)
		}
	})

	t.Run("advances across year boundary", func(t *testing.T) {
		latest := &model.LedgerEntry{Month: month.MustParse("2024-12")}

		got := ledger.NextMonth(startingMonth, latest)
		if want := month.MustParse("2025-01"); got != want {
			t.Errorf("NextMonth = %s, want %s", got, want)
		}
	})
}
