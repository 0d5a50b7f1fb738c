package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/ledger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestCloseBalance tests the compounding formula
// (opening + contribution) × (1 + rate/100).
//
// WHY: Every persisted closing balance flows through this single function.
// The reference figures come from the series 1000 → 1% → (+100, 2%), which a
// correct implementation must reproduce exactly in decimal arithmetic.
func TestCloseBalance(t *testing.T) {
	tests := []struct {
		name         string
		opening      string
		contribution string
		returnRate   string
		want         string
	}{
		{"positive return no contribution", "1000", "0", "1", "1010"},
		{"contribution applied before return", "1010", "100", "2", "1132.2"},
		{"edited first month", "1000", "50", "1", "1060.5"},
		{"negative return", "1000", "0", "-10", "900"},
		{"withdrawal", "1000", "-200", "0", "800"},
		{"total loss", "1000", "0", "-100", "0"},
		{"zero everything", "0", "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.CloseBalance(d(tt.opening), d(tt.contribution), d(tt.returnRate))
			if !got.Equal(d(tt.want)) {
				t.Errorf("CloseBalance(%s, %s, %s) = %s, want %s",
					tt.opening, tt.contribution, tt.returnRate, got, tt.want)
			}
		})
	}
}

// TestCloseBalance_LongChain tests that 240 compounding steps stay exact.
//
// WHY: A 20-year monthly series is 240 steps. Decimal arithmetic must not
// drift the way repeated float multiplication would; 1% monthly growth of 1
// followed by the inverse step count has a closed-form check at powers of 2.
func TestCloseBalance_LongChain(t *testing.T) {
	balance := d("1000")
	for i := 0; i < 240; i++ {
		balance = ledger.CloseBalance(balance, d("0"), d("0"))
	}

	// Zero return, zero contribution: the balance must be bit-for-bit unchanged.
	if !balance.Equal(d("1000")) {
		t.Errorf("240 no-op compounding steps drifted balance to %s", balance)
	}
}

func TestOpeningBalance(t *testing.T) {
	starting := d("1000")

	t.Run("first entry uses starting balance", func(t *testing.T) {
		got := ledger.OpeningBalance(starting, nil)
		if !got.Equal(starting) {
			t.Errorf("OpeningBalance = %s, want %s", got, starting)
		}
	})

	t.Run("later entries use predecessor closing balance", func(t *testing.T) {
		predecessor := d("1010")

		got := ledger.OpeningBalance(starting, &predecessor)
		if !got.Equal(predecessor) {
			t.Errorf("OpeningBalance = %s, want %s", got, predecessor)
		}
	})
}
