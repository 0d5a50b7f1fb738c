package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/month"
)

// LedgerEntry represents one monthly report of return, inflation, and
// contribution for an investment asset. ClosingBalance is derived at mutation
// time and persisted for fast reads; all other derived figures live on
// LedgerEntryView and are recomputed on every read.
type LedgerEntry struct {
	ID               string          `json:"id"`
	InvestmentID     string          `json:"investmentId"`
	Month            month.Month     `json:"month"`
	ActualReturnRate decimal.Decimal `json:"actualReturnRate"`
	InflationRate    decimal.Decimal `json:"inflationRate"`
	Contribution     decimal.Decimal `json:"contribution"`
	ClosingBalance   decimal.Decimal `json:"closingBalance"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt,omitempty"`
}

// LedgerEntryView is a LedgerEntry enriched with read-time derived metrics.
// Never persisted.
type LedgerEntryView struct {
	LedgerEntry
	CumulativeContribution decimal.Decimal `json:"cumulativeContribution"`
	CumulativeInflation    decimal.Decimal `json:"cumulativeInflation"`
	PresentValue           decimal.Decimal `json:"presentValue"`
}

// AuditFinding reports one ledger entry whose stored closing balance no longer
// matches the compounding formula applied to its true predecessor. Produced by
// the consistency audit; strict-historical mode can legitimately accumulate these.
type AuditFinding struct {
	EntryID         string          `json:"entryId"`
	InvestmentID    string          `json:"investmentId"`
	Month           month.Month     `json:"month"`
	StoredBalance   decimal.Decimal `json:"storedBalance"`
	ExpectedBalance decimal.Decimal `json:"expectedBalance"`
}
