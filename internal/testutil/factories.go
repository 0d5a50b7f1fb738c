package testutil

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/model"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/month"
)

// AssetBuilder provides a fluent interface for creating test investment assets.
//
// Example usage:
//
//	// Simple creation with defaults
//	asset := testutil.NewAsset().Build(t, db)
//
//	// Customized asset
//	asset := testutil.NewAsset().
//	    WithName("World ETF").
//	    WithStartingBalance("1000").
//	    WithStartingMonth("2024-01").
//	    Build(t, db)
type AssetBuilder struct {
	ID              string
	Name            string
	StartingBalance decimal.Decimal
	StartingMonth   month.Month
}

// NewAsset creates an AssetBuilder with sensible defaults.
func NewAsset() *AssetBuilder {
	return &AssetBuilder{
		ID:              MakeID(),
		Name:            MakeAssetName("Test Asset"),
		StartingBalance: decimal.NewFromInt(1000),
		StartingMonth:   month.MustParse("2024-01"),
	}
}

// WithID sets a custom ID.
func (b *AssetBuilder) WithID(id string) *AssetBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.Name = name
	return b
}

// WithStartingBalance sets a custom starting balance from a decimal string.
func (b *AssetBuilder) WithStartingBalance(balance string) *AssetBuilder {
	b.StartingBalance = decimal.RequireFromString(balance)
	return b
}

// WithStartingMonth sets a custom starting month from a "YYYY-MM" string.
func (b *AssetBuilder) WithStartingMonth(m string) *AssetBuilder {
	b.StartingMonth = month.MustParse(m)
	return b
}

// Build creates the asset in the database and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.InvestmentAsset {
	t.Helper()

	query := `
		INSERT INTO investment_asset (id, name, starting_balance, starting_month)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.StartingBalance.String(), b.StartingMonth.String())
	if err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}

	return model.InvestmentAsset{
		ID:              b.ID,
		Name:            b.Name,
		StartingBalance: b.StartingBalance,
		StartingMonth:   b.StartingMonth,
	}
}

// EntryBuilder provides a fluent interface for inserting raw ledger entries,
// bypassing the sequencer and compounding engine. Useful for repository and
// projector tests that need full control over the stored rows; service tests
// should create entries through the EntryService instead.
type EntryBuilder struct {
	ID               string
	InvestmentID     string
	Month            month.Month
	ActualReturnRate decimal.Decimal
	InflationRate    decimal.Decimal
	Contribution     decimal.Decimal
	ClosingBalance   decimal.Decimal
	Notes            string
}

// NewEntry creates an EntryBuilder for the given asset with sensible defaults.
func NewEntry(investmentID string) *EntryBuilder {
	return &EntryBuilder{
		ID:               MakeID(),
		InvestmentID:     investmentID,
		Month:            month.MustParse("2024-01"),
		ActualReturnRate: decimal.Zero,
		InflationRate:    decimal.Zero,
		Contribution:     decimal.Zero,
		ClosingBalance:   decimal.NewFromInt(1000),
	}
}

// WithMonth sets the entry month from a "YYYY-MM" string.
func (b *EntryBuilder) WithMonth(m string) *EntryBuilder {
	b.Month = month.MustParse(m)
	return b
}

// WithReturnRate sets the actual return rate from a decimal string.
func (b *EntryBuilder) WithReturnRate(rate string) *EntryBuilder {
	b.ActualReturnRate = decimal.RequireFromString(rate)
	return b
}

// WithInflationRate sets the inflation rate from a decimal string.
func (b *EntryBuilder) WithInflationRate(rate string) *EntryBuilder {
	b.InflationRate = decimal.RequireFromString(rate)
	return b
}

// WithContribution sets the contribution from a decimal string.
func (b *EntryBuilder) WithContribution(contribution string) *EntryBuilder {
	b.Contribution = decimal.RequireFromString(contribution)
	return b
}

// WithClosingBalance sets the stored closing balance from a decimal string.
func (b *EntryBuilder) WithClosingBalance(closing string) *EntryBuilder {
	b.ClosingBalance = decimal.RequireFromString(closing)
	return b
}

// WithNotes sets the free-text notes.
func (b *EntryBuilder) WithNotes(notes string) *EntryBuilder {
	b.Notes = notes
	return b
}

// Build inserts the entry in the database and returns it.
func (b *EntryBuilder) Build(t *testing.T, db *sql.DB) model.LedgerEntry {
	t.Helper()

	query := `
		INSERT INTO ledger_entry (id, investment_id, month, actual_return_rate, inflation_rate, contribution, closing_balance, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID,
		b.InvestmentID,
		b.Month.String(),
		b.ActualReturnRate.String(),
		b.InflationRate.String(),
		b.Contribution.String(),
		b.ClosingBalance.String(),
		b.Notes,
	)
	if err != nil {
		t.Fatalf("Failed to create test ledger entry: %v", err)
	}

	return model.LedgerEntry{
		ID:               b.ID,
		InvestmentID:     b.InvestmentID,
		Month:            b.Month,
		ActualReturnRate: b.ActualReturnRate,
		InflationRate:    b.InflationRate,
		Contribution:     b.Contribution,
		ClosingBalance:   b.ClosingBalance,
		Notes:            b.Notes,
	}
}

// Convenience functions

// CreateAsset creates an asset with the given starting balance and month.
//
// Example usage:
//
//	asset := testutil.CreateAsset(t, db, "1000", "2024-01")
func CreateAsset(t *testing.T, db *sql.DB, startingBalance, startingMonth string) model.InvestmentAsset {
	t.Helper()
	return NewAsset().
		WithStartingBalance(startingBalance).
		WithStartingMonth(startingMonth).
		Build(t, db)
}
