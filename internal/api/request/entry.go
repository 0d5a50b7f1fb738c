package request

import "github.com/shopspring/decimal"

// CreateEntryRequest is the payload for creating a ledger entry. The month is
// never part of the request: creation always appends to the chronological end
// of the series, so the server assigns it.
type CreateEntryRequest struct {
	InvestmentID     string          `json:"investmentId"`
	ActualReturnRate decimal.Decimal `json:"actualReturnRate"`
	InflationRate    decimal.Decimal `json:"inflationRate"`
	Contribution     decimal.Decimal `json:"contribution"`
	Notes            string          `json:"notes"`
}

// UpdateEntryRequest is the payload for partially updating a ledger entry.
// The month and owning asset are immutable after creation.
type UpdateEntryRequest struct {
	ActualReturnRate *decimal.Decimal `json:"actualReturnRate,omitempty"`
	InflationRate    *decimal.Decimal `json:"inflationRate,omitempty"`
	Contribution     *decimal.Decimal `json:"contribution,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}
