package ledger

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// CloseBalance computes the closing balance for one month:
//
//	(opening + contribution) × (1 + rate/100)
//
// The contribution is applied before the return, so a mid-month deposit earns
// that month's return. All arithmetic is exact decimal; a 20-year series is
// 240 compounding steps and must not accumulate float drift.
func CloseBalance(opening, contribution, returnRate decimal.Decimal) decimal.Decimal {
	growth := decimal.NewFromInt(1).Add(returnRate.Div(oneHundred))
	return opening.Add(contribution).Mul(growth)
}

// OpeningBalance resolves the balance carried into a month: the predecessor's
// closing balance, or the asset's starting balance for the first entry.
func OpeningBalance(startingBalance decimal.Decimal, predecessorClosing *decimal.Decimal) decimal.Decimal {
	if predecessorClosing == nil {
		return startingBalance
	}
	return *predecessorClosing
}
