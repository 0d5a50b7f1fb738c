package validation

import (
	"github.com/shopspring/decimal"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api/request"
)

var minusOneHundred = decimal.NewFromInt(-100)

// ValidateCreateEntry validates a ledger entry creation request.
//
// Required fields:
//   - investmentId: Must be a valid UUID
//   - actualReturnRate: percentage, may be negative but not below -100
//   - inflationRate: percentage, must be above -100
//
// The contribution is a signed decimal (negative = withdrawal) and notes are
// free text; neither is constrained.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateEntry(req request.CreateEntryRequest) error {
	if err := ValidateUUID(req.InvestmentID); err != nil {
		return err
	}

	errors := make(map[string]string)

	validateRates(errors, &req.ActualReturnRate, &req.InflationRate)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateEntry validates a ledger entry update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateEntry(req request.UpdateEntryRequest) error {
	errors := make(map[string]string)

	validateRates(errors, req.ActualReturnRate, req.InflationRate)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// validateRates checks the percentage bounds shared by create and update.
// A return of exactly -100% wipes the balance and is allowed; anything below
// is nonsense. An inflation rate of -100% would make the cumulative inflation
// divisor zero, so the bound is exclusive there.
func validateRates(errors map[string]string, returnRate, inflationRate *decimal.Decimal) {
	if returnRate != nil && returnRate.LessThan(minusOneHundred) {
		errors["actualReturnRate"] = "actualReturnRate cannot be below -100"
	}

	if inflationRate != nil && inflationRate.LessThanOrEqual(minusOneHundred) {
		errors["inflationRate"] = "inflationRate must be above -100"
	}
}
