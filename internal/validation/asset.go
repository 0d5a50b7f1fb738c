package validation

import (
	"strings"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api/request"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/month"
)

// ValidateCreateAsset validates an investment asset creation request.
//
// Required fields:
//   - name: non-empty
//   - startingBalance: must not be negative
//   - startingMonth: must be in YYYY-MM format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.StartingBalance.IsNegative() {
		errors["startingBalance"] = "startingBalance cannot be negative"
	}

	if strings.TrimSpace(req.StartingMonth) == "" {
		errors["startingMonth"] = "startingMonth is required"
	} else if _, err := month.Parse(req.StartingMonth); err != nil {
		errors["startingMonth"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
