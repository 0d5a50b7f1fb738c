package request

import "github.com/shopspring/decimal"

// CreateAssetRequest is the payload for registering an investment asset.
type CreateAssetRequest struct {
	Name            string          `json:"name"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	StartingMonth   string          `json:"startingMonth"`
}
