package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/month"
)

// InvestmentAsset holds the configuration the ledger reads when a series is
// still empty: the starting balance and the month the series begins at.
// The ledger never writes to it.
type InvestmentAsset struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	StartingMonth   month.Month     `json:"startingMonth"`
	CreatedAt       time.Time       `json:"createdAt,omitempty"`
}
