package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrAssetNotFound indicates that an investment asset with the given ID does not exist.
	ErrAssetNotFound = errors.New("investment asset not found")

	// ErrEntryNotFound indicates that a ledger entry with the given ID does not exist.
	ErrEntryNotFound = errors.New("ledger entry not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrMonthConflict indicates that an entry for the same asset and month
	// already exists. Raised when a create loses the race on the
	// (investment_id, month) uniqueness constraint.
	ErrMonthConflict = errors.New("entry for this asset and month already exists")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeStartingBalance indicates an asset configured with a negative starting balance.
	ErrNegativeStartingBalance = errors.New("starting balance cannot be negative")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data, not missing entities or validation issues.
var (
	ErrFailedToRetrieveAssets  = errors.New("failed to retrieve investment assets")
	ErrFailedToRetrieveAsset   = errors.New("failed to retrieve investment asset")
	ErrFailedToRetrieveEntries = errors.New("failed to retrieve ledger entries")
	ErrFailedToRetrieveEntry   = errors.New("failed to retrieve ledger entry")
	ErrFailedToRunAudit        = errors.New("failed to run ledger audit")
)
