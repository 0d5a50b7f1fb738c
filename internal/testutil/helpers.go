package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/config"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/repository"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/service"
)

// NewTestEntryService creates an EntryService in strict-historical mode.
func NewTestEntryService(t *testing.T, db *sql.DB) *service.EntryService {
	t.Helper()
	return NewTestEntryServiceWithMode(t, db, config.ModeStrictHistorical)
}

// NewTestEntryServiceWithMode creates an EntryService with an explicit recompute mode.
func NewTestEntryServiceWithMode(t *testing.T, db *sql.DB, mode string) *service.EntryService {
	t.Helper()

	entryRepo := repository.NewEntryRepository(db)
	assetRepo := repository.NewAssetRepository(db)

	return service.NewEntryService(db, entryRepo, assetRepo, mode)
}

// NewTestAssetService creates an AssetService backed by the given database.
func NewTestAssetService(t *testing.T, db *sql.DB) *service.AssetService {
	t.Helper()

	return service.NewAssetService(repository.NewAssetRepository(db))
}

// NewTestAuditService creates an AuditService backed by the given database.
func NewTestAuditService(t *testing.T, db *sql.DB) *service.AuditService {
	t.Helper()

	assetRepo := repository.NewAssetRepository(db)
	entryRepo := repository.NewEntryRepository(db)

	return service.NewAuditService(assetRepo, entryRepo)
}

// NewTestSystemService creates a SystemService backed by the given database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeAssetName generates a unique asset name for testing.
//
// Example usage:
//
//	name := testutil.MakeAssetName("World ETF")
//	// Returns: "World ETF ABC123"
func MakeAssetName(base string) string {
	if base == "" {
		base = "Asset"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
