package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/apperrors"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/model"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/month"
)

// EntryRepository provides data access methods for the ledger_entry table.
// The (investment_id, month) uniqueness constraint enforced here is the safety
// net for concurrent creates against the same asset.
type EntryRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewEntryRepository creates a new EntryRepository with the provided database connection.
func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// WithTx returns a new EntryRepository scoped to the provided transaction.
func (r *EntryRepository) WithTx(tx *sql.Tx) *EntryRepository {
	return &EntryRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *EntryRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const entryColumns = `id, investment_id, month, actual_return_rate, inflation_rate, contribution, closing_balance, notes, created_at`

// scanEntry scans one ledger_entry row from either a *sql.Row or *sql.Rows.
func scanEntry(scan func(dest ...any) error) (model.LedgerEntry, error) {
	var e model.LedgerEntry
	var monthStr, returnRateStr, inflationRateStr, contributionStr, closingStr, createdAtStr string

	err := scan(
		&e.ID,
		&e.InvestmentID,
		&monthStr,
		&returnRateStr,
		&inflationRateStr,
		&contributionStr,
		&closingStr,
		&e.Notes,
		&createdAtStr,
	)
	if err != nil {
		return model.LedgerEntry{}, err
	}

	if e.Month, err = month.Parse(monthStr); err != nil {
		return model.LedgerEntry{}, err
	}
	if e.ActualReturnRate, err = parseDecimal(returnRateStr); err != nil {
		return model.LedgerEntry{}, err
	}
	if e.InflationRate, err = parseDecimal(inflationRateStr); err != nil {
		return model.LedgerEntry{}, err
	}
	if e.Contribution, err = parseDecimal(contributionStr); err != nil {
		return model.LedgerEntry{}, err
	}
	if e.ClosingBalance, err = parseDecimal(closingStr); err != nil {
		return model.LedgerEntry{}, err
	}
	if e.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.LedgerEntry{}, err
	}

	return e, nil
}

// GetEntry retrieves a single ledger entry by its ID.
// Returns ErrEntryNotFound if no record with the given ID exists.
func (r *EntryRepository) GetEntry(entryID string) (model.LedgerEntry, error) {
	if entryID == "" {
		return model.LedgerEntry{}, apperrors.ErrEmptyID
	}

	query := `SELECT ` + entryColumns + ` FROM ledger_entry WHERE id = ?`

	row := r.getQuerier().QueryRow(query, entryID)
	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return model.LedgerEntry{}, apperrors.ErrEntryNotFound
	}
	if err != nil {
		return model.LedgerEntry{}, fmt.Errorf("failed to scan ledger_entry table results: %w", err)
	}

	return entry, nil
}

// GetEntriesByInvestment retrieves all entries for an asset in ascending month
// order. The month column's "YYYY-MM" encoding makes string order chronological.
func (r *EntryRepository) GetEntriesByInvestment(investmentID string) ([]model.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entry
		WHERE investment_id = ?
		ORDER BY month ASC
	`

	rows, err := r.getQuerier().Query(query, investmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger_entry table: %w", err)
	}
	defer rows.Close()

	entries := []model.LedgerEntry{}

	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger_entry table results: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger_entry table: %w", err)
	}

	return entries, nil
}

// GetLatestEntry retrieves the entry with the maximum month for an asset, the
// chronological tail of the series. Returns nil when the series is empty.
func (r *EntryRepository) GetLatestEntry(investmentID string) (*model.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entry
		WHERE investment_id = ?
		ORDER BY month DESC
		LIMIT 1
	`

	row := r.getQuerier().QueryRow(query, investmentID)
	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger_entry table results: %w", err)
	}

	return &entry, nil
}

// GetPredecessor retrieves the entry chronologically immediately preceding the
// given month for an asset. Returns nil when no earlier entry exists.
func (r *EntryRepository) GetPredecessor(investmentID string, m month.Month) (*model.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entry
		WHERE investment_id = ? AND month < ?
		ORDER BY month DESC
		LIMIT 1
	`

	row := r.getQuerier().QueryRow(query, investmentID, m.String())
	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger_entry table results: %w", err)
	}

	return &entry, nil
}

// GetSuccessors retrieves all entries strictly after the given month for an
// asset, in ascending month order. Used by the forward-cascading recompute.
func (r *EntryRepository) GetSuccessors(investmentID string, m month.Month) ([]model.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entry
		WHERE investment_id = ? AND month > ?
		ORDER BY month ASC
	`

	rows, err := r.getQuerier().Query(query, investmentID, m.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger_entry table: %w", err)
	}
	defer rows.Close()

	entries := []model.LedgerEntry{}

	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger_entry table results: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger_entry table: %w", err)
	}

	return entries, nil
}

// InsertEntry creates a new ledger entry.
// Returns ErrMonthConflict when an entry for the same asset and month already
// exists, so callers can re-resolve the month and retry.
func (r *EntryRepository) InsertEntry(ctx context.Context, entry *model.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entry (id, investment_id, month, actual_return_rate, inflation_rate, contribution, closing_balance, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		entry.ID,
		entry.InvestmentID,
		entry.Month.String(),
		entry.ActualReturnRate.String(),
		entry.InflationRate.String(),
		entry.Contribution.String(),
		entry.ClosingBalance.String(),
		entry.Notes,
	)
	if isUniqueViolation(err) {
		return apperrors.ErrMonthConflict
	}
	if err != nil {
		return fmt.Errorf("failed to insert ledger_entry: %w", err)
	}

	return nil
}

// UpdateEntry persists the mutable fields of an existing entry. The month and
// investment_id never change after creation.
// Returns ErrEntryNotFound if no record with the given ID exists.
func (r *EntryRepository) UpdateEntry(ctx context.Context, entry *model.LedgerEntry) error {
	query := `
		UPDATE ledger_entry
		SET actual_return_rate = ?, inflation_rate = ?, contribution = ?, closing_balance = ?, notes = ?
		WHERE id = ?
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		entry.ActualReturnRate.String(),
		entry.InflationRate.String(),
		entry.Contribution.String(),
		entry.ClosingBalance.String(),
		entry.Notes,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger_entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrEntryNotFound
	}

	return nil
}

// UpdateClosingBalance updates only the closing balance of an entry. Used by
// the forward-cascading recompute in consistent-ledger mode.
func (r *EntryRepository) UpdateClosingBalance(ctx context.Context, entryID string, closing decimal.Decimal) error {
	query := `UPDATE ledger_entry SET closing_balance = ? WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, closing.String(), entryID)
	if err != nil {
		return fmt.Errorf("failed to update ledger_entry closing balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrEntryNotFound
	}

	return nil
}

// DeleteEntry removes a ledger entry by its ID.
// Returns ErrEntryNotFound if no record with the given ID exists.
func (r *EntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM ledger_entry WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger_entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrEntryNotFound
	}

	return nil
}
