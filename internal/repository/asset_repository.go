package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/apperrors"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/model"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/month"
)

// AssetRepository provides data access methods for the investment_asset table.
// The ledger proper only reads from it; the insert/delete methods exist for the
// asset administration endpoints and tests.
type AssetRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// WithTx returns a new AssetRepository scoped to the provided transaction.
func (r *AssetRepository) WithTx(tx *sql.Tx) *AssetRepository {
	return &AssetRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *AssetRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetAsset retrieves a single investment asset by its ID.
// Returns ErrAssetNotFound if no record with the given ID exists.
func (r *AssetRepository) GetAsset(assetID string) (model.InvestmentAsset, error) {
	if assetID == "" {
		return model.InvestmentAsset{}, apperrors.ErrEmptyID
	}

	query := `
		SELECT id, name, starting_balance, starting_month, created_at
		FROM investment_asset
		WHERE id = ?
	`

	var a model.InvestmentAsset
	var balanceStr, monthStr, createdAtStr string

	err := r.getQuerier().QueryRow(query, assetID).Scan(
		&a.ID,
		&a.Name,
		&balanceStr,
		&monthStr,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.InvestmentAsset{}, apperrors.ErrAssetNotFound
	}
	if err != nil {
		return model.InvestmentAsset{}, fmt.Errorf("failed to query investment_asset table: %w", err)
	}

	if a.StartingBalance, err = parseDecimal(balanceStr); err != nil {
		return model.InvestmentAsset{}, err
	}
	if a.StartingMonth, err = month.Parse(monthStr); err != nil {
		return model.InvestmentAsset{}, err
	}
	if a.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.InvestmentAsset{}, err
	}

	return a, nil
}

// GetAllAssets retrieves all investment assets ordered by name.
func (r *AssetRepository) GetAllAssets() ([]model.InvestmentAsset, error) {
	query := `
		SELECT id, name, starting_balance, starting_month, created_at
		FROM investment_asset
		ORDER BY name ASC
	`

	rows, err := r.getQuerier().Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment_asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.InvestmentAsset{}

	for rows.Next() {
		var a model.InvestmentAsset
		var balanceStr, monthStr, createdAtStr string

		err := rows.Scan(&a.ID, &a.Name, &balanceStr, &monthStr, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment_asset table results: %w", err)
		}

		if a.StartingBalance, err = parseDecimal(balanceStr); err != nil {
			return nil, err
		}
		if a.StartingMonth, err = month.Parse(monthStr); err != nil {
			return nil, err
		}
		if a.CreatedAt, err = ParseTime(createdAtStr); err != nil {
			return nil, err
		}

		assets = append(assets, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment_asset table: %w", err)
	}

	return assets, nil
}

// InsertAsset creates a new investment asset record.
func (r *AssetRepository) InsertAsset(ctx context.Context, asset *model.InvestmentAsset) error {
	query := `
		INSERT INTO investment_asset (id, name, starting_balance, starting_month)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		asset.ID,
		asset.Name,
		asset.StartingBalance.String(),
		asset.StartingMonth.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert investment_asset: %w", err)
	}

	return nil
}

// DeleteAsset removes an investment asset by its ID. The foreign key cascade
// removes all ledger entries owned by the asset.
// Returns ErrAssetNotFound if no record with the given ID exists.
func (r *AssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	query := `DELETE FROM investment_asset WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete investment_asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}
