package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api/request"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/apperrors"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/model"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/month"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/repository"
)

// AssetService handles investment asset administration. The ledger itself only
// reads the starting balance and starting month from assets; these operations
// exist so the series has something to hang off.
type AssetService struct {
	assetRepo *repository.AssetRepository
}

// NewAssetService creates a new AssetService with the provided repository dependency.
func NewAssetService(assetRepo *repository.AssetRepository) *AssetService {
	return &AssetService{
		assetRepo: assetRepo,
	}
}

// GetAsset retrieves a single investment asset by its ID.
func (s *AssetService) GetAsset(assetID string) (model.InvestmentAsset, error) {
	return s.assetRepo.GetAsset(assetID)
}

// GetAllAssets retrieves all investment assets.
func (s *AssetService) GetAllAssets() ([]model.InvestmentAsset, error) {
	return s.assetRepo.GetAllAssets()
}

// CreateAsset creates a new investment asset with the given starting balance
// and starting month.
func (s *AssetService) CreateAsset(ctx context.Context, req request.CreateAssetRequest) (*model.InvestmentAsset, error) {
	startingMonth, err := month.Parse(req.StartingMonth)
	if err != nil {
		return nil, err
	}

	if req.StartingBalance.IsNegative() {
		return nil, apperrors.ErrNegativeStartingBalance
	}

	asset := &model.InvestmentAsset{
		ID:              uuid.New().String(),
		Name:            req.Name,
		StartingBalance: req.StartingBalance,
		StartingMonth:   startingMonth,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.assetRepo.InsertAsset(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create investment asset: %w", err)
	}

	return asset, nil
}

// DeleteAsset removes an investment asset and, via the foreign key cascade,
// every ledger entry it owns.
func (s *AssetService) DeleteAsset(ctx context.Context, assetID string) error {
	return s.assetRepo.DeleteAsset(ctx, assetID)
}
