package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api/request"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/apperrors"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/config"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/ledger"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/model"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/month"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/repository"
)

// EntryService orchestrates the ledger mutation operations: create, update,
// delete, and the projected list read. Creation is serialized per asset so two
// concurrent creates cannot both claim the same next month; the uniqueness
// constraint in the store backs this up, and a create that still loses the race
// is retried once with a freshly resolved month.
type EntryService struct {
	db        *sql.DB
	entryRepo *repository.EntryRepository
	assetRepo *repository.AssetRepository
	mode      string

	mu         sync.Mutex
	assetLocks map[string]*sync.Mutex
}

// NewEntryService creates a new EntryService with the provided repository
// dependencies. mode is one of config.ModeStrictHistorical or
// config.ModeConsistentLedger and controls whether edits and deletes cascade a
// closing-balance recompute to subsequent entries.
func NewEntryService(
	db *sql.DB,
	entryRepo *repository.EntryRepository,
	assetRepo *repository.AssetRepository,
	mode string,
) *EntryService {
	return &EntryService{
		db:         db,
		entryRepo:  entryRepo,
		assetRepo:  assetRepo,
		mode:       mode,
		assetLocks: make(map[string]*sync.Mutex),
	}
}

// Mode returns the active recompute mode.
func (s *EntryService) Mode() string {
	return s.mode
}

// assetLock returns the mutex serializing creates for one asset.
func (s *EntryService) assetLock(investmentID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.assetLocks[investmentID]
	if !ok {
		lock = &sync.Mutex{}
		s.assetLocks[investmentID] = lock
	}
	return lock
}

// CreateEntry appends a new entry to the chronological end of an asset's series.
// The month is assigned by the sequencer (starting month for an empty series,
// latest month + 1 otherwise) and the closing balance is computed from the
// opening balance, contribution, and reported return rate.
//
// Returns apperrors.ErrAssetNotFound when the asset does not exist, and
// apperrors.ErrMonthConflict when the resolved month is already taken even
// after one retry.
func (s *EntryService) CreateEntry(ctx context.Context, req request.CreateEntryRequest) (*model.LedgerEntry, error) {
	lock := s.assetLock(req.InvestmentID)
	lock.Lock()
	defer lock.Unlock()

	asset, err := s.assetRepo.GetAsset(req.InvestmentID)
	if err != nil {
		return nil, err
	}

	entry, err := s.tryCreate(ctx, asset, req)
	if errors.Is(err, apperrors.ErrMonthConflict) {
		// Another writer claimed the month between resolve and insert.
		// Re-resolve once against the fresh tail, then surface the conflict.
		entry, err = s.tryCreate(ctx, asset, req)
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// tryCreate resolves the next month and opening balance from the current tail
// of the series and attempts a single insert.
func (s *EntryService) tryCreate(ctx context.Context, asset model.InvestmentAsset, req request.CreateEntryRequest) (*model.LedgerEntry, error) {
	latest, err := s.entryRepo.GetLatestEntry(asset.ID)
	if err != nil {
		return nil, err
	}

	var predecessorClosing *decimal.Decimal
	if latest != nil {
		predecessorClosing = &latest.ClosingBalance
	}

	opening := ledger.OpeningBalance(asset.StartingBalance, predecessorClosing)

	entry := &model.LedgerEntry{
		ID:               uuid.New().String(),
		InvestmentID:     asset.ID,
		Month:            ledger.NextMonth(asset.StartingMonth, latest),
		ActualReturnRate: req.ActualReturnRate,
		InflationRate:    req.InflationRate,
		Contribution:     req.Contribution,
		ClosingBalance:   ledger.CloseBalance(opening, req.Contribution, req.ActualReturnRate),
		Notes:            req.Notes,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.entryRepo.InsertEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// UpdateEntry applies a partial update to an existing entry. The closing
// balance is recomputed only when the return rate or contribution changed,
// from the chronological predecessor's closing balance (or the asset's
// starting balance for the first entry).
//
// In strict-historical mode no other entry is touched, so later entries keep
// their point-in-time closing balances even when this edit invalidates them.
// In consistent-ledger mode every subsequent entry is recomputed forward
// inside the same transaction.
//
// Returns apperrors.ErrEntryNotFound when the entry does not exist.
func (s *EntryService) UpdateEntry(ctx context.Context, entryID string, req request.UpdateEntryRequest) (*model.LedgerEntry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	//nolint:errcheck // rollback after a successful commit is a no-op
	defer tx.Rollback()

	repo := s.entryRepo.WithTx(tx)

	entry, err := repo.GetEntry(entryID)
	if err != nil {
		return nil, err
	}

	recompute := false

	if req.ActualReturnRate != nil && !req.ActualReturnRate.Equal(entry.ActualReturnRate) {
		entry.ActualReturnRate = *req.ActualReturnRate
		recompute = true
	}
	if req.Contribution != nil && !req.Contribution.Equal(entry.Contribution) {
		entry.Contribution = *req.Contribution
		recompute = true
	}
	if req.InflationRate != nil {
		entry.InflationRate = *req.InflationRate
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if recompute {
		opening, err := openingBalanceFor(repo, s.assetRepo.WithTx(tx), entry.InvestmentID, entry.Month)
		if err != nil {
			return nil, err
		}
		entry.ClosingBalance = ledger.CloseBalance(opening, entry.Contribution, entry.ActualReturnRate)
	}

	if err := repo.UpdateEntry(ctx, &entry); err != nil {
		return nil, err
	}

	if recompute && s.mode == config.ModeConsistentLedger {
		if err := s.recomputeForward(ctx, repo, entry.InvestmentID, entry.Month, entry.ClosingBalance); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &entry, nil
}

// DeleteEntry removes an entry from the series.
//
// In strict-historical mode the remaining entries keep their stored closing
// balances even though the deleted entry may have been a link in the
// compounding chain. In consistent-ledger mode all entries after the deleted
// month are recomputed from the deleted entry's predecessor (or the asset's
// starting balance) inside the same transaction.
//
// Returns apperrors.ErrEntryNotFound when the entry does not exist.
func (s *EntryService) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	//nolint:errcheck // rollback after a successful commit is a no-op
	defer tx.Rollback()

	repo := s.entryRepo.WithTx(tx)

	entry, err := repo.GetEntry(entryID)
	if err != nil {
		return err
	}

	if err := repo.DeleteEntry(ctx, entryID); err != nil {
		return err
	}

	if s.mode == config.ModeConsistentLedger {
		opening, err := openingBalanceFor(repo, s.assetRepo.WithTx(tx), entry.InvestmentID, entry.Month)
		if err != nil {
			return err
		}
		if err := s.recomputeForward(ctx, repo, entry.InvestmentID, entry.Month, opening); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListEntries returns the full series for an asset with derived metrics
// attached, in the requested presentation order. The running totals are always
// computed chronologically regardless of the presentation order.
//
// Returns apperrors.ErrAssetNotFound when the asset does not exist.
func (s *EntryService) ListEntries(investmentID string, order ledger.Order) ([]model.LedgerEntryView, error) {
	if _, err := s.assetRepo.GetAsset(investmentID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.GetEntriesByInvestment(investmentID)
	if err != nil {
		return nil, err
	}

	return ledger.Project(entries, order), nil
}

// GetEntry retrieves a single entry by its ID.
func (s *EntryService) GetEntry(entryID string) (model.LedgerEntry, error) {
	return s.entryRepo.GetEntry(entryID)
}

// openingBalanceFor resolves the balance carried into the given month: the
// predecessor's closing balance, or the asset's starting balance when the
// month has no predecessor. Both repositories must be scoped to the caller's
// transaction.
func openingBalanceFor(repo *repository.EntryRepository, assetRepo *repository.AssetRepository, investmentID string, m month.Month) (decimal.Decimal, error) {
	predecessor, err := repo.GetPredecessor(investmentID, m)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if predecessor != nil {
		return predecessor.ClosingBalance, nil
	}

	asset, err := assetRepo.GetAsset(investmentID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return asset.StartingBalance, nil
}

// recomputeForward walks every entry after the given month in chronological
// order and rewrites closing balances so the compounding chain is consistent
// again. opening is the balance flowing into the first successor. Bounded by
// the series length, runs inside the caller's transaction.
func (s *EntryService) recomputeForward(ctx context.Context, repo *repository.EntryRepository, investmentID string, from month.Month, opening decimal.Decimal) error {
	successors, err := repo.GetSuccessors(investmentID, from)
	if err != nil {
		return err
	}

	for _, successor := range successors {
		closing := ledger.CloseBalance(opening, successor.Contribution, successor.ActualReturnRate)
		if !closing.Equal(successor.ClosingBalance) {
			if err := repo.UpdateClosingBalance(ctx, successor.ID, closing); err != nil {
				return err
			}
		}
		opening = closing
	}

	return nil
}
