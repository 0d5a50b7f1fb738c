package service

import (
	"context"
	"log"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/ledger"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/model"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/repository"
)

// auditConcurrency bounds how many asset chains a sweep walks in parallel.
const auditConcurrency = 4

// AuditService verifies the compounding chain of every asset: each entry's
// stored closing balance must equal the formula applied to its predecessor's
// stored closing balance. Strict-historical mode legitimately accumulates
// drift after out-of-order edits and deletes; the audit makes that observable
// instead of silent.
type AuditService struct {
	assetRepo *repository.AssetRepository
	entryRepo *repository.EntryRepository
}

// NewAuditService creates a new AuditService with the provided repository dependencies.
func NewAuditService(assetRepo *repository.AssetRepository, entryRepo *repository.EntryRepository) *AuditService {
	return &AuditService{
		assetRepo: assetRepo,
		entryRepo: entryRepo,
	}
}

// Sweep walks every asset's entry chain and returns one finding per entry
// whose stored closing balance no longer matches the recomputed value.
// Assets are checked concurrently, bounded by auditConcurrency.
func (s *AuditService) Sweep(ctx context.Context) ([]model.AuditFinding, error) {
	assets, err := s.assetRepo.GetAllAssets()
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	findings := []model.AuditFinding{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(auditConcurrency)

	for _, asset := range assets {
		asset := asset
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			assetFindings, err := s.auditAsset(asset)
			if err != nil {
				return err
			}

			mu.Lock()
			findings = append(findings, assetFindings...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].InvestmentID != findings[j].InvestmentID {
			return findings[i].InvestmentID < findings[j].InvestmentID
		}
		return findings[i].Month.Before(findings[j].Month)
	})

	return findings, nil
}

// auditAsset checks one asset's chain against the compounding formula.
func (s *AuditService) auditAsset(asset model.InvestmentAsset) ([]model.AuditFinding, error) {
	entries, err := s.entryRepo.GetEntriesByInvestment(asset.ID)
	if err != nil {
		return nil, err
	}

	findings := []model.AuditFinding{}
	opening := asset.StartingBalance

	for _, entry := range entries {
		expected := ledger.CloseBalance(opening, entry.Contribution, entry.ActualReturnRate)
		if !expected.Equal(entry.ClosingBalance) {
			findings = append(findings, model.AuditFinding{
				EntryID:         entry.ID,
				InvestmentID:    entry.InvestmentID,
				Month:           entry.Month,
				StoredBalance:   entry.ClosingBalance,
				ExpectedBalance: expected,
			})
		}
		// The chain continues from the stored balance, not the expected one,
		// so a single stale entry yields a single finding.
		opening = entry.ClosingBalance
	}

	return findings, nil
}

// RunScheduled executes a sweep and logs the outcome. Invoked by the cron
// scheduler when AUDIT_SCHEDULE is configured.
func (s *AuditService) RunScheduled() {
	findings, err := s.Sweep(context.Background())
	if err != nil {
		log.Printf("ledger audit failed: %v", err)
		return
	}

	if len(findings) == 0 {
		log.Println("ledger audit: all chains consistent")
		return
	}

	log.Printf("ledger audit: %d entries with stale closing balances", len(findings))
	for _, f := range findings {
		log.Printf("ledger audit: entry %s (%s %s) stored=%s expected=%s",
			f.EntryID, f.InvestmentID, f.Month, f.StoredBalance, f.ExpectedBalance)
	}
}
