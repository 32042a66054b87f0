package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/report"
	"github.com/mobiledger/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProfitSummaryCache is a read-through cache for the dashboard profit
// summary. A nil implementation is valid; misses and cache failures fall
// back to the live query.
type ProfitSummaryCache interface {
	Get(ctx context.Context, tenantID uuid.UUID, periodStart, periodEnd time.Time) (*report.ProfitSummary, error)
	Set(ctx context.Context, tenantID uuid.UUID, summary *report.ProfitSummary) error
	Invalidate(ctx context.Context, tenantID uuid.UUID) error
}

// ReportService serves read-only aggregations over the transactional
// tables. Reports never mutate state and empty data yields zeros, not
// errors.
type ReportService struct {
	reportRepo report.ReportRepository
	cache      ProfitSummaryCache
	logger     *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo report.ReportRepository, cache ProfitSummaryCache, logger *zap.Logger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		cache:      cache,
		logger:     logger,
	}
}

// resolvePeriod turns an optional month/year pair into a concrete range.
// Year without month means the whole year; neither means all time.
func resolvePeriod(month, year int) (time.Time, time.Time) {
	switch {
	case year > 0 && month > 0:
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	case year > 0:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	default:
		return time.Time{}, time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
}

// GetProfitSummary returns the tenant's profit for an optional month/year
// filter. Cached when a cache is configured; cache failures are logged
// and served live.
func (s *ReportService) GetProfitSummary(ctx context.Context, tenantID uuid.UUID, month, year int) (*report.ProfitSummary, error) {
	start, end := resolvePeriod(month, year)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, tenantID, start, end)
		if err != nil {
			s.logger.Warn("profit summary cache read failed", zap.Error(err), zap.String("tenant_id", tenantID.String()))
		} else if cached != nil {
			return cached, nil
		}
	}

	summary, err := s.reportRepo.GetProfitSummary(ctx, report.PeriodFilter{
		TenantID:  tenantID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, tenantID, summary); err != nil {
			s.logger.Warn("profit summary cache write failed", zap.Error(err), zap.String("tenant_id", tenantID.String()))
		}
	}
	return summary, nil
}

// InvalidateProfitCache drops the cached summary after a write
func (s *ReportService) InvalidateProfitCache(ctx context.Context, tenantID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, tenantID); err != nil {
		s.logger.Warn("profit summary cache invalidation failed", zap.Error(err), zap.String("tenant_id", tenantID.String()))
	}
}

// GetBrandProfitBreakdown splits the period's profit by brand
func (s *ReportService) GetBrandProfitBreakdown(ctx context.Context, tenantID uuid.UUID, month, year int) ([]report.BrandProfit, error) {
	start, end := resolvePeriod(month, year)
	return s.reportRepo.GetBrandProfitBreakdown(ctx, report.PeriodFilter{
		TenantID:  tenantID,
		StartDate: start,
		EndDate:   end,
	})
}

// GetModelSalesRanking ranks models by units sold within the period
func (s *ReportService) GetModelSalesRanking(ctx context.Context, tenantID uuid.UUID, month, year, topN int) ([]report.ModelSales, error) {
	if topN <= 0 {
		topN = 10
	}
	start, end := resolvePeriod(month, year)
	return s.reportRepo.GetModelSalesRanking(ctx, report.PeriodFilter{
		TenantID:  tenantID,
		StartDate: start,
		EndDate:   end,
	}, topN)
}

// GetDailyProfitTrend returns per-day profit for a month
func (s *ReportService) GetDailyProfitTrend(ctx context.Context, tenantID uuid.UUID, month, year int) ([]report.DailyProfitTrend, error) {
	start, end := resolvePeriod(month, year)
	return s.reportRepo.GetDailyProfitTrend(ctx, report.PeriodFilter{
		TenantID:  tenantID,
		StartDate: start,
		EndDate:   end,
	})
}

// InventoryDiagnostic flags a model whose ledger-derived stock is negative
type InventoryDiagnostic struct {
	Code      string    `json:"code"`
	ModelID   uuid.UUID `json:"model_id"`
	ModelName string    `json:"model_name"`
	OnHand    int64     `json:"on_hand"`
}

// InventorySnapshotResponse is the snapshot plus any ledger diagnostics
type InventorySnapshotResponse struct {
	Snapshot    *report.InventorySnapshot `json:"snapshot"`
	Diagnostics []InventoryDiagnostic     `json:"diagnostics,omitempty"`
}

// GetInventorySnapshot derives the current stock position from the device
// ledger. Models whose on-hand count is negative are reported as-is with
// a LEDGER_INCONSISTENCY diagnostic, never clamped to zero.
func (s *ReportService) GetInventorySnapshot(ctx context.Context, tenantID uuid.UUID) (*InventorySnapshotResponse, error) {
	snapshot, err := s.reportRepo.GetInventorySnapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var diagnostics []InventoryDiagnostic
	for _, model := range snapshot.Models {
		if model.OnHand < 0 {
			diagnostics = append(diagnostics, InventoryDiagnostic{
				Code:      shared.ErrLedgerInconsistency.Code,
				ModelID:   model.ModelID,
				ModelName: model.ModelName,
				OnHand:    model.OnHand,
			})
			s.logger.Error("negative on-hand count in device ledger",
				zap.String("tenant_id", tenantID.String()),
				zap.String("model_id", model.ModelID.String()),
				zap.Int64("on_hand", model.OnHand))
		}
	}

	return &InventorySnapshotResponse{
		Snapshot:    snapshot,
		Diagnostics: diagnostics,
	}, nil
}

// GetShopOutstanding totals open sale dues per shop
func (s *ReportService) GetShopOutstanding(ctx context.Context, tenantID uuid.UUID) ([]report.OutstandingSummary, error) {
	return s.reportRepo.GetShopOutstanding(ctx, tenantID)
}

// GetSupplierOutstanding totals open purchase dues per supplier
func (s *ReportService) GetSupplierOutstanding(ctx context.Context, tenantID uuid.UUID) ([]report.OutstandingSummary, error) {
	return s.reportRepo.GetSupplierOutstanding(ctx, tenantID)
}
