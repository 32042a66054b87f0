package report

import (
	"context"

	"github.com/google/uuid"
)

// ReportRepository defines read-side queries computed over the live
// transactional tables. Reports never mutate state.
type ReportRepository interface {
	// GetProfitSummary aggregates sales profit and incentives for a period
	GetProfitSummary(ctx context.Context, filter PeriodFilter) (*ProfitSummary, error)

	// GetBrandProfitBreakdown splits the period's profit by brand
	GetBrandProfitBreakdown(ctx context.Context, filter PeriodFilter) ([]BrandProfit, error)

	// GetModelSalesRanking ranks models by units sold within the period
	GetModelSalesRanking(ctx context.Context, filter PeriodFilter, topN int) ([]ModelSales, error)

	// GetDailyProfitTrend returns per-day sales and profit for the period
	GetDailyProfitTrend(ctx context.Context, filter PeriodFilter) ([]DailyProfitTrend, error)

	// GetInventorySnapshot derives the current stock position from the
	// device ledger. Models with negative on-hand counts are included
	// as-is so callers can surface the inconsistency.
	GetInventorySnapshot(ctx context.Context, tenantID uuid.UUID) (*InventorySnapshot, error)

	// GetShopOutstanding totals open sale dues per shop
	GetShopOutstanding(ctx context.Context, tenantID uuid.UUID) ([]OutstandingSummary, error)

	// GetSupplierOutstanding totals open purchase dues per supplier
	GetSupplierOutstanding(ctx context.Context, tenantID uuid.UUID) ([]OutstandingSummary, error)
}
