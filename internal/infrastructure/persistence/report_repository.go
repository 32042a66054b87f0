package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mobiledger/backend/internal/domain/report"
	"github.com/mobiledger/backend/internal/domain/trade"
)

// GormReportRepository implements ReportRepository with aggregate queries
// over the live transactional tables. Profit figures come from the per-sale
// profit captured at sale time; nothing here recomputes or mutates them.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

func (r *GormReportRepository) salesInPeriod(ctx context.Context, filter report.PeriodFilter) *gorm.DB {
	query := dbFromContext(ctx, r.db).Model(&trade.SaleRecord{}).
		Where("sale_records.tenant_id = ?", filter.TenantID).
		Where("sale_records.sold_at >= ? AND sale_records.sold_at < ?", filter.StartDate, filter.EndDate)
	if filter.ModelID != nil {
		query = query.Where("sale_records.model_id = ?", *filter.ModelID)
	}
	if filter.BrandID != nil {
		query = query.Joins("JOIN models ON models.id = sale_records.model_id").
			Where("models.brand_id = ?", *filter.BrandID)
	}
	return query
}

// GetProfitSummary aggregates sales profit and incentives for a period
func (r *GormReportRepository) GetProfitSummary(ctx context.Context, filter report.PeriodFilter) (*report.ProfitSummary, error) {
	var row struct {
		UnitsSold     int64
		SalesAmount   decimal.NullDecimal
		CostAmount    decimal.NullDecimal
		TradingProfit decimal.NullDecimal
	}
	if err := r.salesInPeriod(ctx, filter).
		Select("COUNT(*) AS units_sold, SUM(sale_price) AS sales_amount, SUM(purchase_price) AS cost_amount, SUM(profit) AS trading_profit").
		Scan(&row).Error; err != nil {
		return nil, err
	}

	var incentive decimal.NullDecimal
	if err := dbFromContext(ctx, r.db).Model(&trade.Incentive{}).
		Select("SUM(amount)").
		Where("tenant_id = ? AND make_date(year, month, 1) >= ? AND make_date(year, month, 1) < ?",
			filter.TenantID, filter.StartDate, filter.EndDate).
		Scan(&incentive).Error; err != nil {
		return nil, err
	}

	summary := &report.ProfitSummary{
		PeriodStart:    filter.StartDate,
		PeriodEnd:      filter.EndDate,
		UnitsSold:      row.UnitsSold,
		SalesAmount:    orZero(row.SalesAmount),
		CostAmount:     orZero(row.CostAmount),
		TradingProfit:  orZero(row.TradingProfit),
		IncentiveTotal: orZero(incentive),
	}
	summary.TotalProfit = summary.TradingProfit.Add(summary.IncentiveTotal)
	return summary, nil
}

// GetBrandProfitBreakdown splits the period's profit by brand
func (r *GormReportRepository) GetBrandProfitBreakdown(ctx context.Context, filter report.PeriodFilter) ([]report.BrandProfit, error) {
	var rows []struct {
		BrandID       uuid.UUID
		BrandName     string
		UnitsSold     int64
		SalesAmount   decimal.Decimal
		TradingProfit decimal.Decimal
	}
	if err := dbFromContext(ctx, r.db).Model(&trade.SaleRecord{}).
		Select(`brands.id AS brand_id, brands.name AS brand_name,
			COUNT(*) AS units_sold, SUM(sale_records.sale_price) AS sales_amount,
			SUM(sale_records.profit) AS trading_profit`).
		Joins("JOIN models ON models.id = sale_records.model_id").
		Joins("JOIN brands ON brands.id = models.brand_id").
		Where("sale_records.tenant_id = ?", filter.TenantID).
		Where("sale_records.sold_at >= ? AND sale_records.sold_at < ?", filter.StartDate, filter.EndDate).
		Group("brands.id, brands.name").
		Order("trading_profit DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	var incentiveRows []struct {
		BrandID uuid.UUID
		Total   decimal.Decimal
	}
	if err := dbFromContext(ctx, r.db).Model(&trade.Incentive{}).
		Select("brand_id, SUM(amount) AS total").
		Where("tenant_id = ? AND make_date(year, month, 1) >= ? AND make_date(year, month, 1) < ?",
			filter.TenantID, filter.StartDate, filter.EndDate).
		Group("brand_id").
		Scan(&incentiveRows).Error; err != nil {
		return nil, err
	}
	incentives := make(map[uuid.UUID]decimal.Decimal, len(incentiveRows))
	for _, row := range incentiveRows {
		incentives[row.BrandID] = row.Total
	}

	breakdown := make([]report.BrandProfit, len(rows))
	for i, row := range rows {
		incentive := incentives[row.BrandID]
		breakdown[i] = report.BrandProfit{
			BrandID:        row.BrandID,
			BrandName:      row.BrandName,
			UnitsSold:      row.UnitsSold,
			SalesAmount:    row.SalesAmount,
			TradingProfit:  row.TradingProfit,
			IncentiveTotal: incentive,
			TotalProfit:    row.TradingProfit.Add(incentive),
		}
	}
	return breakdown, nil
}

// GetModelSalesRanking ranks models by units sold within the period
func (r *GormReportRepository) GetModelSalesRanking(ctx context.Context, filter report.PeriodFilter, topN int) ([]report.ModelSales, error) {
	var rows []report.ModelSales
	if err := dbFromContext(ctx, r.db).Model(&trade.SaleRecord{}).
		Select(`models.id AS model_id, models.name AS model_name, brands.name AS brand_name,
			COUNT(*) AS units_sold, SUM(sale_records.sale_price) AS sales_amount,
			SUM(sale_records.profit) AS profit`).
		Joins("JOIN models ON models.id = sale_records.model_id").
		Joins("JOIN brands ON brands.id = models.brand_id").
		Where("sale_records.tenant_id = ?", filter.TenantID).
		Where("sale_records.sold_at >= ? AND sale_records.sold_at < ?", filter.StartDate, filter.EndDate).
		Group("models.id, models.name, brands.name").
		Order("units_sold DESC, sales_amount DESC").
		Limit(topN).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetDailyProfitTrend returns per-day sales and profit for the period
func (r *GormReportRepository) GetDailyProfitTrend(ctx context.Context, filter report.PeriodFilter) ([]report.DailyProfitTrend, error) {
	var rows []report.DailyProfitTrend
	if err := r.salesInPeriod(ctx, filter).
		Select(`DATE(sale_records.sold_at) AS date, COUNT(*) AS units_sold,
			SUM(sale_records.sale_price) AS sales_amount, SUM(sale_records.profit) AS profit`).
		Group("DATE(sale_records.sold_at)").
		Order("date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetInventorySnapshot derives the stock position from the device ledger.
// On-hand counts only AVAILABLE rows; stock value prices them at their
// purchase cost. A negative count cannot occur from this query alone, but
// the totals are passed through untouched so upstream diagnostics hold.
func (r *GormReportRepository) GetInventorySnapshot(ctx context.Context, tenantID uuid.UUID) (*report.InventorySnapshot, error) {
	var rows []report.ModelStock
	if err := dbFromContext(ctx, r.db).Table("devices").
		Select(`models.id AS model_id, models.name AS model_name,
			brands.id AS brand_id, brands.name AS brand_name,
			COUNT(*) AS purchased,
			COUNT(*) FILTER (WHERE devices.status = 'SOLD') AS sold,
			COUNT(*) FILTER (WHERE devices.status = 'RETURNED') AS returned,
			COUNT(*) FILTER (WHERE devices.status = 'AVAILABLE') AS on_hand,
			COALESCE(SUM(devices.current_price) FILTER (WHERE devices.status = 'AVAILABLE'), 0) AS stock_value`).
		Joins("JOIN models ON models.id = devices.model_id").
		Joins("JOIN brands ON brands.id = models.brand_id").
		Where("devices.tenant_id = ?", tenantID).
		Group("models.id, models.name, brands.id, brands.name").
		Order("brand_name ASC, model_name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	snapshot := &report.InventorySnapshot{
		TotalValue: decimal.Zero,
		Models:     rows,
	}
	for _, row := range rows {
		snapshot.TotalOnHand += row.OnHand
		snapshot.TotalValue = snapshot.TotalValue.Add(row.StockValue)
	}
	return snapshot, nil
}

// GetShopOutstanding totals open sale dues per shop
func (r *GormReportRepository) GetShopOutstanding(ctx context.Context, tenantID uuid.UUID) ([]report.OutstandingSummary, error) {
	var rows []report.OutstandingSummary
	if err := dbFromContext(ctx, r.db).Table("sale_records").
		Select(`shops.id AS counterparty_id, shops.name AS counterparty_name,
			COUNT(*) AS open_records, SUM(sale_records.due_amount) AS total_due`).
		Joins("JOIN shops ON shops.id = sale_records.shop_id").
		Where("sale_records.tenant_id = ? AND sale_records.status IN ?", tenantID,
			[]trade.PaymentStatus{trade.PaymentStatusPending, trade.PaymentStatusPartial}).
		Group("shops.id, shops.name").
		Order("total_due DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetSupplierOutstanding totals open purchase dues per supplier
func (r *GormReportRepository) GetSupplierOutstanding(ctx context.Context, tenantID uuid.UUID) ([]report.OutstandingSummary, error) {
	var rows []report.OutstandingSummary
	if err := dbFromContext(ctx, r.db).Table("purchase_records").
		Select(`suppliers.id AS counterparty_id, suppliers.name AS counterparty_name,
			COUNT(*) AS open_records, SUM(purchase_records.due_amount) AS total_due`).
		Joins("JOIN suppliers ON suppliers.id = purchase_records.supplier_id").
		Where("purchase_records.tenant_id = ? AND purchase_records.status IN ?", tenantID,
			[]trade.PaymentStatus{trade.PaymentStatusPending, trade.PaymentStatusPartial}).
		Group("suppliers.id, suppliers.name").
		Order("total_due DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func orZero(value decimal.NullDecimal) decimal.Decimal {
	if value.Valid {
		return value.Decimal
	}
	return decimal.Zero
}

var _ report.ReportRepository = (*GormReportRepository)(nil)
