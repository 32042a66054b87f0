package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfitSummary is a read model for a tenant's profit over a period.
// Trading profit comes from the per-sale profit figures captured at sale
// time; incentives for months overlapping the period are added on top.
type ProfitSummary struct {
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	UnitsSold      int64           `json:"units_sold"`
	SalesAmount    decimal.Decimal `json:"sales_amount"`
	CostAmount     decimal.Decimal `json:"cost_amount"`
	TradingProfit  decimal.Decimal `json:"trading_profit"`
	IncentiveTotal decimal.Decimal `json:"incentive_total"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
}

// BrandProfit is one brand's slice of the profit breakdown
type BrandProfit struct {
	BrandID        uuid.UUID       `json:"brand_id"`
	BrandName      string          `json:"brand_name"`
	UnitsSold      int64           `json:"units_sold"`
	SalesAmount    decimal.Decimal `json:"sales_amount"`
	TradingProfit  decimal.Decimal `json:"trading_profit"`
	IncentiveTotal decimal.Decimal `json:"incentive_total"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
}

// ModelSales is per-model sales volume within a period
type ModelSales struct {
	ModelID     uuid.UUID       `json:"model_id"`
	ModelName   string          `json:"model_name"`
	BrandName   string          `json:"brand_name"`
	UnitsSold   int64           `json:"units_sold"`
	SalesAmount decimal.Decimal `json:"sales_amount"`
	Profit      decimal.Decimal `json:"profit"`
}

// DailyProfitTrend is per-day profit within a period
type DailyProfitTrend struct {
	Date        time.Time       `json:"date"`
	UnitsSold   int64           `json:"units_sold"`
	SalesAmount decimal.Decimal `json:"sales_amount"`
	Profit      decimal.Decimal `json:"profit"`
}

// PeriodFilter bounds report queries to a tenant and date range
type PeriodFilter struct {
	TenantID  uuid.UUID  `json:"-"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	BrandID   *uuid.UUID `json:"brand_id,omitempty"`
	ModelID   *uuid.UUID `json:"model_id,omitempty"`
}
