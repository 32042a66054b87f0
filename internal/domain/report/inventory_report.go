package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ModelStock is the current inventory position of one model, derived from
// the device ledger. OnHand is purchased minus sold plus returned; a
// negative figure means the ledger itself is inconsistent and must be
// surfaced, never clamped.
type ModelStock struct {
	ModelID    uuid.UUID       `json:"model_id"`
	ModelName  string          `json:"model_name"`
	BrandID    uuid.UUID       `json:"brand_id"`
	BrandName  string          `json:"brand_name"`
	Purchased  int64           `json:"purchased"`
	Sold       int64           `json:"sold"`
	Returned   int64           `json:"returned"`
	OnHand     int64           `json:"on_hand"`
	StockValue decimal.Decimal `json:"stock_value"`
}

// InventorySnapshot is the tenant-wide stock position
type InventorySnapshot struct {
	TotalOnHand int64           `json:"total_on_hand"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Models      []ModelStock    `json:"models"`
}

// OutstandingSummary totals open dues for one side of the ledger
type OutstandingSummary struct {
	CounterpartyID   uuid.UUID       `json:"counterparty_id"`
	CounterpartyName string          `json:"counterparty_name"`
	OpenRecords      int64           `json:"open_records"`
	TotalDue         decimal.Decimal `json:"total_due"`
}
