package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/ledger"
	"github.com/mobiledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// ==================== Purchase DTOs ====================

// CreatePurchaseRequest represents a request to record a purchase batch
type CreatePurchaseRequest struct {
	ModelID    uuid.UUID       `json:"model_id" binding:"required"`
	Condition  trade.Condition `json:"condition" binding:"required,oneof=NEW USED"`
	Quantity   int             `json:"quantity" binding:"required,min=1"`
	UnitPrice  decimal.Decimal `json:"unit_price" binding:"required"`
	IMEIs      []string        `json:"imeis" binding:"required,min=1,dive,imei"`
	SupplierID *uuid.UUID      `json:"supplier_id"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	DueDate    *time.Time      `json:"due_date"`
}

// PurchaseResponse represents a purchase record in API responses
type PurchaseResponse struct {
	ID         uuid.UUID           `json:"id"`
	ModelID    uuid.UUID           `json:"model_id"`
	Condition  trade.Condition     `json:"condition"`
	Quantity   int                 `json:"quantity"`
	UnitPrice  decimal.Decimal     `json:"unit_price"`
	TotalCost  decimal.Decimal     `json:"total_cost"`
	IMEIs      []string            `json:"imeis"`
	SupplierID *uuid.UUID          `json:"supplier_id,omitempty"`
	BillNumber string              `json:"bill_number"`
	PaidAmount decimal.Decimal     `json:"paid_amount"`
	DueAmount  decimal.Decimal     `json:"due_amount"`
	Status     trade.PaymentStatus `json:"status"`
	DueDate    *time.Time          `json:"due_date,omitempty"`
	PurchasedAt time.Time          `json:"purchased_at"`
	CreatedAt  time.Time           `json:"created_at"`
}

// ToPurchaseResponse converts a purchase record to its response form
func ToPurchaseResponse(record *trade.PurchaseRecord) PurchaseResponse {
	return PurchaseResponse{
		ID:          record.ID,
		ModelID:     record.ModelID,
		Condition:   record.Condition,
		Quantity:    record.Quantity,
		UnitPrice:   record.UnitPrice,
		TotalCost:   record.TotalCost(),
		IMEIs:       record.IMEIs,
		SupplierID:  record.SupplierID,
		BillNumber:  record.BillNumber,
		PaidAmount:  record.PaidAmount,
		DueAmount:   record.DueAmount,
		Status:      record.Status,
		DueDate:     record.DueDate,
		PurchasedAt: record.PurchasedAt,
		CreatedAt:   record.CreatedAt,
	}
}

// PurchaseListFilter represents filter options for the purchase list
type PurchaseListFilter struct {
	SupplierID *uuid.UUID           `form:"supplier_id"`
	Status     *trade.PaymentStatus `form:"status"`
	Page       int                  `form:"page" binding:"omitempty,min=1"`
	PageSize   int                  `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string               `form:"order_by"`
	OrderDir   string               `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ==================== Sale DTOs ====================

// SaleLineInput is one device within a grouped sale
type SaleLineInput struct {
	IMEI      string          `json:"imei" binding:"required,imei"`
	SalePrice decimal.Decimal `json:"sale_price" binding:"required"`
}

// CreateSaleRequest represents a request to record a sale of one or more devices
type CreateSaleRequest struct {
	Lines        []SaleLineInput    `json:"lines" binding:"required,min=1,dive"`
	CustomerType trade.CustomerType `json:"customer_type" binding:"required,oneof=INDIVIDUAL SHOP"`
	ShopID       *uuid.UUID         `json:"shop_id"`
	CustomerName string             `json:"customer_name"`
	PaidAmount   decimal.Decimal    `json:"paid_amount"`
	DueDate      *time.Time         `json:"due_date"`
}

// SaleResponse represents a sale record in API responses
type SaleResponse struct {
	ID            uuid.UUID           `json:"id"`
	ModelID       uuid.UUID           `json:"model_id"`
	IMEI          string              `json:"imei"`
	SalePrice     decimal.Decimal     `json:"sale_price"`
	PurchasePrice decimal.Decimal     `json:"purchase_price"`
	Profit        decimal.Decimal     `json:"profit"`
	Condition     trade.Condition     `json:"condition"`
	CustomerType  trade.CustomerType  `json:"customer_type"`
	ShopID        *uuid.UUID          `json:"shop_id,omitempty"`
	CustomerName  string              `json:"customer_name,omitempty"`
	BillNumber    string              `json:"bill_number"`
	PaidAmount    decimal.Decimal     `json:"paid_amount"`
	DueAmount     decimal.Decimal     `json:"due_amount"`
	Status        trade.PaymentStatus `json:"status"`
	DueDate       *time.Time          `json:"due_date,omitempty"`
	SoldAt        time.Time           `json:"sold_at"`
}

// ToSaleResponse converts a sale record to its response form
func ToSaleResponse(record *trade.SaleRecord) SaleResponse {
	return SaleResponse{
		ID:            record.ID,
		ModelID:       record.ModelID,
		IMEI:          record.IMEI,
		SalePrice:     record.SalePrice,
		PurchasePrice: record.PurchasePrice,
		Profit:        record.Profit,
		Condition:     record.Condition,
		CustomerType:  record.CustomerType,
		ShopID:        record.ShopID,
		CustomerName:  record.CustomerName,
		BillNumber:    record.BillNumber,
		PaidAmount:    record.PaidAmount,
		DueAmount:     record.DueAmount,
		Status:        record.Status,
		DueDate:       record.DueDate,
		SoldAt:        record.SoldAt,
	}
}

// SaleBillResponse is a grouped sale: all records sharing one bill number
type SaleBillResponse struct {
	BillNumber string              `json:"bill_number"`
	Records    []SaleResponse      `json:"records"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	TotalPaid  decimal.Decimal     `json:"total_paid"`
	TotalDue   decimal.Decimal     `json:"total_due"`
	Status     trade.PaymentStatus `json:"status"`
}

// ToSaleBillResponse converts a bill group to its response form
func ToSaleBillResponse(group *trade.BillGroup) SaleBillResponse {
	records := make([]SaleResponse, len(group.Records))
	for i, record := range group.Records {
		records[i] = ToSaleResponse(record)
	}
	return SaleBillResponse{
		BillNumber: group.BillNumber,
		Records:    records,
		TotalPrice: group.TotalPrice,
		TotalPaid:  group.TotalPaid,
		TotalDue:   group.TotalDue,
		Status:     group.Status,
	}
}

// SaleListFilter represents filter options for the sale list
type SaleListFilter struct {
	ShopID       *uuid.UUID           `form:"shop_id"`
	CustomerType *trade.CustomerType  `form:"customer_type"`
	Status       *trade.PaymentStatus `form:"status"`
	Page         int                  `form:"page" binding:"omitempty,min=1"`
	PageSize     int                  `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string               `form:"order_by"`
	OrderDir     string               `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ==================== Return DTOs ====================

// ReturnDeviceRequest represents a request to take a sold device back
type ReturnDeviceRequest struct {
	IMEI   string `json:"imei" binding:"required,imei"`
	Reason string `json:"reason" binding:"max=200"`
}

// ReturnResponse reports the outcome of a device return
type ReturnResponse struct {
	DeviceID   uuid.UUID           `json:"device_id"`
	IMEI       string              `json:"imei"`
	ReturnID   uuid.UUID           `json:"return_id"`
	Status     ledger.DeviceStatus `json:"status"`
	ReturnedAt time.Time           `json:"returned_at"`
}

// ==================== Incentive DTOs ====================

// UpsertIncentiveRequest sets the incentive amount for a brand and month
type UpsertIncentiveRequest struct {
	BrandID uuid.UUID       `json:"brand_id" binding:"required"`
	Month   int             `json:"month" binding:"required,min=1,max=12"`
	Year    int             `json:"year" binding:"required,min=2000"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
}

// IncentiveResponse represents an incentive in API responses
type IncentiveResponse struct {
	ID      uuid.UUID       `json:"id"`
	BrandID uuid.UUID       `json:"brand_id"`
	Month   int             `json:"month"`
	Year    int             `json:"year"`
	Amount  decimal.Decimal `json:"amount"`
}

// ToIncentiveResponse converts an incentive to its response form
func ToIncentiveResponse(incentive *trade.Incentive) IncentiveResponse {
	return IncentiveResponse{
		ID:      incentive.ID,
		BrandID: incentive.BrandID,
		Month:   incentive.Month,
		Year:    incentive.Year,
		Amount:  incentive.Amount,
	}
}
