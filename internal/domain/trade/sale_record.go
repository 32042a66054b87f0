package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SaleRecord is the record of one device disposition. Profit and the price
// fields are write-once; only payment application mutates the paid/due
// balances afterwards. A grouped multi-device sale produces one SaleRecord
// per device, all sharing a bill number.
type SaleRecord struct {
	shared.TenantAggregateRoot
	ModelID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	IMEI          string          `gorm:"not null;size:50;index:idx_sale_records_tenant_imei,priority:2"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Profit        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Condition     Condition       `gorm:"not null;size:10"`
	CustomerType  CustomerType    `gorm:"not null;size:20"`
	ShopID        *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName  string          `gorm:"size:100"`
	BillNumber    string          `gorm:"size:50;index:idx_sale_records_tenant_bill,priority:2"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	DueAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Status        PaymentStatus   `gorm:"not null;size:20;index"`
	DueDate       *time.Time
	SoldAt        time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (SaleRecord) TableName() string {
	return "sale_records"
}

// NewSaleRecordParams carries the inputs for creating a sale record
type NewSaleRecordParams struct {
	ModelID       uuid.UUID
	IMEI          string
	SalePrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	Condition     Condition
	CustomerType  CustomerType
	ShopID        *uuid.UUID
	CustomerName  string
	BillNumber    string
	PaidAmount    decimal.Decimal
	DueDate       *time.Time
}

// NewSaleRecord creates a sale record for one device. Profit is computed
// here once (sale price minus the purchase price copied at sale time) and
// never recomputed or mutated afterwards.
func NewSaleRecord(tenantID uuid.UUID, params NewSaleRecordParams) (*SaleRecord, error) {
	if params.ModelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MODEL", "Model ID cannot be empty")
	}
	imei := strings.TrimSpace(params.IMEI)
	if imei == "" {
		return nil, shared.NewDomainError("INVALID_IMEI", "IMEI cannot be empty")
	}
	if params.SalePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}
	if params.PurchasePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}
	if !params.Condition.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONDITION", "Condition must be NEW or USED")
	}
	if !params.CustomerType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_TYPE", "Customer type must be INDIVIDUAL or SHOP")
	}
	if params.CustomerType == CustomerTypeShop && (params.ShopID == nil || *params.ShopID == uuid.Nil) {
		return nil, shared.NewDomainError("INVALID_SHOP", "Shop sales require a shop reference")
	}
	if params.CustomerType == CustomerTypeIndividual && params.ShopID != nil {
		return nil, shared.NewDomainError("INVALID_SHOP", "Individual sales cannot reference a shop")
	}
	if params.BillNumber == "" {
		return nil, shared.NewDomainError("INVALID_BILL_NUMBER", "Bill number cannot be empty")
	}
	if params.PaidAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Paid amount cannot be negative")
	}
	if params.PaidAmount.GreaterThan(params.SalePrice) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Paid amount cannot exceed the sale price")
	}

	record := &SaleRecord{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ModelID:             params.ModelID,
		IMEI:                imei,
		SalePrice:           params.SalePrice,
		PurchasePrice:       params.PurchasePrice,
		Profit:              params.SalePrice.Sub(params.PurchasePrice),
		Condition:           params.Condition,
		CustomerType:        params.CustomerType,
		ShopID:              params.ShopID,
		CustomerName:        params.CustomerName,
		BillNumber:          params.BillNumber,
		PaidAmount:          params.PaidAmount,
		DueAmount:           params.SalePrice.Sub(params.PaidAmount),
		DueDate:             params.DueDate,
		SoldAt:              time.Now(),
	}
	record.Status = DerivePaymentStatus(record.PaidAmount, record.SalePrice)
	record.AddDomainEvent(NewSaleRecordedEvent(record))
	return record, nil
}

// BalanceConsistent verifies the paid + due = sale price invariant
func (s *SaleRecord) BalanceConsistent() bool {
	return s.PaidAmount.Add(s.DueAmount).Equal(s.SalePrice)
}

// ApplyPayment applies an incoming payment against the outstanding due.
// The applied portion is capped at the current due; the capped amount
// actually applied is returned. Fails with ErrInvalidAmount when the
// amount is not positive.
func (s *SaleRecord) ApplyPayment(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	applied := decimal.Min(amount, s.DueAmount)
	s.PaidAmount = s.PaidAmount.Add(applied)
	s.DueAmount = s.DueAmount.Sub(applied)
	s.Status = DerivePaymentStatus(s.PaidAmount, s.SalePrice)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSalePaymentAppliedEvent(s, applied))
	return applied, nil
}
