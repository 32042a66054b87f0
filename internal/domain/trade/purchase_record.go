package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Trade errors
var (
	ErrQuantityMismatch = shared.NewDomainError("QUANTITY_MISMATCH", "Number of IMEIs must match the purchase quantity")
	ErrInvalidAmount    = shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
)

// PurchaseRecord is the append-mostly record of one acquisition batch.
// paid + due always equals quantity * unit price; the payment status is a
// pure function of those balances. Only payment application mutates it
// after creation.
type PurchaseRecord struct {
	shared.TenantAggregateRoot
	ModelID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Condition  Condition       `gorm:"not null;size:10"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	IMEIs      IMEIList        `gorm:"type:jsonb;not null;default:'[]'"`
	SupplierID *uuid.UUID      `gorm:"type:uuid;index"`
	BillNumber string          `gorm:"size:50;index:idx_purchase_records_tenant_bill,priority:2"`
	PaidAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	DueAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Status     PaymentStatus   `gorm:"not null;size:20;index"`
	DueDate    *time.Time
	PurchasedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (PurchaseRecord) TableName() string {
	return "purchase_records"
}

// NewPurchaseRecord creates a purchase batch record. The IMEI count must
// match the quantity exactly; the initial paid amount may not exceed the
// batch total.
func NewPurchaseRecord(tenantID, modelID uuid.UUID, condition Condition, quantity int, unitPrice decimal.Decimal, imeis []string, supplierID *uuid.UUID, billNumber string, paidAmount decimal.Decimal, dueDate *time.Time) (*PurchaseRecord, error) {
	if modelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MODEL", "Model ID cannot be empty")
	}
	if !condition.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONDITION", "Condition must be NEW or USED")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if billNumber == "" {
		return nil, shared.NewDomainError("INVALID_BILL_NUMBER", "Bill number cannot be empty")
	}

	cleaned, err := normalizeIMEIs(imeis)
	if err != nil {
		return nil, shared.NewDomainError("DUPLICATE_DEVICE", err.Error())
	}
	if len(cleaned) != quantity {
		return nil, ErrQuantityMismatch
	}

	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	if paidAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Paid amount cannot be negative")
	}
	if paidAmount.GreaterThan(total) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Paid amount cannot exceed the batch total")
	}

	record := &PurchaseRecord{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ModelID:             modelID,
		Condition:           condition,
		Quantity:            quantity,
		UnitPrice:           unitPrice,
		IMEIs:               cleaned,
		SupplierID:          supplierID,
		BillNumber:          billNumber,
		PaidAmount:          paidAmount,
		DueAmount:           total.Sub(paidAmount),
		DueDate:             dueDate,
		PurchasedAt:         time.Now(),
	}
	record.Status = DerivePaymentStatus(record.PaidAmount, total)
	record.AddDomainEvent(NewPurchaseRecordedEvent(record))
	return record, nil
}

// TotalCost returns quantity * unit price
func (p *PurchaseRecord) TotalCost() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// BalanceConsistent verifies the paid + due = total invariant
func (p *PurchaseRecord) BalanceConsistent() bool {
	return p.PaidAmount.Add(p.DueAmount).Equal(p.TotalCost())
}

// ApplyPayment applies a supplier payment against the outstanding due.
// The applied portion is capped at the current due so the balance
// invariant holds; the capped amount actually applied is returned.
// Fails with ErrInvalidAmount when the amount is not positive.
func (p *PurchaseRecord) ApplyPayment(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	applied := decimal.Min(amount, p.DueAmount)
	p.PaidAmount = p.PaidAmount.Add(applied)
	p.DueAmount = p.DueAmount.Sub(applied)
	p.Status = DerivePaymentStatus(p.PaidAmount, p.TotalCost())
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPurchasePaymentAppliedEvent(p, applied))
	return applied, nil
}
