package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Payment errors
var (
	ErrInvalidAmount   = shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	ErrPaymentNotFound = shared.NewDomainError("PAYMENT_NOT_FOUND", "Payment not found")
)

// CounterpartyType identifies who the money moved to or from
type CounterpartyType string

const (
	CounterpartyShop     CounterpartyType = "SHOP"     // money received from a shop customer
	CounterpartySupplier CounterpartyType = "SUPPLIER" // money paid out to a supplier
	CounterpartyBill     CounterpartyType = "BILL"     // money received against one sale bill
)

// IsValid checks if the counterparty type is valid
func (c CounterpartyType) IsValid() bool {
	switch c {
	case CounterpartyShop, CounterpartySupplier, CounterpartyBill:
		return true
	}
	return false
}

// String returns the string representation of CounterpartyType
func (c CounterpartyType) String() string {
	return string(c)
}

// Payment is the immutable audit row for one money movement. Corrections
// are new compensating payments, never edits; the allocation breakdown is
// captured at creation and never changes.
type Payment struct {
	shared.TenantAggregateRoot
	CounterpartyType CounterpartyType `gorm:"not null;size:20;index:idx_payments_tenant_counterparty,priority:2"`
	CounterpartyID   *uuid.UUID       `gorm:"type:uuid;index:idx_payments_tenant_counterparty,priority:3"`
	BillNumber       string           `gorm:"size:50;index"`
	Amount           decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	AllocatedAmount  decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	Allocations      AllocationLines  `gorm:"type:jsonb;not null;default:'[]'"`
	Note             string           `gorm:"size:255"`
	ReceivedAt       time.Time        `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment records a money movement together with its allocation
// breakdown. The allocated amount may be less than the payment amount when
// the counterparty had less outstanding than was tendered.
func NewPayment(tenantID uuid.UUID, counterpartyType CounterpartyType, counterpartyID *uuid.UUID, billNumber string, amount decimal.Decimal, outcome *AllocationOutcome, note string) (*Payment, error) {
	if !counterpartyType.IsValid() {
		return nil, shared.NewDomainError("INVALID_COUNTERPARTY", "Unknown counterparty type")
	}
	if counterpartyType != CounterpartyBill && (counterpartyID == nil || *counterpartyID == uuid.Nil) {
		return nil, shared.NewDomainError("INVALID_COUNTERPARTY", "Counterparty reference is required")
	}
	if counterpartyType == CounterpartyBill && billNumber == "" {
		return nil, shared.NewDomainError("INVALID_BILL_NUMBER", "Bill number is required for bill payments")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if outcome == nil {
		return nil, shared.NewDomainError("INVALID_ALLOCATION", "Allocation outcome is required")
	}

	p := &Payment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CounterpartyType:    counterpartyType,
		CounterpartyID:      counterpartyID,
		BillNumber:          billNumber,
		Amount:              amount,
		AllocatedAmount:     outcome.TotalAllocated,
		Allocations:         outcome.Lines(),
		Note:                note,
		ReceivedAt:          time.Now(),
	}
	p.AddDomainEvent(NewPaymentRecordedEvent(p))
	return p, nil
}

// UnallocatedAmount returns the portion of the payment that found no
// outstanding due to settle
func (p *Payment) UnallocatedAmount() decimal.Decimal {
	return p.Amount.Sub(p.AllocatedAmount)
}
