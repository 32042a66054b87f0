package trade

import (
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	AggregateTypePurchaseRecord = "PurchaseRecord"

	EventTypePurchaseRecorded       = "trade.purchase.recorded"
	EventTypePurchasePaymentApplied = "trade.purchase.payment_applied"
)

// PurchaseRecordedEvent is raised when a purchase batch is recorded
type PurchaseRecordedEvent struct {
	shared.BaseDomainEvent
	BillNumber string          `json:"bill_number"`
	Quantity   int             `json:"quantity"`
	TotalCost  decimal.Decimal `json:"total_cost"`
}

// NewPurchaseRecordedEvent creates a PurchaseRecordedEvent
func NewPurchaseRecordedEvent(record *PurchaseRecord) *PurchaseRecordedEvent {
	return &PurchaseRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseRecorded, AggregateTypePurchaseRecord, record.ID, record.TenantID),
		BillNumber:      record.BillNumber,
		Quantity:        record.Quantity,
		TotalCost:       record.TotalCost(),
	}
}

// PurchasePaymentAppliedEvent is raised when a payment is applied to a purchase
type PurchasePaymentAppliedEvent struct {
	shared.BaseDomainEvent
	BillNumber    string          `json:"bill_number"`
	AppliedAmount decimal.Decimal `json:"applied_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	DueAmount     decimal.Decimal `json:"due_amount"`
	Status        PaymentStatus   `json:"status"`
}

// NewPurchasePaymentAppliedEvent creates a PurchasePaymentAppliedEvent
func NewPurchasePaymentAppliedEvent(record *PurchaseRecord, applied decimal.Decimal) *PurchasePaymentAppliedEvent {
	return &PurchasePaymentAppliedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchasePaymentApplied, AggregateTypePurchaseRecord, record.ID, record.TenantID),
		BillNumber:      record.BillNumber,
		AppliedAmount:   applied,
		PaidAmount:      record.PaidAmount,
		DueAmount:       record.DueAmount,
		Status:          record.Status,
	}
}
