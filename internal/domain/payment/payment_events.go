package payment

import (
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	AggregateTypePayment = "Payment"

	EventTypePaymentRecorded = "payment.recorded"
)

// PaymentRecordedEvent is raised when a money movement is recorded
type PaymentRecordedEvent struct {
	shared.BaseDomainEvent
	CounterpartyType CounterpartyType `json:"counterparty_type"`
	Amount           decimal.Decimal  `json:"amount"`
	AllocatedAmount  decimal.Decimal  `json:"allocated_amount"`
	BillNumber       string           `json:"bill_number,omitempty"`
}

// NewPaymentRecordedEvent creates a PaymentRecordedEvent
func NewPaymentRecordedEvent(p *Payment) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypePaymentRecorded, AggregateTypePayment, p.ID, p.TenantID),
		CounterpartyType: p.CounterpartyType,
		Amount:           p.Amount,
		AllocatedAmount:  p.AllocatedAmount,
		BillNumber:       p.BillNumber,
	}
}
