package trade

import (
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	AggregateTypeSaleRecord = "SaleRecord"

	EventTypeSaleRecorded       = "trade.sale.recorded"
	EventTypeSalePaymentApplied = "trade.sale.payment_applied"
)

// SaleRecordedEvent is raised when a device sale is recorded
type SaleRecordedEvent struct {
	shared.BaseDomainEvent
	IMEI         string          `json:"imei"`
	BillNumber   string          `json:"bill_number"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	Profit       decimal.Decimal `json:"profit"`
	CustomerType CustomerType    `json:"customer_type"`
}

// NewSaleRecordedEvent creates a SaleRecordedEvent
func NewSaleRecordedEvent(record *SaleRecord) *SaleRecordedEvent {
	return &SaleRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleRecorded, AggregateTypeSaleRecord, record.ID, record.TenantID),
		IMEI:            record.IMEI,
		BillNumber:      record.BillNumber,
		SalePrice:       record.SalePrice,
		Profit:          record.Profit,
		CustomerType:    record.CustomerType,
	}
}

// SalePaymentAppliedEvent is raised when a payment is applied to a sale
type SalePaymentAppliedEvent struct {
	shared.BaseDomainEvent
	IMEI          string          `json:"imei"`
	BillNumber    string          `json:"bill_number"`
	AppliedAmount decimal.Decimal `json:"applied_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	DueAmount     decimal.Decimal `json:"due_amount"`
	Status        PaymentStatus   `json:"status"`
}

// NewSalePaymentAppliedEvent creates a SalePaymentAppliedEvent
func NewSalePaymentAppliedEvent(record *SaleRecord, applied decimal.Decimal) *SalePaymentAppliedEvent {
	return &SalePaymentAppliedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalePaymentApplied, AggregateTypeSaleRecord, record.ID, record.TenantID),
		IMEI:            record.IMEI,
		BillNumber:      record.BillNumber,
		AppliedAmount:   applied,
		PaidAmount:      record.PaidAmount,
		DueAmount:       record.DueAmount,
		Status:          record.Status,
	}
}
