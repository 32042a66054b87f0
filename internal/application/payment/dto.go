package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/payment"
	"github.com/shopspring/decimal"
)

// ApplyShopPaymentRequest settles a shop's outstanding sales oldest-first
type ApplyShopPaymentRequest struct {
	ShopID uuid.UUID       `json:"shop_id" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   string          `json:"note" binding:"max=255"`
}

// ApplySupplierPaymentRequest settles one purchase record's due
type ApplySupplierPaymentRequest struct {
	PurchaseID uuid.UUID       `json:"purchase_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Note       string          `json:"note" binding:"max=255"`
}

// ApplyBillPaymentRequest settles the sale records of one bill
type ApplyBillPaymentRequest struct {
	BillNumber string          `json:"bill_number" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Note       string          `json:"note" binding:"max=255"`
}

// AllocationLineResponse is one settled slice in a payment response
type AllocationLineResponse struct {
	TargetID uuid.UUID       `json:"target_id"`
	Number   string          `json:"number"`
	Amount   decimal.Decimal `json:"amount"`
}

// PaymentResponse represents a recorded payment in API responses
type PaymentResponse struct {
	ID               uuid.UUID                `json:"id"`
	CounterpartyType payment.CounterpartyType `json:"counterparty_type"`
	CounterpartyID   *uuid.UUID               `json:"counterparty_id,omitempty"`
	BillNumber       string                   `json:"bill_number,omitempty"`
	Amount           decimal.Decimal          `json:"amount"`
	AllocatedAmount  decimal.Decimal          `json:"allocated_amount"`
	UnallocatedAmount decimal.Decimal         `json:"unallocated_amount"`
	Allocations      []AllocationLineResponse `json:"allocations"`
	Note             string                   `json:"note,omitempty"`
	ReceivedAt       time.Time                `json:"received_at"`
}

// ToPaymentResponse converts a payment to its response form
func ToPaymentResponse(p *payment.Payment) PaymentResponse {
	allocations := make([]AllocationLineResponse, len(p.Allocations))
	for i, line := range p.Allocations {
		allocations[i] = AllocationLineResponse{
			TargetID: line.TargetID,
			Number:   line.Number,
			Amount:   line.Amount,
		}
	}
	return PaymentResponse{
		ID:                p.ID,
		CounterpartyType:  p.CounterpartyType,
		CounterpartyID:    p.CounterpartyID,
		BillNumber:        p.BillNumber,
		Amount:            p.Amount,
		AllocatedAmount:   p.AllocatedAmount,
		UnallocatedAmount: p.UnallocatedAmount(),
		Allocations:       allocations,
		Note:              p.Note,
		ReceivedAt:        p.ReceivedAt,
	}
}

// PaymentListFilter represents filter options for the payment list
type PaymentListFilter struct {
	CounterpartyType *payment.CounterpartyType `form:"counterparty_type"`
	CounterpartyID   *uuid.UUID                `form:"counterparty_id"`
	Page             int                       `form:"page" binding:"omitempty,min=1"`
	PageSize         int                       `form:"page_size" binding:"omitempty,min=1,max=100"`
}
