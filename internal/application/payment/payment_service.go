package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/payment"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// PaymentService applies incoming and outgoing money to open records and
// keeps an immutable payment audit trail. Every application runs inside
// one transaction: either all touched records and the audit row commit,
// or none do.
type PaymentService struct {
	paymentRepo  payment.PaymentRepository
	saleRepo     trade.SaleRecordRepository
	purchaseRepo trade.PurchaseRecordRepository
	strategy     payment.AllocationStrategy
	txManager    shared.TransactionManager
}

// NewPaymentService creates a new PaymentService using FIFO allocation
func NewPaymentService(paymentRepo payment.PaymentRepository, saleRepo trade.SaleRecordRepository, purchaseRepo trade.PurchaseRecordRepository, txManager shared.TransactionManager) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		strategy:     payment.NewFIFOAllocationStrategy(),
		txManager:    txManager,
	}
}

// ApplyShopPayment settles a shop's open sales oldest-first. Only records
// that have received nothing yet take part; partially paid records are
// settled by addressing their bill directly. Money beyond the open dues
// stays on the payment as an unallocated remainder.
func (s *PaymentService) ApplyShopPayment(ctx context.Context, tenantID uuid.UUID, req ApplyShopPaymentRequest) (*PaymentResponse, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, payment.ErrInvalidAmount
	}

	var response PaymentResponse

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		records, err := s.saleRepo.FindPendingByShop(ctx, tenantID, req.ShopID)
		if err != nil {
			return err
		}

		targets := make([]payment.AllocationTarget, 0, len(records))
		byID := make(map[uuid.UUID]*trade.SaleRecord, len(records))
		for _, record := range records {
			byID[record.ID] = record
			targets = append(targets, payment.AllocationTarget{
				ID:          record.ID,
				Number:      record.BillNumber,
				Outstanding: record.DueAmount,
				RecordedAt:  record.SoldAt,
				CreatedAt:   record.CreatedAt,
			})
		}

		outcome, err := s.strategy.Allocate(req.Amount, targets)
		if err != nil {
			return err
		}

		for _, line := range outcome.Allocations {
			record := byID[line.TargetID]
			if _, err := record.ApplyPayment(line.Amount); err != nil {
				return err
			}
			if err := s.saleRepo.SaveWithLock(ctx, record); err != nil {
				return err
			}
		}

		p, err := payment.NewPayment(tenantID, payment.CounterpartyShop, &req.ShopID, "", req.Amount, outcome, req.Note)
		if err != nil {
			return err
		}
		if err := s.paymentRepo.Save(ctx, p); err != nil {
			return err
		}

		response = ToPaymentResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// ApplySupplierPayment settles one purchase record's outstanding due
func (s *PaymentService) ApplySupplierPayment(ctx context.Context, tenantID uuid.UUID, req ApplySupplierPaymentRequest) (*PaymentResponse, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, payment.ErrInvalidAmount
	}

	var response PaymentResponse

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		record, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, req.PurchaseID)
		if err != nil {
			return err
		}
		if record.SupplierID == nil {
			return shared.NewDomainError("NO_SUPPLIER", "Purchase record has no supplier to pay")
		}

		applied, err := record.ApplyPayment(req.Amount)
		if err != nil {
			return err
		}
		if err := s.purchaseRepo.SaveWithLock(ctx, record); err != nil {
			return err
		}

		outcome := singleTargetOutcome(record.ID, record.BillNumber, req.Amount, applied)
		p, err := payment.NewPayment(tenantID, payment.CounterpartySupplier, record.SupplierID, record.BillNumber, req.Amount, outcome, req.Note)
		if err != nil {
			return err
		}
		if err := s.paymentRepo.Save(ctx, p); err != nil {
			return err
		}

		response = ToPaymentResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// ApplyBillPayment settles the sale records of one bill in their recorded
// order, partially paid records included
func (s *PaymentService) ApplyBillPayment(ctx context.Context, tenantID uuid.UUID, req ApplyBillPaymentRequest) (*PaymentResponse, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, payment.ErrInvalidAmount
	}

	var response PaymentResponse

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		records, err := s.saleRepo.FindByBillNumber(ctx, tenantID, req.BillNumber)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return shared.ErrNotFound
		}

		targets := make([]payment.AllocationTarget, 0, len(records))
		byID := make(map[uuid.UUID]*trade.SaleRecord, len(records))
		for _, record := range records {
			byID[record.ID] = record
			targets = append(targets, payment.AllocationTarget{
				ID:          record.ID,
				Number:      record.BillNumber,
				Outstanding: record.DueAmount,
				RecordedAt:  record.SoldAt,
				CreatedAt:   record.CreatedAt,
			})
		}

		outcome, err := s.strategy.Allocate(req.Amount, targets)
		if err != nil {
			return err
		}

		for _, line := range outcome.Allocations {
			record := byID[line.TargetID]
			if _, err := record.ApplyPayment(line.Amount); err != nil {
				return err
			}
			if err := s.saleRepo.SaveWithLock(ctx, record); err != nil {
				return err
			}
		}

		p, err := payment.NewPayment(tenantID, payment.CounterpartyBill, nil, req.BillNumber, req.Amount, outcome, req.Note)
		if err != nil {
			return err
		}
		if err := s.paymentRepo.Save(ctx, p); err != nil {
			return err
		}

		response = ToPaymentResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToPaymentResponse(p)
	return &response, nil
}

// List retrieves payments with filtering and pagination
func (s *PaymentService) List(ctx context.Context, tenantID uuid.UUID, filter PaymentListFilter) (shared.Paginated[PaymentResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	var page shared.Paginated[payment.Payment]
	var err error
	if filter.CounterpartyType != nil && filter.CounterpartyID != nil {
		page, err = s.paymentRepo.FindByCounterparty(ctx, tenantID, *filter.CounterpartyType, *filter.CounterpartyID, domainFilter)
	} else {
		page, err = s.paymentRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	}
	if err != nil {
		return shared.Paginated[PaymentResponse]{}, err
	}

	items := make([]PaymentResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToPaymentResponse(&page.Items[i])
	}
	return shared.Paginated[PaymentResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

func singleTargetOutcome(targetID uuid.UUID, number string, amount, applied decimal.Decimal) *payment.AllocationOutcome {
	outcome := &payment.AllocationOutcome{
		Allocations:     []payment.AllocationLine{},
		TotalAllocated:  decimal.Zero,
		RemainingAmount: amount,
		FullySettled:    []uuid.UUID{},
		PartiallyPaid:   []uuid.UUID{},
	}
	if applied.GreaterThan(decimal.Zero) {
		outcome.Allocations = append(outcome.Allocations, payment.AllocationLine{
			TargetID: targetID,
			Number:   number,
			Amount:   applied,
		})
		outcome.TotalAllocated = applied
		outcome.RemainingAmount = amount.Sub(applied)
	}
	return outcome
}
