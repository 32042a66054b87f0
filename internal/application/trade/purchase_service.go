package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/ledger"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
)

// PurchaseService records acquisition batches and registers their devices
// in the ledger. Both writes happen inside one transaction so a failed
// device registration never leaves an orphan purchase record.
type PurchaseService struct {
	purchaseRepo trade.PurchaseRecordRepository
	deviceRepo   ledger.DeviceRepository
	txManager    shared.TransactionManager
	eventBus     shared.EventBus
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(purchaseRepo trade.PurchaseRecordRepository, deviceRepo ledger.DeviceRepository, txManager shared.TransactionManager) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		deviceRepo:   deviceRepo,
		txManager:    txManager,
	}
}

// SetEventBus sets the bus used to publish device ledger events. Events
// are published after the transaction commits; a nil bus disables them.
func (s *PurchaseService) SetEventBus(eventBus shared.EventBus) {
	s.eventBus = eventBus
}

// Create records a purchase batch and registers one AVAILABLE device per
// IMEI. An IMEI already held by an AVAILABLE or SOLD device is rejected
// with DUPLICATE_DEVICE; a previously RETURNED IMEI may be re-acquired.
func (s *PurchaseService) Create(ctx context.Context, tenantID uuid.UUID, req CreatePurchaseRequest) (*PurchaseResponse, error) {
	var response PurchaseResponse
	var registered []*ledger.Device

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		billNumber, err := s.purchaseRepo.GenerateBillNumber(ctx, tenantID)
		if err != nil {
			return err
		}

		record, err := trade.NewPurchaseRecord(tenantID, req.ModelID, req.Condition, req.Quantity, req.UnitPrice, req.IMEIs, req.SupplierID, billNumber, req.PaidAmount, req.DueDate)
		if err != nil {
			return err
		}

		devices := make([]*ledger.Device, 0, len(record.IMEIs))
		for _, imei := range record.IMEIs {
			if _, err := s.deviceRepo.FindActiveByIMEI(ctx, tenantID, imei); err == nil {
				return ledger.ErrDuplicateDevice
			} else if !shared.IsNotFound(err) {
				return err
			}

			device, err := ledger.NewDevice(tenantID, imei, record.ModelID, record.ID, record.Condition, record.UnitPrice)
			if err != nil {
				return err
			}
			devices = append(devices, device)
		}

		if err := s.purchaseRepo.Save(ctx, record); err != nil {
			return err
		}
		if err := s.deviceRepo.SaveAll(ctx, devices); err != nil {
			return err
		}

		registered = devices
		response = ToPurchaseResponse(record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.eventBus != nil {
		for _, device := range registered {
			if err := s.eventBus.Publish(ctx, device.GetDomainEvents()...); err == nil {
				device.ClearDomainEvents()
			}
		}
	}
	return &response, nil
}

// GetByID retrieves a purchase record by ID
func (s *PurchaseService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*PurchaseResponse, error) {
	record, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseResponse(record)
	return &response, nil
}

// GetByBillNumber retrieves a purchase record by bill number
func (s *PurchaseService) GetByBillNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) (*PurchaseResponse, error) {
	record, err := s.purchaseRepo.FindByBillNumber(ctx, tenantID, billNumber)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseResponse(record)
	return &response, nil
}

// List retrieves purchase records with filtering and pagination
func (s *PurchaseService) List(ctx context.Context, tenantID uuid.UUID, filter PurchaseListFilter) (shared.Paginated[PurchaseResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = filter.Status.String()
	}

	var page shared.Paginated[trade.PurchaseRecord]
	var err error
	if filter.SupplierID != nil {
		page, err = s.purchaseRepo.FindBySupplier(ctx, tenantID, *filter.SupplierID, domainFilter)
	} else {
		page, err = s.purchaseRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	}
	if err != nil {
		return shared.Paginated[PurchaseResponse]{}, err
	}

	items := make([]PurchaseResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToPurchaseResponse(&page.Items[i])
	}
	return shared.Paginated[PurchaseResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}
