package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/ledger"
	"github.com/mobiledger/backend/internal/domain/partner"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// SaleService records device sales and returns. A grouped sale of several
// devices shares one bill number and splits the tendered amount across the
// records in proportion to their sale prices; each device is marked SOLD in
// the same transaction so no record ever points at an unsold device.
type SaleService struct {
	saleRepo   trade.SaleRecordRepository
	deviceRepo ledger.DeviceRepository
	shopRepo   partner.ShopRepository
	txManager  shared.TransactionManager
	eventBus   shared.EventBus
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo trade.SaleRecordRepository, deviceRepo ledger.DeviceRepository, shopRepo partner.ShopRepository, txManager shared.TransactionManager) *SaleService {
	return &SaleService{
		saleRepo:   saleRepo,
		deviceRepo: deviceRepo,
		shopRepo:   shopRepo,
		txManager:  txManager,
	}
}

// SetEventBus sets the bus used to publish device ledger events. Events
// are published after the transaction commits; a nil bus disables them.
func (s *SaleService) SetEventBus(eventBus shared.EventBus) {
	s.eventBus = eventBus
}

func (s *SaleService) publishDeviceEvents(ctx context.Context, devices ...*ledger.Device) {
	if s.eventBus == nil {
		return
	}
	for _, device := range devices {
		if err := s.eventBus.Publish(ctx, device.GetDomainEvents()...); err == nil {
			device.ClearDomainEvents()
		}
	}
}

// Create records a sale of one or more devices under a single bill number.
// Every device must be AVAILABLE; the purchase price captured on each
// device at registration becomes the cost side of its profit figure.
func (s *SaleService) Create(ctx context.Context, tenantID uuid.UUID, req CreateSaleRequest) (*SaleBillResponse, error) {
	if req.PaidAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Paid amount cannot be negative")
	}

	var response SaleBillResponse
	var devices []*ledger.Device

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		billNumber, err := s.saleRepo.GenerateBillNumber(ctx, tenantID)
		if err != nil {
			return err
		}

		devices = make([]*ledger.Device, len(req.Lines))
		prices := make([]decimal.Decimal, len(req.Lines))
		totalPrice := decimal.Zero
		for i, line := range req.Lines {
			device, err := s.deviceRepo.FindActiveByIMEI(ctx, tenantID, line.IMEI)
			if err != nil {
				if shared.IsNotFound(err) {
					return ledger.ErrDeviceNotFound
				}
				return err
			}
			if !device.IsAvailable() {
				return ledger.ErrDeviceNotAvailable
			}
			devices[i] = device
			prices[i] = line.SalePrice
			totalPrice = totalPrice.Add(line.SalePrice)
		}

		if req.PaidAmount.GreaterThan(totalPrice) {
			return shared.NewDomainError("INVALID_AMOUNT", "Paid amount cannot exceed the bill total")
		}

		if req.CustomerType == trade.CustomerTypeShop {
			if err := s.checkCreditLimit(ctx, tenantID, req.ShopID, totalPrice.Sub(req.PaidAmount)); err != nil {
				return err
			}
		}

		shares := trade.ProportionalSplit(req.PaidAmount, prices)

		records := make([]*trade.SaleRecord, len(req.Lines))
		for i, line := range req.Lines {
			device := devices[i]
			purchasePrice := device.CurrentPrice

			record, err := trade.NewSaleRecord(tenantID, trade.NewSaleRecordParams{
				ModelID:       device.ModelID,
				IMEI:          device.IMEI,
				SalePrice:     line.SalePrice,
				PurchasePrice: purchasePrice,
				Condition:     device.Condition,
				CustomerType:  req.CustomerType,
				ShopID:        req.ShopID,
				CustomerName:  req.CustomerName,
				BillNumber:    billNumber,
				PaidAmount:    shares[i],
				DueDate:       req.DueDate,
			})
			if err != nil {
				return err
			}
			records[i] = record

			if err := device.MarkSold(record.ID, line.SalePrice); err != nil {
				return err
			}
		}

		if err := s.saleRepo.SaveAll(ctx, records); err != nil {
			return err
		}
		for _, device := range devices {
			if err := s.deviceRepo.SaveWithLock(ctx, device); err != nil {
				return err
			}
		}

		groups := trade.GroupByBillNumber(records)
		response = ToSaleBillResponse(groups[0])
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publishDeviceEvents(ctx, devices...)
	return &response, nil
}

func (s *SaleService) checkCreditLimit(ctx context.Context, tenantID uuid.UUID, shopID *uuid.UUID, additionalDue decimal.Decimal) error {
	if shopID == nil {
		return shared.NewDomainError("INVALID_SHOP", "Shop sales require a shop reference")
	}
	shop, err := s.shopRepo.FindByIDForTenant(ctx, tenantID, *shopID)
	if err != nil {
		return err
	}
	outstanding, err := s.saleRepo.SumOutstandingByShop(ctx, tenantID, *shopID)
	if err != nil {
		return err
	}
	if !shop.WithinCreditLimit(outstanding, additionalDue) {
		return partner.ErrCreditLimitExceeded
	}
	return nil
}

// Return takes a sold device back. The ledger row moves to RETURNED and
// keeps the sale it came back from; re-entry into stock happens only by
// registering the IMEI under a new purchase.
func (s *SaleService) Return(ctx context.Context, tenantID uuid.UUID, req ReturnDeviceRequest) (*ReturnResponse, error) {
	var response ReturnResponse
	var returned *ledger.Device

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		device, err := s.deviceRepo.FindActiveByIMEI(ctx, tenantID, req.IMEI)
		if err != nil {
			if shared.IsNotFound(err) {
				return ledger.ErrDeviceNotFound
			}
			return err
		}

		returnID := uuid.New()
		if err := device.MarkReturned(returnID, req.Reason); err != nil {
			return err
		}
		if err := s.deviceRepo.SaveWithLock(ctx, device); err != nil {
			return err
		}

		response = ReturnResponse{
			DeviceID:   device.ID,
			IMEI:       device.IMEI,
			ReturnID:   returnID,
			Status:     device.Status,
			ReturnedAt: *device.ReturnedAt,
		}
		returned = device
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publishDeviceEvents(ctx, returned)
	return &response, nil
}

// GetBill retrieves a grouped sale by bill number
func (s *SaleService) GetBill(ctx context.Context, tenantID uuid.UUID, billNumber string) (*SaleBillResponse, error) {
	records, err := s.saleRepo.FindByBillNumber(ctx, tenantID, billNumber)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, shared.ErrNotFound
	}
	groups := trade.GroupByBillNumber(records)
	response := ToSaleBillResponse(groups[0])
	return &response, nil
}

// GetByID retrieves a single sale record by ID
func (s *SaleService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*SaleResponse, error) {
	record, err := s.saleRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToSaleResponse(record)
	return &response, nil
}

// List retrieves sale records with filtering and pagination
func (s *SaleService) List(ctx context.Context, tenantID uuid.UUID, filter SaleListFilter) (shared.Paginated[SaleResponse], error) {
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
	if filter.CustomerType != nil {
		domainFilter.Filters["customer_type"] = filter.CustomerType.String()
	}

	var page shared.Paginated[trade.SaleRecord]
	var err error
	if filter.ShopID != nil {
		page, err = s.saleRepo.FindByShop(ctx, tenantID, *filter.ShopID, domainFilter)
	} else {
		page, err = s.saleRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	}
	if err != nil {
		return shared.Paginated[SaleResponse]{}, err
	}

	items := make([]SaleResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToSaleResponse(&page.Items[i])
	}
	return shared.Paginated[SaleResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}
