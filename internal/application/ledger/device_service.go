package ledger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/ledger"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
)

// DeviceService answers IMEI lookups against the device ledger
type DeviceService struct {
	deviceRepo ledger.DeviceRepository
	saleRepo   trade.SaleRecordRepository
}

// NewDeviceService creates a new DeviceService
func NewDeviceService(deviceRepo ledger.DeviceRepository, saleRepo trade.SaleRecordRepository) *DeviceService {
	return &DeviceService{
		deviceRepo: deviceRepo,
		saleRepo:   saleRepo,
	}
}

// SearchByIMEI returns the full trail for an IMEI: the active ledger row
// if one exists, every historical row (a returned and re-acquired handset
// has several), and each sale the IMEI appeared in.
func (s *DeviceService) SearchByIMEI(ctx context.Context, tenantID uuid.UUID, imei string) (*DeviceHistoryResponse, error) {
	imei = strings.TrimSpace(imei)
	if imei == "" {
		return nil, shared.NewDomainError("INVALID_IMEI", "IMEI cannot be empty")
	}

	rows, err := s.deviceRepo.FindHistoryByIMEI(ctx, tenantID, imei)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ledger.ErrDeviceNotFound
	}

	response := &DeviceHistoryResponse{
		IMEI:    imei,
		History: make([]DeviceResponse, len(rows)),
	}
	for i := range rows {
		response.History[i] = ToDeviceResponse(&rows[i])
		if rows[i].Status.IsActive() && response.Current == nil {
			current := response.History[i]
			response.Current = &current
		}
	}

	sales, err := s.saleRepo.FindByIMEI(ctx, tenantID, imei)
	if err != nil {
		return nil, err
	}
	response.Sales = make([]DeviceSaleEntry, len(sales))
	for i := range sales {
		response.Sales[i] = DeviceSaleEntry{
			SaleID:     sales[i].ID,
			BillNumber: sales[i].BillNumber,
			SalePrice:  sales[i].SalePrice,
			Status:     sales[i].Status,
			SoldAt:     sales[i].SoldAt,
		}
	}
	return response, nil
}

// GetByID returns one device ledger row
func (s *DeviceService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*DeviceResponse, error) {
	device, err := s.deviceRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToDeviceResponse(device)
	return &response, nil
}

// ListByStatus lists devices in a given lifecycle state
func (s *DeviceService) ListByStatus(ctx context.Context, tenantID uuid.UUID, status ledger.DeviceStatus, filter shared.Filter) ([]DeviceResponse, error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Status must be AVAILABLE, SOLD or RETURNED")
	}
	devices, err := s.deviceRepo.FindByStatus(ctx, tenantID, status, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]DeviceResponse, len(devices))
	for i := range devices {
		responses[i] = ToDeviceResponse(&devices[i])
	}
	return responses, nil
}
