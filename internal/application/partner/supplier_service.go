package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/partner"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
)

// SupplierService manages suppliers
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	purchaseRepo trade.PurchaseRecordRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, purchaseRepo trade.PurchaseRecordRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Create registers a new supplier
func (s *SupplierService) Create(ctx context.Context, tenantID uuid.UUID, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(tenantID, req.Name)
	if err != nil {
		return nil, err
	}
	supplier.SetContactInfo(req.ContactInfo, req.Address)
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID returns a supplier
func (s *SupplierService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List returns all suppliers for a tenant
func (s *SupplierService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]SupplierResponse, error) {
	suppliers, err := s.supplierRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses, nil
}

// Update changes supplier details
func (s *SupplierService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Rename(req.Name); err != nil {
		return nil, err
	}
	supplier.SetContactInfo(req.ContactInfo, req.Address)
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete removes a supplier. Suppliers with pending purchase dues cannot
// be deleted.
func (s *SupplierService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	pending, err := s.purchaseRepo.FindPendingBySupplier(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		return shared.NewDomainError("SUPPLIER_HAS_OUTSTANDING", "Cannot delete a supplier with unpaid purchases")
	}
	return s.supplierRepo.DeleteForTenant(ctx, tenantID, id)
}
