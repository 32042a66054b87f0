package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/partner"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// ShopService manages credit-buying shops. Outstanding balances are always
// derived from sale record dues, never stored on the shop row.
type ShopService struct {
	shopRepo partner.ShopRepository
	saleRepo trade.SaleRecordRepository
}

// NewShopService creates a new ShopService
func NewShopService(shopRepo partner.ShopRepository, saleRepo trade.SaleRecordRepository) *ShopService {
	return &ShopService{
		shopRepo: shopRepo,
		saleRepo: saleRepo,
	}
}

// Create registers a new shop
func (s *ShopService) Create(ctx context.Context, tenantID uuid.UUID, req CreateShopRequest) (*ShopResponse, error) {
	shop, err := partner.NewShop(tenantID, req.Name, req.OwnerName)
	if err != nil {
		return nil, err
	}
	shop.SetContactInfo(req.ContactInfo, req.Address)
	if !req.CreditLimit.IsZero() {
		if err := shop.SetCreditLimit(req.CreditLimit); err != nil {
			return nil, err
		}
	}
	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}

	response := ToShopResponse(shop)
	return &response, nil
}

// GetByID returns a shop with its derived outstanding balance
func (s *ShopService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ShopBalanceResponse, error) {
	shop, err := s.shopRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	outstanding, err := s.saleRepo.SumOutstandingByShop(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return &ShopBalanceResponse{
		ShopResponse: ToShopResponse(shop),
		Outstanding:  outstanding,
	}, nil
}

// List returns all shops for a tenant
func (s *ShopService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]ShopResponse, error) {
	shops, err := s.shopRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]ShopResponse, len(shops))
	for i := range shops {
		responses[i] = ToShopResponse(&shops[i])
	}
	return responses, nil
}

// Update changes shop details and credit limit
func (s *ShopService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateShopRequest) (*ShopResponse, error) {
	shop, err := s.shopRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := shop.UpdateDetails(req.Name, req.OwnerName); err != nil {
		return nil, err
	}
	shop.SetContactInfo(req.ContactInfo, req.Address)
	if err := shop.SetCreditLimit(req.CreditLimit); err != nil {
		return nil, err
	}
	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}

	response := ToShopResponse(shop)
	return &response, nil
}

// Delete removes a shop. Shops with outstanding dues cannot be deleted.
func (s *ShopService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	outstanding, err := s.saleRepo.SumOutstandingByShop(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if outstanding.GreaterThan(decimal.Zero) {
		return shared.NewDomainError("SHOP_HAS_OUTSTANDING", "Cannot delete a shop with outstanding dues")
	}
	return s.shopRepo.DeleteForTenant(ctx, tenantID, id)
}
