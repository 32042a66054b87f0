package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/catalog"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// BrandService manages the brand catalog
type BrandService struct {
	brandRepo catalog.BrandRepository
	modelRepo catalog.ModelRepository
}

// NewBrandService creates a new BrandService
func NewBrandService(brandRepo catalog.BrandRepository, modelRepo catalog.ModelRepository) *BrandService {
	return &BrandService{
		brandRepo: brandRepo,
		modelRepo: modelRepo,
	}
}

// Create registers a new brand. Brand names are unique per tenant.
func (s *BrandService) Create(ctx context.Context, tenantID uuid.UUID, req CreateBrandRequest) (*BrandResponse, error) {
	name := strings.TrimSpace(req.Name)
	existing, err := s.brandRepo.FindByName(ctx, tenantID, name)
	if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("BRAND_ALREADY_EXISTS", "A brand with this name already exists")
	}

	brand, err := catalog.NewBrand(tenantID, name)
	if err != nil {
		return nil, err
	}
	if err := s.brandRepo.Save(ctx, brand); err != nil {
		return nil, err
	}

	response := ToBrandResponse(brand)
	return &response, nil
}

// GetByID returns a brand with its models
func (s *BrandService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*BrandResponse, error) {
	brand, err := s.brandRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	models, err := s.modelRepo.FindByBrand(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	brand.Models = models

	response := ToBrandResponse(brand)
	return &response, nil
}

// List returns all brands for a tenant
func (s *BrandService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]BrandResponse, error) {
	brands, err := s.brandRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]BrandResponse, len(brands))
	for i := range brands {
		responses[i] = ToBrandResponse(&brands[i])
	}
	return responses, nil
}

// Update renames a brand
func (s *BrandService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateBrandRequest) (*BrandResponse, error) {
	brand, err := s.brandRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := brand.Rename(req.Name); err != nil {
		return nil, err
	}
	if err := s.brandRepo.Save(ctx, brand); err != nil {
		return nil, err
	}

	response := ToBrandResponse(brand)
	return &response, nil
}

// Delete removes a brand. Brands with models cannot be deleted.
func (s *BrandService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	models, err := s.modelRepo.FindByBrand(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if len(models) > 0 {
		return shared.NewDomainError("BRAND_HAS_MODELS", "Cannot delete a brand that still has models")
	}
	return s.brandRepo.DeleteForTenant(ctx, tenantID, id)
}
