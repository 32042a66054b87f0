package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/catalog"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// ModelService manages phone models within the brand catalog
type ModelService struct {
	modelRepo catalog.ModelRepository
	brandRepo catalog.BrandRepository
}

// NewModelService creates a new ModelService
func NewModelService(modelRepo catalog.ModelRepository, brandRepo catalog.BrandRepository) *ModelService {
	return &ModelService{
		modelRepo: modelRepo,
		brandRepo: brandRepo,
	}
}

// Create registers a model under an existing brand
func (s *ModelService) Create(ctx context.Context, tenantID uuid.UUID, req CreateModelRequest) (*ModelResponse, error) {
	if _, err := s.brandRepo.FindByIDForTenant(ctx, tenantID, req.BrandID); err != nil {
		return nil, err
	}

	model, err := catalog.NewModel(tenantID, req.BrandID, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.modelRepo.Save(ctx, model); err != nil {
		return nil, err
	}

	response := ToModelResponse(model)
	return &response, nil
}

// GetByID returns a model
func (s *ModelService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ModelResponse, error) {
	model, err := s.modelRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToModelResponse(model)
	return &response, nil
}

// ListByBrand returns all models under a brand
func (s *ModelService) ListByBrand(ctx context.Context, tenantID, brandID uuid.UUID) ([]ModelResponse, error) {
	models, err := s.modelRepo.FindByBrand(ctx, tenantID, brandID)
	if err != nil {
		return nil, err
	}
	responses := make([]ModelResponse, len(models))
	for i := range models {
		responses[i] = ToModelResponse(&models[i])
	}
	return responses, nil
}

// List returns all models for a tenant
func (s *ModelService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]ModelResponse, error) {
	models, err := s.modelRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]ModelResponse, len(models))
	for i := range models {
		responses[i] = ToModelResponse(&models[i])
	}
	return responses, nil
}

// Update renames a model
func (s *ModelService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateModelRequest) (*ModelResponse, error) {
	model, err := s.modelRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := model.Rename(req.Name); err != nil {
		return nil, err
	}
	if err := s.modelRepo.Save(ctx, model); err != nil {
		return nil, err
	}

	response := ToModelResponse(model)
	return &response, nil
}

// Delete removes a model
func (s *ModelService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.modelRepo.DeleteForTenant(ctx, tenantID, id)
}
