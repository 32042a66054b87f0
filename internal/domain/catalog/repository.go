package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// BrandRepository defines the interface for brand persistence
type BrandRepository interface {
	// FindByIDForTenant finds a brand by ID for a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Brand, error)

	// FindByName finds a brand by exact name for a tenant
	FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*Brand, error)

	// FindAllForTenant finds all brands for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Brand, error)

	// Save creates or updates a brand
	Save(ctx context.Context, brand *Brand) error

	// DeleteForTenant deletes a brand for a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}

// ModelRepository defines the interface for model persistence
type ModelRepository interface {
	// FindByIDForTenant finds a model by ID for a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Model, error)

	// FindByBrand finds all models under a brand
	FindByBrand(ctx context.Context, tenantID, brandID uuid.UUID) ([]Model, error)

	// FindAllForTenant finds all models for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Model, error)

	// Save creates or updates a model
	Save(ctx context.Context, model *Model) error

	// DeleteForTenant deletes a model for a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}
