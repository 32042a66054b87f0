package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// ShopRepository defines the interface for shop persistence
type ShopRepository interface {
	// FindByIDForTenant finds a shop by ID for a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Shop, error)

	// FindAllForTenant finds all shops for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Shop, error)

	// Save creates or updates a shop
	Save(ctx context.Context, shop *Shop) error

	// DeleteForTenant deletes a shop for a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByIDForTenant finds a supplier by ID for a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Supplier, error)

	// FindAllForTenant finds all suppliers for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// DeleteForTenant deletes a supplier for a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}
