package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mobiledger/backend/internal/domain/partner"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// GormShopRepository implements ShopRepository using GORM
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a new GormShopRepository
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// FindByIDForTenant finds a shop by ID within a tenant
func (r *GormShopRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Shop, error) {
	var shop partner.Shop
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// FindAllForTenant finds all shops for a tenant
func (r *GormShopRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Shop, error) {
	query := dbFromContext(ctx, r.db).Model(&partner.Shop{}).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR owner_name ILIKE ?", pattern, pattern)
	}
	query = applyPagination(query, filter, "name ASC", "name", "created_at", "credit_limit")

	var shops []partner.Shop
	if err := query.Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// Save creates or updates a shop
func (r *GormShopRepository) Save(ctx context.Context, shop *partner.Shop) error {
	return dbFromContext(ctx, r.db).Save(shop).Error
}

// DeleteForTenant deletes a shop within a tenant
func (r *GormShopRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&partner.Shop{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ partner.ShopRepository = (*GormShopRepository)(nil)
