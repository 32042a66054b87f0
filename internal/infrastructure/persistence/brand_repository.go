package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mobiledger/backend/internal/domain/catalog"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// GormBrandRepository implements BrandRepository using GORM
type GormBrandRepository struct {
	db *gorm.DB
}

// NewGormBrandRepository creates a new GormBrandRepository
func NewGormBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

// FindByIDForTenant finds a brand by ID within a tenant
func (r *GormBrandRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Brand, error) {
	var brand catalog.Brand
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &brand, nil
}

// FindByName finds a brand by exact name within a tenant
func (r *GormBrandRepository) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*catalog.Brand, error) {
	var brand catalog.Brand
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND name = ?", tenantID, strings.TrimSpace(name)).
		First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &brand, nil
}

// FindAllForTenant finds all brands for a tenant
func (r *GormBrandRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catalog.Brand, error) {
	query := dbFromContext(ctx, r.db).Model(&catalog.Brand{}).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	query = applyPagination(query, filter, "name ASC", "name", "created_at")

	var brands []catalog.Brand
	if err := query.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// Save creates or updates a brand
func (r *GormBrandRepository) Save(ctx context.Context, brand *catalog.Brand) error {
	return dbFromContext(ctx, r.db).Save(brand).Error
}

// DeleteForTenant deletes a brand within a tenant
func (r *GormBrandRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&catalog.Brand{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.BrandRepository = (*GormBrandRepository)(nil)
