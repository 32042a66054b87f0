package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mobiledger/backend/internal/domain/catalog"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// GormModelRepository implements ModelRepository using GORM
type GormModelRepository struct {
	db *gorm.DB
}

// NewGormModelRepository creates a new GormModelRepository
func NewGormModelRepository(db *gorm.DB) *GormModelRepository {
	return &GormModelRepository{db: db}
}

// FindByIDForTenant finds a model by ID within a tenant
func (r *GormModelRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Model, error) {
	var model catalog.Model
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &model, nil
}

// FindByBrand finds all models under a brand
func (r *GormModelRepository) FindByBrand(ctx context.Context, tenantID, brandID uuid.UUID) ([]catalog.Model, error) {
	var models []catalog.Model
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND brand_id = ?", tenantID, brandID).
		Order("name ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// FindAllForTenant finds all models for a tenant
func (r *GormModelRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catalog.Model, error) {
	query := dbFromContext(ctx, r.db).Model(&catalog.Model{}).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	query = applyPagination(query, filter, "name ASC", "name", "created_at")

	var models []catalog.Model
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// Save creates or updates a model
func (r *GormModelRepository) Save(ctx context.Context, model *catalog.Model) error {
	return dbFromContext(ctx, r.db).Save(model).Error
}

// DeleteForTenant deletes a model within a tenant
func (r *GormModelRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&catalog.Model{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.ModelRepository = (*GormModelRepository)(nil)
