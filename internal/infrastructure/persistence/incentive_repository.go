package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
)

// GormIncentiveRepository implements IncentiveRepository using GORM
type GormIncentiveRepository struct {
	db *gorm.DB
}

// NewGormIncentiveRepository creates a new GormIncentiveRepository
func NewGormIncentiveRepository(db *gorm.DB) *GormIncentiveRepository {
	return &GormIncentiveRepository{db: db}
}

// FindByIDForTenant finds an incentive by ID within a tenant
func (r *GormIncentiveRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trade.Incentive, error) {
	var incentive trade.Incentive
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&incentive).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &incentive, nil
}

// FindByBrandAndPeriod finds the incentive for a brand in a month
func (r *GormIncentiveRepository) FindByBrandAndPeriod(ctx context.Context, tenantID, brandID uuid.UUID, month, year int) (*trade.Incentive, error) {
	var incentive trade.Incentive
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND brand_id = ? AND month = ? AND year = ?", tenantID, brandID, month, year).
		First(&incentive).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &incentive, nil
}

// FindByPeriod lists incentives for a month across brands
func (r *GormIncentiveRepository) FindByPeriod(ctx context.Context, tenantID uuid.UUID, month, year int) ([]trade.Incentive, error) {
	var incentives []trade.Incentive
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND month = ? AND year = ?", tenantID, month, year).
		Order("created_at ASC").
		Find(&incentives).Error; err != nil {
		return nil, err
	}
	return incentives, nil
}

// SumByPeriodRange totals incentive amounts per brand for months whose
// first day falls inside [from, to)
func (r *GormIncentiveRepository) SumByPeriodRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []struct {
		BrandID uuid.UUID
		Total   decimal.Decimal
	}
	if err := dbFromContext(ctx, r.db).Model(&trade.Incentive{}).
		Select("brand_id, SUM(amount) AS total").
		Where("tenant_id = ? AND make_date(year, month, 1) >= ? AND make_date(year, month, 1) < ?", tenantID, from, to).
		Group("brand_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.BrandID] = row.Total
	}
	return totals, nil
}

// Save creates or updates an incentive
func (r *GormIncentiveRepository) Save(ctx context.Context, incentive *trade.Incentive) error {
	return dbFromContext(ctx, r.db).Save(incentive).Error
}

// Delete removes an incentive entry
func (r *GormIncentiveRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&trade.Incentive{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ trade.IncentiveRepository = (*GormIncentiveRepository)(nil)
