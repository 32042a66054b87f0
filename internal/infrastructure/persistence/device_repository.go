package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mobiledger/backend/internal/domain/ledger"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// GormDeviceRepository implements DeviceRepository using GORM. All IMEI
// lookups hit the (tenant_id, imei) index rather than scanning batches.
type GormDeviceRepository struct {
	db *gorm.DB
}

// NewGormDeviceRepository creates a new GormDeviceRepository
func NewGormDeviceRepository(db *gorm.DB) *GormDeviceRepository {
	return &GormDeviceRepository{db: db}
}

// FindByIDForTenant finds a device by ID within a tenant
func (r *GormDeviceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Device, error) {
	var device ledger.Device
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &device, nil
}

// FindActiveByIMEI finds the single AVAILABLE or SOLD device for the IMEI
func (r *GormDeviceRepository) FindActiveByIMEI(ctx context.Context, tenantID uuid.UUID, imei string) (*ledger.Device, error) {
	var device ledger.Device
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND imei = ? AND status IN ?", tenantID, imei,
			[]ledger.DeviceStatus{ledger.DeviceStatusAvailable, ledger.DeviceStatusSold}).
		First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &device, nil
}

// FindHistoryByIMEI returns every ledger row for the IMEI, newest first
func (r *GormDeviceRepository) FindHistoryByIMEI(ctx context.Context, tenantID uuid.UUID, imei string) ([]ledger.Device, error) {
	var devices []ledger.Device
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND imei = ?", tenantID, imei).
		Order("created_at DESC").
		Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// FindByPurchase finds all devices registered under a purchase record
func (r *GormDeviceRepository) FindByPurchase(ctx context.Context, tenantID, purchaseID uuid.UUID) ([]ledger.Device, error) {
	var devices []ledger.Device
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND purchase_id = ?", tenantID, purchaseID).
		Order("created_at ASC").
		Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// FindByStatus finds devices by status for a tenant
func (r *GormDeviceRepository) FindByStatus(ctx context.Context, tenantID uuid.UUID, status ledger.DeviceStatus, filter shared.Filter) ([]ledger.Device, error) {
	query := dbFromContext(ctx, r.db).Model(&ledger.Device{}).
		Where("tenant_id = ? AND status = ?", tenantID, status)
	if filter.Search != "" {
		query = query.Where("imei LIKE ?", "%"+filter.Search+"%")
	}
	query = applyPagination(query, filter, "created_at DESC", "created_at", "imei", "current_price")

	var devices []ledger.Device
	if err := query.Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// CountByStatus counts devices in a given status for a tenant
func (r *GormDeviceRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, status ledger.DeviceStatus) (int64, error) {
	var count int64
	if err := dbFromContext(ctx, r.db).Model(&ledger.Device{}).
		Where("tenant_id = ? AND status = ?", tenantID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a device
func (r *GormDeviceRepository) Save(ctx context.Context, device *ledger.Device) error {
	return dbFromContext(ctx, r.db).Save(device).Error
}

// SaveAll persists a batch of devices
func (r *GormDeviceRepository) SaveAll(ctx context.Context, devices []*ledger.Device) error {
	if len(devices) == 0 {
		return nil
	}
	return dbFromContext(ctx, r.db).Create(devices).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormDeviceRepository) SaveWithLock(ctx context.Context, device *ledger.Device) error {
	result := dbFromContext(ctx, r.db).
		Model(device).
		Where("id = ? AND version = ?", device.ID, device.Version-1).
		Updates(map[string]interface{}{
			"status":        device.Status,
			"current_price": device.CurrentPrice,
			"sale_id":       device.SaleID,
			"return_id":     device.ReturnID,
			"returned_from": device.ReturnedFrom,
			"return_reason": device.ReturnReason,
			"sold_at":       device.SoldAt,
			"returned_at":   device.ReturnedAt,
			"version":       device.Version,
			"updated_at":    device.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Device was modified by another transaction")
	}
	return nil
}

var _ ledger.DeviceRepository = (*GormDeviceRepository)(nil)
