package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// DeviceRepository defines the interface for device persistence.
// IMEI lookups must be served from an index on (tenant_id, imei), not by
// scanning purchase batches; the observable contract stays the same.
type DeviceRepository interface {
	// FindByIDForTenant finds a device by ID for a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Device, error)

	// FindActiveByIMEI finds the single AVAILABLE or SOLD device for the
	// IMEI within a tenant. Returns shared.ErrNotFound when no active
	// device exists (the IMEI may still have RETURNED history rows).
	FindActiveByIMEI(ctx context.Context, tenantID uuid.UUID, imei string) (*Device, error)

	// FindHistoryByIMEI returns every ledger row for the IMEI (including
	// returned re-acquisitions), newest first
	FindHistoryByIMEI(ctx context.Context, tenantID uuid.UUID, imei string) ([]Device, error)

	// FindByPurchase finds all devices registered under a purchase record
	FindByPurchase(ctx context.Context, tenantID, purchaseID uuid.UUID) ([]Device, error)

	// FindByStatus finds devices by status for a tenant
	FindByStatus(ctx context.Context, tenantID uuid.UUID, status DeviceStatus, filter shared.Filter) ([]Device, error)

	// CountByStatus counts devices in a given status for a tenant
	CountByStatus(ctx context.Context, tenantID uuid.UUID, status DeviceStatus) (int64, error)

	// Save creates or updates a device
	Save(ctx context.Context, device *Device) error

	// SaveAll persists a batch of devices
	SaveAll(ctx context.Context, devices []*Device) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, device *Device) error
}
