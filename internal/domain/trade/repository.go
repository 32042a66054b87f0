package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseRecordRepository defines the interface for purchase record persistence
type PurchaseRecordRepository interface {
	// FindByIDForTenant finds a purchase record by ID for a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*PurchaseRecord, error)

	// FindByBillNumber finds a purchase record by bill number for a tenant
	FindByBillNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) (*PurchaseRecord, error)

	// FindAllForTenant lists purchase records for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[PurchaseRecord], error)

	// FindBySupplier lists purchase records for a supplier
	FindBySupplier(ctx context.Context, tenantID, supplierID uuid.UUID, filter shared.Filter) (shared.Paginated[PurchaseRecord], error)

	// FindPendingBySupplier returns unsettled purchase records for a
	// supplier in settlement order: purchase date ascending, then insertion
	// order for same-day records
	FindPendingBySupplier(ctx context.Context, tenantID, supplierID uuid.UUID) ([]*PurchaseRecord, error)

	// FindByPeriod lists purchase records within a date range
	FindByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]PurchaseRecord, error)

	// GenerateBillNumber produces the next purchase bill number for the day
	GenerateBillNumber(ctx context.Context, tenantID uuid.UUID) (string, error)

	// Save creates or updates a purchase record
	Save(ctx context.Context, record *PurchaseRecord) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, record *PurchaseRecord) error
}

// SaleRecordRepository defines the interface for sale record persistence
type SaleRecordRepository interface {
	// FindByIDForTenant finds a sale record by ID for a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*SaleRecord, error)

	// FindByBillNumber returns every sale record sharing a bill number
	FindByBillNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) ([]*SaleRecord, error)

	// FindByIMEI returns sale records for an IMEI, newest first
	FindByIMEI(ctx context.Context, tenantID uuid.UUID, imei string) ([]SaleRecord, error)

	// FindAllForTenant lists sale records for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[SaleRecord], error)

	// FindByShop lists sale records for a shop customer
	FindByShop(ctx context.Context, tenantID, shopID uuid.UUID, filter shared.Filter) (shared.Paginated[SaleRecord], error)

	// FindPendingByShop returns PENDING sale records for a shop in
	// settlement order: sale date ascending, then insertion order for
	// same-day records. PARTIAL records are excluded; they are only
	// settled when addressed directly by bill number.
	FindPendingByShop(ctx context.Context, tenantID, shopID uuid.UUID) ([]*SaleRecord, error)

	// FindByPeriod lists sale records within a date range
	FindByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]SaleRecord, error)

	// SumOutstandingByShop totals the open dues of a shop across all its
	// unsettled sale records
	SumOutstandingByShop(ctx context.Context, tenantID, shopID uuid.UUID) (decimal.Decimal, error)

	// GenerateBillNumber produces the next sale bill number for the day
	GenerateBillNumber(ctx context.Context, tenantID uuid.UUID) (string, error)

	// Save creates or updates a sale record
	Save(ctx context.Context, record *SaleRecord) error

	// SaveAll persists a batch of sale records
	SaveAll(ctx context.Context, records []*SaleRecord) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, record *SaleRecord) error
}

// IncentiveRepository defines the interface for incentive persistence
type IncentiveRepository interface {
	// FindByIDForTenant finds an incentive by ID for a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Incentive, error)

	// FindByBrandAndPeriod finds the incentive for a brand in a month
	FindByBrandAndPeriod(ctx context.Context, tenantID, brandID uuid.UUID, month, year int) (*Incentive, error)

	// FindByPeriod lists incentives for a month across brands
	FindByPeriod(ctx context.Context, tenantID uuid.UUID, month, year int) ([]Incentive, error)

	// SumByPeriodRange totals incentive amounts per brand whose period
	// falls inside the given date range
	SumByPeriodRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (map[uuid.UUID]decimal.Decimal, error)

	// Save creates or updates an incentive
	Save(ctx context.Context, incentive *Incentive) error

	// Delete removes an incentive entry
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
