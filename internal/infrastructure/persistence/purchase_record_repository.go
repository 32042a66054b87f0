package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/mobiledger/backend/internal/domain/trade"
)

const purchaseBillPrefix = "PURCHASE"

// GormPurchaseRecordRepository implements PurchaseRecordRepository using GORM
type GormPurchaseRecordRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRecordRepository creates a new GormPurchaseRecordRepository
func NewGormPurchaseRecordRepository(db *gorm.DB) *GormPurchaseRecordRepository {
	return &GormPurchaseRecordRepository{db: db}
}

// FindByIDForTenant finds a purchase record by ID within a tenant
func (r *GormPurchaseRecordRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trade.PurchaseRecord, error) {
	var record trade.PurchaseRecord
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByBillNumber finds a purchase record by bill number within a tenant
func (r *GormPurchaseRecordRepository) FindByBillNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) (*trade.PurchaseRecord, error) {
	var record trade.PurchaseRecord
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND bill_number = ?", tenantID, billNumber).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindAllForTenant lists purchase records for a tenant
func (r *GormPurchaseRecordRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[trade.PurchaseRecord], error) {
	return r.findPaginated(ctx, tenantID, nil, filter)
}

// FindBySupplier lists purchase records for a supplier
func (r *GormPurchaseRecordRepository) FindBySupplier(ctx context.Context, tenantID, supplierID uuid.UUID, filter shared.Filter) (shared.Paginated[trade.PurchaseRecord], error) {
	return r.findPaginated(ctx, tenantID, &supplierID, filter)
}

func (r *GormPurchaseRecordRepository) findPaginated(ctx context.Context, tenantID uuid.UUID, supplierID *uuid.UUID, filter shared.Filter) (shared.Paginated[trade.PurchaseRecord], error) {
	base := dbFromContext(ctx, r.db).Model(&trade.PurchaseRecord{}).Where("tenant_id = ?", tenantID)
	if supplierID != nil {
		base = base.Where("supplier_id = ?", *supplierID)
	}
	if filter.Search != "" {
		base = base.Where("bill_number ILIKE ?", "%"+filter.Search+"%")
	}
	if status, ok := filter.Filters["status"]; ok {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paginated[trade.PurchaseRecord]{}, err
	}

	query := applyPagination(base, filter, "purchased_at DESC, created_at DESC",
		"purchased_at", "created_at", "bill_number", "due_amount")

	var records []trade.PurchaseRecord
	if err := query.Find(&records).Error; err != nil {
		return shared.Paginated[trade.PurchaseRecord]{}, err
	}
	return shared.NewPaginated(records, total, filter.Page, filter.PageSize), nil
}

// FindPendingBySupplier returns unsettled purchase records for a supplier
// in settlement order
func (r *GormPurchaseRecordRepository) FindPendingBySupplier(ctx context.Context, tenantID, supplierID uuid.UUID) ([]*trade.PurchaseRecord, error) {
	var records []*trade.PurchaseRecord
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND supplier_id = ? AND status IN ?", tenantID, supplierID,
			[]trade.PaymentStatus{trade.PaymentStatusPending, trade.PaymentStatusPartial}).
		Order("purchased_at ASC, created_at ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByPeriod lists purchase records within a date range
func (r *GormPurchaseRecordRepository) FindByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]trade.PurchaseRecord, error) {
	var records []trade.PurchaseRecord
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND purchased_at >= ? AND purchased_at < ?", tenantID, from, to).
		Order("purchased_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GenerateBillNumber produces the next purchase bill number for the day,
// format PURCHASE-YYYYMMDD-NNNN. Must run inside the purchase transaction
// so concurrent registrations cannot hand out the same sequence.
func (r *GormPurchaseRecordRepository) GenerateBillNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	return nextBillNumber(dbFromContext(ctx, r.db), "purchase_records", tenantID, purchaseBillPrefix)
}

// Save creates or updates a purchase record
func (r *GormPurchaseRecordRepository) Save(ctx context.Context, record *trade.PurchaseRecord) error {
	return dbFromContext(ctx, r.db).Save(record).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormPurchaseRecordRepository) SaveWithLock(ctx context.Context, record *trade.PurchaseRecord) error {
	result := dbFromContext(ctx, r.db).
		Model(record).
		Where("id = ? AND version = ?", record.ID, record.Version-1).
		Updates(map[string]interface{}{
			"paid_amount": record.PaidAmount,
			"due_amount":  record.DueAmount,
			"status":      record.Status,
			"version":     record.Version,
			"updated_at":  record.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Purchase record was modified by another transaction")
	}
	return nil
}

// nextBillNumber computes PREFIX-YYYYMMDD-NNNN for today, locking the
// latest bill row of the day so two transactions cannot draw the same
// sequence number.
func nextBillNumber(db *gorm.DB, table string, tenantID uuid.UUID, prefix string) (string, error) {
	day := time.Now().Format("20060102")
	dayPrefix := fmt.Sprintf("%s-%s-", prefix, day)

	var latest string
	err := db.Table(table).
		Select("bill_number").
		Where("tenant_id = ? AND bill_number LIKE ?", tenantID, dayPrefix+"%").
		Order("bill_number DESC").
		Limit(1).
		Clauses(forUpdateClause()).
		Scan(&latest).Error
	if err != nil {
		return "", err
	}

	seq := 1
	if latest != "" {
		parts := strings.Split(latest, "-")
		n, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			return "", fmt.Errorf("malformed bill number %q: %w", latest, err)
		}
		seq = n + 1
	}
	return fmt.Sprintf("%s%04d", dayPrefix, seq), nil
}

var _ trade.PurchaseRecordRepository = (*GormPurchaseRecordRepository)(nil)
