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

const saleBillPrefix = "BILL"

// GormSaleRecordRepository implements SaleRecordRepository using GORM
type GormSaleRecordRepository struct {
	db *gorm.DB
}

// NewGormSaleRecordRepository creates a new GormSaleRecordRepository
func NewGormSaleRecordRepository(db *gorm.DB) *GormSaleRecordRepository {
	return &GormSaleRecordRepository{db: db}
}

// FindByIDForTenant finds a sale record by ID within a tenant
func (r *GormSaleRecordRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trade.SaleRecord, error) {
	var record trade.SaleRecord
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

// FindByBillNumber returns every sale record sharing a bill number, in
// insertion order so line positions stay stable
func (r *GormSaleRecordRepository) FindByBillNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) ([]*trade.SaleRecord, error) {
	var records []*trade.SaleRecord
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND bill_number = ?", tenantID, billNumber).
		Order("created_at ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByIMEI returns sale records for an IMEI, newest first
func (r *GormSaleRecordRepository) FindByIMEI(ctx context.Context, tenantID uuid.UUID, imei string) ([]trade.SaleRecord, error) {
	var records []trade.SaleRecord
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND imei = ?", tenantID, imei).
		Order("sold_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindAllForTenant lists sale records for a tenant
func (r *GormSaleRecordRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[trade.SaleRecord], error) {
	return r.findPaginated(ctx, tenantID, nil, filter)
}

// FindByShop lists sale records for a shop customer
func (r *GormSaleRecordRepository) FindByShop(ctx context.Context, tenantID, shopID uuid.UUID, filter shared.Filter) (shared.Paginated[trade.SaleRecord], error) {
	return r.findPaginated(ctx, tenantID, &shopID, filter)
}

func (r *GormSaleRecordRepository) findPaginated(ctx context.Context, tenantID uuid.UUID, shopID *uuid.UUID, filter shared.Filter) (shared.Paginated[trade.SaleRecord], error) {
	base := dbFromContext(ctx, r.db).Model(&trade.SaleRecord{}).Where("tenant_id = ?", tenantID)
	if shopID != nil {
		base = base.Where("shop_id = ?", *shopID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("bill_number ILIKE ? OR imei LIKE ? OR customer_name ILIKE ?", pattern, pattern, pattern)
	}
	if status, ok := filter.Filters["status"]; ok {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paginated[trade.SaleRecord]{}, err
	}

	query := applyPagination(base, filter, "sold_at DESC, created_at DESC",
		"sold_at", "created_at", "bill_number", "sale_price", "due_amount")

	var records []trade.SaleRecord
	if err := query.Find(&records).Error; err != nil {
		return shared.Paginated[trade.SaleRecord]{}, err
	}
	return shared.NewPaginated(records, total, filter.Page, filter.PageSize), nil
}

// FindPendingByShop returns PENDING sale records for a shop in settlement
// order: sale date ascending, then insertion order for same-day records.
// PARTIAL records are excluded; they settle only through their own bill.
func (r *GormSaleRecordRepository) FindPendingByShop(ctx context.Context, tenantID, shopID uuid.UUID) ([]*trade.SaleRecord, error) {
	var records []*trade.SaleRecord
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND shop_id = ? AND status = ?", tenantID, shopID, trade.PaymentStatusPending).
		Order("sold_at ASC, created_at ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByPeriod lists sale records within a date range
func (r *GormSaleRecordRepository) FindByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]trade.SaleRecord, error) {
	var records []trade.SaleRecord
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND sold_at >= ? AND sold_at < ?", tenantID, from, to).
		Order("sold_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// SumOutstandingByShop totals the open dues of a shop
func (r *GormSaleRecordRepository) SumOutstandingByShop(ctx context.Context, tenantID, shopID uuid.UUID) (decimal.Decimal, error) {
	var due decimal.NullDecimal
	if err := dbFromContext(ctx, r.db).Model(&trade.SaleRecord{}).
		Select("SUM(due_amount)").
		Where("tenant_id = ? AND shop_id = ? AND status IN ?", tenantID, shopID,
			[]trade.PaymentStatus{trade.PaymentStatusPending, trade.PaymentStatusPartial}).
		Scan(&due).Error; err != nil {
		return decimal.Zero, err
	}
	if !due.Valid {
		return decimal.Zero, nil
	}
	return due.Decimal, nil
}

// GenerateBillNumber produces the next sale bill number for the day,
// format BILL-YYYYMMDD-NNNN
func (r *GormSaleRecordRepository) GenerateBillNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	return nextBillNumber(dbFromContext(ctx, r.db), "sale_records", tenantID, saleBillPrefix)
}

// Save creates or updates a sale record
func (r *GormSaleRecordRepository) Save(ctx context.Context, record *trade.SaleRecord) error {
	return dbFromContext(ctx, r.db).Save(record).Error
}

// SaveAll persists a batch of sale records
func (r *GormSaleRecordRepository) SaveAll(ctx context.Context, records []*trade.SaleRecord) error {
	if len(records) == 0 {
		return nil
	}
	return dbFromContext(ctx, r.db).Create(records).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormSaleRecordRepository) SaveWithLock(ctx context.Context, record *trade.SaleRecord) error {
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
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Sale record was modified by another transaction")
	}
	return nil
}

var _ trade.SaleRecordRepository = (*GormSaleRecordRepository)(nil)
