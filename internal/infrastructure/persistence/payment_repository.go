package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mobiledger/backend/internal/domain/payment"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// GormPaymentRepository implements PaymentRepository using GORM. Payments
// are append-only audit rows, so there is no update path here.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByIDForTenant finds a payment by ID within a tenant
func (r *GormPaymentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*payment.Payment, error) {
	var p payment.Payment
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAllForTenant lists payments for a tenant
func (r *GormPaymentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[payment.Payment], error) {
	base := dbFromContext(ctx, r.db).Model(&payment.Payment{}).Where("tenant_id = ?", tenantID)
	if counterpartyType, ok := filter.Filters["counterparty_type"]; ok {
		base = base.Where("counterparty_type = ?", counterpartyType)
	}
	return r.paginate(base, filter)
}

// FindByCounterparty lists payments for a shop or supplier, newest first
func (r *GormPaymentRepository) FindByCounterparty(ctx context.Context, tenantID uuid.UUID, counterpartyType payment.CounterpartyType, counterpartyID uuid.UUID, filter shared.Filter) (shared.Paginated[payment.Payment], error) {
	base := dbFromContext(ctx, r.db).Model(&payment.Payment{}).
		Where("tenant_id = ? AND counterparty_type = ? AND counterparty_id = ?", tenantID, counterpartyType, counterpartyID)
	return r.paginate(base, filter)
}

func (r *GormPaymentRepository) paginate(base *gorm.DB, filter shared.Filter) (shared.Paginated[payment.Payment], error) {
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paginated[payment.Payment]{}, err
	}

	query := applyPagination(base, filter, "received_at DESC, created_at DESC",
		"received_at", "created_at", "amount")

	var payments []payment.Payment
	if err := query.Find(&payments).Error; err != nil {
		return shared.Paginated[payment.Payment]{}, err
	}
	return shared.NewPaginated(payments, total, filter.Page, filter.PageSize), nil
}

// FindByPeriod lists payments within a date range
func (r *GormPaymentRepository) FindByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]payment.Payment, error) {
	var payments []payment.Payment
	if err := dbFromContext(ctx, r.db).
		Where("tenant_id = ? AND received_at >= ? AND received_at < ?", tenantID, from, to).
		Order("received_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Save appends a payment audit row
func (r *GormPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	return dbFromContext(ctx, r.db).Create(p).Error
}

var _ payment.PaymentRepository = (*GormPaymentRepository)(nil)
