package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// PaymentRepository defines the interface for payment persistence.
// Payments are append-only; there is no update or delete.
type PaymentRepository interface {
	// FindByIDForTenant finds a payment by ID for a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Payment, error)

	// FindAllForTenant lists payments for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[Payment], error)

	// FindByCounterparty lists payments for a shop or supplier, newest first
	FindByCounterparty(ctx context.Context, tenantID uuid.UUID, counterpartyType CounterpartyType, counterpartyID uuid.UUID, filter shared.Filter) (shared.Paginated[Payment], error)

	// FindByPeriod lists payments within a date range
	FindByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]Payment, error)

	// Save appends a payment audit row
	Save(ctx context.Context, payment *Payment) error
}
