package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Incentive records a manufacturer incentive amount for a brand in a given
// month. Incentives are added on top of trading profit in reports.
type Incentive struct {
	shared.TenantAggregateRoot
	BrandID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_incentives_tenant_brand_period,priority:2"`
	Month   int             `gorm:"not null;uniqueIndex:idx_incentives_tenant_brand_period,priority:3"`
	Year    int             `gorm:"not null;uniqueIndex:idx_incentives_tenant_brand_period,priority:4"`
	Amount  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (Incentive) TableName() string {
	return "incentives"
}

// NewIncentive creates an incentive entry for a brand and period
func NewIncentive(tenantID, brandID uuid.UUID, month, year int, amount decimal.Decimal) (*Incentive, error) {
	if brandID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BRAND", "Brand ID cannot be empty")
	}
	if month < 1 || month > 12 {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Month must be between 1 and 12")
	}
	if year < 2000 {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Year is out of range")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Incentive amount cannot be negative")
	}

	return &Incentive{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		BrandID:             brandID,
		Month:               month,
		Year:                year,
		Amount:              amount,
	}, nil
}

// UpdateAmount replaces the incentive amount for the period
func (i *Incentive) UpdateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Incentive amount cannot be negative")
	}
	i.Amount = amount
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}
