package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Partner errors
var (
	ErrCreditLimitExceeded = shared.NewDomainError("CREDIT_LIMIT_EXCEEDED", "Sale would push the shop past its credit limit")
)

// Shop represents a credit-buying retail shop. Shops purchase devices on
// credit; their outstanding balance is never stored here - it is always
// derived from the due amounts of their sale records.
type Shop struct {
	shared.TenantAggregateRoot
	Name        string          `gorm:"not null;size:100"`
	OwnerName   string          `gorm:"not null;size:100"`
	ContactInfo string          `gorm:"type:text"`
	Address     string          `gorm:"type:text"`
	CreditLimit decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Shop) TableName() string {
	return "shops"
}

// NewShop creates a new shop
func NewShop(tenantID uuid.UUID, name, ownerName string) (*Shop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SHOP_NAME", "Shop name cannot be empty")
	}
	ownerName = strings.TrimSpace(ownerName)
	if ownerName == "" {
		return nil, shared.NewDomainError("INVALID_OWNER_NAME", "Shop owner name cannot be empty")
	}
	return &Shop{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		OwnerName:           ownerName,
		CreditLimit:         decimal.Zero,
	}, nil
}

// UpdateDetails changes the shop name and owner
func (s *Shop) UpdateDetails(name, ownerName string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_SHOP_NAME", "Shop name cannot be empty")
	}
	ownerName = strings.TrimSpace(ownerName)
	if ownerName == "" {
		return shared.NewDomainError("INVALID_OWNER_NAME", "Shop owner name cannot be empty")
	}
	s.Name = name
	s.OwnerName = ownerName
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetContactInfo sets the shop contact details
func (s *Shop) SetContactInfo(contactInfo, address string) {
	s.ContactInfo = contactInfo
	s.Address = address
	s.UpdatedAt = time.Now()
}

// SetCreditLimit sets the maximum credit allowed for this shop
func (s *Shop) SetCreditLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return shared.NewDomainError("INVALID_CREDIT_LIMIT", "Credit limit cannot be negative")
	}
	s.CreditLimit = limit
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// HasCreditLimit returns true if a credit limit is configured
func (s *Shop) HasCreditLimit() bool {
	return s.CreditLimit.GreaterThan(decimal.Zero)
}

// WithinCreditLimit checks whether an additional due amount would stay
// inside the configured limit given the current outstanding balance.
// A zero limit means unlimited credit.
func (s *Shop) WithinCreditLimit(currentOutstanding, additionalDue decimal.Decimal) bool {
	if !s.HasCreditLimit() {
		return true
	}
	return currentOutstanding.Add(additionalDue).LessThanOrEqual(s.CreditLimit)
}
