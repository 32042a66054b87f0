package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// Supplier represents a device supplier. Purchases optionally reference a
// supplier; what is owed to a supplier is derived from purchase record dues.
type Supplier struct {
	shared.TenantAggregateRoot
	Name        string `gorm:"not null;size:100"`
	ContactInfo string `gorm:"type:text"`
	Address     string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(tenantID uuid.UUID, name string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	return &Supplier{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
	}, nil
}

// Rename changes the supplier name
func (s *Supplier) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	s.Name = name
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetContactInfo sets the supplier contact details
func (s *Supplier) SetContactInfo(contactInfo, address string) {
	s.ContactInfo = contactInfo
	s.Address = address
	s.UpdatedAt = time.Now()
}
