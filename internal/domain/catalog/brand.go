package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// Brand represents a phone manufacturer (e.g., Samsung, Apple).
// Models hang off a brand; incentives and profit breakdowns group by brand.
type Brand struct {
	shared.TenantAggregateRoot
	Name string `gorm:"not null;size:100;uniqueIndex:idx_brands_tenant_name,priority:2"`

	Models []Model `gorm:"foreignKey:BrandID;references:ID"`
}

// TableName returns the table name for GORM
func (Brand) TableName() string {
	return "brands"
}

// NewBrand creates a new brand
func NewBrand(tenantID uuid.UUID, name string) (*Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_BRAND_NAME", "Brand name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_BRAND_NAME", "Brand name cannot exceed 100 characters")
	}
	return &Brand{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
	}, nil
}

// Rename changes the brand name
func (b *Brand) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_BRAND_NAME", "Brand name cannot be empty")
	}
	b.Name = name
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}
