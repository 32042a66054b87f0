package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// Model represents a phone model belonging to a brand (e.g., Galaxy S24).
// Purchase and sale records reference a model; devices inherit it.
type Model struct {
	shared.TenantAggregateRoot
	BrandID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"not null;size:100"`
}

// TableName returns the table name for GORM
func (Model) TableName() string {
	return "models"
}

// NewModel creates a new model under a brand
func NewModel(tenantID, brandID uuid.UUID, name string) (*Model, error) {
	if brandID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BRAND", "Brand ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_MODEL_NAME", "Model name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_MODEL_NAME", "Model name cannot exceed 100 characters")
	}
	return &Model{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		BrandID:             brandID,
		Name:                name,
	}, nil
}

// Rename changes the model name
func (m *Model) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_MODEL_NAME", "Model name cannot be empty")
	}
	m.Name = name
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
	return nil
}
