package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobiledger/backend/internal/domain/shared"
)

// User represents a shop-owner account. Each user is their own tenant:
// all inventory, sale, and payment records a user creates are scoped to
// their tenant ID, so two users never see each other's ledgers.
type User struct {
	shared.BaseAggregateRoot
	TenantID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name         string    `gorm:"not null;size:100"`
	Email        string    `gorm:"not null;size:120;uniqueIndex"`
	PasswordHash string    `gorm:"not null;size:200"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user account with its own tenant scope
func NewUser(name, email, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "A valid email address is required")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TenantID:          uuid.New(),
		Name:              name,
		Email:             email,
		PasswordHash:      passwordHash,
	}, nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}
