package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/mobiledger/backend/internal/domain/shared"
)

type txContextKey struct{}

// GormTransactionManager implements shared.TransactionManager. The open
// transaction travels in the context; repositories built on the same
// Database pick it up through dbFromContext.
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a new GormTransactionManager
func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

// WithinTransaction runs fn inside one database transaction. A nested
// call reuses the ambient transaction instead of opening a second one.
func (m *GormTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

func txFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return nil
}

// dbFromContext returns the ambient transaction when one is open, the
// base connection otherwise
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

var _ shared.TransactionManager = (*GormTransactionManager)(nil)
