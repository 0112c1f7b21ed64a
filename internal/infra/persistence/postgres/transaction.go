// Package postgres contains the concrete implementation of the persistence layer using GORM.
// PostgreSQL is the production driver; SQLite serves local runs and tests.
package postgres

import (
	"context"

	"workhours/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// WorkLogRepo creates a work log repository bound to the transaction.
func (f *gormRepositoryFactory) WorkLogRepo() repository.WorkLogRepository {
	return NewWorkLogRepository(f.tx)
}

// ClockSessionRepo creates a clock session repository bound to the transaction.
func (f *gormRepositoryFactory) ClockSessionRepo() repository.ClockSessionRepository {
	return NewClockSessionRepository(f.tx)
}

// WageProfileRepo creates a wage profile repository bound to the transaction.
func (f *gormRepositoryFactory) WageProfileRepo() repository.WageProfileRepository {
	return NewWageProfileRepository(f.tx)
}

// CalendarTokenRepo creates a calendar token repository bound to the transaction.
func (f *gormRepositoryFactory) CalendarTokenRepo() repository.CalendarTokenRepository {
	return NewCalendarTokenRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one database transaction. A returned error or a panic rolls it back.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Business errors are returned unwrapped so callers can match them.
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
}
