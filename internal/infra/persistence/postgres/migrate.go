package postgres

import (
	"context"

	"workhours/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activeSessionIndex enforces at most one active clock session per owner. Both PostgreSQL
// and SQLite support partial indexes with this syntax.
const activeSessionIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_clock_sessions_one_active ON clock_sessions (owner_id) WHERE is_active`

// Migrate creates or updates every table and index the repositories rely on.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	if err := tx.Exec(activeSessionIndex).Error; err != nil {
		return errors.Wrap(err, "create active session index")
	}

	return nil
}
