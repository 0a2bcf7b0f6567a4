package repomanager

import (
	"context"
	"database/sql"

	"github.com/lgmarques/taskhub/internal/dbx"
	"github.com/lgmarques/taskhub/internal/server/repositories/tasks"
	"github.com/lgmarques/taskhub/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to an arbitrary DBTX, so the
// same constructors serve both plain and transactional access.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
