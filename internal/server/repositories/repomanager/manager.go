// Package repomanager vends repositories bound to a database handle and
// runs schema migrations.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophgate/internal/server/repositories/users"
)

type RepositoryManager interface {
	// RunMigrations brings the schema up to date.
	RunMigrations(ctx context.Context) error
	// Users returns a repository bound to the shared connection pool.
	Users() users.Repository
	// WithinTx runs fn with a repository bound to a single transaction.
	// The transaction commits when fn returns nil.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error
}
