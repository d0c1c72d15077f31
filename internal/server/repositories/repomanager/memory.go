package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophgate/internal/server/repositories/users"
)

// MemoryRepositoryManager serves a single in-memory repository. WithinTx
// gives no isolation; ConditionalUpdateStatus stays atomic on its own.
type MemoryRepositoryManager struct {
	repo *users.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{repo: users.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Users() users.Repository { return m.repo }

func (m *MemoryRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	return fn(ctx, m.repo)
}
