// Package users contains the persistence layer for user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophgate/internal/server/models"
)

// Repository is the persistence collaborator of the onboarding core.
//
// FindByID and FindByEmail return common.ErrNotFound when nothing matches.
// Insert returns common.ErrEmailTaken on a unique email violation.
// ConditionalUpdateStatus moves a user from expected to next only if the
// stored status still equals expected, and returns common.ErrInvalidState
// when no row matched.
type Repository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	ConditionalUpdateStatus(ctx context.Context, id string, expected, next models.Status, reason *string) (*models.User, error)
	ListByStatus(ctx context.Context, status models.Status, limit, offset int) ([]*models.User, error)
	CountByStatus(ctx context.Context, status models.Status) (int, error)
	SetActive(ctx context.Context, id string, active bool) error
}
