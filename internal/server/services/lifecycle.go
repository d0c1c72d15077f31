package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/server/metrics"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	"github.com/dmitrijs2005/gophgate/internal/server/repositories/users"
)

// Pagination bounds for ListUsers.
const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// UserPage is one page of users with the same status.
type UserPage struct {
	Users    []*models.User
	Total    int
	Page     int
	PageSize int
}

// Approve moves a PENDING user to APPROVED and clears any rejection reason.
func (s *UserService) Approve(ctx context.Context, userID string) (*models.User, error) {
	return s.transition(ctx, userID, models.StatusApproved, models.StatusApproved, nil)
}

// Reject moves a PENDING user to REJECTED and stores reason. Errors come in
// lookup order: common.ErrNotFound for an unknown user, common.ErrInvalidState
// when the user is not PENDING, and common.ErrInvalidStatus when target is
// anything but REJECTED. Nothing is written in any of these cases.
func (s *UserService) Reject(ctx context.Context, userID string, target models.Status, reason *string) (*models.User, error) {
	return s.transition(ctx, userID, models.StatusRejected, target, reason)
}

// transition applies a status change with a conditional update, so of two
// concurrent transitions on one user only the first succeeds. requested is
// the status the caller asked for and must equal next.
func (s *UserService) transition(ctx context.Context, userID string, next, requested models.Status, reason *string) (*models.User, error) {
	var updated *models.User

	err := s.repomanager.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		current, err := repo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if !models.CanTransition(current.Status, next) {
			return common.ErrInvalidState
		}
		if requested != next {
			return common.ErrInvalidStatus
		}
		updated, err = repo.ConditionalUpdateStatus(ctx, userID, current.Status, next, reason)
		return err
	})

	switch {
	case err == nil:
		s.metrics.ObserveTransition(string(next), metrics.ResultSuccess)
		s.log.Info(ctx, "user status changed", "user_id", userID, "status", string(next))
		return updated, nil
	case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrInvalidState), errors.Is(err, common.ErrInvalidStatus):
		s.metrics.ObserveTransition(string(next), metrics.ResultFailure)
		return nil, err
	default:
		s.metrics.ObserveTransition(string(next), metrics.ResultError)
		return nil, s.internal(ctx, "status transition", err)
	}
}

// SetActive enables or disables an account. It does not touch the
// onboarding status.
func (s *UserService) SetActive(ctx context.Context, userID string, active bool) (*models.User, error) {
	var updated *models.User

	err := s.repomanager.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		if err := repo.SetActive(ctx, userID, active); err != nil {
			return err
		}
		var err error
		updated, err = repo.FindByID(ctx, userID)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, s.internal(ctx, "set active", err)
	}

	s.log.Info(ctx, "user active flag changed", "user_id", userID, "active", active)
	return updated, nil
}

// ListUsers returns a page of users with the given status, oldest first.
// An empty status means PENDING. page below 1 becomes 1; pageSize outside
// 1..MaxPageSize becomes DefaultPageSize.
func (s *UserService) ListUsers(ctx context.Context, status string, page, pageSize int) (*UserPage, error) {
	st := models.StatusPending
	if status != "" {
		var err error
		if st, err = models.ParseStatus(status); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
		}
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	repo := s.repomanager.Users()

	total, err := repo.CountByStatus(ctx, st)
	if err != nil {
		return nil, s.internal(ctx, "count users", err)
	}
	list, err := repo.ListByStatus(ctx, st, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, s.internal(ctx, "list users", err)
	}

	return &UserPage{Users: list, Total: total, Page: page, PageSize: pageSize}, nil
}
