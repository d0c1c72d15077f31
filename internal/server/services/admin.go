package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
)

// EnsureAdmin creates an APPROVED admin with the given credentials unless
// a user with that email already exists. An existing user is returned
// unchanged and created is false.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) (user *models.User, created bool, err error) {
	existing, err := s.repomanager.Users().FindByEmail(ctx, email)
	if err == nil {
		if existing.Role != models.RoleAdmin {
			s.log.Warn(ctx, "bootstrap admin email belongs to a non-admin user", "user_id", existing.ID)
		}
		return existing, false, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, false, s.internal(ctx, "ensure admin lookup", err)
	}

	user, err = s.register(ctx, email, password, nil, models.RoleAdmin, models.StatusApproved)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			existing, ferr := s.repomanager.Users().FindByEmail(ctx, email)
			if ferr != nil {
				return nil, false, s.internal(ctx, "ensure admin lookup", ferr)
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	s.log.Info(ctx, "bootstrap admin created", "user_id", user.ID)
	return user, true, nil
}
