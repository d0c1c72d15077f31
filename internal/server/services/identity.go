package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
)

// Resolve maps a bearer token to the stored user.
//
// Every token problem and an unknown subject collapse into
// common.ErrUnauthenticated. With RequireActiveAccount set, a disabled
// account fails with common.ErrInactiveAccount.
func (s *UserService) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrUnauthenticated
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		s.log.Debug(ctx, "token rejected", "reason", err)
		return nil, common.ErrUnauthenticated
	}

	user, err := s.repomanager.Users().FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.log.Debug(ctx, "token subject not found", "user_id", claims.Subject)
			return nil, common.ErrUnauthenticated
		}
		return nil, s.internal(ctx, "resolve user", err)
	}

	if s.requireActiveAccount && !user.IsActive {
		return nil, common.ErrInactiveAccount
	}
	return user, nil
}
