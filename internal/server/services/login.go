package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/server/auth"
	"github.com/dmitrijs2005/gophgate/internal/server/metrics"
)

// TokenTypeBearer is the token_type reported to clients.
const TokenTypeBearer = "bearer"

// AccessToken is the result of a successful login.
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresIn time.Duration
}

// Login checks the credentials and issues an access token. Unknown email
// and wrong password both fail with common.ErrInvalidCredentials. Login is
// not gated on status or the active flag.
func (s *UserService) Login(ctx context.Context, email, password string) (*AccessToken, error) {
	user, err := s.repomanager.Users().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			auth.VerifyPassword(password, s.dummyHash)
			s.metrics.ObserveLogin(metrics.ResultFailure)
			return nil, common.ErrInvalidCredentials
		}
		s.metrics.ObserveLogin(metrics.ResultError)
		return nil, s.internal(ctx, "login lookup", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.metrics.ObserveLogin(metrics.ResultFailure)
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		s.metrics.ObserveLogin(metrics.ResultError)
		return nil, s.internal(ctx, "issue token", err)
	}

	s.metrics.ObserveLogin(metrics.ResultSuccess)
	s.log.Info(ctx, "user logged in", "user_id", user.ID)

	return &AccessToken{Token: token, TokenType: TokenTypeBearer, ExpiresIn: s.tokens.TTL()}, nil
}
