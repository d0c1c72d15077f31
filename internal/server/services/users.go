// Package services contains server-side business logic. UserService covers
// the whole onboarding flow: registration, login, resolving a bearer token
// to a user, and the admin-driven approval lifecycle.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/logging"
	"github.com/dmitrijs2005/gophgate/internal/server/auth"
	"github.com/dmitrijs2005/gophgate/internal/server/config"
	"github.com/dmitrijs2005/gophgate/internal/server/metrics"
	"github.com/dmitrijs2005/gophgate/internal/server/repositories/repomanager"
)

// dummyPassword is hashed once at startup; Login compares against it when
// the email is unknown so both failure paths cost one bcrypt comparison.
const dummyPassword = "gophgate-dummy-password"

type UserService struct {
	repomanager          repomanager.RepositoryManager
	tokens               *auth.TokenService
	bcryptCost           int
	requireActiveAccount bool
	dummyHash            string
	log                  logging.Logger
	metrics              *metrics.Metrics
}

// NewUserService wires a UserService from repositories, a token service and
// server config. m may be nil.
func NewUserService(rm repomanager.RepositoryManager, tokens *auth.TokenService, cfg *config.Config,
	log logging.Logger, m *metrics.Metrics) (*UserService, error) {

	dummyHash, err := auth.HashPassword(dummyPassword, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash dummy password: %w", err)
	}

	return &UserService{
		repomanager:          rm,
		tokens:               tokens,
		bcryptCost:           cfg.BcryptCost,
		requireActiveAccount: cfg.RequireActiveAccount,
		dummyHash:            dummyHash,
		log:                  log.With("module", "users"),
		metrics:              m,
	}, nil
}

// internal logs err and hides it behind common.ErrInternal.
func (s *UserService) internal(ctx context.Context, op string, err error) error {
	s.log.Error(ctx, op+" failed", "error", err)
	return fmt.Errorf("%w: %s: %v", common.ErrInternal, op, err)
}
