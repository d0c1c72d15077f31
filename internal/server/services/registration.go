package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/server/auth"
	"github.com/dmitrijs2005/gophgate/internal/server/metrics"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"
)

// ValidateEmail checks the address format.
func ValidateEmail(email string) error {
	if err := validation.Validate(email, validation.Required, is.Email); err != nil {
		return fmt.Errorf("%w: email: %v", common.ErrInvalidInput, err)
	}
	return nil
}

// Register creates a PENDING user with role USER.
//
// Passwords shorter than common.MinPasswordLength characters fail with
// common.ErrWeakPassword, and ones longer than common.MaxPasswordBytes bytes
// with common.ErrInvalidInput, before the store is touched. An email already
// registered in any letter case fails with common.ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, email, password string, fullName *string) (*models.User, error) {
	user, err := s.register(ctx, email, password, fullName, models.RoleUser, models.StatusPending)
	switch {
	case err == nil:
		s.metrics.ObserveRegistration(metrics.ResultSuccess)
		s.log.Info(ctx, "user registered", "user_id", user.ID)
	case errors.Is(err, common.ErrInternal):
		s.metrics.ObserveRegistration(metrics.ResultError)
	default:
		s.metrics.ObserveRegistration(metrics.ResultFailure)
	}
	return user, err
}

func (s *UserService) register(ctx context.Context, email, password string, fullName *string,
	role models.Role, status models.Status) (*models.User, error) {

	email = models.NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(password) < common.MinPasswordLength {
		return nil, common.ErrWeakPassword
	}
	if len(password) > common.MaxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", common.ErrInvalidInput, common.MaxPasswordBytes)
	}

	repo := s.repomanager.Users()

	_, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailTaken
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, s.internal(ctx, "register lookup", err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, s.internal(ctx, "hash password", err)
	}

	user, err := repo.Insert(ctx, &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         role,
		Status:       status,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, err
		}
		return nil, s.internal(ctx, "register insert", err)
	}
	return user, nil
}
