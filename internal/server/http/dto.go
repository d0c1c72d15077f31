package http

import (
	"time"

	"github.com/dmitrijs2005/gophgate/internal/server/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type registerRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name"`
}

// Validate checks the request shape. Password length is left to the
// service so that it yields ErrWeakPassword.
func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&r.FullName, validation.NilOrNotEmpty, validation.Length(1, 200)),
	)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type rejectRequest struct {
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason"`
}

func (r rejectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required),
		validation.Field(&r.RejectionReason, validation.Length(0, 1000)),
	)
}

type setActiveRequest struct {
	Active *bool `json:"active"`
}

func (r setActiveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Active, validation.NotNil),
	)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type userResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FullName        *string   `json:"full_name"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:              u.ID,
		Email:           u.Email,
		FullName:        u.FullName,
		Role:            string(u.Role),
		Status:          string(u.Status),
		RejectionReason: u.RejectionReason,
		IsActive:        u.IsActive,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

type statusResponse struct {
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason"`
}

type userListResponse struct {
	Items    []userResponse `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
