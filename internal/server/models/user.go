// Package models holds the server-side domain types persisted by the
// repositories.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/common"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole converts a raw string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("role %q: %w", s, common.ErrInvalidEnum)
}

// Status is the closed set of onboarding states.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// ParseStatus converts a raw string into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("status %q: %w", s, common.ErrInvalidEnum)
}

// transitions lists the allowed status changes. APPROVED and REJECTED are terminal.
var transitions = map[Status]map[Status]struct{}{
	StatusPending: {
		StatusApproved: {},
		StatusRejected: {},
	},
}

// CanTransition reports whether a user may move from one status to another.
func CanTransition(from, to Status) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// User is a registered account.
//
// RejectionReason is set only while Status is REJECTED. IsActive is an
// independent enable/disable flag and does not take part in the
// onboarding state machine.
type User struct {
	ID              string
	Email           string
	PasswordHash    string
	FullName        *string
	Role            Role
	Status          Status
	RejectionReason *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NormalizeEmail returns the canonical stored form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
