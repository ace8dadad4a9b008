// Package entity contains the core business objects of the user service.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// State is the account lifecycle position: Pending -> Active -> Disabled.
type State string

const (
	StatePending  State = "pending"
	StateActive   State = "active"
	StateDisabled State = "disabled"
)

// User is this service's profile record, distinct from the identity provider's account.
type User struct {
	ID       uuid.UUID
	Email    Email
	FullName string
	Role     Role
	IsActive bool

	// Pending activation, cleared once consumed.
	ActivationToken     string
	ActivationExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewUser builds a profile that is not yet persisted.
func NewUser(email Email, fullName string, role Role, active bool) *User {
	if role == "" {
		role = RoleUser
	}

	return &User{
		Email:    email,
		FullName: fullName,
		Role:     role,
		IsActive: active,
	}
}

// State derives the lifecycle state from the active flag and pending token.
func (u *User) State() State {
	switch {
	case u.IsActive:
		return StateActive
	case u.ActivationToken != "":
		return StatePending
	default:
		return StateDisabled
	}
}

// Deactivate moves the account to Disabled. Any pending activation is dropped
// so the account cannot be reactivated with an old link.
func (u *User) Deactivate() {
	u.IsActive = false
	u.ActivationToken = ""
	u.ActivationExpiresAt = nil
}
