package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Permission is a role tag attached to a user.
type Permission string

const (
	// PermissionUser is the default permission every account gets.
	PermissionUser Permission = "USER"
	// PermissionAdmin marks administrative accounts.
	PermissionAdmin Permission = "ADMIN"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, params UpdateProfileParams) (User, error)
	SetPasswordReset(ctx context.Context, email string, token string, expiry time.Time) (User, error)
	ConsumePasswordReset(ctx context.Context, token string, issuedAfter time.Time, passwordHash string) (User, error)
}

// User represents a stored user with authentication material.
// ResetToken and ResetTokenExpiry are both nil or both set.
type User struct {
	ID               uuid.UUID
	Email            string
	Name             string
	PasswordHash     string
	Permissions      []Permission
	ResetToken       *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RegisterParams contains parameters to register a new user.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
}

// UpdateProfileParams contains the caller-writable profile fields.
// System-managed fields (id, password hash, permissions, reset token)
// are deliberately not representable here.
type UpdateProfileParams struct {
	Name  *string
	Email *string
}
