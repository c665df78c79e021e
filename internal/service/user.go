package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/askhub/askhub-server/internal/apierrors"
	"github.com/askhub/askhub-server/internal/logger"
	"github.com/askhub/askhub-server/internal/model"
)

// User provides profile operations for authenticated users.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

// NewUser creates a User service.
func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

// UpdateProfile applies the caller-writable profile fields. Only the fields
// present in params are touched; everything system-managed stays as is.
func (s *User) UpdateProfile(ctx context.Context, userID uuid.UUID, params model.UpdateProfileParams) (model.User, error) {
	if userID == uuid.Nil {
		return model.User{}, apierrors.NewErrNotAuthenticated()
	}

	user, err := s.userStore.UpdateProfile(ctx, userID, params)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFound(userID.String())
	}
	if errors.Is(err, model.ErrDuplicate) {
		email := ""
		if params.Email != nil {
			email = *params.Email
		}
		return model.User{}, apierrors.NewErrDuplicateEmail(email)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("User service: profile updated", "user_id", userID)

	return user, nil
}

// GetByID returns the user with the given id.
func (s *User) GetByID(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFound(userID.String())
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
