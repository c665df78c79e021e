package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/askhub/askhub-server/internal/apierrors"
	"github.com/askhub/askhub-server/internal/mocks"
	"github.com/askhub/askhub-server/internal/model"
	"github.com/askhub/askhub-server/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestUser_UpdateProfile_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	s := NewUser(userStore, testutil.MakeNoopLogger())

	userID := uuid.New()
	params := model.UpdateProfileParams{Name: strPtr("New Name")}

	userStore.On("UpdateProfile", mock.Anything, userID, params).
		Return(model.User{ID: userID, Name: "New Name"}, nil)

	user, err := s.UpdateProfile(ctx, userID, params)
	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
}

func TestUser_UpdateProfile_NotAuthenticated(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	s := NewUser(userStore, testutil.MakeNoopLogger())

	_, err := s.UpdateProfile(ctx, uuid.Nil, model.UpdateProfileParams{Name: strPtr("x")})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.CodeNotAuthenticated, apiErr.Code)

	userStore.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUser_UpdateProfile_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	s := NewUser(userStore, testutil.MakeNoopLogger())

	userID := uuid.New()
	params := model.UpdateProfileParams{Email: strPtr("taken@b.com")}

	userStore.On("UpdateProfile", mock.Anything, userID, params).
		Return(model.User{}, model.ErrDuplicate)

	_, err := s.UpdateProfile(ctx, userID, params)
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.CodeDuplicateEmail, apiErr.Code)
}

func TestUser_UpdateProfile_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	s := NewUser(userStore, testutil.MakeNoopLogger())

	userID := uuid.New()
	userStore.On("UpdateProfile", mock.Anything, userID, mock.Anything).
		Return(model.User{}, model.ErrNotFound)

	_, err := s.UpdateProfile(ctx, userID, model.UpdateProfileParams{Name: strPtr("x")})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.CodeUserNotFound, apiErr.Code)
}

func TestUser_GetByID_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	s := NewUser(userStore, testutil.MakeNoopLogger())

	userID := uuid.New()
	userStore.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, Email: "a@b.com"}, nil)

	user, err := s.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
}

func TestUser_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	s := NewUser(userStore, testutil.MakeNoopLogger())

	userID := uuid.New()
	userStore.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound)

	_, err := s.GetByID(ctx, userID)
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.CodeUserNotFound, apiErr.Code)
}
