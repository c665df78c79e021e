// Package mocks provides testify mocks for the model interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/askhub/askhub-server/internal/model"
)

// UserStore is a mock model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) UpdateProfile(ctx context.Context, id uuid.UUID, params model.UpdateProfileParams) (model.User, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) SetPasswordReset(ctx context.Context, email string, token string, expiry time.Time) (model.User, error) {
	args := m.Called(ctx, email, token, expiry)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) ConsumePasswordReset(ctx context.Context, token string, issuedAfter time.Time, passwordHash string) (model.User, error) {
	args := m.Called(ctx, token, issuedAfter, passwordHash)
	return args.Get(0).(model.User), args.Error(1)
}

// QuestionStore is a mock model.QuestionStore.
type QuestionStore struct {
	mock.Mock
}

func (m *QuestionStore) Create(ctx context.Context, question model.Question, tagIDs []uuid.UUID) (model.Question, error) {
	args := m.Called(ctx, question, tagIDs)
	return args.Get(0).(model.Question), args.Error(1)
}

func (m *QuestionStore) GetByID(ctx context.Context, id uuid.UUID) (model.Question, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Question), args.Error(1)
}

func (m *QuestionStore) HasView(ctx context.Context, viewerID, questionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, viewerID, questionID)
	return args.Bool(0), args.Error(1)
}

func (m *QuestionStore) CreateView(ctx context.Context, view model.QuestionView) error {
	args := m.Called(ctx, view)
	return args.Error(0)
}

// AnswerStore is a mock model.AnswerStore.
type AnswerStore struct {
	mock.Mock
}

func (m *AnswerStore) Create(ctx context.Context, answer model.Answer) (model.Answer, error) {
	args := m.Called(ctx, answer)
	return args.Get(0).(model.Answer), args.Error(1)
}

// TagStore is a mock model.TagStore.
type TagStore struct {
	mock.Mock
}

func (m *TagStore) GetByName(ctx context.Context, name string) (model.Tag, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Tag), args.Error(1)
}

func (m *TagStore) Create(ctx context.Context, tag model.Tag) (model.Tag, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).(model.Tag), args.Error(1)
}
