package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/askhub/askhub-server/internal/apierrors"
	"github.com/askhub/askhub-server/internal/logger"
	"github.com/askhub/askhub-server/internal/model"
)

// minTagNameLength is the shortest accepted tag name after normalization.
const minTagNameLength = 2

// Question provides content creation operations: questions, answers, tags
// and question views.
type Question struct {
	questionStore model.QuestionStore
	answerStore   model.AnswerStore
	tagStore      model.TagStore
	logger        *logger.Logger
}

// NewQuestion creates a Question service.
func NewQuestion(
	questionStore model.QuestionStore,
	answerStore model.AnswerStore,
	tagStore model.TagStore,
	logger *logger.Logger,
) *Question {
	return &Question{
		questionStore: questionStore,
		answerStore:   answerStore,
		tagStore:      tagStore,
		logger:        logger,
	}
}

// CreateQuestion creates a question asked by the given user.
func (s *Question) CreateQuestion(ctx context.Context, userID uuid.UUID, params model.CreateQuestionParams) (model.Question, error) {
	if userID == uuid.Nil {
		return model.Question{}, apierrors.NewErrNotAuthenticated()
	}

	now := time.Now()
	question := model.Question{
		ID:        uuid.New(),
		AskedByID: userID,
		Title:     params.Title,
		Body:      params.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.questionStore.Create(ctx, question, params.TagIDs)
	if err != nil {
		return model.Question{}, fmt.Errorf("failed to create question: %w", err)
	}

	s.logger.Info("Question service: question created",
		"question_id", created.ID,
		"user_id", userID)

	return created, nil
}

// CreateQuestionView records that the user has seen the question. Only the
// first sight per (user, question) pair is stored; later calls are no-ops.
func (s *Question) CreateQuestionView(ctx context.Context, userID, questionID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, apierrors.NewErrNotAuthenticated()
	}

	seen, err := s.questionStore.HasView(ctx, userID, questionID)
	if err != nil {
		return false, fmt.Errorf("failed to check question view: %w", err)
	}
	if seen {
		return true, nil
	}

	view := model.QuestionView{
		ID:         uuid.New(),
		QuestionID: questionID,
		ViewedByID: userID,
		ViewedAt:   time.Now(),
	}

	err = s.questionStore.CreateView(ctx, view)
	if err != nil && !errors.Is(err, model.ErrDuplicate) {
		return false, fmt.Errorf("failed to create question view: %w", err)
	}

	return true, nil
}

// CreateTag creates a tag with a normalized name, or returns the existing
// tag when the name is already taken.
func (s *Question) CreateTag(ctx context.Context, name string) (model.Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < minTagNameLength {
		return model.Tag{}, apierrors.NewErrInvalidInput(
			fmt.Sprintf("tag name must be at least %d characters", minTagNameLength))
	}

	existing, err := s.tagStore.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Tag{}, fmt.Errorf("failed to get tag by name: %w", err)
	}

	tag, err := s.tagStore.Create(ctx, model.Tag{ID: uuid.New(), Name: name})
	if errors.Is(err, model.ErrDuplicate) {
		// Lost a race with a concurrent create of the same name.
		return s.tagStore.GetByName(ctx, name)
	}
	if err != nil {
		return model.Tag{}, fmt.Errorf("failed to create tag: %w", err)
	}

	s.logger.Info("Question service: tag created", "tag", name)

	return tag, nil
}

// CreateAnswer posts an answer to a question by the given user.
func (s *Question) CreateAnswer(ctx context.Context, userID uuid.UUID, params model.CreateAnswerParams) (model.Answer, error) {
	if userID == uuid.Nil {
		return model.Answer{}, apierrors.NewErrNotAuthenticated()
	}

	answer := model.Answer{
		ID:           uuid.New(),
		QuestionID:   params.QuestionID,
		AnsweredByID: userID,
		Body:         params.Body,
		CreatedAt:    time.Now(),
	}

	created, err := s.answerStore.Create(ctx, answer)
	if err != nil {
		return model.Answer{}, fmt.Errorf("failed to create answer: %w", err)
	}

	s.logger.Info("Question service: answer created",
		"answer_id", created.ID,
		"question_id", params.QuestionID,
		"user_id", userID)

	return created, nil
}
