package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QuestionStore defines persistence operations for questions and views.
type QuestionStore interface {
	Create(ctx context.Context, question Question, tagIDs []uuid.UUID) (Question, error)
	GetByID(ctx context.Context, id uuid.UUID) (Question, error)
	HasView(ctx context.Context, viewerID, questionID uuid.UUID) (bool, error)
	CreateView(ctx context.Context, view QuestionView) error
}

// AnswerStore defines persistence operations for answers.
type AnswerStore interface {
	Create(ctx context.Context, answer Answer) (Answer, error)
}

// TagStore defines persistence operations for tags.
type TagStore interface {
	GetByName(ctx context.Context, name string) (Tag, error)
	Create(ctx context.Context, tag Tag) (Tag, error)
}

// Question represents a question asked by a user.
type Question struct {
	ID        uuid.UUID
	AskedByID uuid.UUID
	Title     string
	Body      string
	Tags      []Tag
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Answer represents an answer posted to a question.
type Answer struct {
	ID           uuid.UUID
	QuestionID   uuid.UUID
	AnsweredByID uuid.UUID
	Body         string
	CreatedAt    time.Time
}

// Tag represents a content tag with a normalized name.
type Tag struct {
	ID   uuid.UUID
	Name string
}

// QuestionView records that a user has seen a question.
// At most one view per (viewer, question) pair is stored.
type QuestionView struct {
	ID         uuid.UUID
	QuestionID uuid.UUID
	ViewedByID uuid.UUID
	ViewedAt   time.Time
}

// CreateQuestionParams contains parameters to create a question.
type CreateQuestionParams struct {
	Title  string
	Body   string
	TagIDs []uuid.UUID
}

// CreateAnswerParams contains parameters to create an answer.
type CreateAnswerParams struct {
	QuestionID uuid.UUID
	Body       string
}
