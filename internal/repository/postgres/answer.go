package postgres

import (
	"context"
	"fmt"

	"github.com/askhub/askhub-server/internal/model"
)

var _ model.AnswerStore = (*AnswerRepository)(nil)

type AnswerRepository struct {
	db Querier
}

func NewAnswerRepository(db Querier) *AnswerRepository {
	return &AnswerRepository{
		db: db,
	}
}

func (r *AnswerRepository) Create(ctx context.Context, answer model.Answer) (model.Answer, error) {
	query := `INSERT INTO answers (id, question_id, answered_by, body, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, question_id, answered_by, body, created_at`

	var saved model.Answer
	err := r.db.QueryRow(ctx, query,
		answer.ID, answer.QuestionID, answer.AnsweredByID, answer.Body, answer.CreatedAt,
	).Scan(
		&saved.ID, &saved.QuestionID, &saved.AnsweredByID, &saved.Body, &saved.CreatedAt,
	)
	if err != nil {
		return model.Answer{}, fmt.Errorf("failed to create answer: %w", err)
	}

	return saved, nil
}
