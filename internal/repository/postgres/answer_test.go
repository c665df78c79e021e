package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askhub/askhub-server/internal/model"
)

func TestAnswerRepository_Create(t *testing.T) {
	answer := model.Answer{
		ID:           uuid.New(),
		QuestionID:   uuid.New(),
		AnsweredByID: uuid.New(),
		Body:         "Use context.",
		CreatedAt:    time.Now(),
	}

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO answers`).
		WithArgs(answer.ID, answer.QuestionID, answer.AnsweredByID, answer.Body, answer.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "question_id", "answered_by", "body", "created_at"}).
			AddRow(answer.ID, answer.QuestionID, answer.AnsweredByID, answer.Body, answer.CreatedAt))

	repo := NewAnswerRepository(mock)
	saved, err := repo.Create(context.Background(), answer)
	require.NoError(t, err)
	assert.Equal(t, answer.ID, saved.ID)
	assert.Equal(t, "Use context.", saved.Body)

	assert.NoError(t, mock.ExpectationsWereMet())
}
