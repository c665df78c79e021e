package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/askhub/askhub-server/internal/model"
)

var _ model.QuestionStore = (*QuestionRepository)(nil)

type QuestionRepository struct {
	db Querier
}

func NewQuestionRepository(db Querier) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

// Create inserts the question and its tag links in one transaction.
func (r *QuestionRepository) Create(ctx context.Context, question model.Question, tagIDs []uuid.UUID) (model.Question, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Question{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO questions (id, asked_by, title, body, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, asked_by, title, body, created_at, updated_at`

	var saved model.Question
	err = tx.QueryRow(ctx, query,
		question.ID, question.AskedByID, question.Title, question.Body,
		question.CreatedAt, question.UpdatedAt,
	).Scan(
		&saved.ID, &saved.AskedByID, &saved.Title, &saved.Body,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Question{}, fmt.Errorf("failed to create question: %w", err)
	}

	for _, tagID := range tagIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO question_tags (question_id, tag_id) VALUES ($1, $2)`,
			saved.ID, tagID,
		)
		if err != nil {
			return model.Question{}, fmt.Errorf("failed to link tag: %w", err)
		}
	}

	tags, err := queryTags(ctx, tx, tagIDs)
	if err != nil {
		return model.Question{}, err
	}
	saved.Tags = tags

	if err := tx.Commit(ctx); err != nil {
		return model.Question{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Question, error) {
	query := `SELECT id, asked_by, title, body, created_at, updated_at
			  FROM questions WHERE id = $1`

	var question model.Question
	err := r.db.QueryRow(ctx, query, id).Scan(
		&question.ID, &question.AskedByID, &question.Title, &question.Body,
		&question.CreatedAt, &question.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Question{}, model.ErrNotFound
		}
		return model.Question{}, fmt.Errorf("failed to get question by id: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.name FROM tags t
		 JOIN question_tags qt ON qt.tag_id = t.id
		 WHERE qt.question_id = $1
		 ORDER BY t.name`,
		id,
	)
	if err != nil {
		return model.Question{}, fmt.Errorf("failed to get question tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return model.Question{}, fmt.Errorf("failed to scan tag: %w", err)
		}
		question.Tags = append(question.Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return model.Question{}, fmt.Errorf("failed to read question tags: %w", err)
	}

	return question, nil
}

func (r *QuestionRepository) HasView(ctx context.Context, viewerID, questionID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM question_views WHERE viewed_by = $1 AND question_id = $2
			  )`

	var exists bool
	if err := r.db.QueryRow(ctx, query, viewerID, questionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check question view: %w", err)
	}

	return exists, nil
}

func (r *QuestionRepository) CreateView(ctx context.Context, view model.QuestionView) error {
	query := `INSERT INTO question_views (id, question_id, viewed_by, viewed_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, view.ID, view.QuestionID, view.ViewedByID, view.ViewedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicate
		}
		return fmt.Errorf("failed to create question view: %w", err)
	}

	return nil
}

func queryTags(ctx context.Context, tx pgx.Tx, tagIDs []uuid.UUID) ([]model.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}

	rows, err := tx.Query(ctx,
		`SELECT id, name FROM tags WHERE id = ANY($1) ORDER BY name`,
		tagIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	return tags, nil
}
