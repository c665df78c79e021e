package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/askhub/askhub-server/internal/model"
)

var _ model.TagStore = (*TagRepository)(nil)

type TagRepository struct {
	db Querier
}

func NewTagRepository(db Querier) *TagRepository {
	return &TagRepository{
		db: db,
	}
}

func (r *TagRepository) GetByName(ctx context.Context, name string) (model.Tag, error) {
	query := `SELECT id, name FROM tags WHERE name = $1`

	var tag model.Tag
	err := r.db.QueryRow(ctx, query, name).Scan(&tag.ID, &tag.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Tag{}, model.ErrNotFound
		}
		return model.Tag{}, fmt.Errorf("failed to get tag by name: %w", err)
	}

	return tag, nil
}

func (r *TagRepository) Create(ctx context.Context, tag model.Tag) (model.Tag, error) {
	query := `INSERT INTO tags (id, name) VALUES ($1, $2) RETURNING id, name`

	var saved model.Tag
	err := r.db.QueryRow(ctx, query, tag.ID, tag.Name).Scan(&saved.ID, &saved.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Tag{}, model.ErrDuplicate
		}
		return model.Tag{}, fmt.Errorf("failed to create tag: %w", err)
	}

	return saved, nil
}
