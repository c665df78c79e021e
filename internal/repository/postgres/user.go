package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/askhub/askhub-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, email, name, password_hash, permissions, reset_token, reset_token_expiry, created_at, updated_at`

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	var permissions []string

	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &permissions,
		&user.ResetToken, &user.ResetTokenExpiry, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return model.User{}, err
	}

	user.Permissions = make([]model.Permission, 0, len(permissions))
	for _, p := range permissions {
		user.Permissions = append(user.Permissions, model.Permission(p))
	}

	return user, nil
}

func permissionStrings(permissions []model.Permission) []string {
	out := make([]string, 0, len(permissions))
	for _, p := range permissions {
		out = append(out, string(p))
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, email, name, password_hash, permissions, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + userColumns

	savedUser, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, permissionStrings(user.Permissions),
		user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrDuplicate
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, params model.UpdateProfileParams) (model.User, error) {
	query := `UPDATE users
			  SET name = COALESCE($2, name), email = COALESCE($3, email), updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id, params.Name, params.Email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.User{}, model.ErrDuplicate
		}
		return model.User{}, fmt.Errorf("failed to update user profile: %w", err)
	}

	return user, nil
}

func (r *UserRepository) SetPasswordReset(ctx context.Context, email string, token string, expiry time.Time) (model.User, error) {
	query := `UPDATE users
			  SET reset_token = $2, reset_token_expiry = $3, updated_at = NOW()
			  WHERE email = $1
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, email, token, expiry))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to set password reset: %w", err)
	}

	return user, nil
}

// ConsumePasswordReset rewrites the password hash and clears the reset token
// in a single UPDATE, so a token can be consumed at most once even under
// concurrent requests. The row must match the token and have been issued
// within the validity window (expiry >= issuedAfter).
func (r *UserRepository) ConsumePasswordReset(ctx context.Context, token string, issuedAfter time.Time, passwordHash string) (model.User, error) {
	query := `UPDATE users
			  SET password_hash = $3, reset_token = NULL, reset_token_expiry = NULL, updated_at = NOW()
			  WHERE reset_token = $1 AND reset_token_expiry >= $2
			  RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, token, issuedAfter, passwordHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to consume password reset: %w", err)
	}

	return user, nil
}
