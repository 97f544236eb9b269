// Package users provides the PostgreSQL-backed user repository.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/common"
	"github.com/remindhq/remind/internal/dbx"
	"github.com/remindhq/remind/internal/server/models"
)

// PostgresRepository implements user storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, email, password)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.Password); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// Lock acquires FOR UPDATE on the user's row. Only meaningful inside a
// transaction; the lock is released on commit or rollback.
func (r *PostgresRepository) Lock(ctx context.Context, id uuid.UUID) error {
	query := `
		SELECT id FROM users
		WHERE id = $1
		FOR UPDATE
	`
	var locked uuid.UUID
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindOne(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, username, email, password FROM users
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) FindOneByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, email, password FROM users
		WHERE username = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

func (r *PostgresRepository) FindOneByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, username, email, password FROM users
		WHERE email = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Save(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET username = $2, email = $3, password = $4
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.Password); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
