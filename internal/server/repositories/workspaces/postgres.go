// Package workspaces provides the PostgreSQL-backed workspace repository.
package workspaces

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

// PostgresRepository implements workspace storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, workspace *models.Workspace) error {
	query := `
		INSERT INTO workspaces (id, title, user_id)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query,
		workspace.ID, workspace.Title, workspace.UserID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindOne(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	query := `
		SELECT id, title, user_id FROM workspaces
		WHERE id = $1
	`

	workspace := &models.Workspace{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&workspace.ID, &workspace.Title, &workspace.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return workspace, nil
}

func (r *PostgresRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*models.Workspace, error) {
	query := `
		SELECT id, title, user_id FROM workspaces
		WHERE user_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Workspace
	for rows.Next() {
		var item models.Workspace
		if err := rows.Scan(&item.ID, &item.Title, &item.UserID); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM workspaces WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Save(ctx context.Context, workspace *models.Workspace) error {
	query := `
		UPDATE workspaces SET title = $2, user_id = $3
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query,
		workspace.ID, workspace.Title, workspace.UserID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
