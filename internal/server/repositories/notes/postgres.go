// Package notes provides the PostgreSQL-backed note repository.
package notes

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

// PostgresRepository implements note storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (id, title, icon_type, icon_data, workspace_id, parent_note)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query,
		note.ID, note.Title, note.IconType, note.IconData, note.WorkspaceID, note.ParentNote); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindOne(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	query := `
		SELECT id, title, icon_type, icon_data, workspace_id, parent_note FROM notes
		WHERE id = $1
	`

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&note.ID, &note.Title, &note.IconType, &note.IconData, &note.WorkspaceID, &note.ParentNote)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) FindAllInWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*models.Note, error) {
	query := `
		SELECT id, title, icon_type, icon_data, workspace_id, parent_note FROM notes
		WHERE workspace_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		var item models.Note
		if err := rows.Scan(&item.ID, &item.Title, &item.IconType, &item.IconData,
			&item.WorkspaceID, &item.ParentNote); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the note row only. Blocks of the note stay behind and remain
// queryable by id.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Save(ctx context.Context, note *models.Note) error {
	query := `
		UPDATE notes SET title = $2, icon_type = $3, icon_data = $4, workspace_id = $5, parent_note = $6
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query,
		note.ID, note.Title, note.IconType, note.IconData, note.WorkspaceID, note.ParentNote); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
