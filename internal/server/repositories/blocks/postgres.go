// Package blocks provides the PostgreSQL-backed block repository. Content is
// stored as jsonb next to its type tag; rows whose payload does not match the
// tag fail to scan rather than leak an inconsistent block.
package blocks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/common"
	"github.com/remindhq/remind/internal/dbx"
	"github.com/remindhq/remind/internal/server/models"
)

// PostgresRepository implements block storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, block *models.Block) error {
	content, err := json.Marshal(block.Content)
	if err != nil {
		return fmt.Errorf("content encoding error: %w", err)
	}

	query := `
		INSERT INTO blocks (id, block_type, content, note_id, position)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query,
		block.ID, block.BlockType, content, block.NoteID, block.Position); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindOne(ctx context.Context, id uuid.UUID) (*models.Block, error) {
	query := `
		SELECT id, block_type, content, note_id, position FROM blocks
		WHERE id = $1
	`

	block, err := scanBlock(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return block, nil
}

func (r *PostgresRepository) FindAllInNote(ctx context.Context, noteID uuid.UUID) ([]*models.Block, error) {
	query := `
		SELECT id, block_type, content, note_id, position FROM blocks
		WHERE note_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, noteID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Block
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, block)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blocks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Save(ctx context.Context, block *models.Block) error {
	content, err := json.Marshal(block.Content)
	if err != nil {
		return fmt.Errorf("content encoding error: %w", err)
	}

	query := `
		UPDATE blocks SET block_type = $2, content = $3, note_id = $4, position = $5
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query,
		block.ID, block.BlockType, content, block.NoteID, block.Position); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlock(row rowScanner) (*models.Block, error) {
	var (
		block models.Block
		raw   []byte
	)
	if err := row.Scan(&block.ID, &block.BlockType, &raw, &block.NoteID, &block.Position); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	content, err := models.DecodeContentAs(block.BlockType, raw)
	if err != nil {
		return nil, fmt.Errorf("stored content does not match block type %q: %w", block.BlockType, err)
	}
	block.Content = content

	return &block, nil
}
