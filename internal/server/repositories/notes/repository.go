package notes

import (
	"context"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/server/models"
)

// Repository is the persistence contract for notes. FindOne returns
// common.ErrNotFound when no row matches. FindAllInWorkspace lists in
// insertion order. Delete removes the note row only; blocks are not cascaded.
type Repository interface {
	Create(ctx context.Context, note *models.Note) error
	FindOne(ctx context.Context, id uuid.UUID) (*models.Note, error)
	FindAllInWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*models.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Save(ctx context.Context, note *models.Note) error
}
