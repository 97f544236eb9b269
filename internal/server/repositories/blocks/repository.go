package blocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/server/models"
)

// Repository is the persistence contract for blocks. FindOne returns
// common.ErrNotFound when no row matches. FindAllInNote lists blocks in
// ascending position order.
type Repository interface {
	Create(ctx context.Context, block *models.Block) error
	FindOne(ctx context.Context, id uuid.UUID) (*models.Block, error)
	FindAllInNote(ctx context.Context, noteID uuid.UUID) ([]*models.Block, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Save(ctx context.Context, block *models.Block) error
}
