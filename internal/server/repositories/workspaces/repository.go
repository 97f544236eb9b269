package workspaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/server/models"
)

// Repository is the persistence contract for workspaces. FindOne returns
// common.ErrNotFound when no row matches. FindAllByUser lists in insertion
// order.
type Repository interface {
	Create(ctx context.Context, workspace *models.Workspace) error
	FindOne(ctx context.Context, id uuid.UUID) (*models.Workspace, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*models.Workspace, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Save(ctx context.Context, workspace *models.Workspace) error
}
