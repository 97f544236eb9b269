package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/server/models"
)

// Repository is the persistence contract for users. Lookup methods return
// common.ErrNotFound when no row matches. Lock takes a row lock on the user
// until the surrounding transaction ends, serializing writers that key their
// invariants on that user.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	Lock(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindOneByUsername(ctx context.Context, username string) (*models.User, error)
	FindOneByEmail(ctx context.Context, email string) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Save(ctx context.Context, user *models.User) error
}
