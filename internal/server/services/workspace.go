package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/common"
	"github.com/remindhq/remind/internal/dbx"
	"github.com/remindhq/remind/internal/server/dto"
	"github.com/remindhq/remind/internal/server/models"
	"github.com/remindhq/remind/internal/server/repositories/repomanager"
)

// MaxWorkspacesPerUser caps how many workspaces a single user may own.
const MaxWorkspacesPerUser = 3

// WorkspaceService enforces the per-user workspace limit and serves
// workspace lookups.
type WorkspaceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewWorkspaceService(db *sql.DB, m repomanager.RepositoryManager) *WorkspaceService {
	return &WorkspaceService{db: db, repomanager: m}
}

// Create persists a new workspace unless the owner already holds
// MaxWorkspacesPerUser. The owner's row is locked for the duration of the
// transaction, so concurrent creations for the same user queue up behind one
// another instead of both passing the count check.
func (s *WorkspaceService) Create(ctx context.Context, data dto.WorkspaceCreate) (*dto.Workspace, error) {
	workspace := &models.Workspace{
		ID:     uuid.New(),
		Title:  data.Title,
		UserID: data.UserID,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).Lock(ctx, data.UserID); err != nil {
			return err
		}

		repo := s.repomanager.Workspaces(tx)

		existing, err := repo.FindAllByUser(ctx, data.UserID)
		if err != nil {
			return err
		}
		if len(existing) >= MaxWorkspacesPerUser {
			return common.ErrTooManyWorkspaces
		}

		return repo.Create(ctx, workspace)
	})
	if err != nil {
		return nil, err
	}

	return dto.WorkspaceFromModel(workspace), nil
}

// Get returns the workspace with the given id.
func (s *WorkspaceService) Get(ctx context.Context, id uuid.UUID) (*dto.Workspace, error) {
	repo := s.repomanager.Workspaces(s.db)

	workspace, err := repo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.WorkspaceFromModel(workspace), nil
}

// GetAllByUser lists the user's workspaces in persistence order.
func (s *WorkspaceService) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*dto.Workspace, error) {
	repo := s.repomanager.Workspaces(s.db)

	workspaces, err := repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.Workspace, 0, len(workspaces))
	for _, w := range workspaces {
		result = append(result, dto.WorkspaceFromModel(w))
	}
	return result, nil
}
