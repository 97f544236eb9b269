package dto

import (
	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/server/models"
)

type Workspace struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	UserID uuid.UUID `json:"user_id"`
}

func WorkspaceFromModel(w *models.Workspace) *Workspace {
	return &Workspace{
		ID:     w.ID,
		Title:  w.Title,
		UserID: w.UserID,
	}
}

type WorkspaceCreate struct {
	Title  string
	UserID uuid.UUID
}
