package dto

import (
	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/server/models"
)

type NoteIcon struct {
	Type models.NoteIconType `json:"type"`
	Data string              `json:"data"`
}

// Note is the composed read model: the note row together with its blocks in
// ascending position order.
type Note struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Icon        NoteIcon   `json:"icon"`
	WorkspaceID uuid.UUID  `json:"workspace_id"`
	Blocks      []*Block   `json:"blocks"`
	Parent      *uuid.UUID `json:"parent"`
}

func NoteFromModel(n *models.Note, blocks []*Block) *Note {
	if blocks == nil {
		blocks = []*Block{}
	}
	note := &Note{
		ID:          n.ID,
		Title:       n.Title,
		Icon:        NoteIcon{Type: n.IconType, Data: n.IconData},
		WorkspaceID: n.WorkspaceID,
		Blocks:      blocks,
	}
	if n.ParentNote.Valid {
		parent := n.ParentNote.UUID
		note.Parent = &parent
	}
	return note
}

type NoteCreate struct {
	Title       string
	WorkspaceID uuid.UUID
	Parent      *uuid.UUID
}

// NoteUpdate is a partial update; nil fields are left unchanged.
type NoteUpdate struct {
	Title *string
}
