package dto

import (
	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/server/models"
)

type Block struct {
	ID        uuid.UUID           `json:"id"`
	BlockType models.BlockType    `json:"block_type"`
	Content   models.BlockContent `json:"content"`
	Position  int32               `json:"position"`
	NoteID    uuid.UUID           `json:"note_id"`
}

func BlockFromModel(b *models.Block) *Block {
	return &Block{
		ID:        b.ID,
		BlockType: b.BlockType,
		Content:   b.Content,
		Position:  b.Position,
		NoteID:    b.NoteID,
	}
}

type BlockCreate struct {
	BlockType models.BlockType
	Content   models.BlockContent
	NoteID    uuid.UUID
}

// BlockUpdate is a partial update; nil fields are left unchanged.
type BlockUpdate struct {
	ID        uuid.UUID
	BlockType *models.BlockType
	Content   models.BlockContent
}
