package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/common"
	"github.com/remindhq/remind/internal/server/dto"
	"github.com/remindhq/remind/internal/server/models"
	"github.com/remindhq/remind/internal/server/repositories/repomanager"
)

// BlockService manages the typed content blocks of a note. Every write path
// re-checks that the block's declared type matches the shape of its content.
type BlockService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBlockService(db *sql.DB, m repomanager.RepositoryManager) *BlockService {
	return &BlockService{db: db, repomanager: m}
}

// Create appends a block to the end of the note: its position is one past the
// current last block, or 0 for an empty note.
func (s *BlockService) Create(ctx context.Context, data dto.BlockCreate) (*dto.Block, error) {
	block := &models.Block{
		ID:        uuid.New(),
		BlockType: data.BlockType,
		Content:   data.Content,
		NoteID:    data.NoteID,
	}
	if !block.ContentMatchesType() {
		return nil, common.ErrBlockTypeMismatch
	}

	repo := s.repomanager.Blocks(s.db)

	existing, err := repo.FindAllInNote(ctx, data.NoteID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		block.Position = existing[len(existing)-1].Position + 1
	}

	if err := repo.Create(ctx, block); err != nil {
		return nil, fmt.Errorf("error creating block: %w", err)
	}

	return s.FindOne(ctx, block.ID)
}

func (s *BlockService) FindOne(ctx context.Context, id uuid.UUID) (*dto.Block, error) {
	block, err := s.repomanager.Blocks(s.db).FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.BlockFromModel(block), nil
}

func (s *BlockService) GetAllInNote(ctx context.Context, noteID uuid.UUID) ([]*dto.Block, error) {
	blocks, err := s.repomanager.Blocks(s.db).FindAllInNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.Block, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, dto.BlockFromModel(b))
	}
	return result, nil
}

// Update applies the present fields of data onto the stored block. The merged
// result must still be type-consistent.
func (s *BlockService) Update(ctx context.Context, data dto.BlockUpdate) (*dto.Block, error) {
	repo := s.repomanager.Blocks(s.db)

	block, err := repo.FindOne(ctx, data.ID)
	if err != nil {
		return nil, err
	}

	if data.BlockType != nil {
		block.BlockType = *data.BlockType
	}
	if data.Content != nil {
		block.Content = data.Content
	}
	if !block.ContentMatchesType() {
		return nil, common.ErrBlockTypeMismatch
	}

	if err := repo.Save(ctx, block); err != nil {
		return nil, err
	}
	return dto.BlockFromModel(block), nil
}

// Save replaces the stored block with data wholesale. The note binding is
// recovered from the stored row, so callers may omit NoteID.
func (s *BlockService) Save(ctx context.Context, data *dto.Block) error {
	repo := s.repomanager.Blocks(s.db)

	existing, err := repo.FindOne(ctx, data.ID)
	if err != nil {
		return err
	}

	block := &models.Block{
		ID:        data.ID,
		BlockType: data.BlockType,
		Content:   data.Content,
		Position:  data.Position,
		NoteID:    existing.NoteID,
	}
	if !block.ContentMatchesType() {
		return common.ErrBlockTypeMismatch
	}

	return repo.Save(ctx, block)
}

func (s *BlockService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repomanager.Blocks(s.db).Delete(ctx, id)
}
