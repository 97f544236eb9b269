package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/common"
	"github.com/remindhq/remind/internal/dbx"
	"github.com/remindhq/remind/internal/server/dto"
	"github.com/remindhq/remind/internal/server/models"
	"github.com/remindhq/remind/internal/server/repositories/repomanager"
)

// NoteService serves composed note reads (note plus its ordered blocks) and
// owns the block-reordering invariant. Whether the target workspace exists is
// checked by the caller, not here.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// Create persists a new note with the default icon. When a parent note is
// given it must already exist.
func (s *NoteService) Create(ctx context.Context, data dto.NoteCreate) (*dto.Note, error) {
	repo := s.repomanager.Notes(s.db)

	var parent uuid.NullUUID
	if data.Parent != nil {
		if _, err := repo.FindOne(ctx, *data.Parent); err != nil {
			return nil, err
		}
		parent = uuid.NullUUID{UUID: *data.Parent, Valid: true}
	}

	note := &models.Note{
		ID:          uuid.New(),
		Title:       data.Title,
		IconType:    models.NoteIconEmoji,
		IconData:    models.DefaultNoteIconData,
		WorkspaceID: data.WorkspaceID,
		ParentNote:  parent,
	}
	if err := repo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	return s.FindOne(ctx, note.ID)
}

// FindOne assembles the note together with its blocks in ascending position
// order.
func (s *NoteService) FindOne(ctx context.Context, id uuid.UUID) (*dto.Note, error) {
	repo := s.repomanager.Notes(s.db)

	note, err := repo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	blocks, err := s.noteBlocks(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NoteFromModel(note, blocks), nil
}

// GetAllInWorkspace returns one composed read per note, in persistence order.
func (s *NoteService) GetAllInWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*dto.Note, error) {
	repo := s.repomanager.Notes(s.db)

	notes, err := repo.FindAllInWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.Note, 0, len(notes))
	for _, note := range notes {
		blocks, err := s.noteBlocks(ctx, note.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, dto.NoteFromModel(note, blocks))
	}
	return result, nil
}

// Update applies the present fields of data onto the stored note.
func (s *NoteService) Update(ctx context.Context, id uuid.UUID, data dto.NoteUpdate) error {
	repo := s.repomanager.Notes(s.db)

	note, err := repo.FindOne(ctx, id)
	if err != nil {
		return err
	}

	if data.Title != nil {
		note.Title = *data.Title
	}

	return repo.Save(ctx, note)
}

// Delete removes the note record only. Blocks of the note are intentionally
// left in place; see the repository contract.
func (s *NoteService) Delete(ctx context.Context, id uuid.UUID) error {
	repo := s.repomanager.Notes(s.db)
	return repo.Delete(ctx, id)
}

// ReorderBlocks rewrites block positions to match the order of blockIDs.
// Every block currently in the note must appear in blockIDs, otherwise the
// whole call is rejected and positions stay untouched; ids that do not belong
// to the note are ignored. The position writes run in one transaction.
func (s *NoteService) ReorderBlocks(ctx context.Context, id uuid.UUID, blockIDs []uuid.UUID) error {
	current, err := s.repomanager.Blocks(s.db).FindAllInNote(ctx, id)
	if err != nil {
		return err
	}

	positions := make(map[uuid.UUID]int32, len(blockIDs))
	for i, blockID := range blockIDs {
		positions[blockID] = int32(i)
	}

	for _, block := range current {
		if _, ok := positions[block.ID]; !ok {
			return common.ErrInternal
		}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Blocks(tx)
		for _, block := range current {
			block.Position = positions[block.ID]
			if err := repo.Save(ctx, block); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *NoteService) noteBlocks(ctx context.Context, noteID uuid.UUID) ([]*dto.Block, error) {
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
