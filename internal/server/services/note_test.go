package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/common"
	"github.com/remindhq/remind/internal/server/dto"
	"github.com/remindhq/remind/internal/server/models"
)

func storedNote(rm *fakeRepoManager, workspaceID uuid.UUID) *models.Note {
	n := &models.Note{
		ID:          uuid.New(),
		Title:       "stored",
		IconType:    models.NoteIconEmoji,
		IconData:    models.DefaultNoteIconData,
		WorkspaceID: workspaceID,
	}
	rm.n.notes = append(rm.n.notes, n)
	return n
}

func storedBlock(rm *fakeRepoManager, noteID uuid.UUID, position int32) *models.Block {
	b := &models.Block{
		ID:        uuid.New(),
		BlockType: models.BlockTypePlainText,
		Content:   &models.PlainTextContent{Text: "t"},
		NoteID:    noteID,
		Position:  position,
	}
	rm.b.blocks = append(rm.b.blocks, b)
	return b
}

func TestNoteCreate_DefaultIcon(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newFakeRepoManager()
	s := NewNoteService(db, rm)

	n, err := s.Create(context.Background(), dto.NoteCreate{Title: "todo", WorkspaceID: uuid.New()})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if n.Icon.Type != models.NoteIconEmoji || n.Icon.Data != models.DefaultNoteIconData {
		t.Fatalf("unexpected icon: %+v", n.Icon)
	}
	if n.Parent != nil {
		t.Fatalf("expected nil parent, got %v", n.Parent)
	}
	if n.Blocks == nil || len(n.Blocks) != 0 {
		t.Fatalf("expected empty non-nil blocks, got %#v", n.Blocks)
	}
}

func TestNoteCreate_ParentMissing(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewNoteService(db, newFakeRepoManager())

	missing := uuid.New()
	_, err := s.Create(context.Background(), dto.NoteCreate{
		Title:       "child",
		WorkspaceID: uuid.New(),
		Parent:      &missing,
	})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestNoteCreate_WithParent(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newFakeRepoManager()
	s := NewNoteService(db, rm)

	workspaceID := uuid.New()
	parent := storedNote(rm, workspaceID)

	n, err := s.Create(context.Background(), dto.NoteCreate{
		Title:       "child",
		WorkspaceID: workspaceID,
		Parent:      &parent.ID,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if n.Parent == nil || *n.Parent != parent.ID {
		t.Fatalf("parent not set: %+v", n.Parent)
	}
}

func TestNoteFindOne_ComposesBlocks(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newFakeRepoManager()
	s := NewNoteService(db, rm)

	note := storedNote(rm, uuid.New())
	b0 := storedBlock(rm, note.ID, 0)
	b1 := storedBlock(rm, note.ID, 1)
	storedBlock(rm, uuid.New(), 0) // block of a different note

	n, err := s.FindOne(context.Background(), note.ID)
	if err != nil {
		t.Fatalf("FindOne error: %v", err)
	}
	if len(n.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(n.Blocks))
	}
	if n.Blocks[0].ID != b0.ID || n.Blocks[1].ID != b1.ID {
		t.Fatalf("blocks out of order: %v, %v", n.Blocks[0].ID, n.Blocks[1].ID)
	}
}

func TestNoteUpdate_Title(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newFakeRepoManager()
	s := NewNoteService(db, rm)

	note := storedNote(rm, uuid.New())

	title := "renamed"
	if err := s.Update(context.Background(), note.ID, dto.NoteUpdate{Title: &title}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	n, err := s.FindOne(context.Background(), note.ID)
	if err != nil || n.Title != "renamed" {
		t.Fatalf("title not applied: got (%+v, %v)", n, err)
	}

	// nil fields leave the note unchanged
	if err := s.Update(context.Background(), note.ID, dto.NoteUpdate{}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	n, err = s.FindOne(context.Background(), note.ID)
	if err != nil || n.Title != "renamed" {
		t.Fatalf("title overwritten: got (%+v, %v)", n, err)
	}

	if err := s.Update(context.Background(), uuid.New(), dto.NoteUpdate{Title: &title}); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestNoteDelete_KeepsBlocks(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newFakeRepoManager()
	s := NewNoteService(db, rm)

	note := storedNote(rm, uuid.New())
	storedBlock(rm, note.ID, 0)

	if err := s.Delete(context.Background(), note.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.FindOne(context.Background(), note.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("note still found: %v", err)
	}
	// blocks of the deleted note are not cascaded
	if len(rm.b.blocks) != 1 {
		t.Fatalf("expected blocks to survive, got %d", len(rm.b.blocks))
	}
}

func TestReorderBlocks(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	s := NewNoteService(db, rm)

	note := storedNote(rm, uuid.New())
	b1 := storedBlock(rm, note.ID, 0)
	b2 := storedBlock(rm, note.ID, 1)
	b3 := storedBlock(rm, note.ID, 2)

	err := s.ReorderBlocks(context.Background(), note.ID, []uuid.UUID{b2.ID, b3.ID, b1.ID})
	if err != nil {
		t.Fatalf("ReorderBlocks error: %v", err)
	}

	n, err := s.FindOne(context.Background(), note.ID)
	if err != nil {
		t.Fatalf("FindOne error: %v", err)
	}
	if n.Blocks[0].ID != b2.ID || n.Blocks[1].ID != b3.ID || n.Blocks[2].ID != b1.ID {
		t.Fatalf("order after reorder: %v", []uuid.UUID{n.Blocks[0].ID, n.Blocks[1].ID, n.Blocks[2].ID})
	}
	for i, b := range n.Blocks {
		if b.Position != int32(i) {
			t.Fatalf("block %d position = %d", i, b.Position)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestReorderBlocks_MissingIDRejected(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	rm := newFakeRepoManager()
	s := NewNoteService(db, rm)

	note := storedNote(rm, uuid.New())
	b1 := storedBlock(rm, note.ID, 0)
	b2 := storedBlock(rm, note.ID, 1)

	err := s.ReorderBlocks(context.Background(), note.ID, []uuid.UUID{b2.ID})
	if !errors.Is(err, common.ErrInternal) {
		t.Fatalf("want ErrInternal, got %v", err)
	}
	// positions stay untouched and no transaction was started
	n, err := s.FindOne(context.Background(), note.ID)
	if err != nil {
		t.Fatalf("FindOne error: %v", err)
	}
	if n.Blocks[0].ID != b1.ID || n.Blocks[1].ID != b2.ID {
		t.Fatalf("order changed: %v, %v", n.Blocks[0].ID, n.Blocks[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestReorderBlocks_UnknownIDIgnored(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	s := NewNoteService(db, rm)

	note := storedNote(rm, uuid.New())
	b1 := storedBlock(rm, note.ID, 0)
	b2 := storedBlock(rm, note.ID, 1)

	// an id that belongs to no block in the note consumes a slot but is
	// otherwise ignored
	err := s.ReorderBlocks(context.Background(), note.ID, []uuid.UUID{b2.ID, uuid.New(), b1.ID})
	if err != nil {
		t.Fatalf("ReorderBlocks error: %v", err)
	}
	n, err := s.FindOne(context.Background(), note.ID)
	if err != nil {
		t.Fatalf("FindOne error: %v", err)
	}
	if n.Blocks[0].ID != b2.ID || n.Blocks[0].Position != 0 {
		t.Fatalf("first block: %+v", n.Blocks[0])
	}
	if n.Blocks[1].ID != b1.ID || n.Blocks[1].Position != 2 {
		t.Fatalf("second block: %+v", n.Blocks[1])
	}
}
