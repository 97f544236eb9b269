package services

import (
	"context"
	"database/sql"
	"sort"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/common"
	"github.com/remindhq/remind/internal/dbx"
	blocksrepo "github.com/remindhq/remind/internal/server/repositories/blocks"
	notesrepo "github.com/remindhq/remind/internal/server/repositories/notes"
	"github.com/remindhq/remind/internal/server/repositories/repomanager"
	usersrepo "github.com/remindhq/remind/internal/server/repositories/users"
	workspacesrepo "github.com/remindhq/remind/internal/server/repositories/workspaces"

	"github.com/remindhq/remind/internal/server/models"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// --- in-memory fakes ---

type fakeUsersRepo struct {
	users     []*models.User
	createErr error
	findErr   error
	lockErr   error
	lockCalls int
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUsersRepo) Lock(ctx context.Context, id uuid.UUID) error {
	f.lockCalls++
	return f.lockErr
}

func (f *fakeUsersRepo) FindOne(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsersRepo) FindOneByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsersRepo) FindOneByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeUsersRepo) Save(ctx context.Context, u *models.User) error { return nil }

type fakeWorkspacesRepo struct {
	workspaces []*models.Workspace
	createErr  error
	findErr    error
}

func (f *fakeWorkspacesRepo) Create(ctx context.Context, w *models.Workspace) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.workspaces = append(f.workspaces, w)
	return nil
}

func (f *fakeWorkspacesRepo) FindOne(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, w := range f.workspaces {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeWorkspacesRepo) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*models.Workspace, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var result []*models.Workspace
	for _, w := range f.workspaces {
		if w.UserID == userID {
			result = append(result, w)
		}
	}
	return result, nil
}

func (f *fakeWorkspacesRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (f *fakeWorkspacesRepo) Save(ctx context.Context, w *models.Workspace) error { return nil }

type fakeNotesRepo struct {
	notes     []*models.Note
	createErr error
	findErr   error
	saveErr   error
}

func (f *fakeNotesRepo) Create(ctx context.Context, n *models.Note) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.notes = append(f.notes, n)
	return nil
}

// FindOne and FindAllInWorkspace return copies so that, like with real rows,
// mutating the result does not change the store until Save.
func (f *fakeNotesRepo) FindOne(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, n := range f.notes {
		if n.ID == id {
			c := *n
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeNotesRepo) FindAllInWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*models.Note, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var result []*models.Note
	for _, n := range f.notes {
		if n.WorkspaceID == workspaceID {
			c := *n
			result = append(result, &c)
		}
	}
	return result, nil
}

func (f *fakeNotesRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, n := range f.notes {
		if n.ID == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeNotesRepo) Save(ctx context.Context, n *models.Note) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for i, stored := range f.notes {
		if stored.ID == n.ID {
			c := *n
			f.notes[i] = &c
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeBlocksRepo struct {
	blocks    []*models.Block
	createErr error
	findErr   error
	saveErr   error
}

func (f *fakeBlocksRepo) Create(ctx context.Context, b *models.Block) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.blocks = append(f.blocks, b)
	return nil
}

func (f *fakeBlocksRepo) FindOne(ctx context.Context, id uuid.UUID) (*models.Block, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, b := range f.blocks {
		if b.ID == id {
			c := *b
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeBlocksRepo) FindAllInNote(ctx context.Context, noteID uuid.UUID) ([]*models.Block, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var result []*models.Block
	for _, b := range f.blocks {
		if b.NoteID == noteID {
			c := *b
			result = append(result, &c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result, nil
}

func (f *fakeBlocksRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, b := range f.blocks {
		if b.ID == id {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeBlocksRepo) Save(ctx context.Context, b *models.Block) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for i, stored := range f.blocks {
		if stored.ID == b.ID {
			c := *b
			f.blocks[i] = &c
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	w *fakeWorkspacesRepo
	n *fakeNotesRepo
	b *fakeBlocksRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: &fakeUsersRepo{},
		w: &fakeWorkspacesRepo{},
		n: &fakeNotesRepo{},
		b: &fakeBlocksRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository           { return m.u }
func (m *fakeRepoManager) Workspaces(db dbx.DBTX) workspacesrepo.Repository { return m.w }
func (m *fakeRepoManager) Notes(db dbx.DBTX) notesrepo.Repository           { return m.n }
func (m *fakeRepoManager) Blocks(db dbx.DBTX) blocksrepo.Repository         { return m.b }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)
