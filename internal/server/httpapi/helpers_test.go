package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/logging"
	"github.com/remindhq/remind/internal/server/auth"
	"github.com/remindhq/remind/internal/server/config"
	"github.com/remindhq/remind/internal/server/dto"
)

const testSecret = "k"

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUsers struct {
	registerResp *dto.User
	registerErr  error
	token        string
	tokenErr     error
	findResp     *dto.User
	findErr      error
}

func (f *fakeUsers) Register(ctx context.Context, data dto.UserCreate) (*dto.User, error) {
	return f.registerResp, f.registerErr
}
func (f *fakeUsers) LoginByUsername(ctx context.Context, data dto.UserLoginUsername) (string, error) {
	return f.token, f.tokenErr
}
func (f *fakeUsers) LoginByEmail(ctx context.Context, data dto.UserLoginEmail) (string, error) {
	return f.token, f.tokenErr
}
func (f *fakeUsers) FindOneByUsername(ctx context.Context, username string) (*dto.User, error) {
	return f.findResp, f.findErr
}

type fakeWorkspaces struct {
	createResp *dto.Workspace
	createErr  error
	getResp    *dto.Workspace
	getErr     error
	listResp   []*dto.Workspace
	listErr    error
}

func (f *fakeWorkspaces) Create(ctx context.Context, data dto.WorkspaceCreate) (*dto.Workspace, error) {
	return f.createResp, f.createErr
}
func (f *fakeWorkspaces) Get(ctx context.Context, id uuid.UUID) (*dto.Workspace, error) {
	return f.getResp, f.getErr
}
func (f *fakeWorkspaces) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*dto.Workspace, error) {
	return f.listResp, f.listErr
}

type fakeNotes struct {
	createResp *dto.Note
	createErr  error
	findResp   *dto.Note
	findErr    error
	listResp   []*dto.Note
	listErr    error
	updateErr  error
	deleteErr  error
	reorderErr error

	createCalls  int
	reorderedIDs []uuid.UUID
}

func (f *fakeNotes) Create(ctx context.Context, data dto.NoteCreate) (*dto.Note, error) {
	f.createCalls++
	return f.createResp, f.createErr
}
func (f *fakeNotes) FindOne(ctx context.Context, id uuid.UUID) (*dto.Note, error) {
	return f.findResp, f.findErr
}
func (f *fakeNotes) GetAllInWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*dto.Note, error) {
	return f.listResp, f.listErr
}
func (f *fakeNotes) Update(ctx context.Context, id uuid.UUID, data dto.NoteUpdate) error {
	return f.updateErr
}
func (f *fakeNotes) Delete(ctx context.Context, id uuid.UUID) error { return f.deleteErr }
func (f *fakeNotes) ReorderBlocks(ctx context.Context, id uuid.UUID, blockIDs []uuid.UUID) error {
	f.reorderedIDs = blockIDs
	return f.reorderErr
}

type fakeBlocks struct {
	createResp *dto.Block
	createErr  error
	findResp   *dto.Block
	findErr    error
	updateResp *dto.Block
	updateErr  error
	deleteErr  error

	createCalls int
}

func (f *fakeBlocks) Create(ctx context.Context, data dto.BlockCreate) (*dto.Block, error) {
	f.createCalls++
	return f.createResp, f.createErr
}
func (f *fakeBlocks) FindOne(ctx context.Context, id uuid.UUID) (*dto.Block, error) {
	return f.findResp, f.findErr
}
func (f *fakeBlocks) Update(ctx context.Context, data dto.BlockUpdate) (*dto.Block, error) {
	return f.updateResp, f.updateErr
}
func (f *fakeBlocks) Delete(ctx context.Context, id uuid.UUID) error { return f.deleteErr }

type fakeMedia struct {
	key    string
	putURL string
	putErr error
	getURL string
	getErr error
}

func (f *fakeMedia) GetPresignedPutURL(ctx context.Context) (string, string, error) {
	return f.key, f.putURL, f.putErr
}
func (f *fakeMedia) GetPresignedGetURL(ctx context.Context, key string) (string, error) {
	return f.getURL, f.getErr
}

// ---- helpers ----

type fakes struct {
	users      *fakeUsers
	workspaces *fakeWorkspaces
	notes      *fakeNotes
	blocks     *fakeBlocks
	media      *fakeMedia
}

// caller is the user every authenticated test request acts as.
var caller = &dto.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}

func newFakes() *fakes {
	return &fakes{
		users:      &fakeUsers{findResp: caller},
		workspaces: &fakeWorkspaces{},
		notes:      &fakeNotes{},
		blocks:     &fakeBlocks{},
		media:      &fakeMedia{},
	}
}

func newTestRouter(f *fakes) http.Handler {
	cfg := &config.Config{
		SecretKey:         testSecret,
		CORSAllowedOrigin: "http://localhost:3000",
	}
	s := NewServer(cfg, nopLogger{}, f.users, f.workspaces, f.notes, f.blocks, f.media)
	return s.Router()
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(caller.Username, []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return "Bearer " + token
}

func doRequest(h http.Handler, method, target, authHeader, body string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return out
}
