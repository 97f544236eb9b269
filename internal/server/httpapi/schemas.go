package httpapi

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/server/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginUsernameRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginEmailRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type createWorkspaceRequest struct {
	Title string `json:"title"`
}

type createNoteRequest struct {
	Title       string     `json:"title"`
	WorkspaceID uuid.UUID  `json:"workspace_id"`
	Parent      *uuid.UUID `json:"parent"`
}

type updateNoteRequest struct {
	Title *string `json:"title"`
}

type reorderBlocksRequest struct {
	Blocks []uuid.UUID `json:"blocks"`
}

// createBlockRequest carries the content payload untagged; the concrete
// variant is resolved from its key set and re-checked against block_type by
// the service.
type createBlockRequest struct {
	BlockType models.BlockType `json:"block_type"`
	Content   json.RawMessage  `json:"content"`
	NoteID    uuid.UUID        `json:"note_id"`
}

type updateBlockRequest struct {
	BlockType *models.BlockType `json:"block_type"`
	Content   json.RawMessage   `json:"content"`
}

type imageUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type imageURLResponse struct {
	URL string `json:"url"`
}
