package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/common"
	"github.com/remindhq/remind/internal/server/dto"
)

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// requireWorkspace loads the workspace and rejects callers that do not own
// it. All nested resources inherit access through this check.
func (s *Server) requireWorkspace(ctx context.Context, user *dto.User, id uuid.UUID) (*dto.Workspace, error) {
	workspace, err := s.workspaces.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if workspace.UserID != user.ID {
		return nil, common.ErrAccessDenied
	}
	return workspace, nil
}

func (s *Server) requireNote(ctx context.Context, user *dto.User, id uuid.UUID) (*dto.Note, error) {
	note, err := s.notes.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireWorkspace(ctx, user, note.WorkspaceID); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *Server) requireBlock(ctx context.Context, user *dto.User, id uuid.UUID) (*dto.Block, error) {
	block, err := s.blocks.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireNote(ctx, user, block.NoteID); err != nil {
		return nil, err
	}
	return block, nil
}

func (s *Server) handleCreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var req createWorkspaceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user := userFromContext(r.Context())
	workspace, err := s.workspaces.Create(r.Context(), dto.WorkspaceCreate{
		Title:  req.Title,
		UserID: user.ID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workspace)
}

func (s *Server) handleMyWorkspaces(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	workspaces, err := s.workspaces.GetAllByUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Data: workspaces})
}

func (s *Server) handleGetWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	workspace, err := s.requireWorkspace(r.Context(), userFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workspace)
}

func (s *Server) handleWorkspaceNotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	if _, err := s.requireWorkspace(r.Context(), userFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}

	notes, err := s.notes.GetAllInWorkspace(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Data: notes})
}
