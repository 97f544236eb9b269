package httpapi

import (
	"net/http"

	"github.com/remindhq/remind/internal/server/dto"
)

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user := userFromContext(r.Context())
	if _, err := s.requireWorkspace(r.Context(), user, req.WorkspaceID); err != nil {
		writeError(w, err)
		return
	}

	note, err := s.notes.Create(r.Context(), dto.NoteCreate{
		Title:       req.Title,
		WorkspaceID: req.WorkspaceID,
		Parent:      req.Parent,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	note, err := s.requireNote(r.Context(), userFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := s.requireNote(r.Context(), userFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}

	if err := s.notes.Update(r.Context(), id, dto.NoteUpdate{Title: req.Title}); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	if _, err := s.requireNote(r.Context(), userFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}

	if err := s.notes.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleReorderBlocks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req reorderBlocksRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := s.requireNote(r.Context(), userFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}

	if err := s.notes.ReorderBlocks(r.Context(), id, req.Blocks); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
