package httpapi

import (
	"net/http"

	"github.com/remindhq/remind/internal/server/dto"
	"github.com/remindhq/remind/internal/server/models"
)

func (s *Server) handleCreateBlock(w http.ResponseWriter, r *http.Request) {
	var req createBlockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	content, err := models.DecodeContent(req.Content)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := s.requireNote(r.Context(), userFromContext(r.Context()), req.NoteID); err != nil {
		writeError(w, err)
		return
	}

	block, err := s.blocks.Create(r.Context(), dto.BlockCreate{
		BlockType: req.BlockType,
		Content:   content,
		NoteID:    req.NoteID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, block)
}

func (s *Server) handleGetBlock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	block, err := s.requireBlock(r.Context(), userFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, block)
}

func (s *Server) handleUpdateBlock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateBlockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	var content models.BlockContent
	if req.Content != nil {
		content, err = models.DecodeContent(req.Content)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if _, err := s.requireBlock(r.Context(), userFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.blocks.Update(r.Context(), dto.BlockUpdate{
		ID:        id,
		BlockType: req.BlockType,
		Content:   content,
	}); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleDeleteBlock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}

	if _, err := s.requireBlock(r.Context(), userFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}

	if err := s.blocks.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleImageUpload(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.media.GetPresignedPutURL(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, imageUploadResponse{Key: key, URL: url})
}

func (s *Server) handleImageURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeMessage(w, http.StatusBadRequest, "missing key")
		return
	}

	url, err := s.media.GetPresignedGetURL(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, imageURLResponse{URL: url})
}
