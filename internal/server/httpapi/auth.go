package httpapi

import (
	"net/http"

	"github.com/remindhq/remind/internal/server/dto"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.users.Register(r.Context(), dto.UserCreate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", user.Username)
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleLoginByUsername(w http.ResponseWriter, r *http.Request) {
	var req loginUsernameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := s.users.LoginByUsername(r.Context(), dto.UserLoginUsername{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "Bearer"})
}

func (s *Server) handleLoginByEmail(w http.ResponseWriter, r *http.Request) {
	var req loginEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := s.users.LoginByEmail(r.Context(), dto.UserLoginEmail{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "Bearer"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userFromContext(r.Context()))
}
