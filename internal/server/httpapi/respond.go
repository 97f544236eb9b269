package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/remindhq/remind/internal/common"
)

// errorResponse is the error envelope of every failed request.
type errorResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// dataResponse wraps list results.
type dataResponse struct {
	Data any `json:"data"`
}

// okResponse acknowledges updates and deletes that return no entity.
type okResponse struct {
	OK bool `json:"ok"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{StatusCode: status, Message: message})
}

// writeError maps a service error onto its HTTP status. Unrecognized errors
// (wrapped driver errors included) become a generic 500 so that storage
// details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	status, message := errorStatus(err)
	writeMessage(w, status, message)
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrWrongCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrBlockTypeMismatch):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrUsernameOccupied),
		errors.Is(err, common.ErrEmailExists),
		errors.Is(err, common.ErrTooManyWorkspaces),
		errors.Is(err, common.ErrAccessDenied):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, common.ErrTokenCreation),
		errors.Is(err, common.ErrInternal):
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusInternalServerError, "server error"
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
