package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/remindhq/remind/internal/common"
	"github.com/remindhq/remind/internal/server/auth"
	"github.com/remindhq/remind/internal/server/dto"
)

type ctxKey int

const userCtxKey ctxKey = iota

// userFromContext returns the authenticated caller. It is only valid inside
// handlers mounted behind authenticate.
func userFromContext(ctx context.Context) *dto.User {
	u, _ := ctx.Value(userCtxKey).(*dto.User)
	return u
}

// authenticate resolves the bearer token to a stored user and injects it into
// the request context. Any failure along the way reads as an invalid token;
// callers cannot distinguish a bad signature from a deleted account.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, common.ErrInvalidToken)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			writeError(w, common.ErrInvalidToken)
			return
		}

		subject, err := auth.GetSubjectFromToken(token, []byte(s.config.SecretKey))
		if err != nil {
			writeError(w, common.ErrInvalidToken)
			return
		}

		user, err := s.users.FindOneByUsername(r.Context(), subject)
		if err != nil {
			writeError(w, common.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userCtxKey, user)))
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
		)
	})
}
