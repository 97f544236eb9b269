// Package httpapi exposes the note-taking services over JSON/HTTP: a chi
// router, bearer-token authentication, and handlers enforcing the ownership
// chain block → note → workspace → user at the boundary.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/logging"
	"github.com/remindhq/remind/internal/server/config"
	"github.com/remindhq/remind/internal/server/dto"
)

// The handler layer consumes narrow service interfaces so tests can stub
// them; the services package provides the production implementations.

type userService interface {
	Register(ctx context.Context, data dto.UserCreate) (*dto.User, error)
	LoginByUsername(ctx context.Context, data dto.UserLoginUsername) (string, error)
	LoginByEmail(ctx context.Context, data dto.UserLoginEmail) (string, error)
	FindOneByUsername(ctx context.Context, username string) (*dto.User, error)
}

type workspaceService interface {
	Create(ctx context.Context, data dto.WorkspaceCreate) (*dto.Workspace, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.Workspace, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*dto.Workspace, error)
}

type noteService interface {
	Create(ctx context.Context, data dto.NoteCreate) (*dto.Note, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.Note, error)
	GetAllInWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*dto.Note, error)
	Update(ctx context.Context, id uuid.UUID, data dto.NoteUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReorderBlocks(ctx context.Context, id uuid.UUID, blockIDs []uuid.UUID) error
}

type blockService interface {
	Create(ctx context.Context, data dto.BlockCreate) (*dto.Block, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.Block, error)
	Update(ctx context.Context, data dto.BlockUpdate) (*dto.Block, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type mediaService interface {
	GetPresignedPutURL(ctx context.Context) (string, string, error)
	GetPresignedGetURL(ctx context.Context, key string) (string, error)
}

type Server struct {
	config     *config.Config
	logger     logging.Logger
	users      userService
	workspaces workspaceService
	notes      noteService
	blocks     blockService
	media      mediaService
}

func NewServer(cfg *config.Config, logger logging.Logger,
	users userService, workspaces workspaceService, notes noteService,
	blocks blockService, media mediaService) *Server {
	return &Server{
		config:     cfg,
		logger:     logger.With("module", "httpapi"),
		users:      users,
		workspaces: workspaces,
		notes:      notes,
		blocks:     blocks,
		media:      media,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.config.CORSAllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "Hello, world!", "ok": true})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login/username", s.handleLoginByUsername)
		r.Post("/login/email", s.handleLoginByEmail)
		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)
			r.Get("/me", s.handleMe)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Route("/workspaces", func(r chi.Router) {
			r.Post("/", s.handleCreateWorkspace)
			r.Get("/my", s.handleMyWorkspaces)
			r.Get("/{id}", s.handleGetWorkspace)
			r.Get("/{id}/notes", s.handleWorkspaceNotes)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", s.handleCreateNote)
			r.Get("/{id}", s.handleGetNote)
			r.Patch("/{id}", s.handleUpdateNote)
			r.Delete("/{id}", s.handleDeleteNote)
			r.Put("/{id}/reorder", s.handleReorderBlocks)
		})

		r.Route("/blocks", func(r chi.Router) {
			r.Post("/", s.handleCreateBlock)
			r.Post("/images", s.handleImageUpload)
			r.Get("/images/url", s.handleImageURL)
			r.Get("/{id}", s.handleGetBlock)
			r.Put("/{id}", s.handleUpdateBlock)
			r.Delete("/{id}", s.handleDeleteBlock)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found")
	})

	return r
}

// Run serves the API until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.config.EndpointAddr,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.config.EndpointAddr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
